package manifest

import (
	"bytes"
	"io"
	"maps"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargoadd/pkg/errors"
)

// Table is the generic document model: an arbitrarily nested TOML table.
// Leaf values are the TOML scalar types (string, int64, float64, bool,
// time-like datetimes), []any for arrays, and Table for nested tables.
type Table = map[string]any

// primaryHeaders are the recognized primary-section names, in lookup order.
// A manifest must contain one of them to be writable.
var primaryHeaders = []string{"package", "project"}

// Dependency is a single dependency entry destined for a dependency table.
// Spec is either a bare version string ("1.0") or a Table of inline
// attributes ({version = "1.0", features = ["derive"]}).
type Dependency struct {
	Name string
	Spec any
}

// Dep builds a Dependency with a bare version string spec.
func Dep(name, version string) Dependency {
	return Dependency{Name: name, Spec: version}
}

// Manifest holds the parsed TOML data of a Cargo manifest.
// Mutation goes through [Manifest.InsertIntoTable] and [Manifest.AddDeps];
// nothing else should modify Data.
type Manifest struct {
	Data Table
}

// Open locates Cargo.toml (see [Find]), reads it fully, and parses it.
// An empty path starts the search at the process working directory.
func Open(path string) (*Manifest, error) {
	return open(path, ConfigFile)
}

// OpenLockFile locates Cargo.lock and parses it, with the same contract
// as [Open].
func OpenLockFile(path string) (*Manifest, error) {
	return open(path, LockFile)
}

func open(path string, target File) (*Manifest, error) {
	f, err := openRW(path, target)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileOpen, err, "read %s", f.Name())
	}
	return Parse(string(data))
}

// Parse builds a Manifest from TOML text. The whole input is fed to the
// parser; the first parser-reported error is returned wrapped with
// ErrCodeParse. A syntactically valid document always parses, no matter
// how its tables nest.
func Parse(text string) (*Manifest, error) {
	var data Table
	if _, err := toml.Decode(text, &data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse manifest")
	}
	if data == nil {
		data = Table{}
	}
	return &Manifest{Data: data}, nil
}

// InsertIntoTable sets dep under the named top-level table, creating the
// table if it does not exist. An existing entry for the same name is
// replaced (last write wins). If the top-level key already holds a
// non-table value, InsertIntoTable fails with ErrCodeTypeConflict and the
// conflicting value is left untouched.
func (m *Manifest) InsertIntoTable(table string, dep Dependency) error {
	entry, ok := m.Data[table]
	if !ok {
		entry = Table{}
		m.Data[table] = entry
	}

	deps, ok := entry.(Table)
	if !ok {
		return errors.New(errors.ErrCodeTypeConflict,
			"the existing value at %q is not a table", table)
	}
	deps[dep.Name] = dep.Spec
	return nil
}

// AddDeps applies [Manifest.InsertIntoTable] once per dependency, in order.
// It fails fast: the first insertion error is returned immediately and
// earlier insertions stay applied to the in-memory model. There is no
// rollback.
func (m *Manifest) AddDeps(table string, deps []Dependency) error {
	for _, dep := range deps {
		if err := m.InsertIntoTable(table, dep); err != nil {
			return err
		}
	}
	return nil
}

// Render serializes the manifest to TOML text with the primary section
// first. The "package" (or, failing that, "project") table is emitted at
// the top regardless of its original position; every remaining top-level
// key follows in lexical order. A manifest with neither section is
// malformed for write purposes and fails with ErrCodeMissingPackage.
//
// Every top-level key besides the primary must hold a table (or an array
// of tables). TOML has no position for a bare key after a table header,
// so emitting one would merge it into the preceding section on re-parse;
// Render fails with ErrCodeTypeConflict rather than corrupt the document.
func (m *Manifest) Render() (string, error) {
	rest := make(Table, len(m.Data))
	maps.Copy(rest, m.Data)

	var header string
	for _, h := range primaryHeaders {
		if _, ok := rest[h]; ok {
			header = h
			break
		}
	}
	if header == "" {
		return "", errors.New(errors.ErrCodeMissingPackage,
			"manifest has no [package] or [project] section")
	}
	primary := rest[header]
	delete(rest, header)

	for key, value := range rest {
		if !isTableValue(value) {
			return "", errors.New(errors.ErrCodeTypeConflict,
				"top-level key %q is not a table and cannot be written after the [%s] section", key, header)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Table{header: primary}); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode [%s] section", header)
	}
	if len(rest) > 0 {
		buf.WriteByte('\n')
		if err := toml.NewEncoder(&buf).Encode(rest); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
		}
	}
	return buf.String(), nil
}

// isTableValue reports whether v serializes as a TOML table section:
// either a table or an array of tables ([[section]]).
func isTableValue(v any) bool {
	switch v.(type) {
	case Table, []map[string]any:
		return true
	}
	return false
}

// WriteToFile rewrites f in place with the rendered manifest: seek to the
// start, write the new content, then truncate to its exact length so a
// previously longer file leaves no stale trailing bytes.
func (m *Manifest) WriteToFile(f *os.File) error {
	content, err := m.Render()
	if err != nil {
		return err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "seek %s", f.Name())
	}
	if _, err := io.WriteString(f, content); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", f.Name())
	}
	if err := f.Truncate(int64(len(content))); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "truncate %s", f.Name())
	}
	return nil
}
