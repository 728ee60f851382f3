package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoadd/pkg/errors"
	"github.com/matzehuels/cargoadd/pkg/httputil"
	"github.com/matzehuels/cargoadd/pkg/manifest"
	"github.com/matzehuels/cargoadd/pkg/registry"
	"github.com/matzehuels/cargoadd/pkg/registry/crates"
)

// registryCacheTTL is how long crates.io responses stay cached. A day is
// plenty for "latest version" lookups without going stale.
const registryCacheTTL = 24 * time.Hour

// addOpts holds the command-line flags for the add command.
type addOpts struct {
	manifestPath string // explicit Cargo.toml path or search start, empty = cwd
	version      string // version applied to all named crates, skips the registry
	dev          bool   // target [dev-dependencies]
	build        bool   // target [build-dependencies]
	refresh      bool   // bypass the registry response cache
	dryRun       bool   // print the result instead of saving
}

// table returns the dependency table the flags select.
func (o *addOpts) table() string {
	switch {
	case o.dev:
		return "dev-dependencies"
	case o.build:
		return "build-dependencies"
	}
	return "dependencies"
}

// versionFetcher resolves the latest published version of a crate.
// Swapped out in tests.
type versionFetcher func(ctx context.Context, name string, refresh bool) (string, error)

// newAddCmd creates the add command.
//
// Crates are given as positional arguments, optionally with a pinned
// version ("serde@1.0"). A crate without a version gets its latest version
// from crates.io; --ver pins all of them at once and skips the network
// entirely.
func newAddCmd() *cobra.Command {
	opts := &addOpts{}

	cmd := &cobra.Command{
		Use:   "add <crate>[@<version>]...",
		Short: "Add dependencies to the nearest Cargo.toml",
		Long: `Add dependencies to the nearest Cargo.toml.

Examples:
  cargo-add add serde                   # latest version from crates.io
  cargo-add add serde@1.0 log@0.4       # pinned versions, no network
  cargo-add add quickcheck --dev        # into [dev-dependencies]
  cargo-add add cc --build --ver 1.0    # into [build-dependencies]`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errors.New(errors.ErrCodeInvalidInput, "invalid argument: expected at least one crate name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dev && opts.build {
				_ = cmd.Usage()
				return errors.New(errors.ErrCodeInvalidInput, "invalid argument: --dev and --build are mutually exclusive")
			}
			fetch, err := newCratesFetcher()
			if err != nil {
				return err
			}
			return runAdd(cmd.Context(), cmd.OutOrStdout(), opts, args, fetch)
		},
	}

	cmd.Flags().StringVar(&opts.manifestPath, "manifest-path", "", "path to Cargo.toml, or a directory to search upward from")
	cmd.Flags().StringVar(&opts.version, "ver", "", "version to use for all named crates (skips the registry lookup)")
	cmd.Flags().BoolVarP(&opts.dev, "dev", "D", false, "add to [dev-dependencies]")
	cmd.Flags().BoolVarP(&opts.build, "build", "B", false, "add to [build-dependencies]")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the registry response cache")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the resulting manifest instead of saving it")

	return cmd
}

// newCratesFetcher builds a versionFetcher backed by crates.io with the
// default file cache. A spinner runs on stderr during each lookup.
func newCratesFetcher() (versionFetcher, error) {
	cache, err := httputil.NewCache("", registryCacheTTL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create registry cache")
	}
	client := crates.NewClient(cache)

	return func(ctx context.Context, name string, refresh bool) (string, error) {
		sp := newSpinner(ctx, fmt.Sprintf("resolving %s", name))
		sp.start()
		info, err := client.FetchCrate(ctx, name, refresh)
		sp.stop()
		if err != nil {
			if stderrors.Is(err, registry.ErrNotFound) {
				return "", errors.Wrap(errors.ErrCodePackageNotFound, err, "crate %q not found on crates.io", name)
			}
			return "", errors.Wrap(errors.ErrCodeNetwork, err, "resolve %s", name)
		}
		logger := loggerFromContext(ctx)
		logger.Debugf("%s %s: %s (license %s, %d downloads)",
			info.Name, info.Version, info.Description, info.License, info.Downloads)
		if info.Repository != "" {
			logger.Debugf("%s repository: %s", info.Name, info.Repository)
		}
		return info.Version, nil
	}, nil
}

// runAdd resolves versions, opens the manifest, applies the insertions, and
// saves (or prints, with --dry-run) the result.
func runAdd(ctx context.Context, out io.Writer, opts *addOpts, args []string, fetch versionFetcher) error {
	logger := loggerFromContext(ctx)

	deps := make([]manifest.Dependency, 0, len(args))
	for _, arg := range args {
		name, version := splitCrateArg(arg)
		if name == "" {
			return errors.New(errors.ErrCodeInvalidInput, "invalid argument: empty crate name in %q", arg)
		}
		if version == "" {
			version = opts.version
		}
		if version == "" {
			v, err := fetch(ctx, name, opts.refresh)
			if err != nil {
				return err
			}
			logger.Debugf("resolved %s to %s", name, v)
			version = v
		}
		deps = append(deps, manifest.Dep(name, version))
	}

	m, err := manifest.Open(opts.manifestPath)
	if err != nil {
		return err
	}

	table := opts.table()
	if err := m.AddDeps(table, deps); err != nil {
		return err
	}

	if opts.dryRun {
		rendered, err := m.Render()
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	}

	f, err := manifest.FindFile(opts.manifestPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := m.WriteToFile(f); err != nil {
		return err
	}

	for _, d := range deps {
		logger.Debugf("added %s = %v to [%s] in %s", d.Name, d.Spec, table, f.Name())
	}
	noun := "dependencies"
	if len(deps) == 1 {
		noun = "dependency"
	}
	fmt.Fprintln(os.Stderr, styleSuccess.Render(fmt.Sprintf("Added %d %s to [%s]", len(deps), noun, table)))
	return nil
}

// splitCrateArg splits "name@version" into its parts; the version is empty
// when no "@" is present.
func splitCrateArg(arg string) (name, version string) {
	if i := strings.Index(arg, "@"); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return arg, ""
}
