package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeManifestNotFound, "no Cargo.toml found"),
			want: "MANIFEST_NOT_FOUND: no Cargo.toml found",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeFileOpen, fs.ErrPermission, "open Cargo.toml"),
			want: "FILE_OPEN: open Cargo.toml: permission denied",
		},
		{
			name: "formatted message",
			err:  New(ErrCodeTypeConflict, "the table %q is not a table", "dependencies"),
			want: `TYPE_CONFLICT: the table "dependencies" is not a table`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeTypeConflict, "not a table")

	if !Is(err, ErrCodeTypeConflict) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeManifestNotFound) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeTypeConflict) {
		t.Error("Is() = true for non-Error type")
	}

	// Wrapped with %w, the code should still be found.
	wrapped := fmt.Errorf("add deps: %w", err)
	if !Is(wrapped, ErrCodeTypeConflict) {
		t.Error("Is() = false for wrapped Error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(ErrCodeFileOpen, cause, "open manifest")

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is() cannot see the wrapped cause")
	}
}

func TestIsStructural(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", New(ErrCodeManifestNotFound, "x"), true},
		{"type conflict", New(ErrCodeTypeConflict, "x"), true},
		{"missing package", New(ErrCodeMissingPackage, "x"), true},
		{"parse error", New(ErrCodeParse, "x"), false},
		{"io error", New(ErrCodeFileOpen, "x"), false},
		{"plain error", stderrors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStructural(tt.err); got != tt.want {
				t.Errorf("IsStructural() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeMissingPackage, "no [package] section")); got != "no [package] section" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(Wrap(ErrCodeFileOpen, fs.ErrPermission, "open Cargo.toml")); got != "open Cargo.toml: permission denied" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeParse, "x")); got != ErrCodeParse {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeParse)
	}
	if got := GetCode(stderrors.New("x")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}
