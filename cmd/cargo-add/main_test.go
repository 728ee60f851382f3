package main

import (
	"fmt"
	"testing"

	"github.com/matzehuels/cargoadd/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid input",
			err:  errors.New(errors.ErrCodeInvalidInput, "invalid argument: empty crate name"),
			want: 2,
		},
		{
			name: "manifest not found",
			err:  errors.New(errors.ErrCodeManifestNotFound, "no Cargo.toml found"),
			want: 3,
		},
		{
			name: "type conflict",
			err:  errors.New(errors.ErrCodeTypeConflict, "the existing value at %q is not a table", "dependencies"),
			want: 3,
		},
		{
			name: "missing package section",
			err:  errors.New(errors.ErrCodeMissingPackage, "no [package] or [project] section"),
			want: 3,
		},
		{
			name: "wrapped structural error",
			err:  fmt.Errorf("save: %w", errors.New(errors.ErrCodeManifestNotFound, "no Cargo.toml found")),
			want: 3,
		},
		{
			name: "network failure",
			err:  errors.New(errors.ErrCodeNetwork, "resolve serde"),
			want: 1,
		},
		{
			name: "untagged error",
			err:  fmt.Errorf("boom"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
