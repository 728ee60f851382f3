package httputil

import (
	"errors"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"simple", "crates:serde", map[string]string{"version": "1.0"}},
		{"string", "key2", "test"},
		{"nested", "key3", map[string]any{"a": map[string]int{"b": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}

			var result any
			switch tt.value.(type) {
			case map[string]string:
				result = &map[string]string{}
			case string:
				result = new(string)
			case map[string]any:
				result = &map[string]any{}
			}

			ok, err := c.Get(tt.key, result)
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !ok {
				t.Fatal("Get() returned false for existing key")
			}
		})
	}
}

func TestCache_Miss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	var result string
	ok, err := c.Get("missing", &result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 10*time.Millisecond)

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	var res string
	ok, err := c.Get("key", &res)
	if ok {
		t.Error("Get() returned true for expired entry")
	}
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Get() error = %v, want ErrExpired", err)
	}
}

func TestCache_NoExpiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 0)

	if err := c.Set("key", "value"); err != nil {
		t.Fatal(err)
	}
	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Errorf("Get() = (%v, %v), want hit with TTL 0", ok, err)
	}
}

func TestCache_Namespace(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	crates := c.Namespace("crates:")

	if err := crates.Set("serde", "1.0"); err != nil {
		t.Fatal(err)
	}

	var res string
	if ok, _ := crates.Get("serde", &res); !ok || res != "1.0" {
		t.Errorf("namespaced Get() = (%q, %v)", res, ok)
	}
	// The un-prefixed key must not collide.
	if ok, _ := c.Get("serde", &res); ok {
		t.Error("un-namespaced Get() sees namespaced entry")
	}
}

func TestCache_DefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := NewCache("", time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}
	if c.Dir() == "" {
		t.Error("Dir() is empty")
	}
}
