package configs

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/zz/internal/errors"
)

func TestLoadRegistryNonExistent(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}

	if reg == nil {
		t.Fatal("Expected registry to not be nil")
	}
	if len(reg.Buckets) != 0 || reg.Default != "" {
		t.Errorf("Expected empty registry, got %+v", reg)
	}
}

func TestSaveAndLoadRegistry(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "zz", "config.toml")

	reg := &Registry{
		Default: "work",
		Buckets: []Bucket{
			{Name: "tmp", Path: "/tmp/zz"},
			{Name: "work", Path: "/home/me/work"},
		},
	}

	if err := SaveRegistry(configPath, reg); err != nil {
		t.Fatalf("SaveRegistry failed: %v", err)
	}

	loaded, err := LoadRegistry(configPath)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}

	if loaded.Default != "work" {
		t.Errorf("Expected default 'work', got %q", loaded.Default)
	}
	if len(loaded.Buckets) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(loaded.Buckets))
	}
	// Registration order must survive the round trip.
	if loaded.Buckets[0].Name != "tmp" || loaded.Buckets[1].Name != "work" {
		t.Errorf("Bucket order not preserved: %+v", loaded.Buckets)
	}
	if loaded.Buckets[1].Path != "/home/me/work" {
		t.Errorf("Expected path /home/me/work, got %q", loaded.Buckets[1].Path)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Failed to stat config: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected config mode 0600, got %v", info.Mode().Perm())
	}
}

func TestSaveLoadRoundTripIsNoOp(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	for _, reg := range []*Registry{
		{},
		{Buckets: []Bucket{{Name: "tmp", Path: "/tmp/zz"}}},
		{Default: "b", Buckets: []Bucket{{Name: "a", Path: "/a"}, {Name: "b", Path: "/b b/with space"}}},
	} {
		if err := SaveRegistry(configPath, reg); err != nil {
			t.Fatalf("SaveRegistry failed: %v", err)
		}
		before, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("Failed to read config: %v", err)
		}

		loaded, err := LoadRegistry(configPath)
		if err != nil {
			t.Fatalf("LoadRegistry failed: %v", err)
		}
		if err := SaveRegistry(configPath, loaded); err != nil {
			t.Fatalf("SaveRegistry failed: %v", err)
		}

		after, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("Failed to read config: %v", err)
		}
		if !bytes.Equal(before, after) {
			t.Errorf("save(load()) changed the file:\nbefore:\n%s\nafter:\n%s", before, after)
		}
	}
}

func TestLoadRegistryCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"MalformedTOML", "[[buckets]\nname = \"broken\"\n"},
		{"WrongType", "buckets = 3\n"},
		{"DuplicateNames", "[[buckets]]\nname = \"a\"\npath = \"/a\"\n[[buckets]]\nname = \"a\"\npath = \"/b\"\n"},
		{"RelativePath", "[[buckets]]\nname = \"a\"\npath = \"rel/dir\"\n"},
		{"EmptyPath", "[[buckets]]\nname = \"a\"\n"},
		{"InvalidName", "[[buckets]]\nname = \"has space\"\npath = \"/a\"\n"},
		{"DanglingDefault", "default = \"gone\"\n[[buckets]]\nname = \"a\"\npath = \"/a\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			_, err := LoadRegistry(configPath)
			if !errors.Is(err, kerrors.ErrCorruptConfig) {
				t.Fatalf("Expected ErrCorruptConfig, got %v", err)
			}
		})
	}
}

func TestLoadRegistryUnreadable(t *testing.T) {
	// A directory where the file should be can't be read.
	configPath := t.TempDir()

	_, err := LoadRegistry(configPath)
	if !errors.Is(err, kerrors.ErrIO) {
		t.Fatalf("Expected ErrIO, got %v", err)
	}
}

func TestSaveRegistryUnwritable(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to write blocker file: %v", err)
	}

	err := SaveRegistry(filepath.Join(blocker, "config.toml"), &Registry{})
	if !errors.Is(err, kerrors.ErrIO) {
		t.Fatalf("Expected ErrIO, got %v", err)
	}
}

func TestRegistryLookups(t *testing.T) {
	reg := &Registry{
		Default: "b",
		Buckets: []Bucket{{Name: "a", Path: "/a"}, {Name: "b", Path: "/b"}},
	}

	if i := reg.Index("b"); i != 1 {
		t.Errorf("Index(b) = %d, want 1", i)
	}
	if i := reg.Index("missing"); i != -1 {
		t.Errorf("Index(missing) = %d, want -1", i)
	}
	if b, ok := reg.Find("a"); !ok || b.Path != "/a" {
		t.Errorf("Find(a) = %+v, %t", b, ok)
	}
	if b, ok := reg.DefaultBucket(); !ok || b.Name != "b" {
		t.Errorf("DefaultBucket() = %+v, %t", b, ok)
	}

	reg.Default = ""
	if _, ok := reg.DefaultBucket(); ok {
		t.Error("DefaultBucket() should report false when unset")
	}
}
