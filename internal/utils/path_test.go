package utils

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetListFile(t *testing.T) {
	configDir := t.TempDir()
	listsDir := filepath.Join(configDir, "lists")
	if err := EnsureDir(listsDir); err != nil {
		t.Fatal(err)
	}
	inLists := filepath.Join(listsDir, "spanish.txt")
	if err := os.WriteFile(inLists, []byte("ábaco\n"), 0644); err != nil {
		t.Fatal(err)
	}

	direct := filepath.Join(t.TempDir(), "custom.txt")
	if err := os.WriteFile(direct, []byte("apple\n"), 0644); err != nil {
		t.Fatal(err)
	}

	pr := &PathResolver{executableDir: t.TempDir(), homeDir: t.TempDir(), configDir: configDir}

	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty means builtin", "", "", false},
		{"absolute path", direct, direct, false},
		{"config lists dir", "spanish.txt", inLists, false},
		{"missing", "nope.txt", "", true},
		{"directory is not a list", listsDir, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pr.GetListFile(tc.input)
			if tc.wantErr {
				if !errors.Is(err, os.ErrNotExist) {
					t.Errorf("expected ErrNotExist, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("GetListFile(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := map[string]map[string]any{"validator": {"word_count": 24}}

	if err := SaveTOMLFile(data, path); err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatal(err)
	}
	section, ok := ExtractSection(parsed, "validator")
	if !ok {
		t.Fatalf("validator section missing in %v", parsed)
	}
	if n, ok := ExtractInt64(section, "word_count"); !ok || n != 24 {
		t.Errorf("word_count = %d, %v", n, ok)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestPlatformConfigDirFollowsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME applies on linux only")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if got, want := PlatformConfigDir("/home/nobody"), filepath.Join(xdg, "seedcheck"); got != want {
		t.Errorf("PlatformConfigDir = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	if got, want := PlatformConfigDir("/home/nobody"), filepath.Join("/home/nobody", ".config", "seedcheck"); got != want {
		t.Errorf("PlatformConfigDir without XDG = %q, want %q", got, want)
	}
}

func TestCheckDirStatusReportsError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	result := CheckDirStatus(filepath.Join(file, "sub"))
	if result.Exists || result.Writable || result.Error == nil {
		t.Errorf("dir under a regular file = %+v, want an error", result)
	}
}
