package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "srtkit.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", path, err)
		}
		if diff := cmp.Diff(Default(), *cfg); diff != "" {
			t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[output]
suffix = "fixed"
overwrite = true

[log]
verbose = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Config{
		Output: Output{Suffix: "fixed", Overwrite: true},
		Log:    Log{Verbose: true},
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKeepsUnsetDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[log]\nverbose = true\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Suffix != "edited" {
		t.Errorf("Output.Suffix = %q, want default", cfg.Output.Suffix)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "[output]\nsufix = \"x\"\n",
		"syntax":         "[output\n",
		"path in suffix": "[output]\nsuffix = \"a/b\"\n",
		"empty suffix":   "[output]\nsuffix = \"\"\noverwrite = true\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
