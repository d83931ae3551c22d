package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("structure", "", "")
	flags.String("catalog", "", "")
	flags.String("catalog-format", "", "")
	flags.String("output", "", "")
	flags.String("log-level", "", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", newFlags())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Structure:     DefaultStructure,
		Catalog:       DefaultCatalog,
		CatalogFormat: DefaultCatalogFormat,
		Output:        DefaultOutput,
		LogLevel:      DefaultLogLevel,
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "structure: from-file.json\ncatalog: from-file.yaml\noutput: pretty\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("QUERYDIALOG_CATALOG", "from-env.yaml")
	t.Setenv("QUERYDIALOG_CATALOG_FORMAT", "openapi")

	flags := newFlags()
	if err := flags.Parse([]string{"--structure", "from-flag.json", "--log-level", "debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Structure:     "from-flag.json",
		Catalog:       "from-env.yaml",
		CatalogFormat: "openapi",
		Output:        "pretty",
		LogLevel:      "debug",
		FileUsed:      path,
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(DefaultConfigFile, []byte("output: pretty\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output != "pretty" || cfg.FileUsed != DefaultConfigFile {
		t.Fatalf("expected default file to be read, got %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	cases := map[string][]string{
		"format": {"--catalog-format", "xml"},
		"output": {"--output", "html"},
		"level":  {"--log-level", "loud"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			flags := newFlags()
			if err := flags.Parse(args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}
			if _, err := Load("", flags); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("expected debug, got %v (%v)", level, err)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatalf("expected error")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
