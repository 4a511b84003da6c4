package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte(`
[FMT]
editor = my-editor 1.0 ; stamped when absent
strip_comments = yes

[log]
verbose = true
`))
	if err != nil {
		t.Fatalf("parseConfig failed: %v", err)
	}
	if cfg.Editor != "my-editor 1.0" {
		t.Errorf("editor = %q", cfg.Editor)
	}
	if !cfg.StripComments || !cfg.Verbose {
		t.Errorf("flags = %+v", cfg)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig([]byte("[fmt]\nstrip_comments = maybe\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor != "" || cfg.StripComments || cfg.Verbose {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	cfg, err := loadConfig(path, false)
	if err != nil || cfg == nil {
		t.Fatalf("missing default config: %v", err)
	}
	if _, err := loadConfig(path, true); err == nil {
		t.Error("missing --config file should fail")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte("[log]\nverbose = on\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Verbose {
		t.Error("verbose not read")
	}
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"--strip-comments", "--editor=ed", "-w", "--frame=2", "--max-line=0", "cat.3a"})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.stripComments || opts.editor != "ed" || !opts.write || opts.frame != 2 || opts.maxLine != 0 || opts.file != "cat.3a" {
		t.Errorf("options = %+v", opts)
	}

	for _, args := range [][]string{
		{"--frame=x"},
		{"--frame=-1"},
		{"--bogus"},
		{"-w"},
	} {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%q) should fail", args)
		}
	}
}
