package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvedDir_FollowsSymlink(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	scripts := filepath.Join(root, "scripts")
	bin := filepath.Join(root, "bin")
	for _, dir := range []string{scripts, bin} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	target := filepath.Join(scripts, "generate-favicon")
	if err := os.WriteFile(target, nil, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(bin, "generate-favicon")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := resolvedDir(link)
	if err != nil {
		t.Fatal(err)
	}
	if got != scripts {
		t.Errorf("resolvedDir(%q) = %q; want %q", link, got, scripts)
	}
}

func TestResolvedDir_PlainFile(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exe := filepath.Join(root, "generate-favicon")
	if err := os.WriteFile(exe, nil, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := resolvedDir(exe)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("resolvedDir(%q) = %q; want %q", exe, got, root)
	}
}

func TestResolvedDir_Missing(t *testing.T) {
	if _, err := resolvedDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("resolvedDir(missing) succeeded; want error")
	}
}

func TestExecutableDir(t *testing.T) {
	dir, err := executableDir()
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("executableDir() = %q; want absolute path", dir)
	}
}
