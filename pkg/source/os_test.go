package source

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOSSource_IsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.htm")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src := OSSource{}
	ctx := context.Background()

	if !src.IsFile(ctx, path) {
		t.Error("IsFile(existing file) = false, want true")
	}
	if src.IsFile(ctx, dir) {
		t.Error("IsFile(directory) = true, want false")
	}
	if src.IsFile(ctx, filepath.Join(dir, "missing")) {
		t.Error("IsFile(missing) = true, want false")
	}
}

func TestOSSource_IsDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.htm")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src := OSSource{}
	ctx := context.Background()

	if !src.IsDir(ctx, dir) {
		t.Error("IsDir(directory) = false, want true")
	}
	if src.IsDir(ctx, path) {
		t.Error("IsDir(file) = true, want false")
	}
}

func TestOSSource_ReadFileAndModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.htm")
	if err := os.WriteFile(path, []byte("contents"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src := OSSource{}
	ctx := context.Background()

	data, err := src.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "contents" {
		t.Fatalf("ReadFile = %q, want %q", data, "contents")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	mtime, err := src.ModTime(ctx, path)
	if err != nil {
		t.Fatalf("ModTime: %v", err)
	}
	if !mtime.Equal(info.ModTime()) {
		t.Fatalf("ModTime = %v, want %v", mtime, info.ModTime())
	}
}

func TestOSSource_Canonical(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.htm")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src := OSSource{}

	// A path that cannot be canonicalized comes back unchanged.
	missing := filepath.Join(dir, "missing.htm")
	if got := src.Canonical(missing); got != missing {
		t.Fatalf("Canonical(missing) = %q, want %q", got, missing)
	}

	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on Windows")
	}
	link := filepath.Join(dir, "link.htm")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink: %v", err)
	}
	want := src.Canonical(target)
	if got := src.Canonical(link); got != want {
		t.Fatalf("Canonical(symlink) = %q, want %q", got, want)
	}
}

func TestSplitObjectURI(t *testing.T) {
	cases := []struct {
		in     string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://assets/templates/x.htm", "assets", "templates/x.htm", true},
		{"s3://assets", "assets", "", true},
		{"/local/path", "", "", false},
		{"https://example.com/x", "", "", false},
	}
	for _, tc := range cases {
		bucket, key, ok := splitObjectURI(tc.in)
		if bucket != tc.bucket || key != tc.key || ok != tc.ok {
			t.Errorf("splitObjectURI(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.in, bucket, key, ok, tc.bucket, tc.key, tc.ok)
		}
	}
}
