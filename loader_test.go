package templaro

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	l := newTestLoader(t, Config{})

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if got, want := l.RootDir(), canonical(wd); got != want {
		t.Errorf("RootDir = %q, want %q", got, want)
	}
	if got := l.DefaultExtension(); got != "htm" {
		t.Errorf("DefaultExtension = %q, want %q", got, "htm")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "mail/welcome.htm", "Hello {{name}}")

	l := newTestLoader(t, DefaultConfig())
	if err := l.SetPaths("mail", dir); err != nil {
		t.Fatalf("SetPaths: %v", err)
	}

	tpl, err := l.Load(context.Background(), "@mail/mail/welcome.htm")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if tpl.Name != "@mail/mail/welcome.htm" {
		t.Errorf("Name = %q, want the raw requested name", tpl.Name)
	}
	if want := canonical(path); tpl.Path != want {
		t.Errorf("Path = %q, want %q", tpl.Path, want)
	}
	if got := string(tpl.Code); got != "Hello {{name}}" {
		t.Errorf("Code = %q, want %q", got, "Hello {{name}}")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !tpl.ModTime.Equal(info.ModTime()) {
		t.Errorf("ModTime = %v, want %v", tpl.ModTime, info.ModTime())
	}
}

func TestLoad_PropagatesResolutionFailure(t *testing.T) {
	l := newTestLoader(t, DefaultConfig())

	if _, err := l.Load(context.Background(), "@unknown/x.htm"); err == nil {
		t.Fatal("Load succeeded for an unresolvable name")
	}
}

func TestIsFresh(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "x.htm", "x")

	mtime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	l := newTestLoader(t, DefaultConfig())
	if err := l.SetPaths("docs", dir); err != nil {
		t.Fatalf("SetPaths: %v", err)
	}

	ctx := context.Background()

	fresh, err := l.IsFresh(ctx, "@docs/x.htm", mtime)
	if err != nil {
		t.Fatalf("IsFresh: %v", err)
	}
	if !fresh {
		t.Error("IsFresh at the exact modification time = false, want true")
	}

	fresh, err = l.IsFresh(ctx, "@docs/x.htm", mtime.Add(-time.Second))
	if err != nil {
		t.Fatalf("IsFresh: %v", err)
	}
	if fresh {
		t.Error("IsFresh before the modification time = true, want false")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "x.htm", "x")

	l := newTestLoader(t, DefaultConfig())
	if err := l.SetPaths("docs", dir); err != nil {
		t.Fatalf("SetPaths: %v", err)
	}

	// Exists mirrors strict-mode Resolve exactly.
	cases := []struct {
		name string
		want bool
	}{
		{"@docs/x.htm", true},
		{"@docs/missing.htm", false},
		{"@nofnoslash", false},
		{"../../etc/passwd", false},
		{"@unknown/x.htm", false},
	}
	for _, tc := range cases {
		if got := l.Exists(tc.name); got != tc.want {
			t.Errorf("Exists(%q) = %v, want %v", tc.name, got, tc.want)
		}
		_, err := l.Resolve(tc.name)
		if (err == nil) != tc.want {
			t.Errorf("Exists(%q) disagrees with Resolve (err = %v)", tc.name, err)
		}
	}
}
