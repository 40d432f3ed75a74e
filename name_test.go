package templaro

import (
	"errors"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pages/index.htm", "pages/index.htm"},
		{"pages\\index.htm", "pages/index.htm"},
		{"pages//index.htm", "pages/index.htm"},
		{"a///b////c", "a/b/c"},
		{"mixed\\\\and//slashes", "mixed/and/slashes"},
		{"@admin/form.htm", "@admin/form.htm"},
	}
	for _, tc := range cases {
		if got := normalizeName(tc.in); got != tc.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateName_Accepts(t *testing.T) {
	for _, name := range []string{
		"index.htm",
		"pages/index.htm",
		"a/../b",   // depth never goes negative
		"./a/b",    // "." is a no-op
		"a/b/../c", // steps back inside the tree
		"/abs/path.htm",
	} {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateName_RejectsTraversal(t *testing.T) {
	for _, name := range []string{
		"..",
		"../../etc/passwd",
		"a/../../b",
		"./../a",
		"a/b/../../../c",
	} {
		err := validateName(name)
		if !errors.Is(err, ErrPathEscape) {
			t.Errorf("validateName(%q) = %v, want ErrPathEscape", name, err)
		}
	}
}

func TestValidateName_RejectsNulByte(t *testing.T) {
	err := validateName("bad\x00name.htm")
	if !errors.Is(err, ErrNulByte) {
		t.Fatalf("validateName = %v, want ErrNulByte", err)
	}
}

func TestParseName(t *testing.T) {
	cases := []struct {
		in        string
		namespace string
		shortname string
	}{
		{"index.htm", DefaultNamespace, "index.htm"},
		{"pages/index.htm", DefaultNamespace, "pages/index.htm"},
		{"@admin/form.htm", "admin", "form.htm"},
		{"@admin/sub/form.htm", "admin", "sub/form.htm"},
	}
	for _, tc := range cases {
		ns, short, err := parseName(tc.in)
		if err != nil {
			t.Errorf("parseName(%q) error: %v", tc.in, err)
			continue
		}
		if ns != tc.namespace || short != tc.shortname {
			t.Errorf("parseName(%q) = (%q, %q), want (%q, %q)", tc.in, ns, short, tc.namespace, tc.shortname)
		}
	}
}

func TestParseName_MalformedNamespace(t *testing.T) {
	_, _, err := parseName("@nofnoslash")
	if !errors.Is(err, ErrMalformedNamespace) {
		t.Fatalf("parseName(@nofnoslash) = %v, want ErrMalformedNamespace", err)
	}
}

func TestIsAbsolutePath(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"/usr/share/templates", true},
		{"\\\\server\\share", true},
		{"C:/templates", true},
		{"c:\\templates", true},
		{"s3://bucket/templates", true},
		{"https://example.com/t", true},
		{"relative/templates", false},
		{"templates", false},
		{"c:", false}, // no separator after the drive letter
	}
	for _, tc := range cases {
		if got := isAbsolutePath(tc.in); got != tc.want {
			t.Errorf("isAbsolutePath(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestJoinPath(t *testing.T) {
	cases := []struct {
		dir, rest, want string
	}{
		{"/views", "index.htm", "/views/index.htm"},
		{"/views/", "index.htm", "/views/index.htm"},
		{"s3://bucket/templates", "mail/welcome.htm", "s3://bucket/templates/mail/welcome.htm"},
	}
	for _, tc := range cases {
		if got := joinPath(tc.dir, tc.rest); got != tc.want {
			t.Errorf("joinPath(%q, %q) = %q, want %q", tc.dir, tc.rest, got, tc.want)
		}
	}
}
