package utils

import (
	"errors"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Branding", "branding"},
		{"Digital Marketing", "digital-marketing"},
		{"Consultoría Estratégica", "consultoria-estrategica"},
		{"Señalética", "senaletica"},
		{"  --Web  Design--  ", "web-design"},
	}
	for _, c := range cases {
		if got := GenerateSlug(c.in); got != c.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a.txt", "txt"},
		{"archive.tar.gz", "gz"},
		{"report.PDF", "PDF"},
		{"noextension", "txt"},
		{"trailing.", ""},
		{".hidden", "hidden"},
	}
	for _, c := range cases {
		if got := FileExtension(c.in); got != c.want {
			t.Errorf("FileExtension(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestErrorTaxonomyUnwrap(t *testing.T) {
	cause := errors.New("boom")

	var fwe error = &FileWriteError{Path: "uploads/x.txt", Err: cause}
	if !errors.Is(fwe, cause) {
		t.Error("FileWriteError should unwrap to its cause")
	}

	var pe error = &PersistenceError{Op: "insert", Err: cause}
	if !errors.Is(pe, cause) {
		t.Error("PersistenceError should unwrap to its cause")
	}

	ve := &ValidationError{Reason: "email is malformed"}
	if ve.Error() != "email is malformed" {
		t.Errorf("unexpected message %q", ve.Error())
	}
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("AGORA_TEST_KEY", "set")
	if got := EnvDefault("AGORA_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("expected env value, got %q", got)
	}
	if got := EnvDefault("AGORA_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
