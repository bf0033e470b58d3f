package sanitizer_test

import (
	"testing"

	"github.com/dmitrymomot/validbind/core/sanitizer"
)

func TestApply(t *testing.T) {
	type Profile struct {
		Bio string `sanitize:"trim;collapse"`
	}
	type SignupRequest struct {
		Email   string `sanitize:"trim;email"`
		Name    string `sanitize:"trim"`
		Website string `sanitize:"url"`
		Raw     string
		Profile Profile
		Aliases []string `sanitize:"trim_lower"`
	}

	req := SignupRequest{
		Email:   "  USER@Example.COM ",
		Name:    "  Ada Lovelace  ",
		Website: "https://example.com/docs/",
		Raw:     "  untouched  ",
		Profile: Profile{Bio: "  too   many    spaces  "},
		Aliases: []string{" ADA ", " COUNTESS "},
	}

	if err := sanitizer.Apply(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name, got, want string
	}{
		{"email normalized", req.Email, "user@example.com"},
		{"name trimmed", req.Name, "Ada Lovelace"},
		{"url trailing slash stripped", req.Website, "https://example.com/docs"},
		{"untagged field untouched", req.Raw, "  untouched  "},
		{"nested struct walked", req.Profile.Bio, "too many spaces"},
		{"slice elements transformed", req.Aliases[0], "ada"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestApply_TransformOrder(t *testing.T) {
	sanitizer.RegisterSanitizer("exclaim", func(s string) string { return s + "!" })

	type T struct {
		A string `sanitize:"trim;exclaim"`
		B string `sanitize:"exclaim;trim"`
	}

	v := T{A: " hi ", B: " hi "}
	if err := sanitizer.Apply(&v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.A != "hi!" {
		t.Errorf("trim before exclaim: got %q", v.A)
	}
	if v.B != "hi !" {
		t.Errorf("exclaim before trim: got %q", v.B)
	}
}

func TestApply_InvalidInput(t *testing.T) {
	if err := sanitizer.Apply(42); err == nil {
		t.Error("expected error for non-pointer input")
	}
	var s struct{}
	if err := sanitizer.Apply(s); err == nil {
		t.Error("expected error for non-pointer struct")
	}
}

func TestStringTransforms(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"Trim", sanitizer.Trim, "  x  ", "x"},
		{"Lower", sanitizer.Lower, "ABC", "abc"},
		{"Upper", sanitizer.Upper, "abc", "ABC"},
		{"CollapseWhitespace", sanitizer.CollapseWhitespace, " a \t b\n c ", "a b c"},
		{"SingleLine", sanitizer.SingleLine, "a\r\nb", "a b"},
		{"EscapeHTML", sanitizer.EscapeHTML, `<b>"x"</b>`, "&lt;b&gt;&#34;x&#34;&lt;/b&gt;"},
		{"StripControl", sanitizer.StripControl, "a\x00b\tc", "ab\tc"},
		{"NormalizeEmail", sanitizer.NormalizeEmail, " A@B.Co ", "a@b.co"},
		{"NormalizeURL keeps scheme slashes", sanitizer.NormalizeURL, "https://x.io/", "https://x.io"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
