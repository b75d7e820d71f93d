package sanitize

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"dots become underscores", "Homo_sapiens.GRCh38.cdna.all", "Homo_sapiens_GRCh38_cdna_all"},
		{"hyphens preserved", "my-species-v2", "my-species-v2"},
		{"special chars replaced", "a b!c", "a_b_c"},
		{"consecutive separators collapsed", "a..b", "a_b"},
		{"leading and trailing stripped", ".abc.", "abc"},
		{"unicode replaced", "café", "caf"},
		{"empty string", "", ""},
		{"only dots", "...", ""},
		{"only specials", "!@#$%", ""},
		{"numbers preserved", "GRCh38", "GRCh38"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.in)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNameProperties(t *testing.T) {
	inputs := []string{
		"Homo_sapiens.GRCh38.cdna.all",
		"Mus_musculus.GRCm39.cdna.all",
		"__weird__ name__", "a", "", "...", "x.y-z", "!!a!!b!!",
		"tab\tand\nnewline", "mixed.UP-down_09",
	}

	for _, in := range inputs {
		got := Name(in)

		for _, r := range got {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || r == '_' || r == '-'
			if !ok {
				t.Errorf("Name(%q) = %q contains disallowed rune %q", in, got, r)
			}
		}

		if strings.Contains(got, "__") {
			t.Errorf("Name(%q) = %q contains consecutive underscores", in, got)
		}
		if strings.HasPrefix(got, "_") || strings.HasSuffix(got, "_") {
			t.Errorf("Name(%q) = %q starts or ends with underscore", in, got)
		}

		if again := Name(got); again != got {
			t.Errorf("Name not idempotent: Name(%q) = %q but Name(%q) = %q", in, got, got, again)
		}
	}
}
