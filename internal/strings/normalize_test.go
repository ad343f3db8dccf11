package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
		{
			name:  "collapses spaces",
			input: "buy   more    milk",
			want:  "buy more milk",
		},
		{
			name:  "collapses newlines",
			input: "one\n\n two\tthree",
			want:  "one two three",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeWhitespace(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Fatalf("expected LF-only text, got %q", got)
	}
	if got := TrimTrailingNewlines("done\r\n\n"); got != "done" {
		t.Fatalf("expected trailing newlines trimmed, got %q", got)
	}
}

func TestTrimTrailingSlash(t *testing.T) {
	if got := TrimTrailingSlash("http://127.0.0.1:8089//"); got != "http://127.0.0.1:8089" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(" \t\n") {
		t.Fatalf("expected whitespace to be blank")
	}
	if IsBlank(" x ") {
		t.Fatalf("expected text not to be blank")
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", " 8089 ", "9000"); got != "8089" {
		t.Fatalf("expected first non-blank value trimmed, got %q", got)
	}
	if got := FirstNonBlank(" ", ""); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
