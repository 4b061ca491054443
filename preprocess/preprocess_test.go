package preprocess_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/blenbot/RustyChunker-for-gpt4/preprocess"
)

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"A.\n\n\n\nB.\n \n \n\nC.",
		"lots\t\t\tof\t\thorizontal   whitespace",
		"\x00\x01control\x1fchars\x7f",
		"  leading and trailing  \n\n",
	}
	for _, in := range inputs {
		once := preprocess.Clean(in)
		twice := preprocess.Clean(once)
		if once != twice {
			t.Fatalf("Clean not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNoTripleNewlineOrControlChars(t *testing.T) {
	inputs := []string{
		"A.\n\n\n\nB.\n \n \n\nC.",
		"x\n\n\n\n\n\n\ny",
		"\x00\x0b\x0c\x1eend",
	}
	for _, in := range inputs {
		out := preprocess.Clean(in)
		if strings.Contains(out, "\n\n\n") {
			t.Fatalf("Clean(%q) = %q still contains a triple newline", in, out)
		}
		for _, r := range out {
			if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
				t.Fatalf("Clean(%q) = %q retains control character %U", in, out, r)
			}
			if r == 0x7f {
				t.Fatalf("Clean(%q) = %q retains DEL", in, out)
			}
		}
	}
}

func TestNoHorizontalWhitespaceRuns(t *testing.T) {
	out := preprocess.Clean("a    b\t\t\tc \t \t d")
	if strings.Contains(out, "  ") || strings.Contains(out, "\t\t") {
		t.Fatalf("Clean output still has a horizontal whitespace run: %q", out)
	}
}

func TestScenarioS3(t *testing.T) {
	in := "A.\n\n\n\nB.\n \n \n\nC."
	want := "A.\n\nB.\n\nC."
	if got := preprocess.Clean(in); got != want {
		t.Fatalf("Clean(%q) = %q, want %q", in, got, want)
	}
}

func TestValidUTF8Preserved(t *testing.T) {
	in := "héllo wörld 日本語"
	out := preprocess.Clean(in)
	if !utf8.ValidString(out) {
		t.Fatalf("Clean produced invalid UTF-8 from valid input: %q", out)
	}
	if out != in {
		t.Fatalf("Clean(%q) = %q, want unchanged (no multi-byte/whitespace issues)", in, out)
	}
}
