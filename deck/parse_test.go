package deck_test

import (
	"testing"

	"github.com/stacklab/bracelet/deck"
)

// stackStrings renders a Stack as its token slice for comparison.
func stackStrings(s deck.Stack) []string {
	out := make([]string, s.Len())
	for i, c := range s {
		out[i] = c.String()
	}
	return out
}

func TestParseStack(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"comma separated", "QH, 7C, 8S", []string{"QH", "7C", "8S"}},
		{"whitespace separated", "10H 4s", []string{"TH", "4S"}},
		{"malformed dropped", "XX, QH", []string{"QH"}},
		{"multi line mixed", "QH, 7C\n8S 2d\n", []string{"QH", "7C", "8S", "2D"}},
		{"header noise ignored", "My Stack:\n52 cards\nAH, KD", []string{"AH", "KD"}},
		{"empty", "", nil},
		{"only noise", "one two three", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stackStrings(deck.ParseStack(tc.in))
			if len(got) != len(tc.want) {
				t.Fatalf("ParseStack(%q) = %v; want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("ParseStack(%q)[%d] = %s; want %s", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestStack_AtWrapsCyclically(t *testing.T) {
	s := deck.ParseStack("QH, 7C, 8S")
	if got := s.At(3).String(); got != "QH" {
		t.Errorf("At(3) = %s; want QH", got)
	}
	if got := s.At(5).String(); got != "8S" {
		t.Errorf("At(5) = %s; want 8S", got)
	}
	if got := s.At(-1).String(); got != "8S" {
		t.Errorf("At(-1) = %s; want 8S", got)
	}
}

func TestStack_StringRoundTrip(t *testing.T) {
	in := "QH, 7C, 8S, 2D"
	s := deck.ParseStack(in)
	if got := s.String(); got != in {
		t.Errorf("String() = %q; want %q", got, in)
	}
	again := deck.ParseStack(s.String())
	if again.Len() != s.Len() {
		t.Errorf("round trip length = %d; want %d", again.Len(), s.Len())
	}
}
