package tagging

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/morph"
)

var (
	genitive = morph.Output{Source: "학교의", Stem: "학교", Josa: "의", Pattern: morph.PtnNJ, POS: dictionary.PosNoun, Score: morph.ScoreCorrect}
	verbCand = morph.Output{Source: "가고", Stem: "가", Eomi: "고", Pattern: morph.PtnVM, POS: dictionary.PosVerb, Score: morph.ScoreCorrect}
	nounCand = morph.Output{Source: "가고", Stem: "가고", Pattern: morph.PtnN, POS: dictionary.PosNoun, Score: morph.ScoreAnalysis}
	suVerb   = morph.Output{Source: "먹을", Stem: "먹", Eomi: "을", Pattern: morph.PtnVM, POS: dictionary.PosVerb, Score: morph.ScoreCorrect}
	suNoun   = morph.Output{Source: "먹을", Stem: "먹", Josa: "을", Pattern: morph.PtnNJ, POS: dictionary.PosNoun, Score: morph.ScoreAnalysis}
	su       = morph.Output{Source: "수", Stem: "수", Pattern: morph.PtnN, POS: dictionary.PosNoun, Score: morph.ScoreCorrect}
)

func newTestTagger(t *testing.T) *Tagger {
	t.Helper()
	tagger, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	return tagger
}

func TestParseRule(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line     string
		expected Rule
		ok       bool
	}{
		{
			line: "F:NILL/의/J:NILL/NILL/J:1",
			expected: Rule{
				Direction: Forward,
				Left:      Side{Endings: []string{"의"}, Patterns: []string{"J"}},
				Right:     Side{Patterns: []string{"J"}},
				Stop:      true,
			},
			ok: true,
		},
		{
			line: "R:NILL/NILL/E:수,것^W/NILL/0:0",
			expected: Rule{
				Direction: Backward,
				Left:      Side{Patterns: []string{"E"}},
				Right:     Side{Words: []string{"수", "것"}},
			},
			ok: true,
		},
		{
			line: "R:NILL/NILL/E:있^S/NILL/11,12:0",
			expected: Rule{
				Direction: Backward,
				Left:      Side{Patterns: []string{"E"}},
				Right:     Side{Words: []string{"있"}, ByStem: true, Patterns: []string{"11", "12"}},
			},
			ok: true,
		},
		{line: "X:NILL/NILL/0:NILL/NILL/0:0"},
		{line: "F:NILL/NILL/0:NILL/NILL/0"},
		{line: "F:NILL/NILL:NILL/NILL/0:0"},
		{line: "F:학교^Q/NILL/0:NILL/NILL/0:0"},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("line = %s", tt.line), func(t *testing.T) {
			actual, ok := ParseRule(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseRule(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("ParseRule(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	tagger, err := Load(strings.NewReader("# comment\nF:NILL/의/J:NILL/NILL/J:1\nbroken\n\nR:NILL/NILL/E:수^W/NILL/0:0\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tagger.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tagger.Len())
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestLoadError(t *testing.T) {
	t.Parallel()
	if _, err := Load(errReader{}); !errors.Is(err, ErrLoad) {
		t.Errorf("Load() error = %v, want ErrLoad", err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	tagger := newTestTagger(t)
	if tagger.Len() != 7 {
		t.Errorf("Len() = %d, want 7", tagger.Len())
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	tagger := newTestTagger(t)
	cases := []struct {
		name            string
		dir             Direction
		fixed           morph.Output
		cands           []morph.Output
		expected        morph.Output
		expectedMatched bool
	}{
		{
			name:            "nominal after genitive",
			dir:             Forward,
			fixed:           genitive,
			cands:           []morph.Output{verbCand, nounCand},
			expected:        nounCand,
			expectedMatched: true,
		},
		{
			name:            "single candidate",
			dir:             Forward,
			fixed:           genitive,
			cands:           []morph.Output{verbCand},
			expected:        verbCand,
			expectedMatched: true,
		},
		{
			name:            "every candidate stopped keeps the first",
			dir:             Forward,
			fixed:           genitive,
			cands:           []morph.Output{verbCand, suVerb},
			expected:        verbCand,
			expectedMatched: false,
		},
		{
			name:            "modifier before bound noun",
			dir:             Backward,
			fixed:           su,
			cands:           []morph.Output{suNoun, suVerb},
			expected:        suVerb,
			expectedMatched: true,
		},
		{
			name:            "no rule",
			dir:             Backward,
			fixed:           nounCand,
			cands:           []morph.Output{suNoun, suVerb},
			expected:        suNoun,
			expectedMatched: false,
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			actual, matched := tagger.Resolve(tt.dir, tt.fixed, tt.cands)
			if matched != tt.expectedMatched {
				t.Errorf("Resolve() matched = %v, want %v", matched, tt.expectedMatched)
			}
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTag(t *testing.T) {
	t.Parallel()
	tagger := newTestTagger(t)
	analyses := [][]morph.Output{
		{genitive},
		{verbCand, nounCand},
		nil,
		{suNoun, suVerb},
		{su},
	}
	expected := []morph.Output{genitive, nounCand, {}, suVerb, su}
	if diff := cmp.Diff(expected, tagger.Tag(analyses)); diff != "" {
		t.Errorf("Tag() mismatch (-want +got):\n%s", diff)
	}
}
