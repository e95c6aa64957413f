package morphology

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/internal/metrics"
	"github.com/kotaroooo0/koma/tagging"
)

func newTestKorean(t *testing.T, opts ...Option) *Korean {
	t.Helper()
	dic, err := dictionary.Default()
	if err != nil {
		t.Fatalf("dictionary.Default() error = %v", err)
	}
	tagger, err := tagging.Default()
	if err != nil {
		t.Fatalf("tagging.Default() error = %v", err)
	}
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return NewKorean(dic, tagger, opts...)
}

func TestAnalyze(t *testing.T) {
	cases := []struct {
		opts     []Option
		eojeols  []string
		expected [][]MorphologyToken
	}{
		{
			eojeols: []string{"학교에서", "도서관자료를"},
			expected: [][]MorphologyToken{
				{NewMorphologyToken("학교", 0, 1), NewMorphologyToken("학교에서", 0, 0)},
				{
					NewMorphologyToken("도서관자료", 0, 1),
					NewMorphologyToken("도서관", 0, 0),
					NewMorphologyToken("자료", 3, 0),
					NewMorphologyToken("도서관자료를", 0, 0),
				},
			},
		},
		{
			opts:    []Option{HasOrigin(false), HasCNoun(false)},
			eojeols: []string{"학교에서", "도서관자료를"},
			expected: [][]MorphologyToken{
				{NewMorphologyToken("학교", 0, 1)},
				{NewMorphologyToken("도서관자료", 0, 1)},
			},
		},
		{
			opts:    []Option{HasOrigin(false)},
			eojeols: []string{"학교"},
			expected: [][]MorphologyToken{
				{NewMorphologyToken("학교", 0, 1)},
			},
		},
		{
			opts:    []Option{HasOrigin(false)},
			eojeols: []string{"돕다"},
			expected: [][]MorphologyToken{
				{NewMorphologyToken("돕다", 0, 1)},
			},
		},
		{
			eojeols: []string{"퀴퀵튁"},
			expected: [][]MorphologyToken{
				{
					NewMorphologyToken("퀴퀵튁", 0, 1),
					NewMorphologyToken("퀴퀵", 0, 0),
					NewMorphologyToken("퀵튁", 1, 0),
				},
			},
		},
		{
			opts:    []Option{Bigrammable(false)},
			eojeols: []string{"퀴퀵튁"},
			expected: [][]MorphologyToken{
				{NewMorphologyToken("퀴퀵튁", 0, 1)},
			},
		},
		{
			opts:    []Option{ExactMatch(true)},
			eojeols: []string{"퀴퀵튁"},
			expected: [][]MorphologyToken{
				{NewMorphologyToken("퀴퀵튁", 0, 1)},
			},
		},
		{
			eojeols:  nil,
			expected: [][]MorphologyToken{},
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("eojeols = %v, expected = %v", tt.eojeols, tt.expected), func(t *testing.T) {
			k := newTestKorean(t, tt.opts...)
			if diff := cmp.Diff(tt.expected, k.Analyze(tt.eojeols)); diff != "" {
				t.Errorf("Analyze() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	k := newTestKorean(t, WithMetrics(m))

	k.Analyze([]string{"학교에서", "도서관자료를", "퀴퀵튁"})

	if got := testutil.ToFloat64(m.EojeolsTotal); got != 3 {
		t.Errorf("eojeols = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.ReconstructionsTotal); got != 1 {
		t.Errorf("reconstructions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.TermsTotal.WithLabelValues(metrics.TermCompound)); got != 2 {
		t.Errorf("compound terms = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.TermsTotal.WithLabelValues(metrics.TermBigram)); got != 2 {
		t.Errorf("bigram terms = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.DictionaryEntries); got == 0 {
		t.Error("dictionary size is not recorded")
	}
}

func TestAnalyzeWithoutTagger(t *testing.T) {
	dic, err := dictionary.Default()
	if err != nil {
		t.Fatal(err)
	}
	k := NewKorean(dic, nil, HasOrigin(false))
	expected := [][]MorphologyToken{{NewMorphologyToken("학교", 0, 1)}}
	if diff := cmp.Diff(expected, k.Analyze([]string{"학교를"})); diff != "" {
		t.Errorf("Analyze() mismatch (-want +got):\n%s", diff)
	}
}
