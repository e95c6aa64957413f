package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Eojeol()
	m.Eojeol()
	m.Fallback()
	m.Reconstruction()
	m.Term(TermNoun)
	m.Term(TermNoun)
	m.Term(TermBigram)
	m.SetDictionarySize(42)
	m.DocIndexed()
	m.Flush(nil)
	m.Flush(errors.New("boom"))

	cases := []struct {
		name     string
		c        prometheus.Collector
		expected float64
	}{
		{name: "eojeols", c: m.EojeolsTotal, expected: 2},
		{name: "fallbacks", c: m.FallbacksTotal, expected: 1},
		{name: "reconstructions", c: m.ReconstructionsTotal, expected: 1},
		{name: "noun terms", c: m.TermsTotal.WithLabelValues(TermNoun), expected: 2},
		{name: "bigram terms", c: m.TermsTotal.WithLabelValues(TermBigram), expected: 1},
		{name: "dictionary", c: m.DictionaryEntries, expected: 42},
		{name: "docs", c: m.DocsIndexedTotal, expected: 1},
		{name: "flush ok", c: m.IndexFlushesTotal.WithLabelValues("ok"), expected: 1},
		{name: "flush error", c: m.IndexFlushesTotal.WithLabelValues("error"), expected: 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.c); got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.Eojeol()
	m.Fallback()
	m.Reconstruction()
	m.Term(TermOrigin)
	m.SetDictionarySize(1)
	m.DocIndexed()
	m.Flush(nil)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg).Eojeol()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "koma_eojeols_analyzed_total 1") {
		t.Errorf("body does not contain the eojeol counter:\n%s", rec.Body.String())
	}
}
