// Package metrics は形態素分析と索引作成のPrometheusコレクタを持つ
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 索引語の種類
const (
	TermNoun     = "noun"
	TermCompound = "compound"
	TermBigram   = "bigram"
	TermOrigin   = "origin"
)

// Metrics のメソッドはnilのレシーバでも呼べる。計測しない設定ではnilを渡す
type Metrics struct {
	EojeolsTotal         prometheus.Counter
	FallbacksTotal       prometheus.Counter
	ReconstructionsTotal prometheus.Counter
	TermsTotal           *prometheus.CounterVec
	DictionaryEntries    prometheus.Gauge
	DocsIndexedTotal     prometheus.Counter
	IndexFlushesTotal    *prometheus.CounterVec
}

// New はコレクタを作って reg に登録する
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EojeolsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "koma_eojeols_analyzed_total",
			Help: "Total number of eojeols analyzed.",
		}),
		FallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "koma_analysis_fallbacks_total",
			Help: "Total number of analyses replaced by the whole-unit noun after an internal error.",
		}),
		ReconstructionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "koma_spacing_reconstructions_total",
			Help: "Total number of eojeols re-segmented by word-spacing reconstruction.",
		}),
		TermsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "koma_index_terms_total",
			Help: "Total index terms emitted by kind (noun, compound, bigram, origin).",
		}, []string{"kind"}),
		DictionaryEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "koma_dictionary_entries",
			Help: "Number of words in the loaded dictionary.",
		}),
		DocsIndexedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "koma_docs_indexed_total",
			Help: "Total documents indexed.",
		}),
		IndexFlushesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "koma_index_flushes_total",
			Help: "Total inverted index flushes to storage by status.",
		}, []string{"status"}),
	}
	reg.MustRegister(
		m.EojeolsTotal,
		m.FallbacksTotal,
		m.ReconstructionsTotal,
		m.TermsTotal,
		m.DictionaryEntries,
		m.DocsIndexedTotal,
		m.IndexFlushesTotal,
	)
	return m
}

func (m *Metrics) Eojeol() {
	if m != nil {
		m.EojeolsTotal.Inc()
	}
}

func (m *Metrics) Fallback() {
	if m != nil {
		m.FallbacksTotal.Inc()
	}
}

func (m *Metrics) Reconstruction() {
	if m != nil {
		m.ReconstructionsTotal.Inc()
	}
}

func (m *Metrics) Term(kind string) {
	if m != nil {
		m.TermsTotal.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) SetDictionarySize(n int) {
	if m != nil {
		m.DictionaryEntries.Set(float64(n))
	}
}

func (m *Metrics) DocIndexed() {
	if m != nil {
		m.DocsIndexedTotal.Inc()
	}
}

// Flush は転置インデックスの書き出し結果を数える
func (m *Metrics) Flush(err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.IndexFlushesTotal.WithLabelValues(status).Inc()
}

// Handler は g のメトリクスを返すハンドラ
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
