package morphology

import (
	"log/slog"
	"unicode/utf8"

	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/internal/metrics"
	"github.com/kotaroooo0/koma/morph"
	"github.com/kotaroooo0/koma/tagging"
)

// Korean は韓国語の形態素分析で索引語を作る
type Korean struct {
	analyzer *morph.Analyzer
	tagger   *tagging.Tagger
	metrics  *metrics.Metrics
	logger   *slog.Logger

	bigrammable bool // 分析できなかった語を2音節ずつに分ける
	hasOrigin   bool // 元の어절も索引語にする
	hasCNoun    bool // 複合名詞の単位名詞も索引語にする
	exactMatch  bool
	cacheSize   int
}

type Option func(*Korean)

func Bigrammable(b bool) Option {
	return func(k *Korean) {
		k.bigrammable = b
	}
}

func HasOrigin(b bool) Option {
	return func(k *Korean) {
		k.hasOrigin = b
	}
}

func HasCNoun(b bool) Option {
	return func(k *Korean) {
		k.hasCNoun = b
	}
}

// ExactMatch は辞書で確かめられない分解と2音節の分割を行わないようにする
func ExactMatch(b bool) Option {
	return func(k *Korean) {
		k.exactMatch = b
	}
}

func WithCompoundCache(size int) Option {
	return func(k *Korean) {
		k.cacheSize = size
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(k *Korean) {
		k.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(k *Korean) {
		k.logger = l
	}
}

func NewKorean(dic *dictionary.Dictionary, tagger *tagging.Tagger, opts ...Option) *Korean {
	k := &Korean{
		tagger:      tagger,
		logger:      slog.Default(),
		bigrammable: true,
		hasOrigin:   true,
		hasCNoun:    true,
		cacheSize:   1024,
	}
	for _, opt := range opts {
		opt(k)
	}
	k.analyzer = morph.NewAnalyzer(dic,
		morph.WithExactCompound(k.exactMatch),
		morph.WithCompoundCache(k.cacheSize),
		morph.WithLogger(k.logger),
		morph.OnFallback(func(string) { k.metrics.Fallback() }),
	)
	k.metrics.SetDictionarySize(dic.Len())
	return k
}

func (k *Korean) Analyzer() *morph.Analyzer {
	return k.analyzer
}

func (k *Korean) Analyze(eojeols []string) [][]MorphologyToken {
	analyses := make([][]morph.Output, len(eojeols))
	for i, e := range eojeols {
		pos := morph.PositionMid
		switch {
		case i == 0:
			pos = morph.PositionStart
		case i == len(eojeols)-1:
			pos = morph.PositionEnd
		}
		analyses[i] = k.analyzer.AnalyzeAt(e, pos)
		k.metrics.Eojeol()
	}

	chosen := analyses
	if k.tagger != nil {
		tagged := k.tagger.Tag(analyses)
		chosen = make([][]morph.Output, len(tagged))
		for i, o := range tagged {
			chosen[i] = []morph.Output{o}
		}
	}

	tokens := make([][]MorphologyToken, len(eojeols))
	for i, e := range eojeols {
		var o morph.Output
		if len(chosen[i]) > 0 {
			o = chosen[i][0]
		}
		tokens[i] = k.indexTerms(e, o)
	}
	return tokens
}

// indexTerms は一つの어절の分析結果から索引語を作る
// 最初の索引語の位置増分を1、残りを0にする
func (k *Korean) indexTerms(eojeol string, o morph.Output) []MorphologyToken {
	t := &termSet{seen: make(map[string]struct{})}

	phrases := []phrase{{output: o}}
	if o.Score == morph.ScoreAnalysis && utf8.RuneCountInString(eojeol) > 2 {
		k.metrics.Reconstruction()
		if spaced := k.analyzer.Reconstruct(eojeol); len(spaced) > 0 {
			phrases = phrases[:0]
			offset := 0
			for _, p := range spaced {
				phrases = append(phrases, phrase{output: p, offset: offset})
				offset += utf8.RuneCountInString(p.Source)
			}
		}
	}

	for _, p := range phrases {
		k.phraseTerms(t, p)
	}
	if k.hasOrigin && t.add(eojeol, 0) {
		k.metrics.Term(metrics.TermOrigin)
	}
	if len(t.tokens) == 0 {
		t.add(eojeol, 0)
	}
	return t.tokens
}

type phrase struct {
	output morph.Output
	offset int
}

func (k *Korean) phraseTerms(t *termSet, p phrase) {
	o := p.output
	if o.POS != dictionary.PosNoun || o.Stem == "" {
		return
	}
	if t.add(o.Stem, p.offset) {
		k.metrics.Term(metrics.TermNoun)
	}

	if k.hasCNoun && len(o.Compounds) > 1 {
		for _, c := range o.Compounds {
			if utf8.RuneCountInString(c.Word) < 2 {
				continue
			}
			offset := p.offset
			if c.Offset > 0 {
				offset += c.Offset
			}
			if t.add(c.Word, offset) {
				k.metrics.Term(metrics.TermCompound)
			}
		}
	}

	if o.Score <= morph.ScoreAnalysis && k.bigrammable && !k.exactMatch {
		rs := []rune(o.Stem)
		for i := 0; i+2 <= len(rs) && len(rs) > 2; i++ {
			if t.add(string(rs[i:i+2]), p.offset+i) {
				k.metrics.Term(metrics.TermBigram)
			}
		}
	}
}

// termSet は重複を除いて索引語を集める
type termSet struct {
	tokens []MorphologyToken
	seen   map[string]struct{}
}

func (t *termSet) add(term string, offset int) bool {
	if _, ok := t.seen[term]; ok {
		return false
	}
	t.seen[term] = struct{}{}
	inc := 0
	if len(t.tokens) == 0 {
		inc = 1
	}
	t.tokens = append(t.tokens, NewMorphologyToken(term, offset, inc))
	return true
}
