package koma

import (
	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/morphology"
)

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// NewKoreanAnalyzer は字母の合成、字種での分割、形態素分析、小文字化、ストップワード除去の順に処理する
func NewKoreanAnalyzer(m morphology.Morphology, dic *dictionary.Dictionary, maxTokenLength int) Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewJamoComposeCharFilter()},
		NewKoreanTokenizer(maxTokenLength),
		[]TokenFilter{
			NewKoreanFilter(m, dic),
			NewLowercaseFilter(),
			NewStopWordFilter(DefaultStopWords),
		},
	)
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}
