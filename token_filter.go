package koma

import (
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"

	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/internal/hangul"
	"github.com/kotaroooo0/koma/morphology"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

// KoreanFilter は連続する韓国語のトークンを形態素分析して索引語に置き換える
type KoreanFilter struct {
	morphology morphology.Morphology
	dic        *dictionary.Dictionary // 漢字語の読みに使う。nilなら読みを加えない
}

func NewKoreanFilter(morphology morphology.Morphology, dic *dictionary.Dictionary) KoreanFilter {
	return KoreanFilter{
		morphology: morphology,
		dic:        dic,
	}
}

func (f KoreanFilter) Filter(tokenStream TokenStream) TokenStream {
	tokens := tokenStream.Tokens
	r := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); {
		token := tokens[i]
		switch token.Type {
		case Korean:
			j := i
			for j < len(tokens) && tokens[j].Type == Korean {
				j++
			}
			r = append(r, f.analyze(tokens[i:j])...)
			i = j
			continue
		case Chinese:
			r = append(r, token)
			if f.dic != nil {
				if w, ok := f.dic.CJWord(token.Term); ok {
					r = append(r, NewToken(w, WithType(Korean), WithOffset(token.Start, token.End), WithPositionIncrement(0)))
				}
			}
		default:
			r = append(r, token)
		}
		i++
	}
	return NewTokenStream(r)
}

func (f KoreanFilter) analyze(tokens []Token) []Token {
	eojeols := make([]string, len(tokens))
	for i, t := range tokens {
		eojeols[i] = t.Term
	}
	analyzed := f.morphology.Analyze(eojeols)

	r := make([]Token, 0, len(tokens))
	for i, t := range tokens {
		if i >= len(analyzed) || len(analyzed[i]) == 0 {
			r = append(r, t)
			continue
		}
		for j, mt := range analyzed[i] {
			// 長すぎて飛ばしたトークンの分は元のトークンの位置増分に入っている
			inc := mt.PositionIncrement
			if j == 0 {
				inc = t.PositionIncrement
			}
			start := t.Start + mt.Offset
			r = append(r, NewToken(mt.Term,
				WithType(Korean),
				WithOffset(start, start+utf8.RuneCountInString(mt.Term)),
				WithPositionIncrement(inc),
			))
		}
	}
	return r
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		token.Term = strings.ToLower(token.Term)
		r[i] = token
	}
	return NewTokenStream(r)
}

// DefaultStopWords は英語と韓国語のストップワード
var DefaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by",
	"for", "if", "in", "into", "is", "it", "no", "not", "of", "on", "or", "such", "that", "the",
	"their", "then", "there", "these", "they", "this", "to", "was", "will", "with",
	"이", "그", "저", "것", "수", "등", "들", "및", "에서", "그리고", "그래서", "또", "또는",
}

type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[w] = struct{}{}
	}
	return StopWordFilter{
		stopWords: m,
	}
}

// Filter は取り除いたトークンの位置増分を次のトークンに引き継ぐ
func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	skipped := 0
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; ok {
			skipped += token.PositionIncrement
			continue
		}
		token.PositionIncrement += skipped
		skipped = 0
		r = append(r, token)
	}
	return NewTokenStream(r)
}

// StemmerFilter は英単語だけを語幹にする
type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Type == Alphanum {
			token.Term = english.Stem(token.Term, false)
		}
		r[i] = token
	}
	return NewTokenStream(r)
}

// RomanizeFilter は韓国語のトークンをローマ字表記にする
type RomanizeFilter struct{}

func NewRomanizeFilter() RomanizeFilter {
	return RomanizeFilter{}
}

func (f RomanizeFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Type == Korean {
			token.Term = hangul.Romanize(token.Term)
		}
		r[i] = token
	}
	return NewTokenStream(r)
}
