package koma

import "unicode"

type Tokenizer interface {
	Tokenize(string) TokenStream
}

type StandardTokenizer struct{}

func NewStandardTokenizer() StandardTokenizer {
	return StandardTokenizer{}
}

// Tokenize は文字と数字以外で区切る
func (t StandardTokenizer) Tokenize(s string) TokenStream {
	tokens := make([]Token, 0)
	rs := []rune(s)
	start := -1
	for i := 0; i <= len(rs); i++ {
		if i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsNumber(rs[i])) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, NewToken(string(rs[start:i]), WithType(Alphanum), WithOffset(start, i)))
			start = -1
		}
	}
	return NewTokenStream(tokens)
}

// KoreanTokenizer は字種ごとに分けて型を付ける。韓国語は어절単位になる
type KoreanTokenizer struct {
	maxTokenLength int
}

func NewKoreanTokenizer(maxTokenLength int) KoreanTokenizer {
	return KoreanTokenizer{
		maxTokenLength: maxTokenLength,
	}
}

func (t KoreanTokenizer) Tokenize(s string) TokenStream {
	tokens := make([]Token, 0)
	scanner := NewScanner(s, t.maxTokenLength)
	for {
		token, ok := scanner.Next()
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}
	return NewTokenStream(tokens)
}

// NgramTokenizer は文字単位のN-gramに分ける
type NgramTokenizer struct {
	n int
}

func NewNgramTokenizer(n int) NgramTokenizer {
	return NgramTokenizer{
		n: n,
	}
}

func (t NgramTokenizer) Tokenize(s string) TokenStream {
	rs := []rune(s)
	tokens := make([]Token, 0)
	for i := 0; t.n > 0 && i+t.n <= len(rs); i++ {
		tokens = append(tokens, NewToken(string(rs[i:i+t.n]), WithOffset(i, i+t.n)))
	}
	return NewTokenStream(tokens)
}
