package koma

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kotaroooo0/koma/internal/hangul"
)

const DefaultMaxTokenLength = 255

type charClass int

const (
	classNone charClass = iota
	classAlnum
	classHangul
	classHan
	classKana
)

func classOf(r rune) charClass {
	switch {
	case hangul.IsSyllable(r) || hangul.IsJamo(r):
		return classHangul
	case unicode.Is(unicode.Han, r):
		return classHan
	case unicode.In(r, unicode.Hiragana, unicode.Katakana):
		return classKana
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return classAlnum
	}
	return classNone
}

// 英数字の間にあれば一つのトークンとしてつなぐ記号
const joiners = ".@&'-_/,"

var (
	reEmail      = regexp.MustCompile(`^[\pL\pN_.\-]+@[\pL\pN\-]+(\.[\pL\pN\-]+)+$`)
	reAcronym    = regexp.MustCompile(`^\pL(\.\pL)+\.?$`)
	reHost       = regexp.MustCompile(`^[\pL\pN\-]+(\.[\pL\pN\-]+)+$`)
	reNum        = regexp.MustCompile(`^\pN+([.,\-/]\pN+)+$`)
	reCompany    = regexp.MustCompile(`^\pL+[&@]\pL+$`)
	reApostrophe = regexp.MustCompile(`^\pL+('\pL+)+$`)
)

func classifyAlnum(text string) (TokenType, bool) {
	switch {
	case !strings.ContainsAny(text, joiners):
		return Alphanum, true
	case reEmail.MatchString(text):
		return Email, true
	case reAcronym.MatchString(text):
		return Acronym, true
	case reNum.MatchString(text):
		return Num, true
	case reHost.MatchString(text) && strings.IndexFunc(text, unicode.IsLetter) >= 0:
		return Host, true
	case reCompany.MatchString(text):
		return Company, true
	case reApostrophe.MatchString(text):
		return Apostrophe, true
	}
	return 0, false
}

// Scanner は文字列から一つずつトークンを取り出す
// maxTokenLength より長いトークンは飛ばし、その分を次のトークンの位置増分に加える
type Scanner struct {
	rs             []rune
	pos            int
	maxTokenLength int
}

func NewScanner(text string, maxTokenLength int) *Scanner {
	if maxTokenLength <= 0 {
		maxTokenLength = DefaultMaxTokenLength
	}
	return &Scanner{
		rs:             []rune(text),
		maxTokenLength: maxTokenLength,
	}
}

func (s *Scanner) Next() (Token, bool) {
	inc := 1
	for {
		start, end, typ, ok := s.scan()
		if !ok {
			return Token{}, false
		}
		if end-start <= s.maxTokenLength {
			return NewToken(string(s.rs[start:end]),
				WithType(typ),
				WithOffset(start, end),
				WithPositionIncrement(inc),
			), true
		}
		inc++
	}
}

func (s *Scanner) scan() (int, int, TokenType, bool) {
	n := len(s.rs)
	for s.pos < n && classOf(s.rs[s.pos]) == classNone {
		s.pos++
	}
	if s.pos >= n {
		return 0, 0, 0, false
	}

	start := s.pos
	c := classOf(s.rs[start])
	if c != classAlnum {
		for s.pos < n && classOf(s.rs[s.pos]) == c {
			s.pos++
		}
		switch c {
		case classHangul:
			return start, s.pos, Korean, true
		case classHan:
			return start, s.pos, Chinese, true
		default:
			return start, s.pos, CJ, true
		}
	}

	for s.pos < n {
		r := s.rs[s.pos]
		if classOf(r) == classAlnum {
			s.pos++
			continue
		}
		if strings.ContainsRune(joiners, r) && s.pos+1 < n && classOf(s.rs[s.pos+1]) == classAlnum {
			s.pos++
			continue
		}
		break
	}
	// U.S.A. の最後のピリオド
	if s.pos < n && s.rs[s.pos] == '.' && reAcronym.MatchString(string(s.rs[start:s.pos])) {
		s.pos++
	}

	if typ, ok := classifyAlnum(string(s.rs[start:s.pos])); ok {
		return start, s.pos, typ, true
	}
	// どの形にも当てはまらなければ先頭の英数字だけにする
	end := start
	for end < s.pos && classOf(s.rs[end]) == classAlnum {
		end++
	}
	s.pos = end
	return start, end, Alphanum, true
}
