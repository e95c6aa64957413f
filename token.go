package koma

type TokenID uint64

// TokenType はトークナイザが付ける字種の分類
type TokenType int

const (
	Alphanum TokenType = iota
	Apostrophe
	Acronym
	Company
	Email
	Host
	Num
	CJ
	Korean
	Chinese
)

var tokenTypes = [...]string{
	"<ALPHANUM>", "<APOSTROPHE>", "<ACRONYM>", "<COMPANY>", "<EMAIL>",
	"<HOST>", "<NUM>", "<CJ>", "<KOREAN>", "<CHINESE>",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypes) {
		return "<UNKNOWN>"
	}
	return tokenTypes[t]
}

type Token struct {
	ID   TokenID `db:"id"`
	Term string  `db:"term"`
	// 以下は解析中にだけ使い、保存しない
	Type              TokenType `db:"-"`
	Start             int       `db:"-"` // 元の文字列での文字位置
	End               int       `db:"-"`
	PositionIncrement int       `db:"-"`
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Term: term, PositionIncrement: 1}
	for _, option := range options {
		option(&token)
	}
	return token
}

func WithType(t TokenType) TokenOption {
	return func(token *Token) {
		token.Type = t
	}
}

func WithOffset(start, end int) TokenOption {
	return func(token *Token) {
		token.Start = start
		token.End = end
	}
}

func WithPositionIncrement(inc int) TokenOption {
	return func(token *Token) {
		token.PositionIncrement = inc
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

// Positions は位置増分を積み上げた各トークンの位置を返す
func (ts TokenStream) Positions() []uint64 {
	positions := make([]uint64, ts.Size())
	pos := -1
	for i, t := range ts.Tokens {
		pos = max(pos+t.PositionIncrement, 0)
		positions[i] = uint64(pos)
	}
	return positions
}
