package tagging

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var ErrLoad = errors.New("tagging: load failed")

//go:embed data/tagger.dic
var embedded embed.FS

var defaultTagger = sync.OnceValues(func() (*Tagger, error) {
	f, err := embedded.Open("data/tagger.dic")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	return Load(f)
})

// Default は埋め込みの規則を返す。読み込みはプロセス内で一度だけ行われる
func Default() (*Tagger, error) {
	return defaultTagger()
}

// Load は「方向:前の語:後の語:停止」の行を読む。形式が違う行は捨てる
func Load(r io.Reader) (*Tagger, error) {
	var rules []Rule
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rule, ok := ParseRule(line); ok {
			rules = append(rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return New(rules), nil
}

func ParseRule(line string) (Rule, bool) {
	fields := strings.Split(line, ":")
	if len(fields) != 4 {
		return Rule{}, false
	}
	var r Rule
	switch fields[0] {
	case "F":
		r.Direction = Forward
	case "R":
		r.Direction = Backward
	default:
		return Rule{}, false
	}
	left, ok := parseSide(fields[1])
	if !ok {
		return Rule{}, false
	}
	right, ok := parseSide(fields[2])
	if !ok {
		return Rule{}, false
	}
	r.Left, r.Right = left, right
	r.Stop = fields[3] == "1"
	return r, true
}

// parseSide は「語^W/助詞・語尾/パターン」を読む
func parseSide(s string) (Side, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Side{}, false
	}
	var side Side
	word := parts[0]
	if w, t, ok := strings.Cut(word, "^"); ok {
		switch t {
		case "W":
		case "S":
			side.ByStem = true
		default:
			return Side{}, false
		}
		word = w
	}
	if word == "" {
		return Side{}, false
	}
	if word != nill {
		side.Words = strings.Split(word, ",")
	}
	if parts[1] != nill && parts[1] != "" {
		side.Endings = strings.Split(parts[1], ",")
	}
	if parts[2] != noPatn && parts[2] != "" {
		side.Patterns = strings.Split(parts[2], ",")
	}
	return side, true
}
