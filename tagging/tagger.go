package tagging

import (
	"slices"

	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/morph"
)

// Direction は規則のどちら側の語が確定しているか
type Direction byte

const (
	Forward  Direction = 'F' // 前の語が確定している
	Backward Direction = 'R' // 後の語が確定している
)

const (
	nill   = "NILL"
	noPatn = "0"
)

// Side は規則の片側の語の条件。nilの項目は何にでもマッチする
type Side struct {
	Words    []string
	ByStem   bool
	Endings  []string
	Patterns []string
}

type Rule struct {
	Direction Direction
	Left      Side
	Right     Side
	// Stop がtrueの規則にマッチしなかった候補は除く
	Stop bool
}

// fixed は確定している側
func (r Rule) fixed() Side {
	if r.Direction == Forward {
		return r.Left
	}
	return r.Right
}

func (r Rule) matches(fixed, cand morph.Output) bool {
	left, right := fixed, cand
	if r.Direction == Backward {
		left, right = cand, fixed
	}
	fs := r.fixed()
	if fs.Words != nil {
		text := fixed.Source
		if fs.ByStem {
			text = fixed.Stem
		}
		if !slices.Contains(fs.Words, text) {
			return false
		}
	}
	return r.Left.matchesEnding(left) && r.Left.matchesPattern(left) &&
		r.Right.matchesEnding(right) && r.Right.matchesPattern(right)
}

func (s Side) matchesEnding(o morph.Output) bool {
	return s.Endings == nil || slices.Contains(s.Endings, o.Ending())
}

func (s Side) matchesPattern(o morph.Output) bool {
	if s.Patterns == nil {
		return true
	}
	for _, p := range s.Patterns {
		if o.Pattern.MatchesClass(p) {
			return true
		}
	}
	return false
}

// keys は確定側の条件から索引のキーを作る
func (r Rule) keys() []string {
	dir := string(r.Direction)
	fs := r.fixed()
	if fs.Words == nil {
		if fs.Endings == nil {
			return []string{dir + nill + "/" + nill + "/"}
		}
		keys := make([]string, 0, len(fs.Endings))
		for _, e := range fs.Endings {
			keys = append(keys, dir+nill+"/"+e+"/")
		}
		return keys
	}
	suffix := "^W"
	if fs.ByStem {
		suffix = "^S"
	}
	keys := make([]string, 0, len(fs.Words))
	for _, w := range fs.Words {
		keys = append(keys, dir+w+suffix)
	}
	return keys
}

// Tagger は隣接する語との文法規則で、一つの語の複数の分析候補から一つを選ぶ
type Tagger struct {
	rules *dictionary.Trie[[]Rule]
	size  int
}

func New(rules []Rule) *Tagger {
	t := &Tagger{rules: dictionary.NewTrie[[]Rule]()}
	for _, r := range rules {
		for _, k := range r.keys() {
			rs, _ := t.rules.Get(k)
			t.rules.Add(k, append(rs, r))
		}
		t.size++
	}
	return t
}

// Len は規則の数
func (t *Tagger) Len() int {
	return t.size
}

func (t *Tagger) lookup(dir Direction, fixed morph.Output) [][]Rule {
	d := string(dir)
	var found [][]Rule
	for _, k := range []string{
		d + fixed.Source + "^W",
		d + fixed.Stem + "^S",
		d + nill + "/" + fixed.Ending() + "/",
		d + nill + "/" + nill + "/",
	} {
		if rs, ok := t.rules.Get(k); ok {
			found = append(found, rs)
		}
	}
	return found
}

// Resolve は確定した隣の語を手がかりに候補を一つ選ぶ
// 規則にマッチする候補が無ければ、停止規則で除かれなかった最上位の候補を返す
func (t *Tagger) Resolve(dir Direction, fixed morph.Output, cands []morph.Output) (morph.Output, bool) {
	if len(cands) == 0 {
		return morph.Output{}, false
	}
	best, rest := t.resolve(dir, fixed, cands)
	if best >= 0 {
		return cands[best], true
	}
	return rest[0], false
}

// resolve はマッチした候補の添字と、停止規則で絞った候補を返す
func (t *Tagger) resolve(dir Direction, fixed morph.Output, cands []morph.Output) (int, []morph.Output) {
	if len(cands) == 1 {
		return 0, cands
	}
	lists := t.lookup(dir, fixed)
	removed := make([]bool, len(cands))
	for i, c := range cands {
		for _, rules := range lists {
			for _, r := range rules {
				if r.matches(fixed, c) {
					return i, cands
				}
				if r.Stop {
					removed[i] = true
					break
				}
			}
		}
	}

	rest := slices.Clone(cands)
	for i := len(cands) - 1; i >= 0; i-- {
		if removed[i] && len(rest) > 1 {
			rest = slices.Delete(rest, i, i+1)
		}
	}
	return -1, rest
}

// Tag は文中の語ごとの候補から一つずつ選ぶ
// 次の語の最上位の候補が確定していればそれを、無ければ前の語で選んだ候補を手がかりにする
func (t *Tagger) Tag(analyses [][]morph.Output) []morph.Output {
	out := make([]morph.Output, len(analyses))
	var prev *morph.Output
	for i, cands := range analyses {
		if len(cands) == 0 {
			prev = nil
			continue
		}
		if i+1 < len(analyses) && len(analyses[i+1]) > 0 && analyses[i+1][0].Score == morph.ScoreCorrect {
			best, rest := t.resolve(Backward, analyses[i+1][0], cands)
			if best >= 0 {
				out[i] = cands[best]
				prev = &out[i]
				continue
			}
			cands = rest
		}
		if prev != nil {
			best, rest := t.resolve(Forward, *prev, cands)
			if best >= 0 {
				out[i] = rest[best]
				prev = &out[i]
				continue
			}
			cands = rest
		}
		out[i] = cands[0]
		prev = &out[i]
	}
	return out
}
