package morph

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kotaroooo0/koma/dictionary"
)

// CompoundAnalyzer は複合名詞を辞書にある単位名詞に分解する
type CompoundAnalyzer struct {
	dic   *dictionary.Dictionary
	exact bool
	cache *lru.Cache[string, []dictionary.Compound]
}

// NewCompoundAnalyzer はcacheSizeが0以下ならキャッシュを使わない
// exactがtrueの場合、辞書に無い部分が残る分解は行わない
func NewCompoundAnalyzer(dic *dictionary.Dictionary, exact bool, cacheSize int) *CompoundAnalyzer {
	ca := &CompoundAnalyzer{dic: dic, exact: exact}
	if cacheSize > 0 {
		if c, err := lru.New[string, []dictionary.Compound](cacheSize); err == nil {
			ca.cache = c
		}
	}
	return ca
}

// Split は語を単位名詞に分ける。辞書に無い連続した音節は一つにまとめる
func (ca *CompoundAnalyzer) Split(word string) []dictionary.Compound {
	if word == "" {
		return nil
	}
	if ca.cache != nil {
		if v, ok := ca.cache.Get(word); ok {
			return slices.Clone(v)
		}
	}

	var out []dictionary.Compound
	if e := ca.dic.Uncompound(word); e != nil {
		out = slices.Clone(e.Compounds)
	} else {
		out = ca.split([]rune(word))
	}

	if ca.cache != nil {
		ca.cache.Add(word, slices.Clone(out))
	}
	return out
}

type splitCost struct {
	unknown int
	frags   int
}

func (c splitCost) less(d splitCost) bool {
	if c.unknown != d.unknown {
		return c.unknown < d.unknown
	}
	return c.frags < d.frags
}

type splitState struct {
	cost  splitCost
	next  int
	known bool
	done  bool
}

// split は辞書に無い音節数、次に断片数が最小になる分け方を選ぶ
func (ca *CompoundAnalyzer) split(rs []rune) []dictionary.Compound {
	n := len(rs)
	// memo[pos][1] は直前の音節が辞書に無かった場合
	memo := make([][2]splitState, n+1)

	var solve func(pos, prevUnknown int) splitCost
	solve = func(pos, prevUnknown int) splitCost {
		if pos == n {
			return splitCost{}
		}
		st := &memo[pos][prevUnknown]
		if st.done {
			return st.cost
		}

		best := splitCost{unknown: n + 1}
		next, known := pos+1, false
		for l := n - pos; l >= 1; l-- {
			if !ca.knownFragment(rs, pos, l) {
				continue
			}
			c := solve(pos+l, 0)
			c.frags++
			if c.less(best) {
				best, next, known = c, pos+l, true
			}
		}
		c := solve(pos+1, 1)
		c.unknown++
		if prevUnknown == 0 {
			c.frags++
		}
		if c.less(best) {
			best, next, known = c, pos+1, false
		}

		*st = splitState{cost: best, next: next, known: known, done: true}
		return best
	}
	solve(0, 0)

	var out []dictionary.Compound
	unknownStart := -1
	flush := func(end int) {
		if unknownStart >= 0 {
			out = append(out, dictionary.NewCompound(string(rs[unknownStart:end]), unknownStart, false))
			unknownStart = -1
		}
	}

	allFound := true
	pos, prevUnknown := 0, 0
	for pos < n {
		st := memo[pos][prevUnknown]
		if st.known {
			flush(pos)
			exists := st.next-pos >= 2
			allFound = allFound && exists
			out = append(out, dictionary.NewCompound(string(rs[pos:st.next]), pos, exists))
			prevUnknown = 0
		} else {
			if unknownStart < 0 {
				unknownStart = pos
			}
			allFound = false
			prevUnknown = 1
		}
		pos = st.next
	}
	flush(n)

	if ca.exact && !allFound {
		return []dictionary.Compound{dictionary.NewCompound(string(rs), 0, false)}
	}
	return out
}

// knownFragment は2音節以上の名詞か、語頭の接頭辞・語末の接尾辞かどうか
func (ca *CompoundAnalyzer) knownFragment(rs []rune, pos, l int) bool {
	w := string(rs[pos : pos+l])
	if l >= 2 {
		return ca.dic.CompoundNoun(w) != nil
	}
	return (pos == 0 && ca.dic.IsPrefix(w)) || (pos == len(rs)-1 && ca.dic.IsSuffix(w))
}

// Confirm は体言候補を複合名詞として確かめ、スコアと単位名詞を更新する
// 既に確定した候補に対しては何も変えずにtrueを返す
func (ca *CompoundAnalyzer) Confirm(o *Output) bool {
	return ca.confirm(o, 0)
}

func (ca *CompoundAnalyzer) confirm(o *Output, depth int) bool {
	rs := []rune(o.Stem)
	n := len(rs)
	if n < 3 {
		return false
	}

	if e := ca.dic.CompoundNoun(o.Stem); e != nil && e.IsCompoundOrigin() {
		o.Compounds = slices.Clone(e.Compounds)
		o.Score = ScoreCorrect
		return true
	}
	if o.Score == ScoreCorrect {
		return true
	}
	if ca.dic.Noun(o.Stem) != nil {
		return false
	}

	frags := ca.Split(o.Stem)
	if len(frags) > 1 && allExist(frags) {
		o.Compounds = frags
		return ca.accept(o, ScoreCompounds)
	}

	// 派生名詞: 体言 + 接尾辞 (활성화, 산업화적)
	if depth > 0 {
		return false
	}
	base, last := string(rs[:n-1]), string(rs[n-1])
	if !ca.dic.IsSuffix(last) {
		return false
	}
	if ca.dic.CompoundNoun(base) != nil {
		o.Compounds = []dictionary.Compound{
			dictionary.NewCompound(base, 0, true),
			dictionary.NewCompound(last, n-1, true),
		}
		return ca.accept(o, ScoreCorrect)
	}
	if n-1 < 3 {
		return false
	}
	sub := o.Clone()
	sub.Stem = base
	sub.Compounds = nil
	sub.Score = ScoreAnalysis
	// 制約は分解全体に対して一度だけ確かめる
	sub.Pattern, sub.Vsfx = PtnN, ""
	if !ca.confirm(&sub, depth+1) {
		return false
	}
	o.Compounds = append(sub.Compounds, dictionary.NewCompound(last, n-1, true))
	return ca.accept(o, sub.Score)
}

// accept は制約に違反していれば score を捨てて失敗にする
func (ca *CompoundAnalyzer) accept(o *Output, score Score) bool {
	if !ca.satisfies(o) {
		o.Score = ScoreFail
		return false
	}
	o.Score = score
	return true
}

// satisfies は分解結果が語彙上の制約を満たすかどうか
func (ca *CompoundAnalyzer) satisfies(o *Output) bool {
	frags := o.Compounds
	if len(frags) == 0 {
		return true
	}
	last := frags[len(frags)-1]
	if last.Word == "화해" && len(frags) >= 2 {
		switch frags[len(frags)-2].Word {
		case "민족", "동서", "남북":
		default:
			return false
		}
	}
	if o.Pattern == PtnNSM {
		switch o.Vsfx {
		case "내":
			if runeLen(last.Word) != 1 {
				if e := ca.dic.Word(last.Word); e != nil && !e.IsNamedEntity() {
					return false
				}
			}
		case "하":
			if runeLen(last.Word) == 1 {
				return false
			}
		}
	}
	return true
}

func allExist(frags []dictionary.Compound) bool {
	for _, f := range frags {
		if !f.Exists {
			return false
		}
	}
	return true
}
