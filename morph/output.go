package morph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kotaroooo0/koma/dictionary"
)

// Pattern は語の分解テンプレート。値は順位付けに使う
type Pattern int

const (
	PtnN      Pattern = 1  // 体言
	PtnNJ     Pattern = 2  // 体言 + 助詞
	PtnNSM    Pattern = 3  // 体言 + 用言化接尾辞 + 語尾
	PtnNSMJ   Pattern = 4  // 体言 + 用言化接尾辞 + '음/기' + 助詞
	PtnNSMXM  Pattern = 5  // 体言 + 用言化接尾辞 + '아/어' + 補助用言 + 語尾
	PtnNJCM   Pattern = 6  // 体言 + '에서/부터' + '이' + 語尾
	PtnNSMXMJ Pattern = 7  // 体言 + 用言化接尾辞 + '아/어' + 補助用言 + '음/기' + 助詞
	PtnVM     Pattern = 11 // 用言 + 語尾
	PtnVMJ    Pattern = 12 // 用言 + '음/기' + 助詞
	PtnVMCM   Pattern = 13 // 用言 + '음/기' + '이' + 語尾
	PtnVMXM   Pattern = 14 // 用言 + '아/어' + 補助用言 + 語尾
	PtnVMXMJ  Pattern = 15 // 用言 + '아/어' + 補助用言 + '음/기' + 助詞
	PtnAID    Pattern = 21 // 単一語(副詞など)
	PtnADVJ   Pattern = 22 // 副詞 + 助詞
)

var patternNames = map[Pattern]string{
	PtnN: "N", PtnNJ: "NJ", PtnNSM: "NSM", PtnNSMJ: "NSMJ", PtnNSMXM: "NSMXM",
	PtnNJCM: "NJCM", PtnNSMXMJ: "NSMXMJ", PtnVM: "VM", PtnVMJ: "VMJ", PtnVMCM: "VMCM",
	PtnVMXM: "VMXM", PtnVMXMJ: "VMXMJ", PtnAID: "AID", PtnADVJ: "ADVJ",
}

func (p Pattern) String() string {
	if s, ok := patternNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// isEomiPhrase は語尾で終わるパターンかどうか
func (p Pattern) isEomiPhrase() bool {
	switch p {
	case PtnNSM, PtnNSMXM, PtnNJCM, PtnVM, PtnVMCM, PtnVMXM:
		return true
	}
	return false
}

// isJosaPhrase は助詞で終わるパターンかどうか
func (p Pattern) isJosaPhrase() bool {
	switch p {
	case PtnNJ, PtnNSMJ, PtnNSMXMJ, PtnVMJ, PtnVMXMJ, PtnADVJ:
		return true
	}
	return false
}

// MatchesClass は文法規則のパターン指定にマッチするか調べる
// "E"は語尾で終わる全パターン、"J"は助詞で終わるパターンと体言単独、それ以外はパターンの数値
func (p Pattern) MatchesClass(class string) bool {
	switch class {
	case "E":
		return p.isEomiPhrase()
	case "J":
		return p.isJosaPhrase() || p == PtnN
	}
	return class == fmt.Sprint(int(p))
}

type Score int

const (
	ScoreFail      Score = 0   // 分析はできたが制約に違反した
	ScoreAnalysis  Score = 30  // 辞書で確認できない推定
	ScoreCompounds Score = 70  // 辞書にある単位名詞に分解できた
	ScoreCorrect   Score = 100 // 辞書で確認できた
)

// Position は文中での語の位置。順位付けには影響しない
type Position int

const (
	PositionStart Position = 1
	PositionMid   Position = 2
	PositionEnd   Position = 3
)

// Output は一つの分析候補。各分析の分岐ではCloneしたものを使い、候補同士で値を共有しない
type Output struct {
	Source    string
	Stem      string
	Eomi      string
	Josa      string
	Vsfx      string
	Pomi      string
	Xverb     string
	Elist     []string
	Pattern   Pattern
	POS       byte
	Score     Score
	Compounds []dictionary.Compound
}

func newOutput(stem string, pattern Pattern, pos byte, score Score) Output {
	return Output{
		Stem:    stem,
		Pattern: pattern,
		POS:     pos,
		Score:   score,
	}
}

func (o Output) Clone() Output {
	c := o
	c.Elist = slices.Clone(o.Elist)
	c.Compounds = slices.Clone(o.Compounds)
	return c
}

// Ending は助詞があれば助詞、なければ語尾を返す
func (o Output) Ending() string {
	if o.Josa != "" {
		return o.Josa
	}
	return o.Eomi
}

// FoundRatio は単位名詞のうち辞書にあるものの割合
func (o Output) FoundRatio() float64 {
	if len(o.Compounds) == 0 {
		return 0
	}
	found := 0
	for _, c := range o.Compounds {
		if c.Exists {
			found++
		}
	}
	return float64(found) / float64(len(o.Compounds))
}

func (o Output) String() string {
	var b strings.Builder
	b.WriteString(o.Stem)
	b.WriteString("(")
	b.WriteByte(o.POS)
	b.WriteString(")")
	for _, part := range []struct {
		s   string
		tag string
	}{{o.Vsfx, "t"}, {strings.Join(o.Elist, ","), "c"}, {o.Xverb, "x"}, {o.Pomi, "f"}, {o.Eomi, "e"}, {o.Josa, "j"}} {
		if part.s != "" {
			fmt.Fprintf(&b, ",%s(%s)", part.s, part.tag)
		}
	}
	fmt.Fprintf(&b, " %s:%d", o.Pattern, o.Score)
	return b.String()
}
