package morph

import (
	"strings"

	"github.com/kotaroooo0/koma/dictionary"
)

// 体言を用言にする接尾辞。長いものから試す
var verbSuffixes = []string{
	"스러우", "스럽", "시키", "당하", "만하", "드리",
	"하", "되", "이", "있", "없", "같", "받", "나", "내", "롭", "답",
}

// '아/어'の後に付く補助用言
var xverbs = []string{
	"버리", "오르", "올리",
	"오", "내", "주", "보", "지", "놓", "두", "대", "가", "있",
}

// IsVerbSuffix は用言化接尾辞かどうか
func IsVerbSuffix(s string) bool {
	for _, v := range verbSuffixes {
		if v == s {
			return true
		}
	}
	return false
}

// verbStem は語幹を辞書で確かめる。そのままで無ければ不規則活用を戻して確かめる
func (a *Analyzer) verbStem(stem, ending string) (Restoration, bool) {
	if a.dic.Verb(stem) != nil {
		return Restoration{Stem: stem, Ending: ending, Class: dictionary.IrrRegular}, true
	}
	for _, r := range Restorations(stem, ending) {
		if a.dic.IrregularVerb(r.Stem, r.Class) != nil {
			return r, true
		}
	}
	return Restoration{}, false
}

// analyzeNJCM は 체언 + 에서/부터 + 이 + 어미 (학교에서이다)
func (a *Analyzer) analyzeNJCM(o Output, cands *[]Output) bool {
	nj, ok := strings.CutSuffix(o.Stem, "이")
	if !ok || runeLen(nj) < 3 {
		return false
	}
	for _, josa := range []string{"에서부터", "에서", "부터"} {
		noun, ok := strings.CutSuffix(nj, josa)
		if !ok || noun == "" {
			continue
		}
		if a.dic.CompoundNoun(noun) == nil {
			continue
		}
		c := o.Clone()
		c.Stem = noun
		c.Josa = josa
		c.Elist = append(c.Elist, "이")
		c.Pattern = PtnNJCM
		c.POS = dictionary.PosNoun
		c.Score = ScoreCorrect
		*cands = append(*cands, c)
		return true
	}
	return false
}

// analyzeNSM は 체언 + 용언화접미사 + 어미 (사랑받다, 공부하다)
// 辞書にある体言ならそこで確定する。無ければ2音節以上の体言を推定として一つだけ残す
func (a *Analyzer) analyzeNSM(o Output, cands *[]Output) bool {
	var guess *Output
	for _, sfx := range verbSuffixes {
		noun, ok := strings.CutSuffix(o.Stem, sfx)
		if !ok || noun == "" {
			continue
		}
		c := o.Clone()
		c.Stem = noun
		c.Vsfx = sfx
		c.Pattern = PtnNSM
		c.POS = dictionary.PosNoun
		if a.dic.CompoundNoun(noun) != nil {
			c.Score = ScoreCorrect
			*cands = append(*cands, c)
			return true
		}
		if guess == nil && runeLen(noun) >= 2 && !a.dic.IsVerbOnly(noun) {
			c.Score = ScoreAnalysis
			guess = &c
		}
	}
	if guess != nil {
		*cands = append(*cands, *guess)
	}
	return false
}

// analyzeNSMXM は 체언 + 용언화접미사 + 아/어 + 보조용언 + 어미 (공부해보다)
func (a *Analyzer) analyzeNSMXM(o Output, cands *[]Output) bool {
	for _, xv := range xverbs {
		front, ok := strings.CutSuffix(o.Stem, xv)
		if !ok || front == "" {
			continue
		}
		for _, sc := range splitConnective(front) {
			noun, sfx, ok := a.cutVerbSuffix(sc.verb)
			if !ok {
				continue
			}
			c := o.Clone()
			c.Stem = noun
			c.Vsfx = sfx
			c.Elist = append(c.Elist, sc.conn)
			c.Xverb = xv
			c.Pattern = PtnNSMXM
			c.POS = dictionary.PosNoun
			c.Score = ScoreCorrect
			*cands = append(*cands, c)
			return true
		}
	}
	return false
}

// analyzeVMCM は 용언 + 음/기 + 이 + 어미 (도움이다)
func (a *Analyzer) analyzeVMCM(o Output, cands *[]Output) bool {
	front, ok := strings.CutSuffix(o.Stem, "이")
	if !ok || front == "" {
		return false
	}
	for _, nm := range splitNominal(front) {
		r, ok := a.verbStem(nm.verb, nm.nom)
		if !ok {
			continue
		}
		c := o.Clone()
		c.Stem = r.Stem
		c.Elist = append(c.Elist, r.Ending, "이")
		c.Pattern = PtnVMCM
		c.POS = dictionary.PosVerb
		c.Score = ScoreCorrect
		*cands = append(*cands, c)
		return true
	}
	return false
}

// analyzeVMXM は 용언 + 아/어 + 보조용언 + 어미 (도와주다)
func (a *Analyzer) analyzeVMXM(o Output, cands *[]Output) bool {
	for _, xv := range xverbs {
		front, ok := strings.CutSuffix(o.Stem, xv)
		if !ok || front == "" {
			continue
		}
		for _, sc := range splitConnective(front) {
			r, ok := a.verbStem(sc.verb, sc.conn)
			if !ok {
				continue
			}
			c := o.Clone()
			c.Stem = r.Stem
			c.Elist = append(c.Elist, r.Ending)
			c.Xverb = xv
			c.Pattern = PtnVMXM
			c.POS = dictionary.PosVerb
			c.Score = ScoreCorrect
			*cands = append(*cands, c)
			return true
		}
	}
	return false
}

// cutVerbSuffix は辞書にある体言 + 用言化接尾辞に分ける
func (a *Analyzer) cutVerbSuffix(s string) (string, string, bool) {
	for _, sfx := range verbSuffixes {
		noun, ok := strings.CutSuffix(s, sfx)
		if ok && noun != "" && a.dic.CompoundNoun(noun) != nil {
			return noun, sfx, true
		}
	}
	return "", "", false
}

// analyzeMJ は助詞の前が名詞形の用言の場合 (도움을, 공부하기를, 도와주기를)
func (a *Analyzer) analyzeMJ(o Output, cands *[]Output) bool {
	for _, nm := range splitNominal(o.Stem) {
		if r, ok := a.verbStem(nm.verb, nm.nom); ok {
			c := o.Clone()
			c.Stem = r.Stem
			c.Elist = append(c.Elist, r.Ending)
			c.Pattern = PtnVMJ
			c.POS = dictionary.PosVerb
			c.Score = ScoreCorrect
			*cands = append(*cands, c)
			return true
		}

		if noun, sfx, ok := a.cutVerbSuffix(nm.verb); ok {
			c := o.Clone()
			c.Stem = noun
			c.Vsfx = sfx
			c.Elist = append(c.Elist, nm.nom)
			c.Pattern = PtnNSMJ
			c.POS = dictionary.PosNoun
			c.Score = ScoreCorrect
			*cands = append(*cands, c)
			return true
		}

		for _, xv := range xverbs {
			front, ok := strings.CutSuffix(nm.verb, xv)
			if !ok || front == "" {
				continue
			}
			for _, sc := range splitConnective(front) {
				if r, ok := a.verbStem(sc.verb, sc.conn); ok {
					c := o.Clone()
					c.Stem = r.Stem
					c.Elist = append(c.Elist, r.Ending, nm.nom)
					c.Xverb = xv
					c.Pattern = PtnVMXMJ
					c.POS = dictionary.PosVerb
					c.Score = ScoreCorrect
					*cands = append(*cands, c)
					return true
				}
				// 공부해보기를 は 体言 + 하 + 여 + 보 + 기 + 를
				if noun, sfx, ok := a.cutVerbSuffix(sc.verb); ok {
					c := o.Clone()
					c.Stem = noun
					c.Vsfx = sfx
					c.Elist = append(c.Elist, sc.conn, nm.nom)
					c.Xverb = xv
					c.Pattern = PtnNSMXMJ
					c.POS = dictionary.PosNoun
					c.Score = ScoreCorrect
					*cands = append(*cands, c)
					return true
				}
			}
		}
	}
	return false
}
