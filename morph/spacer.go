package morph

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/internal/hangul"
)

// spacing は分かち書きを復元した結果。lastEndはここまでに確定した音節数
type spacing struct {
	phrases []Output
	lastEnd int
}

func (s *spacing) add(o Output) {
	s.phrases = append(s.phrases, o)
	s.lastEnd += runeLen(o.Source)
}

func (s *spacing) removeLast() {
	if len(s.phrases) == 0 {
		return
	}
	last := s.phrases[len(s.phrases)-1]
	s.phrases = s.phrases[:len(s.phrases)-1]
	s.lastEnd -= runeLen(last.Source)
}

func (s *spacing) last() *Output {
	if len(s.phrases) == 0 {
		return nil
	}
	return &s.phrases[len(s.phrases)-1]
}

// Reconstruct は分かち書きされていない文字列を語に分け、語ごとの最上位の候補を返す
// 各候補のSourceを順につなげると元の文字列になる
// 途中で問題が起きた場合は文字列全体を推定の体言として返す
func (a *Analyzer) Reconstruct(text string) (phrases []Output) {
	rs := []rune(text)
	n := len(rs)
	if n == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %q: %v", ErrAnalysis, text, r)
			a.logger.Warn("fall back to unspaced text", slog.Any("error", err))
			if a.onFallback != nil {
				a.onFallback(text)
			}
			phrases = []Output{fallbackNoun(text)}
		}
	}()

	sp := &spacing{}
	// 同じ位置で棄却された回数に応じて次に試す位置を進める
	retries := make(map[int]int)
	wStart := 0
	for i := 0; i < n; i++ {
		f := a.dic.Syllable(rs[i])
		hasPrefix := i != n-1 && a.dic.HasPrefix(string(rs[wStart:i+2]))

		var cands []Output
		switch {
		case oneOf(rs[i], '있', '없', '앞') && i > wStart:
			a.addSpaceSingleWord(string(rs[wStart:i]), &cands)
		case hasPrefix:
			// 次の音節まで一つの語の可能性がある
		case !hasPrefix && a.dic.Busa(string(rs[wStart:i+1])) != nil:
			cands = append(cands, buildSingleOutput(a.dic.Busa(string(rs[wStart:i+1]))))
		case f.Has(dictionary.EomiStart) || f.Has(dictionary.JosaStart):
			if f.Has(dictionary.JosaStart) {
				cands = append(cands, a.spaceJosa(rs[wStart:], i-wStart)...)
			}
			if f.Has(dictionary.EomiStart) {
				cands = append(cands, a.spaceEomi(rs[wStart:], i-wStart)...)
			}
		}

		Sort(cands)
		a.appendSpaceSingleWord(&cands)
		a.spaceCompounds(cands)
		Sort(cands)

		switch a.validateAndAppend(sp, cands, rs) {
		case 1:
			i = sp.lastEnd - 1
			wStart = sp.lastEnd
		case -1:
			idx, ok := retries[sp.lastEnd]
			if !ok {
				idx = sp.lastEnd
			} else {
				idx++
			}
			retries[sp.lastEnd] = idx
			i = idx
			wStart = sp.lastEnd
		}
	}

	if sp.lastEnd < n {
		source := string(rs[sp.lastEnd:])
		score := ScoreAnalysis
		if a.dic.Word(source) != nil {
			score = ScoreCorrect
		}
		o := newOutput(source, PtnN, dictionary.PosNoun, score)
		o.Source = source
		a.spaceCompound.Confirm(&o)
		sp.add(o)
	}
	return sp.phrases
}

// spaceJosa はjs音節目から始まる助詞で終わる語を分析する
func (a *Analyzer) spaceJosa(snipt []rune, js int) []Output {
	if js < 1 {
		return nil
	}
	jend := a.findJosaEnd(snipt, js)
	if jend < 0 {
		return nil
	}
	input := snipt[:jend]

	var cands []Output
	for i := len(input) - 1; i > 0; i-- {
		f := a.dic.Syllable(input[i])
		if f.Has(dictionary.JosaStart) {
			a.analyzeWithJosa(string(input[:i]), string(input[i:]), &cands)
		}
		if !f.Has(dictionary.JosaCont) {
			break
		}
	}
	fillSource(string(input), cands)
	return cands
}

// findJosaEnd は最も長い助詞の終わりを返す。助詞でなければ-1
func (a *Analyzer) findJosaEnd(snipt []rune, jstart int) int {
	// 것을 は名詞にならない
	if snipt[jstart-1] == '것' && snipt[jstart] == '을' {
		return jstart + 1
	}
	// 사랑스러운 の'스러'は助詞ではない
	if len(snipt) > jstart+2 && snipt[jstart+1] == '스' {
		if c := snipt[jstart+2]; hangul.Initial(c) == 'ㄹ' && hangul.Medial(c) == 'ㅓ' {
			return -1
		}
	}

	jend := jstart
	for i := jstart + 1; i < len(snipt); i++ {
		if !a.dic.Syllable(snipt[i]).Has(dictionary.JosaCont) {
			break
		}
		jend = i
	}
	for i := jend; i >= jstart; i-- {
		if a.dic.IsJosa(string(snipt[jstart:i+1])) && !a.findNounWithinStr(snipt, i, i+2) {
			return i + 1
		}
	}
	return -1
}

// findNounWithinStr はes以降の最初の助詞の開始位置までが辞書の語かどうか
func (a *Analyzer) findNounWithinStr(str []rune, ws, es int) bool {
	if len(str) < es {
		return false
	}
	for i := es; i < len(str); i++ {
		if a.dic.Syllable(str[i]).Has(dictionary.JosaStart) {
			return a.dic.Word(string(str[ws:i])) != nil
		}
	}
	return false
}

// spaceEomi はestart音節目から始まる語尾で終わる語を分析する
// 用言の前に名詞があれば、その名詞を単位名詞として候補に含める
func (a *Analyzer) spaceEomi(snipt []rune, estart int) []Output {
	eend := a.findEomiEnd(snipt, estart)

	vstart := 0
	for i := estart - 1; i >= 0; i-- {
		if !a.dic.HasPrefix(string(snipt[i:estart])) {
			break
		}
		vstart = i
	}
	if len(snipt) > eend && a.dic.HasPrefix(string(snipt[vstart:eend+1])) {
		return nil
	}

	var pvword string
	if vstart != 0 {
		pvword = string(snipt[:vstart])
	}

	var cands []Output
	for {
		input := string(snipt[vstart:eend])
		a.analyzeWithEomiDetail(input, &cands)
		if len(cands) == 0 {
			break
		}
		top := cands[0]
		if (top.Eomi == "ㄹ" || top.Eomi == "ㅁ" || top.Eomi == "ㄴ") && eend > estart+1 &&
			top.Pattern != PtnVM && top.Pattern != PtnNSM {
			eend--
			continue
		}
		if pvword != "" && top.Pattern >= PtnVM && top.Pattern <= PtnVMXMJ && a.dic.Word(input) != nil {
			cands = nil
			break
		}
		if pvword != "" && IsVerbSuffix(top.Stem) && a.dic.Noun(pvword) != nil {
			// 명사 + 용언화접미사 + 어미
			cands = nil
			a.analyzeWithEomiDetail(string(snipt[:eend]), &cands)
			pvword = ""
		}
		break
	}

	if len(cands) > 0 && pvword != "" {
		o := newOutput(pvword, PtnN, dictionary.PosNoun, ScoreAnalysis)
		a.spaceCompound.Confirm(&o)
		frags := o.Compounds
		if len(frags) == 0 {
			frags = []dictionary.Compound{
				dictionary.NewCompound(pvword, 0, a.dic.WordExceptVerb(pvword) != nil),
			}
		}
		for i := range cands {
			c := &cands[i]
			c.Compounds = append(append(c.Compounds, frags...), dictionary.NewCompound(c.Stem, runeLen(pvword), true))
			c.Stem = pvword + c.Stem
		}
	}

	fillSource(string(snipt[:eend]), cands)
	return cands
}

func (a *Analyzer) analyzeWithEomiDetail(input string, cands *[]Output) {
	rs := []rune(input)
	n := len(rs)
	if n == 0 {
		return
	}
	if oneOf(hangul.Final(rs[n-1]), 'ㄴ', 'ㄹ', 'ㅁ') {
		a.analyzeWithEomi(input, "", cands)
	}
	for i := n - 1; i > 0; i-- {
		a.analyzeWithEomi(string(rs[:i]), string(rs[i:]), cands)
		if !a.dic.Syllable(rs[i]).Has(dictionary.EomiCont) {
			break
		}
	}
}

// findEomiEnd は最も長い語尾の終わりを返す。語尾が見つからなくても1音節は進む
func (a *Analyzer) findEomiEnd(snipt []rune, estart int) int {
	var tail []rune
	rest := snipt[estart+1:]
	switch hangul.Final(snipt[estart]) {
	case 'ㄴ':
		tail = append([]rune{'은'}, rest...)
	case 'ㄹ':
		tail = append([]rune{'을'}, rest...)
	case 'ㅂ':
		tail = append([]rune{'습'}, rest...)
	default:
		tail = snipt[estart:]
	}

	start := 0
	for i := 1; i < len(tail); i++ {
		if !a.dic.Syllable(tail[i]).Has(dictionary.EomiCont) {
			break
		}
		start = i
	}

	jend := 0
	for i := start; i > 0; i-- {
		if a.dic.IsEomi(string(tail[:i+1])) || (i < 2 && oneOf(hangul.Final(tail[i]), 'ㄹ', 'ㅁ', 'ㄴ')) {
			jend = i
			break
		}
	}
	return estart + jend + 1
}

// appendSpaceSingleWord は最上位候補の元の文字列全体を一語とする候補を加える
func (a *Analyzer) appendSpaceSingleWord(cands *[]Output) {
	if len(*cands) == 0 {
		return
	}
	top := (*cands)[0]
	if e := a.dic.WordExceptVerb(top.Source); e != nil {
		*cands = append(*cands, buildSingleOutput(e))
		return
	}
	if top.Pattern > PtnVM && top.Pattern <= PtnVMXMJ {
		return
	}
	if runeLen(top.Source) < 5 {
		return
	}
	o := newOutput(top.Source, PtnN, dictionary.PosNoun, ScoreAnalysis)
	o.Source = top.Source
	a.spaceCompound.Confirm(&o)
	if o.Score >= ScoreCompounds {
		*cands = append(*cands, o)
	}
}

func (a *Analyzer) addSpaceSingleWord(source string, cands *[]Output) {
	if e := a.dic.WordExceptVerb(source); e != nil {
		*cands = append(*cands, buildSingleOutput(e))
		return
	}
	o := newOutput(source, PtnN, dictionary.PosNoun, ScoreAnalysis)
	o.Source = source
	a.spaceCompound.Confirm(&o)
	*cands = append(*cands, o)
}

func (a *Analyzer) spaceCompounds(cands []Output) {
	correct := false
	for i := range cands {
		o := &cands[i]
		if o.Score == ScoreCorrect {
			if o.Pattern != PtnNJ {
				correct = true
			}
			// 활성화해 を 활성/화해 に分けない
			if o.Vsfx == "하" {
				break
			}
			continue
		}
		if o.Pattern <= PtnVM && runeLen(o.Stem) > 2 && !(correct && o.Pattern == PtnN) {
			a.spaceCompound.Confirm(o)
		}
	}
}

// validateAndAppend は最上位候補を検証して結果に加える
// 加えたら1、棄却したら-1、候補が無ければ0を返す
func (a *Analyzer) validateAndAppend(sp *spacing, cands []Output, rs []rune) int {
	if len(cands) == 0 {
		return 0
	}
	o, rest := cands[0], cands[1:]
	po := sp.last()

	ja := 'x'
	if po != nil && (po.Pattern == PtnVM || po.Pattern == PtnVMCM || po.Pattern == PtnVMXM) && po.Eomi != "" {
		er := []rune(po.Eomi)
		le := er[len(er)-1]
		if f := hangul.Final(le); f != 0 {
			ja = f
		} else if hangul.IsJamo(le) {
			ja = le
		}
	}

	switch {
	// 밥먹고 の 먹고 は名詞ではない
	case po != nil && po.Pattern == PtnN && len(rest) > 0 && o.Pattern == PtnVM && rest[0].Pattern == PtnN:
		o = rest[0]
	// 다녀가+ㄴ, 사+람 のような分解を避ける
	case po != nil && po.Pattern >= PtnVM && len(rest) > 0 && rest[0].Pattern == PtnN && (ja == 'ㄴ' || ja == 'ㄹ'):
		o = rest[0]
	}

	src := []rune(o.Source)
	n := len(rs)
	if len(src) == 0 || sp.lastEnd+len(src) > n || string(rs[sp.lastEnd:sp.lastEnd+len(src)]) != o.Source {
		return 0
	}
	nEnd := sp.lastEnd + len(src)
	ejend := ""
	if sl := runeLen(o.Stem); sl < len(src) {
		ejend = string(src[sl:])
	}

	switch {
	case o.POS == dictionary.PosNoun && a.dic.IsVerbOnly(o.Stem):
		sp.removeLast()
		return -1
	case nEnd < n && a.dic.Syllable(rs[nEnd]).Has(dictionary.JosaStart) && a.dic.Noun(o.Source) != nil:
		return -1
	case nEnd < n && o.Score == ScoreAnalysis && a.dic.HasPrefix(ejend+string(rs[nEnd])):
		return -1
	// 다짐+합니다 に分けない
	case po != nil && po.Pattern == PtnVM && po.Eomi == "ㅁ" && o.Stem == "하":
		sp.removeLast()
		return -1
	// 사랑+받다 は一語にする。있 は前の語と結合しない
	case po != nil && po.Pattern == PtnN && IsVerbSuffix(o.Stem) && o.Stem != "있":
		sp.removeLast()
		return -1
	}
	sp.add(o)
	return 1
}

func buildSingleOutput(e *dictionary.Entry) Output {
	o := newOutput(e.Word, PtnN, dictionary.PosNoun, ScoreCorrect)
	if e.Feature(dictionary.IdxNoun) == '0' {
		o.Pattern = PtnAID
		o.POS = dictionary.PosAid
	}
	o.Source = e.Word
	return o
}

func fillSource(source string, cands []Output) {
	for i := range cands {
		cands[i].Source = source
	}
}

// SpacedText は復元した語を空白でつないだ文字列を返す
func SpacedText(phrases []Output) string {
	words := make([]string, 0, len(phrases))
	for _, p := range phrases {
		words = append(words, p.Source)
	}
	return strings.Join(words, " ")
}
