package morph

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/internal/hangul"
)

var ErrAnalysis = errors.New("morph: analysis failed")

// 2音節目からでないと付かない助詞(母音で終わる語に付く)
var vowelJosa = map[string]struct{}{
	"가": {}, "는": {}, "를": {}, "와": {}, "로": {}, "랑": {}, "나": {}, "야": {}, "며": {},
	"라도": {}, "라고": {}, "로서": {}, "로써": {}, "여": {}, "란": {},
}

// 子音で終わる語に付く助詞
var consonantJosa = map[string]struct{}{
	"이": {}, "은": {}, "을": {}, "과": {}, "으로": {}, "이랑": {}, "이나": {}, "아": {}, "이며": {},
	"이라도": {}, "이라고": {}, "으로서": {}, "으로써": {}, "이여": {}, "이야": {}, "이란": {},
}

// ㄹ終声の語には母音側の'로'が付く
var rieulJosa = map[string]struct{}{
	"로": {}, "로서": {}, "로써": {},
}

type Analyzer struct {
	dic      *dictionary.Dictionary
	compound *CompoundAnalyzer
	// 分かち書きの復元では辞書に無い部分を含む分解も使う
	spaceCompound *CompoundAnalyzer
	exact         bool
	cacheSize     int
	logger        *slog.Logger
	onFallback    func(unit string)
}

type Option func(*Analyzer)

// WithExactCompound は辞書に無い部分が残る複合名詞の分解を行わないようにする
func WithExactCompound(exact bool) Option {
	return func(a *Analyzer) {
		a.exact = exact
	}
}

// WithCompoundCache は複合名詞の分解結果をsize件までキャッシュする
func WithCompoundCache(size int) Option {
	return func(a *Analyzer) {
		a.cacheSize = size
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// OnFallback は分析に失敗して単一の体言にした時に呼ばれる
func OnFallback(f func(unit string)) Option {
	return func(a *Analyzer) {
		a.onFallback = f
	}
}

func NewAnalyzer(dic *dictionary.Dictionary, opts ...Option) *Analyzer {
	a := &Analyzer{
		dic:       dic,
		cacheSize: 1024,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.compound = NewCompoundAnalyzer(dic, a.exact, a.cacheSize)
	a.spaceCompound = a.compound
	if a.exact {
		a.spaceCompound = NewCompoundAnalyzer(dic, false, a.cacheSize)
	}
	return a
}

func (a *Analyzer) Dictionary() *dictionary.Dictionary {
	return a.dic
}

func (a *Analyzer) Compound() *CompoundAnalyzer {
	return a.compound
}

// Analyze は語を分析する。末尾が'.'なら文末として扱う
func (a *Analyzer) Analyze(unit string) []Output {
	pos := PositionMid
	if strings.HasSuffix(unit, ".") {
		unit = strings.TrimSuffix(unit, ".")
		pos = PositionEnd
	}
	return a.AnalyzeAt(unit, pos)
}

// AnalyzeAt は分かち書きの一単位を分析し、順位付けした候補を返す
// 分析中に問題が起きた場合は単位全体を推定の体言として返す
func (a *Analyzer) AnalyzeAt(unit string, pos Position) (results []Output) {
	if unit == "" {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %q: %v", ErrAnalysis, unit, r)
			a.logger.Warn("fall back to single noun", slog.Any("error", err), slog.Int("position", int(pos)))
			if a.onFallback != nil {
				a.onFallback(unit)
			}
			results = []Output{fallbackNoun(unit)}
		}
	}()

	var cands []Output
	a.analyzeByRule(unit, &cands)
	if !a.dic.IsVerbOnly(unit) || len(cands) == 0 {
		a.addSingleWord(unit, &cands)
	}
	for i := range cands {
		cands[i].Source = unit
	}
	Sort(cands)
	if a.confirmCompounds(cands) {
		Sort(cands)
	}
	return a.selectResults(unit, cands)
}

func fallbackNoun(unit string) Output {
	o := newOutput(unit, PtnN, dictionary.PosNoun, ScoreAnalysis)
	o.Source = unit
	return o
}

// analyzeByRule は後ろから一音節ずつ境界を動かして助詞・語尾を探す
func (a *Analyzer) analyzeByRule(unit string, cands *[]Output) {
	a.analyzeWithEomi(unit, "", cands)

	rs := []rune(unit)
	josaFlag, eomiFlag := true, true
	for i := len(rs) - 1; i > 0; i-- {
		stem, end := string(rs[:i]), string(rs[i:])
		f := a.dic.Syllable(rs[i])
		if josaFlag && f.Has(dictionary.JosaStart) {
			a.analyzeWithJosa(stem, end, cands)
		}
		if eomiFlag && f.Has(dictionary.EomiStart) {
			a.analyzeWithEomi(stem, end, cands)
		}
		if !f.Has(dictionary.JosaCont) {
			josaFlag = false
		}
		if !f.Has(dictionary.EomiCont) {
			eomiFlag = false
		}
		if !josaFlag && !eomiFlag {
			break
		}
	}
}

// analyzeWithJosa は体言 + 助詞の候補を加える
func (a *Analyzer) analyzeWithJosa(stem, end string, cands *[]Output) {
	rs := []rune(stem)
	if len(rs) == 0 || end == "" || !a.dic.IsJosa(end) {
		return
	}
	last := rs[len(rs)-1]
	switch hangul.Components(last) {
	case 3:
		_, vowel := vowelJosa[end]
		_, rieul := rieulJosa[end]
		if vowel && !(rieul && hangul.Final(last) == 'ㄹ') {
			return
		}
	case 2:
		if _, ok := consonantJosa[end]; ok {
			return
		}
	}

	o := newOutput(stem, PtnNJ, dictionary.PosNoun, ScoreAnalysis)
	o.Josa = end
	a.analyzeMJ(o.Clone(), cands)

	if e := a.dic.WordExceptVerb(stem); e != nil {
		o.Score = ScoreCorrect
		if !e.IsNoun() && e.IsAdverb() {
			o.POS = dictionary.PosAid
			o.Pattern = PtnADVJ
		}
	} else if a.dic.IsVerbOnly(stem) {
		return
	}
	*cands = append(*cands, o)
}

// analyzeWithEomi は用言 + 語尾と、そこから派生するパターンの候補を加える
func (a *Analyzer) analyzeWithEomi(stem, end string, cands *[]Output) {
	st, eomi, ok := a.splitEomi(stem, end)
	if !ok {
		return
	}
	vstem, pomi := a.splitPomi(st)
	o := newOutput(vstem, PtnVM, dictionary.PosVerb, ScoreAnalysis)
	o.Eomi = eomi
	o.Pomi = pomi

	if e := a.dic.Verb(vstem); e != nil && !elided(e, eomi) {
		c := o.Clone()
		c.Score = ScoreCorrect
		*cands = append(*cands, c)
		// 산다 は 사+ㄴ다 と 살+ㄴ다 の両方がありうる
		if !strings.HasPrefix(eomi, "ㄴ") {
			return
		}
	}

	ending := o.Eomi
	if o.Pomi != "" {
		ending = o.Pomi
	}
	for _, r := range Restorations(vstem, ending) {
		if a.dic.IrregularVerb(r.Stem, r.Class) == nil {
			continue
		}
		c := o.Clone()
		c.Stem = r.Stem
		if o.Pomi != "" {
			c.Pomi = r.Ending
		} else {
			c.Eomi = r.Ending
		}
		c.Score = ScoreCorrect
		*cands = append(*cands, c)
		break
	}

	if a.analyzeNJCM(o, cands) {
		return
	}
	if a.analyzeNSM(o, cands) {
		return
	}
	if a.analyzeNSMXM(o, cands) {
		return
	}
	if a.analyzeVMCM(o, cands) {
		return
	}
	a.analyzeVMXM(o, cands)
}

// elided はㄹ,ㅂ不規則の語幹に'을/은/음'がそのまま付いた形かどうか (알을, 돕은 は用言ではない)
func elided(e *dictionary.Entry, eomi string) bool {
	switch eomi {
	case "을", "은", "음":
		switch e.Irregular() {
		case dictionary.IrrLieul, dictionary.IrrBieup:
			return true
		}
	}
	return false
}

// addSingleWord は単位全体を一語とする候補を先頭に加える
func (a *Analyzer) addSingleWord(unit string, cands *[]Output) {
	o := newOutput(unit, PtnN, dictionary.PosNoun, ScoreAnalysis)
	o.Source = unit
	if e := a.dic.Word(unit); e != nil {
		switch {
		case !e.IsNoun() && e.IsAdverb():
			o.Pattern = PtnAID
			o.POS = dictionary.PosAid
			o.Score = ScoreCorrect
		case e.IsNoun():
			o.Score = ScoreCorrect
		case e.IsCompoundOrigin():
			// 複合名詞は後で単位名詞と一緒に確定する
		default:
			return
		}
		*cands = append([]Output{o}, *cands...)
		return
	}
	if a.endsWithLongJosa(*cands) {
		return
	}
	*cands = append([]Output{o}, *cands...)
}

func (a *Analyzer) endsWithLongJosa(cands []Output) bool {
	for _, c := range cands {
		if c.Josa != "" && c.Eomi == "" && runeLen(c.Josa) >= 2 && a.dic.IsJosa(c.Josa) {
			return true
		}
	}
	return false
}

// confirmCompounds は上位の候補から順に複合名詞を確かめる。スコアが変わればtrueを返す
func (a *Analyzer) confirmCompounds(cands []Output) bool {
	changed, correct := false, false
	for i := range cands {
		o := &cands[i]
		if o.Score == ScoreCorrect {
			if o.Pattern != PtnNJ {
				correct = true
			}
			if o.Pattern == PtnNSM {
				break
			}
			continue
		}
		if o.Pattern > PtnVM || runeLen(o.Stem) <= 2 {
			continue
		}
		if correct && o.Pattern == PtnN {
			continue
		}
		before := o.Score
		a.compound.Confirm(o)
		if o.Score != before {
			changed = true
		}
	}
	return changed
}

// selectResults は順位付けした候補から結果を選ぶ
func (a *Analyzer) selectResults(unit string, cands []Output) []Output {
	var (
		results        []Output
		compound       *Output
		ratio          float64
		hasCorrect     bool
		hasCorrectNoun bool
	)
	for _, o := range cands {
		switch {
		case o.Score == ScoreFail:
			continue
		case o.Score == ScoreCorrect && o.POS != dictionary.PosNoun:
			results = appendUnique(results, o)
			hasCorrect = true
		case o.Score == ScoreCorrect:
			if hasCorrect && len(o.Compounds) > 0 {
				continue
			}
			results = appendUnique(results, o)
			hasCorrectNoun = true
		case hasCorrectNoun:
			continue
		case hasCorrect:
			// 用言が確定していても 体言 + 用言化接尾辞 の推定は残す
			if o.Pattern == PtnNSM {
				results = appendUnique(results, o)
			}
		case len(o.Compounds) > 0:
			if r := o.FoundRatio(); r > ratio && (compound == nil || compound.Josa == "") {
				c := o.Clone()
				compound, ratio = &c, r
			}
		case o.POS == dictionary.PosNoun && compound == nil:
			results = appendUnique(results, o)
		case o.Pattern == PtnNSM:
			results = appendUnique(results, o)
		}
	}
	if compound != nil {
		results = appendUnique(results, *compound)
	}
	if len(results) == 0 {
		results = append(results, fallbackNoun(unit))
	}
	return results
}

// appendUnique は同じ語幹・品詞の候補を一つにする
// 助詞が長いもの、次にパターンの値が大きいものを残す
func appendUnique(results []Output, o Output) []Output {
	for i, r := range results {
		if r.Stem != o.Stem || r.POS != o.POS {
			continue
		}
		lo, lr := runeLen(o.Josa), runeLen(r.Josa)
		if lo > lr || (lo == lr && o.Pattern > r.Pattern) {
			results = append(results[:i], results[i+1:]...)
			return append(results, o)
		}
		return results
	}
	return append(results, o)
}
