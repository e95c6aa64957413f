package morph

import (
	"strings"

	"github.com/kotaroooo0/koma/internal/hangul"
)

// splitEomi は語幹と語尾の境界を補正する
// 語幹末尾に吸収された語尾(간다 -> 가+ㄴ다, 가서 -> 가+아서, 해 -> 하+여)を取り出す
func (a *Analyzer) splitEomi(stem, end string) (string, string, bool) {
	rs := []rune(stem)
	n := len(rs)
	if n == 0 {
		return "", "", false
	}
	last := rs[n-1]
	head := string(rs[:n-1])

	if f := hangul.Final(last); oneOf(f, 'ㄴ', 'ㄹ', 'ㅁ', 'ㅂ') && a.dic.IsEomi(string(f)+end) {
		if base, ok := hangul.WithFinal(last, 0); ok {
			return head + string(base), string(f) + end, true
		}
	}

	if last == '해' {
		for _, c := range []string{"여", "어"} {
			if a.dic.IsEomi(c + end) {
				return head + "하", c + end, true
			}
		}
	}

	if !hangul.HasFinal(last) && hangul.IsSyllable(last) {
		if base, conn, ok := contract(last); ok && a.dic.IsEomi(conn+end) {
			return head + string(base), conn + end, true
		}
	}

	if a.dic.IsEomi(end) {
		return stem, end, true
	}
	return "", "", false
}

// contract は'아/어'を吸収した音節から元の音節と吸収された語尾を返す
// 가 -> 가+아, 와 -> 오+아, 마셔 -> 마시+어
func contract(r rune) (rune, string, bool) {
	initial := hangul.Initial(r)
	medial := hangul.Medial(r)
	switch medial {
	case 'ㅏ':
		if initial != 'ㅇ' {
			return r, "아", true
		}
	case 'ㅓ', 'ㅐ', 'ㅔ':
		if initial != 'ㅇ' {
			return r, "어", true
		}
	case 'ㅘ':
		if base, ok := hangul.Compose(initial, 'ㅗ', 0); ok {
			return base, "아", true
		}
	case 'ㅝ':
		if base, ok := hangul.Compose(initial, 'ㅜ', 0); ok {
			return base, "어", true
		}
	case 'ㅙ':
		if initial != 'ㅇ' {
			if base, ok := hangul.Compose(initial, 'ㅚ', 0); ok {
				return base, "어", true
			}
		}
	case 'ㅕ':
		if initial != 'ㅇ' {
			if base, ok := hangul.Compose(initial, 'ㅣ', 0); ok {
				return base, "어", true
			}
		}
	}
	return 0, "", false
}

// splitPomi は語幹から先語末語尾(시,었,겠)を取り出す
func (a *Analyzer) splitPomi(stem string) (string, string) {
	rs := []rune(stem)
	n := len(rs)
	if n == 0 {
		return stem, ""
	}
	last := rs[n-1]
	head := string(rs[:n-1])

	if n >= 2 && last == '겠' {
		s, p := a.splitPomi(head)
		return s, p + "겠"
	}
	if n >= 2 && oneOf(last, '었', '았', '였') {
		return a.splitHonorific(head, string(last))
	}
	if hangul.Final(last) == 'ㅆ' && !oneOf(last, '있', '없') {
		base, ok := hangul.WithFinal(last, 0)
		if !ok {
			return stem, ""
		}
		if base == '해' {
			return a.splitHonorific(head+"하", "였")
		}
		if b, conn, ok := contract(base); ok {
			pomi := "었"
			if conn == "아" {
				pomi = "았"
			}
			return a.splitHonorific(head+string(b), pomi)
		}
	}
	return a.splitHonorific(stem, "")
}

// splitHonorific は尊敬の'시/으시'を取り出す。取り除いた残りが動詞の場合だけ分ける
func (a *Analyzer) splitHonorific(stem, pomi string) (string, string) {
	base, ok := strings.CutSuffix(stem, "시")
	if !ok || base == "" {
		return stem, pomi
	}
	if a.dic.Verb(base) != nil {
		return base, "시" + pomi
	}
	if b, ok := strings.CutSuffix(base, "으"); ok && b != "" && a.dic.Verb(b) != nil {
		return b, "으시" + pomi
	}
	return stem, pomi
}

type connective struct {
	verb string
	conn string
}

// splitConnective は補助用言の前の'아/어'を取り出す
func splitConnective(s string) []connective {
	rs := []rune(s)
	n := len(rs)
	if n == 0 {
		return nil
	}
	last := rs[n-1]
	head := string(rs[:n-1])

	var out []connective
	if n >= 2 && oneOf(last, '아', '어', '여') {
		out = append(out, connective{verb: head, conn: string(last)})
	}
	if last == '해' {
		out = append(out, connective{verb: head + "하", conn: "여"})
	}
	if !hangul.HasFinal(last) && hangul.IsSyllable(last) {
		if base, conn, ok := contract(last); ok {
			out = append(out, connective{verb: head + string(base), conn: conn})
		}
	}
	return out
}

type nominal struct {
	verb string
	nom  string
}

// splitNominal は名詞形語尾(음,기,ㅁ)を取り出す
func splitNominal(s string) []nominal {
	rs := []rune(s)
	n := len(rs)
	if n == 0 {
		return nil
	}
	last := rs[n-1]
	head := string(rs[:n-1])

	var out []nominal
	if n >= 2 && oneOf(last, '기', '음') {
		out = append(out, nominal{verb: head, nom: string(last)})
	}
	if hangul.Final(last) == 'ㅁ' {
		if base, ok := hangul.WithFinal(last, 0); ok {
			out = append(out, nominal{verb: head + string(base), nom: "ㅁ"})
		}
	}
	return out
}
