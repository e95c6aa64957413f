package morph

import (
	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/internal/hangul"
)

// Restoration は不規則活用で変わった語幹を基本形に戻した結果
type Restoration struct {
	Stem   string
	Ending string
	Class  byte
}

// RestoreIrregular は語幹と語尾(または先語末語尾)から、最初に当てはまる不規則活用の復元を返す
// 入力は変更しない。辞書との照合は呼び出し側で行う
func RestoreIrregular(stem, ending string) (Restoration, bool) {
	rs := Restorations(stem, ending)
	if len(rs) == 0 {
		return Restoration{}, false
	}
	return rs[0], true
}

// Restorations は当てはまる全ての復元候補を規則の順に返す
func Restorations(stem, ending string) []Restoration {
	rs := []rune(stem)
	er := []rune(ending)
	n := len(rs)
	if n == 0 || len(er) == 0 || !hangul.IsSyllable(rs[n-1]) {
		return nil
	}
	last := rs[n-1]
	head := string(rs[:n-1])
	first := er[0]
	rest := string(er[1:])

	var out []Restoration
	add := func(s, e string, class byte) {
		out = append(out, Restoration{Stem: s, Ending: e, Class: class})
	}

	// ㅂ불규칙: 도우+ㄴ -> 돕+은, 도우+니 -> 돕+으니, 도오+았 -> 돕+았
	if n >= 2 && (last == '우' || last == '오') && !hangul.HasFinal(rs[n-2]) {
		if prev, ok := hangul.WithFinal(rs[n-2], 'ㅂ'); ok {
			base := string(rs[:n-2]) + string(prev)
			switch {
			case first == 'ㄴ':
				add(base, "은"+rest, dictionary.IrrBieup)
			case first == 'ㄹ':
				add(base, "을"+rest, dictionary.IrrBieup)
			case first == 'ㅁ':
				add(base, "음"+rest, dictionary.IrrBieup)
			case oneOf(first, '니', '면', '며', '시', '세'):
				add(base, "으"+ending, dictionary.IrrBieup)
			case oneOf(first, '아', '어', '았', '었'):
				add(base, ending, dictionary.IrrBieup)
			}
		}
	}

	final := hangul.Final(last)

	// ㄹ탈락: 아+는 -> 알+는
	if final == 0 && oneOf(first, 'ㄴ', 'ㄹ', 'ㅂ', '니', '는', '세', '시', '오', '나') {
		if s, ok := hangul.WithFinal(last, 'ㄹ'); ok {
			add(head+string(s), ending, dictionary.IrrLieul)
		}
	}

	// ㄷ불규칙: 들+어 -> 듣+어
	if final == 'ㄹ' && oneOf(first, '어', '아', '으', '었', '았', '은', '을', '음') {
		if s, ok := hangul.WithFinal(last, 'ㄷ'); ok {
			add(head+string(s), ending, dictionary.IrrDigeut)
		}
	}

	// ㅅ불규칙: 지+어 -> 짓+어
	if final == 0 && oneOf(first, '어', '아', '으', '었', '았') {
		if s, ok := hangul.WithFinal(last, 'ㅅ'); ok {
			add(head+string(s), ending, dictionary.IrrSiot)
		}
	}

	// 르불규칙: 불+러 -> 부르+어, 불러+었 -> 부르+었
	if final == 'ㄹ' && oneOf(first, '러', '라') {
		if s, ok := hangul.WithFinal(last, 0); ok {
			add(head+string(s)+"르", connectiveOf(first)+rest, dictionary.IrrLeu)
		}
	}
	if n >= 2 && oneOf(last, '러', '라') && hangul.Final(rs[n-2]) == 'ㄹ' && oneOf(first, '어', '아', '었', '았') {
		if s, ok := hangul.WithFinal(rs[n-2], 0); ok {
			add(string(rs[:n-2])+string(s)+"르", ending, dictionary.IrrLeu)
		}
	}

	// 러불규칙: 이르+러 -> 이르+어
	if last == '르' && first == '러' {
		add(stem, "어"+rest, dictionary.IrrReo)
	}
	if n >= 2 && last == '러' && rs[n-2] == '르' && oneOf(first, '어', '었') {
		add(head, ending, dictionary.IrrReo)
	}

	// ㅎ불규칙: 파래+어 -> 파랗+어, 파라+ㄴ -> 파랗+ㄴ
	if final == 0 {
		initial := hangul.Initial(last)
		switch medial := hangul.Medial(last); medial {
		case 'ㅐ':
			for _, m := range []rune{'ㅏ', 'ㅓ'} {
				if s, ok := hangul.Compose(initial, m, 'ㅎ'); ok {
					add(head+string(s), ending, dictionary.IrrHieut)
				}
			}
		case 'ㅏ', 'ㅓ':
			if oneOf(first, 'ㄴ', 'ㄹ', 'ㅁ', '니', '면', '오') {
				if s, ok := hangul.Compose(initial, medial, 'ㅎ'); ok {
					add(head+string(s), ending, dictionary.IrrHieut)
				}
			}
		}
	}

	// 우불규칙: 퍼+어 -> 푸+어
	if last == '퍼' && oneOf(first, '어', '었') {
		add(head+"푸", ending, dictionary.IrrWu)
	}

	return out
}

func connectiveOf(r rune) string {
	if r == '라' {
		return "아"
	}
	return "어"
}

func oneOf(r rune, candidates ...rune) bool {
	for _, c := range candidates {
		if r == c {
			return true
		}
	}
	return false
}
