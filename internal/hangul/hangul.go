package hangul

import "strings"

const (
	base         = 0xAC00
	last         = 0xD7A3
	medialCount  = 21
	finalCount   = 28
	jamoFirst    = 0x3131
	jamoLast     = 0x318E
	syllableSize = medialCount * finalCount
)

var (
	initials = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	medials  = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	finals   = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}

	initialIndex = make(map[rune]int)
	medialIndex  = make(map[rune]int)
	finalIndex   = make(map[rune]int)
)

func init() {
	for i, r := range initials {
		initialIndex[r] = i
	}
	for i, r := range medials {
		medialIndex[r] = i
	}
	for i, r := range finals {
		finalIndex[r] = i
	}
}

// IsSyllable は完成形のハングル音節かどうかを返す
func IsSyllable(r rune) bool {
	return r >= base && r <= last
}

// IsJamo は互換字母(ㄱ,ㅏ...)かどうかを返す
func IsJamo(r rune) bool {
	return r >= jamoFirst && r <= jamoLast
}

// IsHangul は文字列が空でなく全て音節か字母で構成されているかを返す
func IsHangul(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsSyllable(r) && !IsJamo(r) {
			return false
		}
	}
	return true
}

// Decompose は音節を初声・中声(・終声)に分解する
// 終声がなければ2要素、あれば3要素。音節でなければそのまま返す
func Decompose(r rune) []rune {
	if !IsSyllable(r) {
		return []rune{r}
	}
	code := int(r - base)
	f := code % finalCount
	m := (code / finalCount) % medialCount
	i := code / syllableSize
	if f == 0 {
		return []rune{initials[i], medials[m]}
	}
	return []rune{initials[i], medials[m], finals[f]}
}

// Compose は初声・中声・終声から音節を組み立てる。終声なしは0
func Compose(initial, medial, final rune) (rune, bool) {
	i, ok := initialIndex[initial]
	if !ok {
		return 0, false
	}
	m, ok := medialIndex[medial]
	if !ok {
		return 0, false
	}
	f, ok := finalIndex[final]
	if !ok {
		return 0, false
	}
	return rune(base + i*syllableSize + m*finalCount + f), true
}

// Components は音節を構成する字母の数(2か3)。音節でなければ0
func Components(r rune) int {
	if !IsSyllable(r) {
		return 0
	}
	if (r-base)%finalCount == 0 {
		return 2
	}
	return 3
}

func Initial(r rune) rune {
	if !IsSyllable(r) {
		return 0
	}
	return initials[int(r-base)/syllableSize]
}

func Medial(r rune) rune {
	if !IsSyllable(r) {
		return 0
	}
	return medials[(int(r-base)/finalCount)%medialCount]
}

// Final は終声を返す。終声がない場合は0
func Final(r rune) rune {
	if !IsSyllable(r) {
		return 0
	}
	return finals[int(r-base)%finalCount]
}

func HasFinal(r rune) bool {
	return Final(r) != 0
}

// WithFinal は終声を差し替えた音節を返す。0を渡すと終声を取り除く
func WithFinal(r rune, final rune) (rune, bool) {
	if !IsSyllable(r) {
		return 0, false
	}
	f, ok := finalIndex[final]
	if !ok {
		return 0, false
	}
	code := int(r - base)
	return rune(base + code - code%finalCount + f), true
}

// ReplaceLast は文字列末尾の音節を置き換える
func ReplaceLast(s string, r rune) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return string(r)
	}
	rs[len(rs)-1] = r
	return string(rs)
}

// ComposeJamo は字母の並び(ㅎㅏㄴ)を音節(한)にまとめる
func ComposeJamo(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); {
		r := rs[i]
		if _, ok := initialIndex[r]; ok && i+1 < len(rs) {
			if _, ok := medialIndex[rs[i+1]]; ok {
				var final rune
				consumed := 2
				if i+2 < len(rs) {
					_, isFinal := finalIndex[rs[i+2]]
					_, nextIsMedial := medialIndex[safeAt(rs, i+3)]
					if isFinal && rs[i+2] != 0 && !nextIsMedial {
						final = rs[i+2]
						consumed = 3
					}
				}
				if c, ok := Compose(r, rs[i+1], final); ok {
					b.WriteRune(c)
					i += consumed
					continue
				}
			}
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

func safeAt(rs []rune, i int) rune {
	if i < len(rs) {
		return rs[i]
	}
	return -1
}
