package hangul

import "strings"

// 国語のローマ字表記法(Revised Romanization)
var (
	initialRoman = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	medialRoman = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	finalRoman = []string{
		"", "k", "k", "k", "n", "n", "n", "t", "l", "k",
		"m", "l", "l", "l", "p", "l", "m", "p", "p",
		"t", "t", "ng", "t", "t", "k", "t", "p", "t",
	}
)

// Romanize はハングル音節をローマ字に置き換える。それ以外の文字はそのまま
// 語頭のㄹはr、終声は代表音で表記する
func Romanize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !IsSyllable(r) {
			b.WriteRune(r)
			continue
		}
		code := int(r - base)
		b.WriteString(initialRoman[code/syllableSize])
		b.WriteString(medialRoman[(code/finalCount)%medialCount])
		b.WriteString(finalRoman[code%finalCount])
	}
	return b.String()
}
