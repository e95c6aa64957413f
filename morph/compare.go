package morph

import (
	"sort"
	"unicode/utf8"
)

// patternRank は同点時の並び順。体言単独は7、単一語は常に最上位として扱う
func patternRank(p Pattern) int {
	switch p {
	case PtnN:
		return 7
	case PtnAID:
		return 50
	}
	return int(p)
}

// Less はaがbより上位の候補ならtrue
// スコア降順、元の文字列の長さ降順、パターン順、語幹の長さ昇順で比べる
func Less(a, b Output) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if la, lb := utf8.RuneCountInString(a.Source), utf8.RuneCountInString(b.Source); la != lb {
		return la > lb
	}
	if ra, rb := patternRank(a.Pattern), patternRank(b.Pattern); ra != rb {
		return ra > rb
	}
	return utf8.RuneCountInString(a.Stem) < utf8.RuneCountInString(b.Stem)
}

func Sort(candidates []Output) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return Less(candidates[i], candidates[j])
	})
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
