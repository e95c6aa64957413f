package koma

import (
	"slices"
	"strings"

	"github.com/kotaroooo0/koma/internal/hangul"
)

type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	replacer *strings.Replacer
}

// NewMappingCharFilter は mapper のキーを値に置き換えるフィルタを作る
// キーが重なる場合は長いキーを優先する
func NewMappingCharFilter(mapper map[string]string) MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, mapper[k])
	}
	return MappingCharFilter{replacer: strings.NewReplacer(pairs...)}
}

func (c MappingCharFilter) Filter(s string) string {
	if c.replacer == nil {
		return s
	}
	return c.replacer.Replace(s)
}

// JamoComposeCharFilter は分解された字母(ㅎㅏㄴ)を音節(한)に戻す
type JamoComposeCharFilter struct{}

func NewJamoComposeCharFilter() JamoComposeCharFilter {
	return JamoComposeCharFilter{}
}

func (c JamoComposeCharFilter) Filter(s string) string {
	return hangul.ComposeJamo(s)
}
