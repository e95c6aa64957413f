package koma

import (
	"fmt"
	"testing"
)

func TestMappingCharFilter_Filter(t *testing.T) {
	tests := []struct {
		mapper map[string]string
		s      string
		want   string
	}{
		{
			mapper: map[string]string{"か": "ka", "き": "ki"},
			s:      "かきくけこ",
			want:   "kakiくけこ",
		},
		{
			// 長いキーを優先する
			mapper: map[string]string{"ab": "X", "a": "Y"},
			s:      "abca",
			want:   "XcY",
		},
		{
			mapper: map[string]string{"＆": "&"},
			s:      "AT＆T",
			want:   "AT&T",
		},
		{
			mapper: nil,
			s:      "학교",
			want:   "학교",
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("mapper = %v, s = %v, want = %v", tt.mapper, tt.s, tt.want), func(t *testing.T) {
			c := NewMappingCharFilter(tt.mapper)
			if got := c.Filter(tt.s); got != tt.want {
				t.Errorf("MappingCharFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}

	var zero MappingCharFilter
	if got := zero.Filter("abc"); got != "abc" {
		t.Errorf("MappingCharFilter{}.Filter() = %v, want abc", got)
	}
}

func TestJamoComposeCharFilter_Filter(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{s: "ㅎㅏㄴㄱㅜㄱ 사람", want: "한국 사람"},
		{s: "ㅋㅋ", want: "ㅋㅋ"},
		{s: "abc", want: "abc"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("s = %v, want = %v", tt.s, tt.want), func(t *testing.T) {
			if got := NewJamoComposeCharFilter().Filter(tt.s); got != tt.want {
				t.Errorf("JamoComposeCharFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}
