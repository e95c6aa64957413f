package hangul

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecompose(t *testing.T) {
	cases := []struct {
		r        rune
		expected []rune
	}{
		{r: '가', expected: []rune{'ㄱ', 'ㅏ'}},
		{r: '학', expected: []rune{'ㅎ', 'ㅏ', 'ㄱ'}},
		{r: '돕', expected: []rune{'ㄷ', 'ㅗ', 'ㅂ'}},
		{r: '워', expected: []rune{'ㅇ', 'ㅝ'}},
		{r: 'a', expected: []rune{'a'}},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("r = %c, expected = %v", tt.r, string(tt.expected)), func(t *testing.T) {
			if diff := cmp.Diff(Decompose(tt.r), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	cases := []struct {
		initial, medial, final rune
		expected               rune
		ok                     bool
	}{
		{initial: 'ㄱ', medial: 'ㅏ', final: 0, expected: '가', ok: true},
		{initial: 'ㅎ', medial: 'ㅏ', final: 'ㄱ', expected: '학', ok: true},
		{initial: 'ㅎ', medial: 'ㅏ', final: 'ㄸ', expected: 0, ok: false},
		{initial: 'ㅏ', medial: 'ㅏ', final: 0, expected: 0, ok: false},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("expected = %c", tt.expected), func(t *testing.T) {
			got, ok := Compose(tt.initial, tt.medial, tt.final)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("Compose() = (%c, %v), want (%c, %v)", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for r := rune(base); r <= last; r += 97 {
		parts := Decompose(r)
		var final rune
		if len(parts) == 3 {
			final = parts[2]
		}
		got, ok := Compose(parts[0], parts[1], final)
		if !ok || got != r {
			t.Fatalf("Compose(Decompose(%c)) = %c", r, got)
		}
	}
}

func TestWithFinal(t *testing.T) {
	cases := []struct {
		r, final, expected rune
	}{
		{r: '우', final: 'ㅂ', expected: '웁'},
		{r: '돕', final: 0, expected: '도'},
		{r: '아', final: 'ㄹ', expected: '알'},
	}
	for _, tt := range cases {
		got, ok := WithFinal(tt.r, tt.final)
		if !ok || got != tt.expected {
			t.Errorf("WithFinal(%c, %c) = %c, want %c", tt.r, tt.final, got, tt.expected)
		}
	}
	if Final('학') != 'ㄱ' || Final('하') != 0 || HasFinal('가') {
		t.Errorf("Final() mismatch")
	}
	if Components('가') != 2 || Components('각') != 3 || Components('x') != 0 {
		t.Errorf("Components() mismatch")
	}
	if Initial('한') != 'ㅎ' || Medial('한') != 'ㅏ' {
		t.Errorf("Initial()/Medial() mismatch")
	}
}

func TestComposeJamo(t *testing.T) {
	cases := []struct {
		text     string
		expected string
	}{
		{text: "ㅎㅏㄴㄱㅜㄱ", expected: "한국"},
		{text: "ㅎㅏㄴㅏ", expected: "하나"},
		{text: "한국", expected: "한국"},
		{text: "ㅋㅋ", expected: "ㅋㅋ"},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(ComposeJamo(tt.text), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestRomanize(t *testing.T) {
	cases := []struct {
		text     string
		expected string
	}{
		{text: "한국", expected: "hanguk"},
		{text: "서울", expected: "seoul"},
		{text: "학교 abc", expected: "hakgyo abc"},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(Romanize(tt.text), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestIsHangul(t *testing.T) {
	if !IsHangul("한국ㅋ") || IsHangul("") || IsHangul("한a") {
		t.Errorf("IsHangul() mismatch")
	}
	if !IsJamo('ㅂ') || IsJamo('바') {
		t.Errorf("IsJamo() mismatch")
	}
}
