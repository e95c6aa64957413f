package dictionary

import (
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"total.dic": {Data: []byte(`# comment
학교,10000000X
사랑,10010X
돕,01000000B
매우,00100000X
오늘,10100000X
가,01000000X
broken line
너무,00100000X,extra
짧은,100
`)},
		"extension.dic":   {Data: []byte("학교,10000100X\n")},
		"compounds.dic":   {Data: []byte("도서관자료:도서관,자료\n:빈\n")},
		"uncompounds.dic": {Data: []byte("강남역:강남,역\n")},
		"cj.dic":          {Data: []byte("學校:학교\n잘못된줄\n")},
		"josa.dic":        {Data: []byte("이\n가\n에서\n에게\n")},
		"eomi.dic":        {Data: []byte("다\n어서\nㄴ다\n은\n을\n습니다\n")},
		"prefix.dic":      {Data: []byte("대\n")},
		"suffix.dic":      {Data: []byte("적\n")},
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dic, err := Load(testFS(), DefaultFiles())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// 학교は拡張辞書で上書きされる
	if got := dic.Word("학교"); got == nil || got.Features != "10000100X" {
		t.Errorf("Word(학교) = %+v, want features 10000100X", got)
	}
	if got := dic.Word("사랑"); got == nil || got.Features != "10010000X" {
		t.Errorf("Word(사랑) = %+v, want padded features 10010000X", got)
	}
	for _, w := range []string{"broken line", "너무", "짧은"} {
		if dic.Word(w) != nil {
			t.Errorf("Word(%q) should be skipped", w)
		}
	}
	// total 6語 + 複合名詞 1語
	if dic.Len() != 7 {
		t.Errorf("Len() = %d, want 7", dic.Len())
	}

	compound := dic.CompoundNoun("도서관자료")
	if compound == nil || !compound.IsCompoundOrigin() {
		t.Fatalf("CompoundNoun(도서관자료) = %+v", compound)
	}
	expected := []Compound{
		{Word: "도서관", Offset: 0, Exists: true, POS: PosNoun},
		{Word: "자료", Offset: 3, Exists: true, POS: PosNoun},
	}
	if diff := cmp.Diff(expected, compound.Compounds); diff != "" {
		t.Errorf("compounds mismatch (-want +got):\n%s", diff)
	}

	un := dic.Uncompound("강남역")
	if un == nil || len(un.Compounds) != 2 || un.Compounds[1].Offset != 2 {
		t.Errorf("Uncompound(강남역) = %+v", un)
	}
	if w, ok := dic.CJWord("學校"); !ok || w != "학교" {
		t.Errorf("CJWord(學校) = %q, %v", w, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	fsys := testFS()
	delete(fsys, "josa.dic")
	_, err := Load(fsys, DefaultFiles())
	if !errors.Is(err, ErrLoad) {
		t.Errorf("Load() error = %v, want ErrLoad", err)
	}
}

func TestLoadWithoutExtension(t *testing.T) {
	t.Parallel()
	fsys := testFS()
	delete(fsys, "extension.dic")
	dic, err := Load(fsys, DefaultFiles())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := dic.Word("학교"); got == nil || got.Features != "10000000X" {
		t.Errorf("Word(학교) = %+v", got)
	}
}

func TestLookups(t *testing.T) {
	t.Parallel()
	dic, err := Load(testFS(), DefaultFiles())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cases := []struct {
		name     string
		lookup   func(string) *Entry
		key      string
		expected bool
	}{
		{name: "Noun", lookup: dic.Noun, key: "학교", expected: true},
		{name: "Noun", lookup: dic.Noun, key: "돕", expected: false},
		{name: "Verb", lookup: dic.Verb, key: "돕", expected: true},
		{name: "Adverb", lookup: dic.Adverb, key: "오늘", expected: true},
		{name: "Busa", lookup: dic.Busa, key: "오늘", expected: false},
		{name: "Busa", lookup: dic.Busa, key: "매우", expected: true},
		{name: "WordExceptVerb", lookup: dic.WordExceptVerb, key: "가", expected: false},
		{name: "WordExceptVerb", lookup: dic.WordExceptVerb, key: "매우", expected: true},
		{name: "DoVerb", lookup: dic.DoVerb, key: "사랑", expected: true},
		{name: "CompoundNoun", lookup: dic.CompoundNoun, key: "도서관자료", expected: true},
		{name: "Noun", lookup: dic.Noun, key: "도서관자료", expected: false},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("%s(%s)", tt.name, tt.key), func(t *testing.T) {
			if got := tt.lookup(tt.key) != nil; got != tt.expected {
				t.Errorf("%s(%q) found = %v, want %v", tt.name, tt.key, got, tt.expected)
			}
		})
	}

	if dic.IrregularVerb("돕", IrrBieup) == nil {
		t.Errorf("IrregularVerb(돕, B) = nil")
	}
	if dic.IrregularVerb("돕", IrrLieul) != nil {
		t.Errorf("IrregularVerb(돕, U) should be nil")
	}
	if !dic.IsVerbOnly("가") || dic.IsVerbOnly("학교") {
		t.Errorf("IsVerbOnly mismatch")
	}
	if !dic.HasPrefix("도서") || dic.HasPrefix("도서관자료를") {
		t.Errorf("HasPrefix mismatch")
	}
	if eomi, ok := dic.CombineEomi('ㄹ', ""); !ok || eomi != "을" {
		t.Errorf("CombineEomi(ㄹ) = %q, %v", eomi, ok)
	}
	if _, ok := dic.CombineEomi('ㅁ', "다"); ok {
		t.Errorf("CombineEomi(ㅁ, 다) should fail")
	}
}

func TestSyllable(t *testing.T) {
	t.Parallel()
	dic, err := Load(testFS(), DefaultFiles())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cases := []struct {
		r        rune
		expected SyllableFeature
	}{
		{r: '에', expected: JosaStart},
		{r: '서', expected: JosaCont | EomiStart | EomiCont},
		{r: '게', expected: JosaCont},
		{r: '다', expected: EomiStart | EomiCont},
		{r: '이', expected: JosaStart},
		{r: '습', expected: EomiStart},
		{r: '학', expected: 0},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("syllable = %c", tt.r), func(t *testing.T) {
			if got := dic.Syllable(tt.r); got != tt.expected {
				t.Errorf("Syllable(%c) = %04b, want %04b", tt.r, got, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	dic, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	again, _ := Default()
	if dic != again {
		t.Errorf("Default() should return the same dictionary")
	}
	for _, w := range []string{"학교", "도서관", "자료", "돕"} {
		if dic.Word(w) == nil {
			t.Errorf("Word(%q) = nil", w)
		}
	}
	if dic.IsJosa("이다") || !dic.IsJosa("에서") {
		t.Errorf("josa list mismatch")
	}
}

func TestEntryFeature(t *testing.T) {
	t.Parallel()
	var nilEntry *Entry
	if nilEntry.IsNoun() || nilEntry.Feature(IdxNoun) != '0' {
		t.Errorf("nil entry should have no features")
	}
	e := NewEntry("알", "01000000U")
	if e.Irregular() != IrrLieul || e.Feature(20) != '0' {
		t.Errorf("Irregular() = %c", e.Irregular())
	}
}
