package morph

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kotaroooo0/koma/dictionary"
)

func TestRestoreIrregular(t *testing.T) {
	t.Parallel()
	cases := []struct {
		stem     string
		ending   string
		expected Restoration
	}{
		{stem: "도우", ending: "ㄴ", expected: Restoration{Stem: "돕", Ending: "은", Class: dictionary.IrrBieup}},
		{stem: "도우", ending: "니", expected: Restoration{Stem: "돕", Ending: "으니", Class: dictionary.IrrBieup}},
		{stem: "도오", ending: "았", expected: Restoration{Stem: "돕", Ending: "았", Class: dictionary.IrrBieup}},
		{stem: "아", ending: "는", expected: Restoration{Stem: "알", Ending: "는", Class: dictionary.IrrLieul}},
		{stem: "들", ending: "어", expected: Restoration{Stem: "듣", Ending: "어", Class: dictionary.IrrDigeut}},
		{stem: "지", ending: "어", expected: Restoration{Stem: "짓", Ending: "어", Class: dictionary.IrrSiot}},
		{stem: "불", ending: "러", expected: Restoration{Stem: "부르", Ending: "어", Class: dictionary.IrrLeu}},
		{stem: "이르", ending: "러", expected: Restoration{Stem: "이르", Ending: "어", Class: dictionary.IrrReo}},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("stem = %s, ending = %s", tt.stem, tt.ending), func(t *testing.T) {
			actual, ok := RestoreIrregular(tt.stem, tt.ending)
			if !ok {
				t.Fatalf("RestoreIrregular(%q, %q) found nothing", tt.stem, tt.ending)
			}
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("RestoreIrregular(%q, %q) mismatch (-want +got):\n%s", tt.stem, tt.ending, diff)
			}
		})
	}
}

func TestRestorations(t *testing.T) {
	t.Parallel()
	cases := []struct {
		stem     string
		ending   string
		contains Restoration
	}{
		{stem: "파래", ending: "어", contains: Restoration{Stem: "파랗", Ending: "어", Class: dictionary.IrrHieut}},
		{stem: "파라", ending: "ㄴ", contains: Restoration{Stem: "파랗", Ending: "ㄴ", Class: dictionary.IrrHieut}},
		{stem: "퍼", ending: "어", contains: Restoration{Stem: "푸", Ending: "어", Class: dictionary.IrrWu}},
		{stem: "불러", ending: "었", contains: Restoration{Stem: "부르", Ending: "었", Class: dictionary.IrrLeu}},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("stem = %s, ending = %s", tt.stem, tt.ending), func(t *testing.T) {
			found := false
			for _, r := range Restorations(tt.stem, tt.ending) {
				if r == tt.contains {
					found = true
				}
			}
			if !found {
				t.Errorf("Restorations(%q, %q) = %v, want to contain %v", tt.stem, tt.ending, Restorations(tt.stem, tt.ending), tt.contains)
			}
		})
	}
}

func TestRestoreIrregularNoMatch(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct{ stem, ending string }{
		{stem: "", ending: "어"},
		{stem: "먹", ending: ""},
		{stem: "먹", ending: "다"},
	} {
		if r, ok := RestoreIrregular(tt.stem, tt.ending); ok {
			t.Errorf("RestoreIrregular(%q, %q) = %v, want nothing", tt.stem, tt.ending, r)
		}
	}
}
