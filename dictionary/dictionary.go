package dictionary

import "unicode/utf8"

// Dictionary は読み込み後は変更されない。複数のgoroutineから同時に参照してよい
type Dictionary struct {
	words       *Trie[*Entry]
	uncompounds map[string]*Entry
	cjwords     map[string]string
	josa        map[string]struct{}
	eomi        map[string]struct{}
	prefix      map[string]struct{}
	suffix      map[string]struct{}
	syllables   map[rune]SyllableFeature
}

func (d *Dictionary) Len() int {
	return d.words.Len()
}

func (d *Dictionary) Word(key string) *Entry {
	e, ok := d.words.Get(key)
	if !ok {
		return nil
	}
	return e
}

// WordExceptVerb は名詞か副詞として登録されている語を返す
func (d *Dictionary) WordExceptVerb(key string) *Entry {
	e := d.Word(key)
	if e.IsNoun() || e.IsAdverb() {
		return e
	}
	return nil
}

func (d *Dictionary) Noun(key string) *Entry {
	if e := d.Word(key); e.IsNoun() {
		return e
	}
	return nil
}

// CompoundNoun は複合名詞辞書由来の語も含めて名詞を返す
func (d *Dictionary) CompoundNoun(key string) *Entry {
	if e := d.Word(key); e.IsNoun() || e.IsCompoundOrigin() {
		return e
	}
	return nil
}

func (d *Dictionary) Verb(key string) *Entry {
	if e := d.Word(key); e.IsVerb() {
		return e
	}
	return nil
}

func (d *Dictionary) Adverb(key string) *Entry {
	if e := d.Word(key); e.IsAdverb() {
		return e
	}
	return nil
}

// Busa は名詞を兼ねない副詞を返す
func (d *Dictionary) Busa(key string) *Entry {
	if e := d.Word(key); e.IsAdverb() && e.Feature(IdxNoun) == '0' {
		return e
	}
	return nil
}

func (d *Dictionary) IrregularVerb(key string, class byte) *Entry {
	if e := d.Word(key); e.IsVerb() && e.Irregular() == class {
		return e
	}
	return nil
}

func (d *Dictionary) BeVerb(key string) *Entry {
	if e := d.Word(key); e.IsBeVerb() {
		return e
	}
	return nil
}

func (d *Dictionary) DoVerb(key string) *Entry {
	if e := d.Word(key); e.IsDoVerb() {
		return e
	}
	return nil
}

// IsVerbOnly は動詞としてのみ登録されている語かどうかを返す
func (d *Dictionary) IsVerbOnly(key string) bool {
	e := d.Word(key)
	return e.IsVerb() && !e.IsNoun() && !e.IsCompoundOrigin() && !e.IsAdverb()
}

func (d *Dictionary) Uncompound(key string) *Entry {
	return d.uncompounds[key]
}

// CJWord は漢字語のハングル表記を返す
func (d *Dictionary) CJWord(key string) (string, bool) {
	w, ok := d.cjwords[key]
	return w, ok
}

func (d *Dictionary) PrefixedBy(prefix string) *Iterator[*Entry] {
	return d.words.PrefixedBy(prefix)
}

// HasPrefix はprefixで始まる語が辞書に存在するかどうかを返す
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.words.PrefixedBy(prefix).HasNext()
}

func (d *Dictionary) IsJosa(s string) bool {
	_, ok := d.josa[s]
	return ok
}

func (d *Dictionary) IsEomi(s string) bool {
	_, ok := d.eomi[s]
	return ok
}

func (d *Dictionary) IsPrefix(s string) bool {
	_, ok := d.prefix[s]
	return ok
}

func (d *Dictionary) IsSuffix(s string) bool {
	_, ok := d.suffix[s]
	return ok
}

// CombineEomi は語幹末尾から外したㄴ,ㄹ,ㅁ,ㅂと後続を合わせて語尾になるかを調べる
func (d *Dictionary) CombineEomi(jamo rune, rest string) (string, bool) {
	var eomi string
	switch jamo {
	case 'ㄴ':
		eomi = "은" + rest
	case 'ㄹ':
		eomi = "을" + rest
	case 'ㅁ':
		eomi = "음" + rest
	case 'ㅂ':
		eomi = "습" + rest
	default:
		eomi = string(jamo) + rest
	}
	if d.IsEomi(eomi) {
		return eomi, true
	}
	return "", false
}

// SyllableFeature は音節が助詞・語尾のどの位置に現れうるかを表す
type SyllableFeature uint8

const (
	JosaStart SyllableFeature = 1 << iota // 助詞の1音節目になりうる
	JosaCont                              // 助詞の2音節目以降になりうる
	EomiStart                             // 語尾の1音節目になりうる
	EomiCont                              // 語尾の2音節目以降になりうる
)

func (f SyllableFeature) Has(flag SyllableFeature) bool {
	return f&flag != 0
}

func (d *Dictionary) Syllable(r rune) SyllableFeature {
	return d.syllables[r]
}

func buildSyllables(josa, eomi map[string]struct{}) map[rune]SyllableFeature {
	m := make(map[rune]SyllableFeature)
	for w := range josa {
		for i, r := range []rune(w) {
			if i == 0 {
				m[r] |= JosaStart
			} else {
				m[r] |= JosaCont
			}
		}
	}
	for w := range eomi {
		rs := []rune(w)
		for i, r := range rs {
			if i == 0 {
				m[r] |= EomiStart
			} else {
				m[r] |= EomiCont
			}
		}
		// 가서(가+아서), 간다(가+ㄴ다) のように先頭が語幹に吸収される語尾は2音節目から始まりうる
		if len(rs) > 1 && absorbable(rs[0]) {
			m[rs[1]] |= EomiStart
		}
	}
	return m
}

func absorbable(r rune) bool {
	switch r {
	case '아', '어', '여', 'ㄴ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅆ':
		return true
	}
	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
