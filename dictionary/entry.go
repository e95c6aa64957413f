package dictionary

// 素性ベクトルの添字
const (
	IdxNoun         = 0 // '1': 名詞, '2': 複合名詞辞書由来
	IdxVerb         = 1
	IdxAdverb       = 2
	IdxDoVerb       = 3 // 하다動詞になれる
	IdxBeVerb       = 4 // 되다動詞になれる
	IdxNamedEntity  = 5
	IdxAdjective    = 6
	IdxNounProperty = 7 // 'M': 単位名詞
	IdxIrregular    = 8

	featureSize = 9
)

// 不規則活用の種類
const (
	IrrRegular byte = 'X'
	IrrBieup   byte = 'B' // ㅂ불규칙: 돕다 -> 도와
	IrrHieut   byte = 'H' // ㅎ불규칙: 파랗다 -> 파래
	IrrLieul   byte = 'U' // ㄹ탈락: 알다 -> 아니
	IrrLeu     byte = 'L' // 르불규칙: 부르다 -> 불러
	IrrSiot    byte = 'S' // ㅅ불규칙: 짓다 -> 지어
	IrrDigeut  byte = 'D' // ㄷ불규칙: 듣다 -> 들어
	IrrReo     byte = 'R' // 러불규칙: 이르다 -> 이르러
	IrrWu      byte = 'W' // 우불규칙: 푸다 -> 퍼
)

// 品詞
const (
	PosNoun byte = 'N'
	PosVerb byte = 'V'
	PosAid  byte = 'Z'
)

type Entry struct {
	Word      string
	Features  string
	Compounds []Compound
}

func NewEntry(word, features string, compounds ...Compound) *Entry {
	return &Entry{
		Word:      word,
		Features:  features,
		Compounds: compounds,
	}
}

// Feature は添字の素性を返す。範囲外は'0'
func (e *Entry) Feature(i int) byte {
	if e == nil || i < 0 || i >= len(e.Features) {
		return '0'
	}
	return e.Features[i]
}

func (e *Entry) IsNoun() bool           { return e.Feature(IdxNoun) == '1' }
func (e *Entry) IsCompoundOrigin() bool { return e.Feature(IdxNoun) == '2' }
func (e *Entry) IsVerb() bool           { return e.Feature(IdxVerb) == '1' }
func (e *Entry) IsAdverb() bool         { return e.Feature(IdxAdverb) == '1' }
func (e *Entry) IsDoVerb() bool         { return e.Feature(IdxDoVerb) == '1' }
func (e *Entry) IsBeVerb() bool         { return e.Feature(IdxBeVerb) == '1' }
func (e *Entry) IsNamedEntity() bool    { return e.Feature(IdxNamedEntity) == '1' }
func (e *Entry) IsAdjective() bool      { return e.Feature(IdxAdjective) == '1' }
func (e *Entry) Irregular() byte        { return e.Feature(IdxIrregular) }

// Compound は複合名詞を構成する単位名詞
type Compound struct {
	Word   string
	Offset int // 親の語の中での音節位置。不明なら-1
	Exists bool
	POS    byte
}

func NewCompound(word string, offset int, exists bool) Compound {
	return Compound{
		Word:   word,
		Offset: offset,
		Exists: exists,
		POS:    PosNoun,
	}
}

// padFeatures は6桁の旧形式の素性を9桁にする
func padFeatures(s string) string {
	if len(s) == 6 {
		return s[:5] + "000" + s[5:]
	}
	return s
}
