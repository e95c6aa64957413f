package morphology

//go:generate mockgen -source=morphology.go -destination=../mock_morphology.go -package=koma

// github.com/kotaroooo0/koma/morph に直接依存しないようにラップする
type Morphology interface {
	// Analyze は文中で連続する어절を受け取り、어절ごとの索引語を返す
	Analyze(eojeols []string) [][]MorphologyToken
}

type MorphologyToken struct {
	Term              string
	Offset            int // 어절の中での音節位置
	PositionIncrement int
}

func NewMorphologyToken(term string, offset, positionIncrement int) MorphologyToken {
	return MorphologyToken{
		Term:              term,
		Offset:            offset,
		PositionIncrement: positionIncrement,
	}
}
