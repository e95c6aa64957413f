package koma

// InvertedIndex はトークンIDからポスティングリストへの転置インデックス
type InvertedIndex map[TokenID]PostingList

func (ii InvertedIndex) TokenIDs() []TokenID {
	ids := make([]TokenID, 0, len(ii))
	for id := range ii {
		ids = append(ids, id)
	}
	return ids
}

// PostingList はドキュメントIDの昇順に並んだポスティングの連結リスト
type PostingList struct {
	Postings *Postings
}

func NewPostingList(p *Postings) PostingList {
	return PostingList{
		Postings: p,
	}
}

type Postings struct {
	DocumentID DocumentID
	Positions  []uint64 // ドキュメント内での出現位置
	Next       *Postings
}

func NewPostings(docID DocumentID, positions []uint64, next *Postings) *Postings {
	return &Postings{
		DocumentID: docID,
		Positions:  positions,
		Next:       next,
	}
}

// PushBack は p の直後に e を挿入する
func (p *Postings) PushBack(e *Postings) {
	e.Next = p.Next
	p.Next = e
}

// Size はトークンを含むドキュメントの数
func (pl PostingList) Size() int {
	size := 0
	for p := pl.Postings; p != nil; p = p.Next {
		size++
	}
	return size
}

// AppearanceCountInDocument はドキュメントでのトークンの出現回数
func (pl PostingList) AppearanceCountInDocument(docID DocumentID) int {
	for p := pl.Postings; p != nil && p.DocumentID <= docID; p = p.Next {
		if p.DocumentID == docID {
			return len(p.Positions)
		}
	}
	return 0
}

func (pl PostingList) DocumentIDs() []DocumentID {
	ids := make([]DocumentID, 0)
	for p := pl.Postings; p != nil; p = p.Next {
		ids = append(ids, p.DocumentID)
	}
	return ids
}

// Positions はドキュメントでのトークンの出現位置
func (pl PostingList) Positions(docID DocumentID) []uint64 {
	for p := pl.Postings; p != nil && p.DocumentID <= docID; p = p.Next {
		if p.DocumentID == docID {
			return p.Positions
		}
	}
	return nil
}

// Merge は二つのリストをドキュメントIDの順にまとめる
// 同じドキュメントがあれば pl の方を残す。引数のリストは壊れる
func (pl PostingList) Merge(target PostingList) PostingList {
	if pl.Postings == nil {
		return target
	}
	if target.Postings == nil {
		return pl
	}

	head := &Postings{}
	tail := head
	a, b := pl.Postings, target.Postings
	for a != nil && b != nil {
		switch {
		case a.DocumentID < b.DocumentID:
			tail.Next, a = a, a.Next
		case a.DocumentID > b.DocumentID:
			tail.Next, b = b, b.Next
		default:
			tail.Next, a, b = a, a.Next, b.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}
	return NewPostingList(head.Next)
}

// clone は保存用に複製する
func (pl PostingList) clone() PostingList {
	head := &Postings{}
	tail := head
	for p := pl.Postings; p != nil; p = p.Next {
		tail.Next = NewPostings(p.DocumentID, append([]uint64(nil), p.Positions...), nil)
		tail = tail.Next
	}
	return NewPostingList(head.Next)
}
