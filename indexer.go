package koma

import (
	"fmt"

	"github.com/kotaroooo0/koma/internal/metrics"
)

type Indexer struct {
	Storage       Storage       // 永続化層
	Analyzer      Analyzer      // 文章分割のためのアナライザ
	InvertedIndex InvertedIndex // 転置インデックス(メモリ上)
	threshold     int
	metrics       *metrics.Metrics
}

// NewIndexer はメモリ上の転置インデックスのトークン数が threshold を超えたらストレージに書き出すIndexerを作る
func NewIndexer(storage Storage, analyzer Analyzer, threshold int, m *metrics.Metrics) *Indexer {
	return &Indexer{
		Storage:       storage,
		Analyzer:      analyzer,
		InvertedIndex: make(InvertedIndex),
		threshold:     threshold,
		metrics:       m,
	}
}

// 1.ドキュメントからトークンを取り出す
// 2.トークンごとにポスティングリストを作って、それをメモリ上の転置インデックスに追加する
// 3.メモリ上の転置インデックスがある程度のサイズになったら、ストレージ上の転置インデックスにマージする
func (i *Indexer) AddDocument(doc Document) error {
	tokens := i.Analyzer.Analyze(doc.Body)
	doc.TokenCount = tokens.Size()

	// ストレージにドキュメントを格納し、ドキュメントIDを取得
	docID, err := i.Storage.AddDocument(doc)
	if err != nil {
		return fmt.Errorf("add document: %w", err)
	}
	doc.ID = docID

	// ドキュメントからメモリ上の転置インデックスを更新
	if err := i.updateMemoryInvertedIndexByDocument(doc.ID, tokens); err != nil {
		return err
	}
	i.metrics.DocIndexed()

	// メモリ上の転置インデックスのサイズが閾値以下であれば、処理終了
	if len(i.InvertedIndex) <= i.threshold {
		return nil
	}
	return i.Flush()
}

// Flush はメモリ上の転置インデックスをストレージ上の転置インデックスにマージする
func (i *Indexer) Flush() (err error) {
	if len(i.InvertedIndex) == 0 {
		return nil
	}
	defer func() { i.metrics.Flush(err) }()

	// マージ元の転置リストをストレージから読み出す
	storageInvertedIndex, err := i.Storage.GetInvertedIndexByTokenIDs(i.InvertedIndex.TokenIDs())
	if err != nil {
		return fmt.Errorf("read inverted index: %w", err)
	}

	for tokenID, postingList := range i.InvertedIndex {
		i.InvertedIndex[tokenID] = postingList.Merge(storageInvertedIndex[tokenID])
	}
	if err := i.Storage.UpsertInvertedIndex(i.InvertedIndex); err != nil {
		return fmt.Errorf("write inverted index: %w", err)
	}

	// メモリの転置インデックスをリセット
	i.InvertedIndex = InvertedIndex{}
	return nil
}

// 文書からメモリ上の転置インデックスを更新する
func (i *Indexer) updateMemoryInvertedIndexByDocument(docID DocumentID, tokens TokenStream) error {
	positions := tokens.Positions()
	for idx, token := range tokens.Tokens {
		if err := i.updateMemoryPostingListByToken(docID, token, positions[idx]); err != nil {
			return err
		}
	}
	return nil
}

// トークンからメモリ上の転置インデックスを更新する
func (i *Indexer) updateMemoryPostingListByToken(docID DocumentID, token Token, pos uint64) error {
	// ストレージにIDの管理を任せる
	if _, err := i.Storage.AddToken(NewToken(token.Term)); err != nil {
		return fmt.Errorf("add token %q: %w", token.Term, err)
	}
	stored, err := i.Storage.GetTokenByTerm(token.Term)
	if err != nil {
		return fmt.Errorf("get token %q: %w", token.Term, err)
	}

	postingList, ok := i.InvertedIndex[stored.ID]
	// メモリ上にトークンに対応するポスティングリストがない時
	if !ok {
		i.InvertedIndex[stored.ID] = NewPostingList(NewPostings(docID, []uint64{pos}, nil))
		return nil
	}

	// 既に対象ドキュメントのポスティングが存在する時
	p := postingList.Postings
	for p != nil && p.DocumentID != docID {
		p = p.Next
	}
	if p != nil {
		// 同じ位置に複数の索引語が出ることがある
		if n := len(p.Positions); n == 0 || p.Positions[n-1] != pos {
			p.Positions = append(p.Positions, pos)
		}
		return nil
	}

	// まだ対象ドキュメントのポスティングが存在しない時
	// 追加されるポスティングのドキュメントIDが最小の時は先頭に入れる
	if docID < postingList.Postings.DocumentID {
		postingList.Postings = NewPostings(docID, []uint64{pos}, postingList.Postings)
		i.InvertedIndex[stored.ID] = postingList
		return nil
	}
	// ドキュメントIDが昇順になるように挿入する場所を探索
	t := postingList.Postings
	for t.Next != nil && t.Next.DocumentID < docID {
		t = t.Next
	}
	t.PushBack(NewPostings(docID, []uint64{pos}, nil))
	return nil
}
