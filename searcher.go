package koma

import (
	"fmt"
	"slices"
)

type Searcher interface {
	Search() ([]Document, error)
}

type Logic int

const (
	AND Logic = iota + 1
	OR
)

type MatchAllSearcher struct {
	storage Storage
}

func NewMatchAllSearcher(storage Storage) MatchAllSearcher {
	return MatchAllSearcher{
		storage: storage,
	}
}

func (ms MatchAllSearcher) Search() ([]Document, error) {
	return ms.storage.GetAllDocuments()
}

type MatchSearcher struct {
	tokenStream TokenStream
	logic       Logic
	storage     Storage
	sorter      Sorter
}

// NewMatchSearcher は sorter がnilならドキュメントIDの順に返すSearcherを作る
func NewMatchSearcher(tokenStream TokenStream, logic Logic, storage Storage, sorter Sorter) MatchSearcher {
	return MatchSearcher{
		tokenStream: tokenStream,
		logic:       logic,
		storage:     storage,
		sorter:      sorter,
	}
}

// Search は AND なら全ての語句を、OR ならいずれかの語句を含むドキュメントを返す
func (ms MatchSearcher) Search() ([]Document, error) {
	terms := uniqueTerms(ms.tokenStream.Terms())
	if len(terms) == 0 {
		return []Document{}, nil
	}
	tokens, err := ms.storage.GetTokensByTerms(terms)
	if err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}
	// ANDでは一つでも未知の語句があれば該当なし
	if len(tokens) == 0 || (ms.logic == AND && len(tokens) < len(terms)) {
		return []Document{}, nil
	}

	ids := make([]TokenID, len(tokens))
	for i, t := range tokens {
		ids[i] = t.ID
	}
	inverted, err := ms.storage.GetInvertedIndexByTokenIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("get inverted index: %w", err)
	}

	var matched []DocumentID
	for i, id := range ids {
		docIDs := inverted[id].DocumentIDs()
		switch {
		case i == 0:
			matched = docIDs
		case ms.logic == AND:
			matched = intersection(matched, docIDs)
		default:
			matched = union(matched, docIDs)
		}
	}

	docs, err := ms.storage.GetDocuments(matched)
	if err != nil {
		return nil, fmt.Errorf("get documents: %w", err)
	}
	if ms.sorter == nil {
		return docs, nil
	}
	return ms.sorter.Sort(docs, inverted, tokens)
}

type PhraseSearcher struct {
	tokenStream TokenStream
	storage     Storage
}

func NewPhraseSearcher(tokenStream TokenStream, storage Storage) PhraseSearcher {
	return PhraseSearcher{
		tokenStream: tokenStream,
		storage:     storage,
	}
}

// フレーズ検索
// 1, 検索クエリのトークンごとにポスティングリストを取り出す
// 2, 全てのトークンを含むドキュメントに絞る
// 3, 各トークンの出現位置がクエリでの位置と同じ間隔で並んでいれば検索結果に追加する
func (ps PhraseSearcher) Search() ([]Document, error) {
	terms := ps.tokenStream.Terms()
	if len(terms) == 0 {
		return []Document{}, nil
	}
	tokens, err := ps.storage.GetTokensByTerms(uniqueTerms(terms))
	if err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}
	byTerm := make(map[string]TokenID, len(tokens))
	ids := make([]TokenID, len(tokens))
	for i, t := range tokens {
		byTerm[t.Term] = t.ID
		ids[i] = t.ID
	}
	for _, term := range terms {
		if _, ok := byTerm[term]; !ok {
			return []Document{}, nil
		}
	}
	inverted, err := ps.storage.GetInvertedIndexByTokenIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("get inverted index: %w", err)
	}

	var candidates []DocumentID
	for i, term := range terms {
		docIDs := inverted[byTerm[term]].DocumentIDs()
		if i == 0 {
			candidates = docIDs
			continue
		}
		candidates = intersection(candidates, docIDs)
	}

	queryPositions := ps.tokenStream.Positions()
	matched := make([]DocumentID, 0, len(candidates))
	for _, docID := range candidates {
		positions := make([][]uint64, len(terms))
		for i, term := range terms {
			positions[i] = inverted[byTerm[term]].Positions(docID)
		}
		if isPhraseMatch(positions, queryPositions) {
			matched = append(matched, docID)
		}
	}
	return ps.storage.GetDocuments(matched)
}

// isPhraseMatch は先頭のトークンのいずれかの出現位置から見て、
// 残りのトークンがクエリと同じ相対位置に出現しているか判定する
func isPhraseMatch(positions [][]uint64, queryPositions []uint64) bool {
	for _, head := range positions[0] {
		ok := true
		for i := 1; i < len(positions); i++ {
			want := head + queryPositions[i] - queryPositions[0]
			if !slices.Contains(positions[i], want) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func uniqueTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	r := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		r = append(r, t)
	}
	return r
}

// intersection は昇順に並んだ二つのIDの積集合を返す
func intersection(a, b []DocumentID) []DocumentID {
	r := make([]DocumentID, 0, min(len(a), len(b)))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}

// union は昇順に並んだ二つのIDの和集合を返す
func union(a, b []DocumentID) []DocumentID {
	r := make([]DocumentID, 0, len(a)+len(b))
	var i, j int
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]):
			r = append(r, a[i])
			i++
		case i >= len(a) || a[i] > b[j]:
			r = append(r, b[j])
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}
