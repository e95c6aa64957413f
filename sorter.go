package koma

import (
	"math"
	"sort"
)

type Sorter interface {
	Sort([]Document, InvertedIndex, []Token) ([]Document, error)
}

type TfIdfSorter struct {
	Storage Storage
}

func NewTfIdfSorter(storage Storage) *TfIdfSorter {
	return &TfIdfSorter{
		Storage: storage,
	}
}

// Sort はTF-IDFの降順に並べる。同点なら元の順を保つ
func (s *TfIdfSorter) Sort(docs []Document, invertedIndex InvertedIndex, tokens []Token) ([]Document, error) {
	allDocsCount, err := s.Storage.CountDocuments()
	if err != nil {
		return nil, err
	}

	documentScores := make(documentScores, len(docs))
	for i, doc := range docs {
		var sum float64
		for _, token := range tokens {
			postingList := invertedIndex[token.ID]
			sum += tf(postingList, doc) * idf(postingList, allDocsCount)
		}
		documentScores[i] = newDocumentScore(doc, sum)
	}
	sort.Stable(sort.Reverse(documentScores))
	return documentScores.toDocuments(), nil
}

func tf(pl PostingList, doc Document) float64 {
	if doc.TokenCount == 0 {
		return 0
	}
	return float64(pl.AppearanceCountInDocument(doc.ID)) / float64(doc.TokenCount)
}

// idf は全ドキュメントに出現するトークンでも0にならないよう平滑化する
func idf(pl PostingList, allDocsCount int) float64 {
	return math.Log(float64(allDocsCount+1)/float64(pl.Size()+1)) + 1
}

type documentScore struct {
	document Document
	score    float64
}

func newDocumentScore(doc Document, score float64) documentScore {
	return documentScore{
		document: doc,
		score:    score,
	}
}

type documentScores []documentScore

func (ds documentScores) Len() int           { return len(ds) }
func (ds documentScores) Less(i, j int) bool { return ds[i].score < ds[j].score }
func (ds documentScores) Swap(i, j int)      { ds[i], ds[j] = ds[j], ds[i] }

func (ds documentScores) toDocuments() []Document {
	docs := make([]Document, len(ds))
	for i, d := range ds {
		docs[i] = d.document
	}
	return docs
}
