package koma

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	t.Parallel()
	cases := []struct {
		memoryPostingList  PostingList
		storagePostingList PostingList
		expected           PostingList
	}{
		{
			memoryPostingList:  NewPostingList(NewPostings(1, []uint64{0}, nil)),
			storagePostingList: NewPostingList(nil),
			expected:           NewPostingList(NewPostings(1, []uint64{0}, nil)),
		},
		{
			memoryPostingList:  NewPostingList(nil),
			storagePostingList: NewPostingList(NewPostings(1, []uint64{0}, nil)),
			expected:           NewPostingList(NewPostings(1, []uint64{0}, nil)),
		},
		{
			memoryPostingList:  NewPostingList(NewPostings(1, []uint64{0}, NewPostings(3, []uint64{0}, NewPostings(4, []uint64{3}, nil)))),
			storagePostingList: NewPostingList(NewPostings(2, []uint64{1, 2}, NewPostings(4, []uint64{5}, NewPostings(5, []uint64{12}, nil)))),
			expected: NewPostingList(NewPostings(1, []uint64{0}, NewPostings(2, []uint64{1, 2},
				NewPostings(3, []uint64{0}, NewPostings(4, []uint64{3}, NewPostings(5, []uint64{12}, nil)))))),
		},
		{
			memoryPostingList:  NewPostingList(NewPostings(3, []uint64{0}, NewPostings(4, []uint64{0}, NewPostings(5, []uint64{3}, nil)))),
			storagePostingList: NewPostingList(NewPostings(1, []uint64{1, 2}, NewPostings(2, []uint64{3}, nil))),
			expected: NewPostingList(NewPostings(1, []uint64{1, 2}, NewPostings(2, []uint64{3},
				NewPostings(3, []uint64{0}, NewPostings(4, []uint64{0}, NewPostings(5, []uint64{3}, nil)))))),
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("memory = %v, storage = %v", tt.memoryPostingList.DocumentIDs(), tt.storagePostingList.DocumentIDs()), func(t *testing.T) {
			actual := tt.memoryPostingList.Merge(tt.storagePostingList)
			if diff := cmp.Diff(actual, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestPostingList(t *testing.T) {
	pl := NewPostingList(NewPostings(1, []uint64{0, 4}, NewPostings(3, []uint64{2}, NewPostings(7, []uint64{1, 5, 9}, nil))))

	if got := pl.Size(); got != 3 {
		t.Errorf("Size() = %v, want 3", got)
	}
	if diff := cmp.Diff(pl.DocumentIDs(), []DocumentID{1, 3, 7}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}

	cases := []struct {
		docID     DocumentID
		count     int
		positions []uint64
	}{
		{docID: 1, count: 2, positions: []uint64{0, 4}},
		{docID: 3, count: 1, positions: []uint64{2}},
		{docID: 7, count: 3, positions: []uint64{1, 5, 9}},
		{docID: 2, count: 0, positions: nil},
		{docID: 8, count: 0, positions: nil},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("docID = %v", tt.docID), func(t *testing.T) {
			if got := pl.AppearanceCountInDocument(tt.docID); got != tt.count {
				t.Errorf("AppearanceCountInDocument() = %v, want %v", got, tt.count)
			}
			if diff := cmp.Diff(pl.Positions(tt.docID), tt.positions); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestPostingListClone(t *testing.T) {
	pl := NewPostingList(NewPostings(1, []uint64{0}, NewPostings(2, []uint64{3}, nil)))
	c := pl.clone()
	c.Postings.Positions[0] = 10
	c.Postings.Next = nil

	if diff := cmp.Diff(pl, NewPostingList(NewPostings(1, []uint64{0}, NewPostings(2, []uint64{3}, nil)))); diff != "" {
		t.Errorf("clone shares memory: (-got +want)\n%s", diff)
	}
}

func TestPushBack(t *testing.T) {
	p := NewPostings(1, []uint64{0}, NewPostings(5, []uint64{0}, nil))
	p.PushBack(NewPostings(3, []uint64{1}, nil))
	if diff := cmp.Diff(NewPostingList(p).DocumentIDs(), []DocumentID{1, 3, 5}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
