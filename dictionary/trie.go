package dictionary

import "sort"

// Trie は音節単位のトライ木。同じキーを追加した場合は後勝ち
type Trie[V any] struct {
	root *trieNode[V]
	size int
}

type trieNode[V any] struct {
	children map[rune]*trieNode[V]
	value    V
	ok       bool
}

func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{root: &trieNode[V]{}}
}

func (t *Trie[V]) Add(key string, value V) {
	n := t.root
	for _, r := range key {
		if n.children == nil {
			n.children = make(map[rune]*trieNode[V])
		}
		child, ok := n.children[r]
		if !ok {
			child = &trieNode[V]{}
			n.children[r] = child
		}
		n = child
	}
	if !n.ok {
		t.size++
	}
	n.value = value
	n.ok = true
}

func (t *Trie[V]) Get(key string) (V, bool) {
	n := t.find(key)
	if n == nil || !n.ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (t *Trie[V]) Len() int {
	return t.size
}

func (t *Trie[V]) find(key string) *trieNode[V] {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// PrefixedBy はprefixで始まる全てのキーの値を辞書順に返すイテレータを返す
// 値はHasNextを呼ぶたびに必要な分だけ辿る
func (t *Trie[V]) PrefixedBy(prefix string) *Iterator[V] {
	it := &Iterator[V]{}
	if n := t.find(prefix); n != nil {
		it.stack = []*trieNode[V]{n}
	}
	return it
}

type Iterator[V any] struct {
	stack []*trieNode[V]
	next  *trieNode[V]
}

func (it *Iterator[V]) HasNext() bool {
	for it.next == nil && len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		// 小さい文字から取り出せるように逆順で積む
		sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })
		for _, r := range keys {
			it.stack = append(it.stack, n.children[r])
		}
		if n.ok {
			it.next = n
		}
	}
	return it.next != nil
}

func (it *Iterator[V]) Next() (V, bool) {
	if !it.HasNext() {
		var zero V
		return zero, false
	}
	v := it.next.value
	it.next = nil
	return v, true
}
