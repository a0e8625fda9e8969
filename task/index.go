package task

import (
	"sort"
	"strings"
)

// SearchIndex is a prefix trie over every suffix of a task's indexed
// text: name, description, each tag, and the status and priority
// display strings, all lowercased. Indexing every suffix makes prefix
// lookup behave like a mid-string substring match ("ing" finds
// "Testing"), at O(len²) insertion cost per field. That trade-off is
// fine for personal task lists.
//
// The index is a disposable cache: nodes hold task IDs, never task
// pointers, and the whole structure is rebuilt from scratch after any
// mutation rather than patched incrementally.
type SearchIndex struct {
	root    *trieNode
	byID    map[int]*Task
	indexed int
}

type trieNode struct {
	children map[rune]*trieNode
	ids      []int
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// NewSearchIndex returns an empty index.
func NewSearchIndex() *SearchIndex {
	return &SearchIndex{
		root: newTrieNode(),
		byID: make(map[int]*Task),
	}
}

// Add indexes all searchable fields of the task. Adding the same task
// twice does not duplicate entries at any node.
func (x *SearchIndex) Add(t *Task) {
	x.indexString(t.Name(), t.ID())
	if t.Description() != "" {
		x.indexString(t.Description(), t.ID())
	}
	for _, tag := range t.Tags() {
		x.indexString(tag, t.ID())
	}
	x.indexString(t.Status().String(), t.ID())
	x.indexString(t.Priority().String(), t.ID())

	if _, ok := x.byID[t.ID()]; !ok {
		x.indexed++
	}
	x.byID[t.ID()] = t
}

// Remove walks the same paths Add took and drops the task's ID from
// each node. Empty nodes are not pruned; the dominant usage pattern is
// a full rebuild, and incremental removal exists for completeness.
func (x *SearchIndex) Remove(t *Task) {
	x.removeString(t.Name(), t.ID())
	if t.Description() != "" {
		x.removeString(t.Description(), t.ID())
	}
	for _, tag := range t.Tags() {
		x.removeString(tag, t.ID())
	}
	x.removeString(t.Status().String(), t.ID())
	x.removeString(t.Priority().String(), t.ID())

	if _, ok := x.byID[t.ID()]; ok {
		x.indexed--
		delete(x.byID, t.ID())
	}
}

// SearchPrefix returns every task reachable under the lowercased
// prefix, deduplicated, sorted by ID ascending. An empty prefix
// matches nothing.
func (x *SearchIndex) SearchPrefix(prefix string) []*Task {
	if prefix == "" {
		return nil
	}

	node := x.findNode(strings.ToLower(prefix))
	if node == nil {
		return nil
	}

	seen := make(map[int]struct{})
	var ids []int
	collectSubtree(node, seen, &ids)
	return x.resolve(ids)
}

// SearchSubstring collects every indexed task and filters to those
// whose name, description, or any tag literally contains the
// lowercased substring. Slower than SearchPrefix but exact.
func (x *SearchIndex) SearchSubstring(substring string) []*Task {
	if substring == "" {
		return nil
	}

	needle := strings.ToLower(substring)
	seen := make(map[int]struct{})
	var ids []int
	collectSubtree(x.root, seen, &ids)

	matched := ids[:0]
	for _, id := range ids {
		t, ok := x.byID[id]
		if !ok {
			continue
		}
		if substringMatches(t, needle) {
			matched = append(matched, id)
		}
	}
	return x.resolve(matched)
}

// Clear resets the index to empty.
func (x *SearchIndex) Clear() {
	x.root = newTrieNode()
	x.byID = make(map[int]*Task)
	x.indexed = 0
}

// Len returns the number of indexed tasks.
func (x *SearchIndex) Len() int {
	return x.indexed
}

// indexString inserts every suffix of the lowercased string, attaching
// the task ID at each suffix's terminal node.
func (x *SearchIndex) indexString(value string, id int) {
	runes := []rune(strings.ToLower(value))
	for start := 0; start < len(runes); start++ {
		node := x.root
		for _, r := range runes[start:] {
			child, ok := node.children[r]
			if !ok {
				child = newTrieNode()
				node.children[r] = child
			}
			node = child
		}
		node.addID(id)
	}
}

func (x *SearchIndex) removeString(value string, id int) {
	runes := []rune(strings.ToLower(value))
	for start := 0; start < len(runes); start++ {
		node := x.root
		found := true
		for _, r := range runes[start:] {
			child, ok := node.children[r]
			if !ok {
				found = false
				break
			}
			node = child
		}
		if found {
			node.removeID(id)
		}
	}
}

func (x *SearchIndex) findNode(prefix string) *trieNode {
	node := x.root
	for _, r := range prefix {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

func (x *SearchIndex) resolve(ids []int) []*Task {
	sort.Ints(ids)
	tasks := make([]*Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := x.byID[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (n *trieNode) addID(id int) {
	for _, existing := range n.ids {
		if existing == id {
			return
		}
	}
	n.ids = append(n.ids, id)
}

func (n *trieNode) removeID(id int) {
	for i, existing := range n.ids {
		if existing == id {
			n.ids = append(n.ids[:i], n.ids[i+1:]...)
			return
		}
	}
}

func collectSubtree(node *trieNode, seen map[int]struct{}, ids *[]int) {
	for _, id := range node.ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		*ids = append(*ids, id)
	}
	for _, child := range node.children {
		collectSubtree(child, seen, ids)
	}
}

func substringMatches(t *Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Name()), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description()), needle) {
		return true
	}
	for _, tag := range t.Tags() {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
