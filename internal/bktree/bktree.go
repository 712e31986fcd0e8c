// Package bktree implements a BK-tree: a metric tree keyed on distances from
// a parent term, supporting incremental insertion and a lazy, pull-based
// range search.
package bktree

// DistanceFunc is a pluggable metric between two terms. For correctness of
// the triangle-inequality pruning in Search, it must be a true metric
// (symmetric, zero only on identity, satisfies the triangle inequality).
// This is a caller contract; it is not verified.
type DistanceFunc func(a, b string) int

type node struct {
	term     string
	children map[int]*node
}

func newNode(term string) *node {
	return &node{term: term, children: make(map[int]*node)}
}

// Options configures a Tree.
type Options struct {
	// Distance is the metric used for both insertion keys and search
	// pruning. Required: Tree.Insert (once the tree has a root) and
	// Lookup.Next call it and panic if it is nil.
	Distance DistanceFunc
}

// DefaultOptions returns Options using distance as the metric.
func DefaultOptions(distance DistanceFunc) Options {
	return Options{Distance: distance}
}

// Tree is a BK-tree over terms, keyed by Options.Distance.
type Tree struct {
	root     *node
	distance DistanceFunc
}

// New creates an empty Tree using distance as the metric.
func New(distance DistanceFunc) *Tree {
	return &Tree{distance: distance}
}

// NewWithOptions creates an empty Tree from Options.
func NewWithOptions(opts Options) *Tree {
	return &Tree{distance: opts.Distance}
}

// Insert adds term to the tree. If the tree is empty, term becomes the
// root. Otherwise the tree is descended: at each node n, d =
// distance(n.term, term); if d == 0 the term is already present and insert
// is a no-op (idempotent); if n has no child keyed by d, a new leaf is
// installed there; otherwise descent continues into that child.
func (t *Tree) Insert(term string) {
	if t.root == nil {
		t.root = newNode(term)
		return
	}
	cursor := t.root
	for {
		d := t.distance(cursor.term, term)
		if d == 0 {
			return // duplicate under the configured metric
		}
		child, ok := cursor.children[d]
		if !ok {
			cursor.children[d] = newNode(term)
			return
		}
		cursor = child
	}
}

// Lookup is a lazy, pull-based iterator over BK-tree search results. Results
// are produced in BFS order of the tree, which is implementation-defined
// but stable for identical insert sequences; callers must treat the result
// set as order-insensitive.
type Lookup struct {
	queue    []*node
	distance DistanceFunc
	query    string
	maxEdits int
}

// Search returns a lazy sequence of every term within maxEdits of query.
// The returned Lookup is pull-based: no traversal happens until Next is
// called, and a caller may stop calling Next (e.g. after the first N
// results) to abandon the rest of the traversal with no cleanup required.
func (t *Tree) Search(query string, maxEdits int) *Lookup {
	l := &Lookup{distance: t.distance, query: query, maxEdits: maxEdits}
	if t.root != nil {
		l.queue = append(l.queue, t.root)
	}
	return l
}

// Next advances the lookup and returns the next matching term, or ("",
// false) once the traversal is exhausted.
func (l *Lookup) Next() (string, bool) {
	for len(l.queue) > 0 {
		n := l.queue[0]
		l.queue = l.queue[1:]

		d := l.distance(n.term, l.query)

		lower := d - l.maxEdits
		if lower < 0 {
			lower = 0 // saturating_sub
		}
		upper := d + l.maxEdits // no overflow concern at realistic string lengths

		for key, child := range n.children {
			if key >= lower && key <= upper {
				l.queue = append(l.queue, child)
			}
		}

		if d <= l.maxEdits {
			return n.term, true
		}
	}
	return "", false
}

// Collect drains a Lookup into a slice. Provided for callers that want the
// full, order-insensitive result set rather than pull-based iteration.
func Collect(l *Lookup) []string {
	var results []string
	for {
		term, ok := l.Next()
		if !ok {
			return results
		}
		results = append(results, term)
	}
}
