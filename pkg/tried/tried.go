// Package tried provides Container, a trie keyed by sequences of comparable
// elements that stores one payload per node.
//
// Inserting a sequence creates every missing node along its path and gives
// each of them the inserted payload. Nodes that already exist keep their
// payload. Erasing a sequence drops the node it ends at, with everything
// below it, and prunes ancestors that are left with no payload and no
// children.
//
// A Container is not safe for concurrent use. Guard it with a sync.Mutex when
// it is shared between goroutines.
package tried

import (
	"fmt"
	"log/slog"

	"github.com/khalid-nowaf/tried/pkg/trie"
)

// Container is a trie of sequences of K carrying payloads of type V.
// Use New to create a Container, the zero value has no root and is not usable.
type Container[K comparable, V any] struct {
	root     *trie.Node[K, V]
	size     int // payload-bearing nodes
	nodes    int // non-root nodes
	maxNodes int
	logger   *slog.Logger
}

// New creates an empty container.
func New[K comparable, V any](opts ...Option) *Container[K, V] {
	options := DefaultOptions()
	for _, opt := range opts {
		options = opt(options)
	}
	return &Container[K, V]{
		root:     trie.NewNode[K, V](),
		maxNodes: options.MaxNodes,
		logger:   options.Logger,
	}
}

// walk follows seq from the root and returns the node it ends at, or nil if
// some element has no matching child.
func (c *Container[K, V]) walk(seq []K) *trie.Node[K, V] {
	node := c.root
	for _, key := range seq {
		node = node.Child(key)
		if node == nil {
			return nil
		}
	}
	return node
}

// Find looks seq up. When every element of seq is matched it returns the
// payload of the last node and true. Otherwise it returns datum unchanged and
// false.
//
// A zero length sequence is always found and returns datum unchanged: the
// root carries no payload of its own.
func (c *Container[K, V]) Find(seq []K, datum V) (V, bool) {
	node := c.walk(seq)
	if node == nil {
		return datum, false
	}
	if payload, ok := node.Payload(); ok {
		return payload, true
	}
	return datum, true
}

// Get is Find with the zero value of V as the default datum.
func (c *Container[K, V]) Get(seq []K) (V, bool) {
	var zero V
	return c.Find(seq, zero)
}

// Contains reports whether the path of seq exists.
func (c *Container[K, V]) Contains(seq []K) bool {
	return c.walk(seq) != nil
}

// Insert stores seq with datum and reports whether it succeeded. It only
// fails when a node limit is configured and would be exceeded; use TryInsert
// to get the reason.
func (c *Container[K, V]) Insert(seq []K, datum V) bool {
	return c.TryInsert(seq, datum) == nil
}

// TryInsert stores seq with datum. Every node created for seq receives datum
// as its payload and counts toward Size. Nodes that already exist are left
// untouched, so inserting an existing sequence changes nothing.
//
// The number of missing nodes is known before anything is attached, so a
// refused insert leaves the container unchanged and returns an error wrapping
// ErrOutOfMemory.
func (c *Container[K, V]) TryInsert(seq []K, datum V) error {
	node := c.root
	depth := 0
	for ; depth < len(seq); depth++ {
		next := node.Child(seq[depth])
		if next == nil {
			break
		}
		node = next
	}

	missing := len(seq) - depth
	if missing == 0 {
		return nil
	}
	if c.maxNodes > 0 && c.nodes+missing > c.maxNodes {
		c.logger.Debug("Insert refused by node limit",
			"missing", missing, "nodes", c.nodes, "limit", c.maxNodes)
		return fmt.Errorf("insert needs %d new nodes, %d of %d in use: %w",
			missing, c.nodes, c.maxNodes, ErrOutOfMemory)
	}

	for ; depth < len(seq); depth++ {
		node = node.AttachChildIfNotExist(seq[depth], trie.NewNodeWithPayload[K](datum))
		c.size++
		c.nodes++
	}
	return nil
}

// Erase removes seq and everything stored below it. It reports whether seq
// was present. A zero length sequence is trivially erased and removes nothing.
func (c *Container[K, V]) Erase(seq []K) bool {
	return c.EraseReport(seq).Erased()
}

// EraseReport is Erase with a detailed account of what was removed.
func (c *Container[K, V]) EraseReport(seq []K) EraseReport {
	if len(seq) == 0 {
		return EraseReport{Outcome: EraseNothing}
	}

	// path[i] is the node reached after i elements
	path := make([]*trie.Node[K, V], 1, len(seq)+1)
	path[0] = c.root
	for _, key := range seq {
		next := path[len(path)-1].Child(key)
		if next == nil {
			return EraseReport{Outcome: EraseNotFound}
		}
		path = append(path, next)
	}

	last := len(seq) - 1
	parent := path[last]
	removed := parent.Detach(seq[last])
	report := EraseReport{
		Outcome:  EraseRemovedLeaf,
		Payloads: removed.CountPayloads(),
		Nodes:    removed.CountNodes(),
	}
	c.size -= report.Payloads
	c.nodes -= report.Nodes
	if parent.IsLeaf() {
		report.Outcome = EraseRemovedAndParentEmpty
	}

	// Walk back up and drop the trailing chain of empty ancestors.
	for depth := last; depth > 0; depth-- {
		if !path[depth].IsEmpty() {
			break
		}
		path[depth-1].Detach(seq[depth-1])
		c.nodes--
		report.Pruned++
	}

	if c.size < 0 || c.nodes < 0 {
		panic("[BUG] EraseReport: container counters went negative")
	}
	if report.Pruned > 0 {
		c.logger.Debug("Pruned empty ancestors", "count", report.Pruned)
	}
	return report
}

// SetDatum replaces the payload of the node seq ends at. It reports false when
// seq is absent, and for the zero length sequence since the root carries no
// payload.
func (c *Container[K, V]) SetDatum(seq []K, datum V) bool {
	if len(seq) == 0 {
		return false
	}
	node := c.walk(seq)
	if node == nil {
		return false
	}
	if !node.HasPayload() {
		c.size++
	}
	node.SetPayload(datum)
	return true
}

// Size returns the number of payload-bearing nodes.
func (c *Container[K, V]) Size() int {
	return c.size
}

// Nodes returns the number of nodes in the trie, the root excluded.
func (c *Container[K, V]) Nodes() int {
	return c.nodes
}
