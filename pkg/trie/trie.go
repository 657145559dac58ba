package trie

// Node is a generic trie node. It owns its children exclusively: a child is
// reachable only through its parent's children map, so detaching a child
// releases the whole subtree below it.
type Node[K comparable, V any] struct {
	children   map[K]*Node[K, V] // lazily allocated on the first attach
	payload    V                 // valid only when hasPayload is set
	hasPayload bool
}

// NewNode creates a node with no payload and no children.
func NewNode[K comparable, V any]() *Node[K, V] {
	return &Node[K, V]{}
}

// NewNodeWithPayload creates a childless node carrying payload.
func NewNodeWithPayload[K comparable, V any](payload V) *Node[K, V] {
	return &Node[K, V]{
		payload:    payload,
		hasPayload: true,
	}
}

// Payload returns the node payload and whether one is present.
func (n *Node[K, V]) Payload() (V, bool) {
	return n.payload, n.hasPayload
}

func (n *Node[K, V]) HasPayload() bool {
	return n.hasPayload
}

// SetPayload stores payload in place, replacing any previous one.
func (n *Node[K, V]) SetPayload(payload V) {
	n.payload = payload
	n.hasPayload = true
}

// ClearPayload drops the payload, the node keeps its children.
func (n *Node[K, V]) ClearPayload() {
	var zero V
	n.payload = zero
	n.hasPayload = false
}

// returns the child reached by key, or nil
//
//	node.Child('a')
func (n *Node[K, V]) Child(key K) *Node[K, V] {
	if n == nil {
		panic("[BUG] Child: node must not be nil")
	}
	return n.children[key]
}

// adds a child under key if no child exists there yet.
// return the new added child or the existing one
func (n *Node[K, V]) AttachChildIfNotExist(key K, child *Node[K, V]) *Node[K, V] {
	if existing, ok := n.children[key]; ok {
		return existing
	}
	return n.AttachChildOrReplace(key, child)
}

// adds and return a child under key, replacing any existing child.
// the replaced child and its subtree are dropped
func (n *Node[K, V]) AttachChildOrReplace(key K, child *Node[K, V]) *Node[K, V] {
	if child == nil {
		panic("[BUG] AttachChildOrReplace: child must not be nil")
	}
	if n.children == nil {
		n.children = make(map[K]*Node[K, V])
	}
	n.children[key] = child
	return child
}

// Detach removes the child under key and returns it, or nil if there was none.
// Once the caller drops the returned node the whole subtree is GC'ed.
func (n *Node[K, V]) Detach(key K) *Node[K, V] {
	child, ok := n.children[key]
	if !ok {
		return nil
	}
	delete(n.children, key)
	if len(n.children) == 0 {
		n.children = nil
	}
	return child
}

// checks if the node is a leaf (has no children).
func (n *Node[K, V]) IsLeaf() bool {
	return len(n.children) == 0
}

// IsEmpty reports a node with neither payload nor children.
func (n *Node[K, V]) IsEmpty() bool {
	return !n.hasPayload && n.IsLeaf()
}

func (n *Node[K, V]) ChildrenCount() int {
	return len(n.children)
}

// applies a function to each child of the node, in no particular order.
// will return the original node n
func (n *Node[K, V]) ForEachChild(f func(key K, child *Node[K, V])) *Node[K, V] {
	for key, child := range n.children {
		f(key, child)
	}
	return n
}

// applies f to every descendant of the node as long as the (while) condition
// holds for the node being expanded. if no condition is needed pass nil.
// The walk keeps its own stack, so the depth of the trie is not bounded by
// the goroutine stack.
// will return the original node n
func (n *Node[K, V]) ForEachStepDown(f func(node *Node[K, V]), while func(node *Node[K, V]) bool) *Node[K, V] {
	stack := []*Node[K, V]{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if while != nil && !while(current) {
			continue
		}
		for _, child := range current.children {
			f(child)
			stack = append(stack, child)
		}
	}
	return n
}

// CountNodes returns the number of nodes in the subtree, the node included.
func (n *Node[K, V]) CountNodes() int {
	count := 1
	n.ForEachStepDown(func(*Node[K, V]) {
		count++
	}, nil)
	return count
}

// CountPayloads returns the number of payload-bearing nodes in the subtree,
// the node included.
func (n *Node[K, V]) CountPayloads() int {
	count := 0
	if n.hasPayload {
		count++
	}
	n.ForEachStepDown(func(node *Node[K, V]) {
		if node.hasPayload {
			count++
		}
	}, nil)
	return count
}
