package trie

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewNode verifies that a new node is correctly initialized with default values.
func TestNewNode(t *testing.T) {
	root := NewNode[rune, string]()
	assert.NotNil(t, root, "Node should not be nil upon creation")
	assert.False(t, root.HasPayload(), "A new node should carry no payload")
	assert.True(t, root.IsLeaf(), "A new node should have no children")
	assert.True(t, root.IsEmpty())
}

// TestNewNodeWithPayload verifies the initialization of a node with a payload.
func TestNewNodeWithPayload(t *testing.T) {
	node := NewNodeWithPayload[rune]("x")
	payload, ok := node.Payload()
	assert.True(t, ok, "Payload should be present")
	assert.Equal(t, "x", payload, "Payload should match the initialization value")
	assert.False(t, node.IsEmpty())
}

func TestSetAndClearPayload(t *testing.T) {
	node := NewNode[rune, int]()
	node.SetPayload(7)
	payload, ok := node.Payload()
	assert.True(t, ok)
	assert.Equal(t, 7, payload)

	node.ClearPayload()
	payload, ok = node.Payload()
	assert.False(t, ok)
	assert.Equal(t, 0, payload, "Cleared payload should be reset to the zero value")
}

// TestAttachChildIfNotExist verifies the behavior of adding a child node if it does not already exist.
func TestAttachChildIfNotExist(t *testing.T) {
	root := NewNode[rune, int]()
	child := NewNodeWithPayload[rune](1)
	added := root.AttachChildIfNotExist('a', child)

	assert.Same(t, child, added, "Should return the added child")
	assert.Same(t, child, root.Child('a'))

	other := NewNodeWithPayload[rune](2)
	assert.Same(t, child, root.AttachChildIfNotExist('a', other), "Should keep the existing child")
	payload, _ := root.Child('a').Payload()
	assert.Equal(t, 1, payload)
}

func TestAttachChildOrReplace(t *testing.T) {
	root := NewNode[rune, int]()
	root.AttachChildIfNotExist('a', NewNodeWithPayload[rune](1))
	replacement := NewNodeWithPayload[rune](2)

	assert.Same(t, replacement, root.AttachChildOrReplace('a', replacement))
	assert.Same(t, replacement, root.Child('a'))
	assert.Equal(t, 1, root.ChildrenCount())
	assert.Panics(t, func() {
		root.AttachChildOrReplace('b', nil)
	})
}

// TestChild verifies retrieving children by key.
func TestChild(t *testing.T) {
	root := NewNode[byte, int]()
	child := root.AttachChildIfNotExist('0', NewNode[byte, int]())

	assert.Same(t, child, root.Child('0'), "Should retrieve the child under '0'")
	assert.Nil(t, root.Child('1'), "Should return nil for an absent key")

	var nilNode *Node[byte, int]
	assert.Panics(t, func() {
		nilNode.Child('0')
	})
}

func TestDetach(t *testing.T) {
	root := NewNode[rune, int]()
	a := root.AttachChildIfNotExist('a', NewNodeWithPayload[rune](1))
	a.AttachChildIfNotExist('b', NewNodeWithPayload[rune](2))

	detached := root.Detach('a')
	assert.Same(t, a, detached, "Detach should return the removed child")
	assert.True(t, root.IsLeaf(), "Root should be a leaf after detaching its only child")
	assert.Nil(t, root.Detach('a'), "Detaching an absent key returns nil")
	assert.Equal(t, 1, detached.ChildrenCount(), "The detached subtree stays intact")
}

// TestForEachChild checks that ForEachChild iterates over all children correctly.
func TestForEachChild(t *testing.T) {
	root := NewNode[rune, int]()
	root.AttachChildIfNotExist('a', NewNode[rune, int]())
	root.AttachChildIfNotExist('b', NewNode[rune, int]())

	keys := []rune{}
	root.ForEachChild(func(key rune, _ *Node[rune, int]) {
		keys = append(keys, key)
	})

	assert.ElementsMatch(t, []rune{'a', 'b'}, keys, "ForEachChild should iterate over both children")
}

// TestForEachStepDown verifies that each node below the root is visited once.
func TestForEachStepDown(t *testing.T) {
	root := NewNode[rune, string]()
	generateTrieAs([]string{"abc", "abd", "b", "bcd"}, root)

	visited := 0
	root.ForEachStepDown(func(node *Node[rune, string]) {
		visited++
		node.SetPayload("visited")
	}, nil)

	// a, ab, abc, abd, b, bc, bcd
	assert.Equal(t, 7, visited)
	root.ForEachStepDown(func(node *Node[rune, string]) {
		payload, _ := node.Payload()
		assert.Equal(t, "visited", payload)
	}, nil)
}

func TestForEachStepDownWhile(t *testing.T) {
	root := NewNode[rune, string]()
	generateTrieAs([]string{"abc"}, root)

	visited := 0
	root.ForEachStepDown(func(*Node[rune, string]) {
		visited++
	}, func(node *Node[rune, string]) bool {
		// stop expanding below "a"
		return node == root
	})
	assert.Equal(t, 1, visited)
}

func TestCounts(t *testing.T) {
	root := NewNode[rune, string]()
	generateTrieAs([]string{"abc", "abd", "x"}, root)

	assert.Equal(t, 6, root.CountNodes(), "root, a, ab, abc, abd, x")
	assert.Equal(t, 3, root.CountPayloads(), "only terminal nodes carry payloads here")
	assert.Equal(t, 3, root.Child('a').CountNodes())
}

func TestDeepTrieWalk(t *testing.T) {
	root := NewNode[int, int]()
	current := root
	depth := 200000
	for i := 0; i < depth; i++ {
		current = current.AttachChildIfNotExist(i%2, NewNodeWithPayload[int](i))
	}
	assert.Equal(t, depth, root.CountPayloads())
}

func BenchmarkWritesRandomPaths(b *testing.B) {
	paths := generateRandomPaths(b.N, 4, 16)
	root := NewNode[byte, int]()
	b.ResetTimer()

	for _, path := range paths {
		node := root
		for _, key := range path {
			node = node.AttachChildIfNotExist(key, NewNodeWithPayload[byte](1))
		}
	}
}

func BenchmarkReadRandomPaths(b *testing.B) {
	paths := generateRandomPaths(1024, 4, 16)
	root := NewNode[byte, int]()
	for _, path := range paths {
		node := root
		for _, key := range path {
			node = node.AttachChildIfNotExist(key, NewNodeWithPayload[byte](1))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		node := root
		for _, key := range paths[rand.Intn(len(paths))] {
			node = node.Child(key)
		}
	}
}

// generateTrieAs builds a trie where only the last node of every path carries a payload.
func generateTrieAs(paths []string, root *Node[rune, string]) {
	for _, path := range paths {
		current := root
		for _, r := range path {
			current = current.AttachChildIfNotExist(r, NewNode[rune, string]())
		}
		current.SetPayload(path)
	}
}

func generateRandomPaths(count int, minDepth int, maxDepth int) [][]byte {
	paths := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		path := []byte{}
		for j := 0; j < rand.Intn(maxDepth-minDepth+1)+minDepth; j++ {
			path = append(path, byte('a'+rand.Intn(4)))
		}
		paths = append(paths, path)
	}
	return paths
}
