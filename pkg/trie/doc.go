// ## Overview
// Package trie implements the node of a generic trie (prefix tree).
// A node owns a map from key element to child node and optionally carries one
// payload value. It provides functions to create nodes, attach and detach
// children, read or replace the payload, and walk a subtree without recursion.
//
// ## Example usage:
//
//	root := trie.NewNode[rune, int]()
//	a := root.AttachChildIfNotExist('a', trie.NewNodeWithPayload[rune](1))
//	a.AttachChildIfNotExist('b', trie.NewNodeWithPayload[rune](2))
//
//	// Check if a node is a leaf
//	fmt.Println("Is a a leaf:", a.IsLeaf()) // Output: Is a a leaf: false
//
//	// Count the payloads below the root
//	fmt.Println(root.CountPayloads()) // Output: 2
//
//	// Drop the "ab" branch
//	a.Detach('b')
//
// The node does not track its parent; every node is owned by exactly one
// children map. Higher level bookkeeping (sizes, pruning) lives in package
// tried.
package trie
