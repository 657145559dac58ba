package tried

import "fmt"

// EraseOutcome describes what an erase did at the level of the removed node.
type EraseOutcome int

const (
	EraseNotFound              EraseOutcome = iota // the sequence is not in the trie
	EraseNothing                                   // zero length sequence, nothing to remove
	EraseRemovedLeaf                               // node removed, its parent still has children
	EraseRemovedAndParentEmpty                     // node removed, its parent is left childless
)

func (o EraseOutcome) String() string {
	switch o {
	case EraseNotFound:
		return "NotFound"
	case EraseNothing:
		return "Nothing"
	case EraseRemovedLeaf:
		return "RemovedLeaf"
	case EraseRemovedAndParentEmpty:
		return "RemovedAndParentEmpty"
	}
	return fmt.Sprintf("EraseOutcome(%d)", int(o))
}

// records the outcome of an erase for reporting
type EraseReport struct {
	Outcome  EraseOutcome
	Payloads int // payload-bearing nodes dropped with the removed subtree
	Nodes    int // nodes dropped with the removed subtree
	Pruned   int // empty ancestors removed after the subtree
}

// Erased reports whether the sequence was present.
func (er EraseReport) Erased() bool {
	return er.Outcome != EraseNotFound
}

func (er EraseReport) String() string {
	return fmt.Sprintf("Outcome: %s, Removed payloads: %d, Removed nodes: %d, Pruned: %d",
		er.Outcome, er.Payloads, er.Nodes, er.Pruned)
}
