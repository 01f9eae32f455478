package llist

import (
	"golang.org/x/exp/constraints"
)

// A Node carries a caller payload. The links that position a node belong to
// the list it is added to, so one node can be linked more than once, or into
// two lists at the same time (see List.Dup).
//
// The node never cleans up its payload. That is the job of the destroy hook
// bound on the list that owns it.
type Node[T any] struct {
	Payload *T
}

func NewNode[T any](payload *T) *Node[T] {
	return &Node[T]{Payload: payload}
}

// Builds a compare hook which orders nodes by a key of their payload. Nil
// nodes and nil payloads compare as equal to anything.
func CompareBy[T any, K constraints.Ordered](key func(*T) K) func(a, b *Node[T]) int {
	return func(a, b *Node[T]) int {
		if a == nil || b == nil || a.Payload == nil || b.Payload == nil {
			return 0
		}
		ka, kb := key(a.Payload), key(b.Payload)
		if ka < kb {
			return -1
		}
		if ka > kb {
			return 1
		}
		return 0
	}
}
