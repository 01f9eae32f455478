package llist

import (
	"github.com/pkg/errors"
)

var (
	ErrHeadTail   = errors.New("head and tail disagree")
	ErrBrokenLink = errors.New("previous and next links disagree")
	ErrCycle      = errors.New("list contains a cycle")
	ErrLength     = errors.New("length does not match the chain")
	ErrCursor     = errors.New("cursor is not in the list")
)

// Check walks the list and verifies its structure: head and tail are both
// set or both nil, every next link is mirrored by a previous link, the chain
// ends at the tail without looping, the length matches and the cursor is nil
// or on the chain. Use errors.Cause to compare against the Err values.
func (l *List[T]) Check() error {
	if l == nil {
		return nil
	}
	if (l.head == nil) != (l.tail == nil) {
		return errors.Wrapf(ErrHeadTail, "head set: %t, tail set: %t", l.head != nil, l.tail != nil)
	}

	for slow, fast := l.head, l.head; fast != nil && fast.next != nil; {
		slow, fast = slow.next, fast.next.next
		if slow == fast {
			return errors.WithStack(ErrCycle)
		}
	}

	var prev *link[T]
	count := 0
	cursor := l.cursor == nil
	for e := l.head; e != nil; e = e.next {
		if e.prev != prev {
			return errors.Wrapf(ErrBrokenLink, "at position %d", count)
		}
		if e == l.cursor {
			cursor = true
		}
		prev = e
		count++
	}
	if prev != l.tail {
		return errors.Wrapf(ErrHeadTail, "chain from head ends after %d nodes, short of the tail", count)
	}
	if count != l.len {
		return errors.Wrapf(ErrLength, "walked %d, recorded %d", count, l.len)
	}
	if !cursor {
		return errors.WithStack(ErrCursor)
	}
	return nil
}
