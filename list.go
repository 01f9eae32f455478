// A doubly linked list with a cursor and caller supplied lifecycle hooks.
//
// Nothing in this package synchronizes access. A list shared between
// goroutines must be guarded by the caller.
package llist

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// link positions a node within one list.
type link[T any] struct {
	prev *link[T]
	next *link[T]
	node *Node[T]
}

func (e *link[T]) value() *Node[T] {
	if e == nil {
		return nil
	}
	return e.node
}

type List[T any] struct {
	head   *link[T]
	tail   *link[T]
	cursor *link[T]
	len    int

	newNode  func() *Node[T]
	dupNode  func(*Node[T]) *Node[T]
	freeNode func(*Node[T])
	cmpNode  func(a, b *Node[T]) int

	log *logrus.Entry
}

func defaultLogger() *logrus.Entry {
	return logrus.WithField("component", "llist")
}

// Create an empty list with no hooks bound.
func NewList[T any]() *List[T] {
	return &List[T]{log: defaultLogger()}
}

// Sets the hook used by Construct.
func (l *List[T]) SetNew(fn func() *Node[T]) {
	if l != nil {
		l.newNode = fn
	}
}

// Sets the hook used to copy nodes. When bound, Add links a copy of the given
// node and Dup performs a deep copy.
func (l *List[T]) SetDup(fn func(*Node[T]) *Node[T]) {
	if l != nil {
		l.dupNode = fn
	}
}

// Sets the hook called on every node the list destroys (Remove and Free).
// Without it, destroyed nodes are simply unlinked and their payloads are left
// to the caller.
func (l *List[T]) SetFree(fn func(*Node[T])) {
	if l != nil {
		l.freeNode = fn
	}
}

// Sets the three way comparison used by Find. It must return 0 on a match.
func (l *List[T]) SetCmp(fn func(a, b *Node[T]) int) {
	if l != nil {
		l.cmpNode = fn
	}
}

// Replaces the logger which receives debug entries for skipped operations.
// A nil entry restores the default.
func (l *List[T]) SetLogger(log *logrus.Entry) {
	if l == nil {
		return
	}
	if log == nil {
		log = defaultLogger()
	}
	l.log = log
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// Builds a node with the construct hook. Returns nil when no hook is bound.
func (l *List[T]) Construct() *Node[T] {
	if l == nil || l.newNode == nil {
		return nil
	}
	return l.newNode()
}

// Links node into the list.
//
// PositionHead and PositionTail link at either end. PositionBefore and
// PositionAfter link next to a reference: where if given, else the cursor,
// else the head (before) or the tail (after). When no reference resolves,
// because the list is empty or where is not in it, nothing happens.
//
// With a duplicate hook bound the list links the hook's copy and node stays
// the caller's. Without one node itself is linked and must not be reused by
// the caller while it is in the list.
//
// On success the cursor points at the linked node. Unknown positions link at
// the tail.
func (l *List[T]) Add(position Position, where *Node[T], node *Node[T]) {
	if l == nil || node == nil {
		return
	}

	var at *link[T]
	if position == PositionBefore || position == PositionAfter {
		if at = l.reference(position, where); at == nil {
			l.log.Debugf("add %s skipped: no reference node", position)
			return
		}
	}

	added := node
	if l.dupNode != nil {
		if added = l.dupNode(node); added == nil {
			l.log.Debug("add skipped: duplicate hook returned nil")
			return
		}
	}

	e := &link[T]{node: added}
	switch position {
	case PositionHead:
		l.pushHead(e)
	case PositionBefore:
		l.insertBefore(at, e)
	case PositionAfter:
		l.insertAfter(at, e)
	default:
		l.pushTail(e)
	}
	l.len++
	l.cursor = e
}

// Removes the first occurrence of node, found by identity, and destroys it.
// A cursor on the removed node moves to the head. Nodes which are not in the
// list are left alone.
func (l *List[T]) Remove(node *Node[T]) {
	if l == nil || node == nil {
		return
	}
	for e := l.head; e != nil; e = e.next {
		if e.node == node {
			l.unlink(e)
			l.destroy(e)
			return
		}
	}
	l.log.Debug("remove skipped: node not in list")
}

// Moves the cursor to the head and returns it.
func (l *List[T]) Head() *Node[T] {
	if l == nil {
		return nil
	}
	l.cursor = l.head
	return l.cursor.value()
}

// Moves the cursor to the tail and returns it.
func (l *List[T]) Tail() *Node[T] {
	if l == nil {
		return nil
	}
	l.cursor = l.tail
	return l.cursor.value()
}

func (l *List[T]) Current() *Node[T] {
	if l == nil {
		return nil
	}
	return l.cursor.value()
}

// Steps the cursor back. Stepping past the head leaves the cursor nil, and it
// stays nil until Head or Tail is called.
func (l *List[T]) Previous() *Node[T] {
	if l == nil || l.cursor == nil {
		return nil
	}
	l.cursor = l.cursor.prev
	return l.cursor.value()
}

// Steps the cursor forward. Stepping past the tail leaves the cursor nil, and
// it stays nil until Head or Tail is called.
func (l *List[T]) Next() *Node[T] {
	if l == nil || l.cursor == nil {
		return nil
	}
	l.cursor = l.cursor.next
	return l.cursor.value()
}

// Returns the first node the compare hook reports equal to needle, scanning
// from the head. Returns nil when no compare hook is bound.
func (l *List[T]) Find(needle *Node[T]) *Node[T] {
	if l == nil || needle == nil {
		return nil
	}
	if l.cmpNode == nil {
		l.log.Debug("find skipped: no compare hook")
		return nil
	}
	for e := l.head; e != nil; e = e.next {
		if l.cmpNode(e.node, needle) == 0 {
			return e.node
		}
	}
	return nil
}

// Returns the first node holding exactly payload (pointer identity). The
// compare hook is not used, but it must be bound: without it this returns nil.
func (l *List[T]) FindPayload(payload *T) *Node[T] {
	if l == nil || payload == nil {
		return nil
	}
	if l.cmpNode == nil {
		l.log.Debug("find payload skipped: no compare hook")
		return nil
	}
	for e := l.head; e != nil; e = e.next {
		if e.node.Payload == payload {
			return e.node
		}
	}
	return nil
}

// Copies the list, hooks included, with the cursor on the new tail.
//
// With a duplicate hook every node is copied through it. If the hook returns
// nil the copy stops there and the shorter list is returned.
//
// Without a duplicate hook the new list links the very same nodes. The chains
// are independent but nodes and payloads are shared, so at most one of the
// two lists should have a destroy hook bound when both are freed.
func (l *List[T]) Dup() *List[T] {
	if l == nil {
		return nil
	}
	dup := &List[T]{
		newNode:  l.newNode,
		dupNode:  l.dupNode,
		freeNode: l.freeNode,
		cmpNode:  l.cmpNode,
		log:      l.log,
	}
	for e := l.head; e != nil; e = e.next {
		node := e.node
		if l.dupNode != nil {
			if node = l.dupNode(e.node); node == nil {
				l.log.Debugf("dup stopped after %d of %d nodes", dup.len, l.len)
				break
			}
		}
		dup.pushTail(&link[T]{node: node})
		dup.len++
	}
	dup.cursor = dup.tail
	return dup
}

// Destroys every node, head to tail, and leaves the list empty. Bound hooks
// are kept.
func (l *List[T]) Free() {
	if l == nil {
		return
	}
	e := l.head
	l.head, l.tail, l.cursor, l.len = nil, nil, nil, 0
	for e != nil {
		next := e.next
		l.destroy(e)
		e = next
	}
}

// Walks head to tail without touching the cursor. The yielded node may be
// removed during the walk; removing any other node ends it early.
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l == nil {
			return
		}
		for e := l.head; e != nil && e.node != nil; {
			next := e.next
			if !yield(e.node) {
				return
			}
			e = next
		}
	}
}

// Walks tail to head without touching the cursor.
func (l *List[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l == nil {
			return
		}
		for e := l.tail; e != nil && e.node != nil; {
			prev := e.prev
			if !yield(e.node) {
				return
			}
			e = prev
		}
	}
}

func (l *List[T]) Payloads() []*T {
	if l == nil {
		return nil
	}
	payloads := make([]*T, 0, l.len)
	for e := l.head; e != nil; e = e.next {
		payloads = append(payloads, e.node.Payload)
	}
	return payloads
}

// reference resolves the node Before and After link next to. A where which
// is not in the list resolves to nothing.
func (l *List[T]) reference(position Position, where *Node[T]) *link[T] {
	if where != nil {
		return l.locate(where)
	}
	if l.cursor != nil {
		return l.cursor
	}
	if position == PositionBefore {
		return l.head
	}
	return l.tail
}

// locate finds the first occurrence of node, preferring the cursor when it
// holds that node.
func (l *List[T]) locate(node *Node[T]) *link[T] {
	if l.cursor != nil && l.cursor.node == node {
		return l.cursor
	}
	for e := l.head; e != nil; e = e.next {
		if e.node == node {
			return e
		}
	}
	return nil
}

func (l *List[T]) pushHead(e *link[T]) {
	if l.head == nil {
		l.head = e
		l.tail = e
		return
	}
	l.insertBefore(l.head, e)
}

func (l *List[T]) pushTail(e *link[T]) {
	if l.tail == nil {
		l.head = e
		l.tail = e
		return
	}
	l.insertAfter(l.tail, e)
}

func (l *List[T]) insertBefore(at *link[T], e *link[T]) {
	e.next = at
	e.prev = at.prev
	if at.prev == nil {
		l.head = e
	} else {
		at.prev.next = e
	}
	at.prev = e
}

func (l *List[T]) insertAfter(at *link[T], e *link[T]) {
	e.prev = at
	e.next = at.next
	if at.next == nil {
		l.tail = e
	} else {
		at.next.prev = e
	}
	at.next = e
}

func (l *List[T]) unlink(e *link[T]) {
	next := e.next
	prev := e.prev

	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}

	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	l.len--

	if l.cursor == e {
		l.cursor = l.head
	}
}

func (l *List[T]) destroy(e *link[T]) {
	node := e.node
	e.prev = nil
	e.next = nil
	e.node = nil
	if l.freeNode != nil {
		l.freeNode(node)
	}
}
