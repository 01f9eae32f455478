package llist

import (
	"testing"

	"github.com/karlseguin/llist/assert"
)

func Test_Check_HealthyLists(t *testing.T) {
	var l *List[int]
	assert.Nil(t, l.Check())
	assert.Nil(t, NewList[int]().Check())
	assert.Nil(t, listFromInts(1, 2, 3).Check())
}

func Test_Check_HeadWithoutTail(t *testing.T) {
	l := listFromInts(1, 2)
	l.tail = nil
	assert.Cause(t, l.Check(), ErrHeadTail)
}

func Test_Check_TailNotAtEndOfChain(t *testing.T) {
	l := listFromInts(1, 2, 3)
	l.tail = l.head
	assert.Cause(t, l.Check(), ErrHeadTail)
}

func Test_Check_BrokenBackLink(t *testing.T) {
	l := listFromInts(1, 2, 3)
	l.tail.prev = l.head
	err := l.Check()
	assert.Cause(t, err, ErrBrokenLink)
	assert.StringContains(t, err.Error(), "at position 2")
}

func Test_Check_HeadWithPredecessor(t *testing.T) {
	l := listFromInts(1, 2)
	l.head.prev = l.tail
	assert.Cause(t, l.Check(), ErrBrokenLink)
}

func Test_Check_Cycle(t *testing.T) {
	l := listFromInts(1, 2, 3)
	l.tail.next = l.head
	assert.Cause(t, l.Check(), ErrCycle)

	l = listFromInts(1)
	l.head.next = l.head
	assert.Cause(t, l.Check(), ErrCycle)
}

func Test_Check_Length(t *testing.T) {
	l := listFromInts(1, 2, 3)
	l.len = 2
	err := l.Check()
	assert.Cause(t, err, ErrLength)
	assert.StringContains(t, err.Error(), "walked 3, recorded 2")

	l = NewList[int]()
	l.len = 1
	assert.Cause(t, l.Check(), ErrLength)
}

func Test_Check_CursorOffTheChain(t *testing.T) {
	l := listFromInts(1, 2)
	l.cursor = &link[int]{node: intNode(1)}
	assert.Cause(t, l.Check(), ErrCursor)
}
