package llist

import (
	"testing"

	. "github.com/karlseguin/expect"
)

type NodeTests struct{}

func Test_Node(t *testing.T) {
	Expectify(new(NodeTests), t)
}

func (_ *NodeTests) HoldsThePayload() {
	value := 3
	node := NewNode(&value)
	Expect(node.Payload == &value).To.Equal(true)
	Expect(NewNode[int](nil).Payload == nil).To.Equal(true)
}

func (_ *NodeTests) CompareByOrdersOnTheKey() {
	cmp := CompareBy(func(it *item) string { return it.name })
	a := NewNode(&item{name: "leto"})
	b := NewNode(&item{name: "paul"})
	Expect(cmp(a, b)).To.Equal(-1)
	Expect(cmp(b, a)).To.Equal(1)
	Expect(cmp(a, NewNode(&item{id: 9, name: "leto"}))).To.Equal(0)
}

func (_ *NodeTests) CompareByTreatsNilAsEqual() {
	cmp := CompareBy(func(it *item) int { return it.id })
	a := NewNode(&item{id: 1})
	Expect(cmp(a, nil)).To.Equal(0)
	Expect(cmp(nil, a)).To.Equal(0)
	Expect(cmp(a, NewNode[item](nil))).To.Equal(0)
}
