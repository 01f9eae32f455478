package llist

import (
	"github.com/sirupsen/logrus"
)

type Configuration[T any] struct {
	newNode  func() *Node[T]
	dupNode  func(*Node[T]) *Node[T]
	freeNode func(*Node[T])
	cmpNode  func(a, b *Node[T]) int
	log      *logrus.Entry
}

// Creates a configuration with no hooks bound. Pass it to New.
func Configure[T any]() *Configuration[T] {
	return &Configuration[T]{}
}

// The construct hook, see List.SetNew
func (c *Configuration[T]) New(fn func() *Node[T]) *Configuration[T] {
	c.newNode = fn
	return c
}

// The duplicate hook, see List.SetDup
func (c *Configuration[T]) Dup(fn func(*Node[T]) *Node[T]) *Configuration[T] {
	c.dupNode = fn
	return c
}

// The destroy hook, see List.SetFree
func (c *Configuration[T]) Free(fn func(*Node[T])) *Configuration[T] {
	c.freeNode = fn
	return c
}

// The compare hook, see List.SetCmp
func (c *Configuration[T]) Cmp(fn func(a, b *Node[T]) int) *Configuration[T] {
	c.cmpNode = fn
	return c
}

// Logger for debug entries about skipped operations.
// Defaults to logrus.WithField("component", "llist")
func (c *Configuration[T]) Logger(log *logrus.Entry) *Configuration[T] {
	c.log = log
	return c
}

// Create an empty list with the configuration's hooks bound.
// See llist.Configure() for creating a configuration
func New[T any](config *Configuration[T]) *List[T] {
	l := NewList[T]()
	if config == nil {
		return l
	}
	l.SetNew(config.newNode)
	l.SetDup(config.dupNode)
	l.SetFree(config.freeNode)
	l.SetCmp(config.cmpNode)
	l.SetLogger(config.log)
	return l
}
