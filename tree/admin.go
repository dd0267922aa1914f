// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"
	"strings"
)

// admin.go has infrastructure code outside of the Node interface.

// New returns a new node of the given type. If a parent is given, the node
// is added to it at the end of its children list; otherwise it is a root
// node. If the node does not already have a name, it is named automatically
// by [SetParent], or after its type for root nodes.
func New[T Node](parent ...Node) T {
	var zero T
	typ := reflect.TypeOf(zero).Elem()
	n := reflect.New(typ).Interface().(T)
	InitNode(n)
	if len(parent) == 0 || parent[0] == nil {
		if n.AsTree().Name == "" {
			n.AsTree().SetName(typeName(n))
		}
		return n
	}
	p := parent[0].AsTree()
	p.Children = append(p.Children, n)
	SetParent(n, p.This)
	return n
}

// NewNodeBase returns a new [NodeBase] with the given optional parent.
func NewNodeBase(parent ...Node) *NodeBase {
	return New[*NodeBase](parent...)
}

// InitNode initializes the node: it sets the node's [NodeBase.This] to
// itself and calls [Node.Init], exactly once per node lifetime. All node
// constructors call this; it only needs to be called directly for nodes
// created as struct literals or fields.
func InitNode(this Node) {
	n := this.AsTree()
	if n.This != this {
		n.This = this
		this.Init()
	}
}

// SetParent sets the parent of the given node to the given parent,
// which must already have the node in its children list, and calls
// [Node.OnAdd]. This is only for nodes with no existing parent; see
// [MoveToParent] to move nodes that already have a parent. Most code
// should use [NodeBase.AddChild] or [New] instead.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		pn := parent.AsTree()
		pn.numLifetimeChildren++
		if n.Name == "" {
			// must subtract 1 so we start at 0
			n.SetName(typeName(child) + "-" + strconv.FormatUint(pn.numLifetimeChildren-1, 10))
		}
	}
	child.OnAdd()
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	oldParent := child.AsTree().Parent
	if oldParent != nil {
		opt := oldParent.AsTree()
		idx := IndexOf(opt.Children, child)
		if idx >= 0 {
			opt.Children = append(opt.Children[:idx], opt.Children[idx+1:]...)
		}
	}
	parent.AsTree().AddChild(child)
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n *NodeBase) bool {
	return n.This == nil || n.Parent == nil || n.Parent.AsTree().This == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n.AsTree()) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}

// newOfSameType returns a new node of the same underlying type as the
// given node.
func newOfSameType(n Node) Node {
	return reflect.New(reflect.TypeOf(n.AsTree().This).Elem()).Interface().(Node)
}

// typeName returns the lowercase type name of the given node, used for
// automatic unique naming.
func typeName(n Node) string {
	return strings.ToLower(reflect.TypeOf(n).Elem().Name())
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument allows
// for optimized bidirectional searching if you have an idea where the
// node might be, which can be a key speedup for large lists.
func IndexOf(children []Node, n Node, startIndex ...int) int {
	if len(children) == 0 {
		return -1
	}
	si := 0
	if len(startIndex) > 0 {
		si = min(max(startIndex[0], 0), len(children)-1)
	}
	up, dn := si, si-1
	for up < len(children) || dn >= 0 {
		if up < len(children) {
			if children[up] == n {
				return up
			}
			up++
		}
		if dn >= 0 {
			if children[dn] == n {
				return dn
			}
			dn--
		}
	}
	return -1
}

// IndexByName returns the index of the first node with the given name
// in the given slice, or -1 if none is found.
func IndexByName(children []Node, name string) int {
	for i, kid := range children {
		if kid != nil && kid.AsTree().Name == name {
			return i
		}
	}
	return -1
}
