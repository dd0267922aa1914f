// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core tree
// functionality. You must use NodeBase as an embedded struct in all
// higher-level tree types.
//
// All nodes must be properly initialized by using [New], [NewNodeBase],
// [NodeBase.AddChild], [NodeBase.InsertChild], or [NodeBase.Clone], which
// ensures that the [NodeBase.This] field is set correctly and the
// [Node.Init] method is called.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to
	// other children of the same parent. It can be used for finding nodes.
	// If not otherwise set, it defaults to the lowercase name of the node
	// type combined with the total number of children that have ever been
	// added to the node's parent.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows
	// methods defined on base types to call methods defined on higher-level
	// types. It is set to nil when the node is destroyed.
	This Node `copier:"-"`

	// Parent is the parent of this node, which is set automatically when this
	// node is added as a child of a parent. It is a non-owning back-reference
	// used only for traversal; ownership goes strictly through [NodeBase.Children].
	// To change the parent of a node, use [MoveToParent]; you should typically
	// not set this field directly. Nodes can only have one parent at a time.
	Parent Node `copier:"-"`

	// Children is the ordered list of children of this node. All of them are
	// set to have this node as their parent. You should typically use the
	// NodeBase child helper functions when modifying this list so that
	// everything is updated properly, such as when deleting children.
	Children []Node `copier:"-"`

	// numLifetimeChildren is the number of children that have ever been added
	// to this node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point
	// for finding us in our parent next time. It is not guaranteed to be
	// accurate; use the [NodeBase.IndexInParent] method.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the name of this node and returns the node so that calls
// can be chained after construction.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index) // very fast if index is close
	n.index = idx
	return idx
}

// ParentByName finds the first parent recursively up the hierarchy that
// matches the given name. It returns nil if none is found.
func (n *NodeBase) ParentByName(name string) Node {
	if IsRoot(n) {
		return nil
	}
	if n.Parent.AsTree().Name == name {
		return n.Parent
	}
	return n.Parent.AsTree().ParentByName(name)
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such child is found.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using [NodeBase.Name]s separated by / delimiters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// PathFrom returns the path to this node from the given parent node, using
// [NodeBase.Name]s separated by / delimiters. The paths that it returns
// exclude the name of the parent and the leading slash; for example, in the
// tree a/b/c/d/e, the result of d.PathFrom(b) would be c/d.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	// critical to get This
	parent = parent.AsTree().This
	// we bail a level below the parent so it isn't in the path
	if n.Parent == nil || n.Parent == parent {
		return EscapePathName(n.Name)
	}
	ppath := n.Parent.AsTree().PathFrom(parent)
	return ppath + "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node.
// FindPath only works correctly when names are unique.
// The given path must be consistent with the format produced
// by [NodeBase.PathFrom]. There is also support for index-based
// access ([0] for the first child) for cases where indexes
// are more useful than names. It returns nil if no node is found
// at the given path.
func (n *NodeBase) FindPath(path string) Node {
	curn := n.This
	pels := strings.Split(strings.Trim(strings.TrimSpace(path), "\""), "/")
	for _, pe := range pels {
		if len(pe) == 0 {
			continue
		}
		idx := findPathChild(curn, UnescapePathName(pe))
		if idx < 0 {
			return nil
		}
		curn = curn.AsTree().Children[idx]
	}
	return curn
}

// findPathChild finds the child with the given string representation in [NodeBase.FindPath].
func findPathChild(n Node, child string) int {
	if child[0] == '[' && child[len(child)-1] == ']' {
		idx, err := strconv.Atoi(child[1 : len(child)-1])
		if err != nil {
			return idx
		}
		if idx < 0 { // from end
			idx = len(n.AsTree().Children) + idx
		}
		return idx
	}
	return IndexByName(n.AsTree().Children, child)
}

// Adding and Inserting Children:

// AddChild adds the given child at the end of the children list.
// The kid node is assumed to not be on another tree (see [MoveToParent])
// and the existing name should be unique among children.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// InsertChild adds the given child at the given position in the children
// list. The kid node is assumed to not be on another tree (see
// [MoveToParent]) and the existing name should be unique among children.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// Deleting Children:

// DeleteChildAt deletes the child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildByName deletes the child node with the given name, returning
// false if it can not find it.
func (n *NodeBase) DeleteChildByName(name string) bool {
	idx := IndexByName(n.Children, name)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = n.Children[:0] // preserves capacity of list
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Delete deletes this node from its parent's children list
// and then destroys itself.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.This.Destroy()
	} else {
		n.Parent.AsTree().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys the node and all of its children.
// No back-reference into the tree survives destruction.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.Parent = nil
	n.This = nil
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents (but
// not the node itself), sequentially in the current goroutine. It stops
// walking if the function returns [Break] and keeps walking if it returns
// [Continue]. It returns whether walking was finished (false if it was
// aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if IsRoot(n) {
		return true
	}
	cur := n.Parent
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first pre-order manner, sequentially in the current goroutine.
// It stops walking the current branch of the tree if the function returns
// [Break] and keeps walking if it returns [Continue]; siblings of a broken
// branch are still walked.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	for _, kid := range n.Children {
		if kid == nil || kid.AsTree().This == nil {
			continue
		}
		kid.AsTree().WalkDown(fun)
	}
}

// WalkDownPost iterates in a depth-first manner over the children, calling
// shouldContinue on each node to test if processing should proceed (if it
// returns [Break] then that branch of the tree is not further processed),
// and then calls the given function after all of a node's children have
// been iterated over. In effect, the given function is called for deeper
// nodes first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !shouldContinue(n.This) {
		return
	}
	for _, kid := range n.Children {
		if kid == nil || kid.AsTree().This == nil {
			continue
		}
		kid.AsTree().WalkDownPost(shouldContinue, fun)
	}
	fun(n.This)
}

// Deep Copy:

// note: we use the copy from direction (instead of copy to), as the receiver
// is modified whereas the from is not and assignment is typically in the same
// direction.

// CopyFrom copies the data and children of the given node to this node.
// It is essential that the source node has unique names. Only copying to
// the same type is supported. The struct field tag copier:"-" can be added
// for any fields that should not be copied. Also, unexported fields are
// not copied. See [Node.CopyFieldsFrom] for more information on field
// copying.
func (n *NodeBase) CopyFrom(from Node) {
	if from == nil {
		slog.Error("tree.NodeBase.CopyFrom: nil source", "destinationNode", n)
		return
	}
	copyFrom(n.This, from)
}

// copyFrom is the implementation of [NodeBase.CopyFrom].
func copyFrom(to, from Node) {
	tot := to.AsTree()
	fromt := from.AsTree()
	tot.DeleteChildren()
	tot.This.CopyFieldsFrom(from)
	for _, fk := range fromt.Children {
		nk := newOfSameType(fk)
		InitNode(nk)
		nk.AsTree().SetName(fk.AsTree().Name)
		tot.Children = append(tot.Children, nk)
		SetParent(nk, tot.This)
		copyFrom(nk, fk)
	}
}

// Clone creates and returns a deep copy of the tree from this node down.
// Any pointers within the cloned tree will correctly point within the new
// cloned tree (see [NodeBase.CopyFrom] for more information).
func (n *NodeBase) Clone() Node {
	nc := newOfSameType(n.This)
	InitNode(nc)
	nc.AsTree().SetName(n.Name)
	nc.AsTree().CopyFrom(n.This)
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node.
// It does a deep copy of all of the fields of the node that do not
// have a `copier:"-"` struct tag, using [copier.CopyWithOption].
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Event methods:

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}
