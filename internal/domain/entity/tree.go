package entity

import (
	"fmt"

	"github.com/bnema/chordbar/internal/domain/keysym"
)

// NodeID indexes a node inside its BindTree.
type NodeID int

const noParent NodeID = -1

// CommandSpec is the construction data of a leaf.
type CommandSpec struct {
	Line        string
	KeepRunning bool
}

// NodeSpec is the construction data of one node. Exactly one of Command and
// Group must be set; a nil Group means "not a group", an empty non-nil Group
// is an empty group and is rejected.
type NodeSpec struct {
	Name    string
	Key     string
	Command *CommandSpec
	Group   []NodeSpec
}

// BuildOptions controls how leaf commands are parsed.
type BuildOptions struct {
	// Shell, when set, runs every command line as [Shell, "-c", line].
	Shell string
}

// nodeBody is either Leaf or Branch.
type nodeBody interface {
	isNodeBody()
}

// Leaf is the body of a node that runs a command.
type Leaf struct {
	Command Command
}

// Branch is the body of a node that offers further choices.
type Branch struct {
	children []NodeID
	index    map[keysym.Keysym]NodeID
}

func (Leaf) isNodeBody()   {}
func (Branch) isNodeBody() {}

type node struct {
	name   string
	key    Keybind
	parent NodeID
	body   nodeBody
}

// BindTree is the immutable menu hierarchy. Nodes live in a flat slice and
// refer to each other by index; children are owned top-down.
type BindTree struct {
	nodes []node
}

// BuildTree builds the tree depth-first from spec. The root must be a group.
// On error no tree is returned; the error is a *ConfigError.
func BuildTree(spec NodeSpec, opts BuildOptions) (*BindTree, error) {
	if spec.Group == nil {
		return nil, &ConfigError{Path: []string{displayName(spec)}, Err: ErrRootNotGroup}
	}

	t := &BindTree{}
	if _, err := t.add(spec, noParent, nil, opts); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *BindTree) add(spec NodeSpec, parent NodeID, path []string, opts BuildOptions) (NodeID, error) {
	path = append(path[:len(path):len(path)], displayName(spec))
	fail := func(err error) (NodeID, error) {
		return 0, &ConfigError{Path: path, Err: err}
	}

	var key Keybind
	// The root is never selected by a key, so its key is optional.
	if parent != noParent || spec.Key != "" {
		k, err := ParseKeybind(spec.Key)
		if err != nil {
			return fail(fmt.Errorf("%w: %v", ErrUnknownKey, err))
		}
		key = k
	}

	if (spec.Command != nil) == (spec.Group != nil) {
		return fail(ErrAmbiguousNode)
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{name: spec.Name, key: key, parent: parent})

	if spec.Command != nil {
		cmd, err := ParseCommand(spec.Command.Line, spec.Command.KeepRunning, opts.Shell)
		if err != nil {
			return fail(err)
		}
		t.nodes[id].body = Leaf{Command: cmd}
		return id, nil
	}

	if len(spec.Group) == 0 {
		return fail(ErrEmptyGroup)
	}

	branch := Branch{
		children: make([]NodeID, 0, len(spec.Group)),
		index:    make(map[keysym.Keysym]NodeID, len(spec.Group)),
	}
	for _, childSpec := range spec.Group {
		childID, err := t.add(childSpec, id, path, opts)
		if err != nil {
			return 0, err
		}
		child := t.nodes[childID]
		if prev, dup := branch.index[child.key.sym]; dup {
			return 0, &ConfigError{
				Path: append(path[:len(path):len(path)], displayName(childSpec)),
				Err:  fmt.Errorf("%w %q (already bound to %q)", ErrDuplicateKey, child.key.label, t.nodes[prev].name),
			}
		}
		branch.index[child.key.sym] = childID
		branch.children = append(branch.children, childID)
	}
	t.nodes[id].body = branch
	return id, nil
}

func displayName(spec NodeSpec) string {
	if spec.Name != "" {
		return spec.Name
	}
	if spec.Key != "" {
		return "[" + spec.Key + "]"
	}
	return "<unnamed>"
}

// Root returns the root node.
func (t *BindTree) Root() Node {
	return Node{tree: t, id: 0}
}

// Len returns the number of nodes in the tree.
func (t *BindTree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given id.
func (t *BindTree) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return Node{tree: t, id: id}, true
}

// Walk visits every node depth-first in construction order. Returning false
// from fn skips the node's children.
func (t *BindTree) Walk(fn func(n Node, depth int) bool) {
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		if !fn(Node{tree: t, id: id}, depth) {
			return
		}
		if br, ok := t.nodes[id].body.(Branch); ok {
			for _, c := range br.children {
				visit(c, depth+1)
			}
		}
	}
	visit(0, 0)
}

// Node is a handle on a tree node. Handles compare equal with == exactly when
// they refer to the same node of the same tree.
type Node struct {
	tree *BindTree
	id   NodeID
}

func (n Node) data() *node {
	return &n.tree.nodes[n.id]
}

// IsZero reports whether n is the zero handle.
func (n Node) IsZero() bool {
	return n.tree == nil
}

// ID returns the node's index in its tree.
func (n Node) ID() NodeID {
	return n.id
}

// Name returns the display name.
func (n Node) Name() string {
	return n.data().name
}

// Key returns the keybind that selects this node from its parent. The root
// may have a zero key.
func (n Node) Key() Keybind {
	return n.data().key
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.data().parent == noParent
}

// IsLeaf reports whether n runs a command.
func (n Node) IsLeaf() bool {
	_, ok := n.data().body.(Leaf)
	return ok
}

// Parent returns the parent node; ok is false for the root.
func (n Node) Parent() (Node, bool) {
	p := n.data().parent
	if p == noParent {
		return Node{}, false
	}
	return Node{tree: n.tree, id: p}, true
}

// Children returns the immediate children in construction order. Leaves have
// none.
func (n Node) Children() []Node {
	br, ok := n.data().body.(Branch)
	if !ok {
		return nil
	}
	out := make([]Node, len(br.children))
	for i, c := range br.children {
		out[i] = Node{tree: n.tree, id: c}
	}
	return out
}

// ChildAt returns the child selected by key. It fails with an
// *InvalidKeyError when key is not bound here or n is a leaf.
func (n Node) ChildAt(key Keybind) (Node, error) {
	if br, ok := n.data().body.(Branch); ok {
		if id, found := br.index[key.sym]; found {
			return Node{tree: n.tree, id: id}, nil
		}
	}

	children := n.Children()
	valid := make([]Keybind, len(children))
	for i, c := range children {
		valid[i] = c.Key()
	}
	return Node{}, &InvalidKeyError{Key: key, Valid: valid}
}

// Command returns the command of a leaf.
func (n Node) Command() (Command, bool) {
	leaf, ok := n.data().body.(Leaf)
	if !ok {
		return Command{}, false
	}
	return leaf.Command, true
}

// Path returns the node names from the root down to n.
func (n Node) Path() []string {
	var rev []string
	for cur, ok := n, true; ok; cur, ok = cur.Parent() {
		rev = append(rev, cur.Name())
	}
	path := make([]string, len(rev))
	for i, name := range rev {
		path[len(rev)-1-i] = name
	}
	return path
}

// String implements fmt.Stringer.
func (n Node) String() string {
	if n.IsZero() {
		return "<none>"
	}
	return n.Name()
}
