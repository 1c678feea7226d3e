package hierarchy

import "casetree/internal/tms"

// Node is one suite in the resolved forest.
type Node struct {
	Suite tms.Suite

	// Orphaned marks a root whose declared parent id was absent from
	// the snapshot. True roots (nil parent) keep it false, so consumers
	// can tell a dangling reference from a genuine top-level suite.
	Orphaned bool

	Children []*Node
}

// BuildTree partitions the snapshot into a forest. A suite becomes a root
// when its parent is nil or absent from the set; every other suite is
// attached under its parent's Children in snapshot order. Cycles are
// broken by promoting the first cycle member (in snapshot order) to a
// root, so every input suite appears exactly once in the output.
func (set *Set) BuildTree() []*Node {
	nodes := make(map[int64]*Node, len(set.suites))
	order := make([]*Node, 0, len(set.suites))
	for _, s := range set.suites {
		if _, dup := nodes[s.ID]; dup {
			continue
		}
		n := &Node{Suite: s}
		nodes[s.ID] = n
		order = append(order, n)
	}

	var roots []*Node
	parentOf := make(map[int64]*Node)
	for _, n := range order {
		pid := n.Suite.ParentSuiteID
		switch {
		case pid == nil:
			roots = append(roots, n)
		case nodes[*pid] == nil:
			n.Orphaned = true
			roots = append(roots, n)
		default:
			parent := nodes[*pid]
			parent.Children = append(parent.Children, n)
			parentOf[n.Suite.ID] = parent
		}
	}

	// Suites caught in a parent cycle are attached to each other but
	// reachable from no root; promote one member per cycle.
	reachable := make(map[int64]struct{}, len(order))
	for _, r := range roots {
		markReachable(r, reachable)
	}
	for _, n := range order {
		if _, ok := reachable[n.Suite.ID]; ok {
			continue
		}
		if parent := parentOf[n.Suite.ID]; parent != nil {
			parent.Children = removeChild(parent.Children, n)
		}
		roots = append(roots, n)
		markReachable(n, reachable)
	}

	return roots
}

func markReachable(n *Node, reachable map[int64]struct{}) {
	if _, ok := reachable[n.Suite.ID]; ok {
		return
	}
	reachable[n.Suite.ID] = struct{}{}
	for _, c := range n.Children {
		markReachable(c, reachable)
	}
}

func removeChild(children []*Node, target *Node) []*Node {
	for i, c := range children {
		if c == target {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

// CountNodes returns the total number of suites in the forest.
func CountNodes(roots []*Node) int {
	total := 0
	for _, r := range roots {
		total += 1 + CountNodes(r.Children)
	}
	return total
}
