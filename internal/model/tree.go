package model

// Node is one employee in the reporting tree. A node owns its children
// exclusively; the subtree is mutated only while the forest is being built.
type Node struct {
	Record   EmployeeRecord
	Children []*Node
}

// Forest is the ordered list of reporting trees covering one snapshot.
// Each root is an employee whose manager is not resolvable in the snapshot.
type Forest []*Node

// Walk visits every node of the forest in depth-first pre-order,
// roots in forest order. Iterative — safe for arbitrarily deep trees.
func (f Forest) Walk(visit func(n *Node, depth int)) {
	type frame struct {
		node  *Node
		depth int
	}
	var stack []frame
	for i := len(f) - 1; i >= 0; i-- {
		stack = append(stack, frame{f[i], 0})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(top.node, top.depth)
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.node.Children[i], top.depth + 1})
		}
	}
}

// Size returns the total number of nodes in the forest.
func (f Forest) Size() int {
	n := 0
	f.Walk(func(*Node, int) { n++ })
	return n
}
