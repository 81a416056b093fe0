package scene

import (
	"iter"

	"github.com/plus3/scenedit/pool"
)

// Graph owns every node of a scene. Nodes are addressed by handle only.
type Graph struct {
	nodes *pool.Pool[Node]
}

func NewGraph() *Graph {
	return &Graph{
		nodes: pool.New[Node](),
	}
}

// Add stores a node and returns its handle.
func (g *Graph) Add(node Node) NodeHandle {
	return g.nodes.Spawn(node)
}

// Remove takes the node out of the graph, panicking if h is stale.
func (g *Graph) Remove(h NodeHandle) Node {
	node, ok := g.nodes.Free(h)
	if !ok {
		// At panics with the reason the handle failed to resolve.
		g.nodes.At(h)
	}
	return node
}

// Restore puts a removed node back under its original handle.
func (g *Graph) Restore(h NodeHandle, node Node) {
	g.nodes.Restore(h, node)
}

// At resolves h, panicking if it is stale.
func (g *Graph) At(h NodeHandle) *Node {
	return g.nodes.At(h)
}

// Get resolves h without panicking.
func (g *Graph) Get(h NodeHandle) (*Node, bool) {
	return g.nodes.Get(h)
}

func (g *Graph) Has(h NodeHandle) bool {
	return g.nodes.Has(h)
}

func (g *Graph) Len() int {
	return g.nodes.Len()
}

// Pairs iterates every node in storage order.
func (g *Graph) Pairs() iter.Seq2[NodeHandle, *Node] {
	return g.nodes.All()
}

// Cameras iterates every camera node in storage order.
func (g *Graph) Cameras() iter.Seq2[NodeHandle, *Camera] {
	return func(yield func(NodeHandle, *Camera) bool) {
		for h, node := range g.nodes.All() {
			if !node.IsCamera() {
				continue
			}
			if !yield(h, node.AsCamera()) {
				return
			}
		}
	}
}

// Children lists the direct children of parent in storage order.
func (g *Graph) Children(parent NodeHandle) []NodeHandle {
	var out []NodeHandle
	for h, node := range g.nodes.All() {
		if node.Parent == parent {
			out = append(out, h)
		}
	}
	return out
}

// FindByName returns the first node with the given name.
func (g *Graph) FindByName(name string) (NodeHandle, bool) {
	for h, node := range g.nodes.All() {
		if node.Name == name {
			return h, true
		}
	}
	return pool.None[Node](), false
}
