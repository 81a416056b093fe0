// Package scene holds the editable content of a 3D scene: the node graph, the physics
// description attached to it and the textures both reference.
//
// Every entity lives in a pool and is addressed through a handle. Nothing in this
// package keeps undo state; see package editor for the commands that mutate a Scene.
package scene

// Scene is the aggregate of all content stores.
type Scene struct {
	Graph     *Graph
	Physics   *Physics
	Resources *Resources
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		Graph:     NewGraph(),
		Physics:   NewPhysics(),
		Resources: NewResources(),
	}
}
