// Package editor implements the reversible commands that edit a scene and the session
// that applies them in order.
//
// Every command operates on a *Context, which bundles the scene content with state that
// only exists in the editor, such as the camera the user orbits the scene with.
package editor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/scene"
	"github.com/plus3/scenedit/undo"
)

// EditorCameraName is the name given to the camera node created for the editor view.
const EditorCameraName = "__EditorCamera__"

type Command = undo.Command[*Context]
type History = undo.History[*Context]

// CameraController drives the editor camera. The camera itself is a node of the scene
// graph; the controller only keeps its handle and the orbit parameters.
type CameraController struct {
	Camera   scene.NodeHandle
	Pivot    mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
}

// EditorScene is the editor-only state that accompanies a scene.
type EditorScene struct {
	CameraController CameraController
	Selection        []scene.NodeHandle
}

// NewEditorScene adds the editor camera to s and returns the state that tracks it.
func NewEditorScene(s *scene.Scene) *EditorScene {
	node := scene.NewCameraNode(EditorCameraName, scene.NewCamera())
	node.Local.Position = mgl32.Vec3{0, 2, 10}
	handle := s.Graph.Add(node)

	return &EditorScene{
		CameraController: CameraController{
			Camera:   handle,
			Distance: 10,
		},
	}
}

// Context is the mutable aggregate every command executes against. Commands receive it
// for the duration of one call and never keep it.
type Context struct {
	Scene       *scene.Scene
	EditorScene *EditorScene
}

// NewContext creates a context for s, adding the editor camera to it.
func NewContext(s *scene.Scene) *Context {
	return &Context{
		Scene:       s,
		EditorScene: NewEditorScene(s),
	}
}

// Graph is shorthand for the scene graph.
func (c *Context) Graph() *scene.Graph {
	return c.Scene.Graph
}

// EditorCameraHandle returns the handle of the editor camera node.
func (c *Context) EditorCameraHandle() scene.NodeHandle {
	return c.EditorScene.CameraController.Camera
}

// EditorCamera resolves the editor camera, panicking if it is gone.
func (c *Context) EditorCamera() *scene.Camera {
	return c.Scene.Graph.At(c.EditorCameraHandle()).AsCamera()
}
