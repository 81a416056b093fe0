package editor

import (
	"fmt"

	"github.com/plus3/scenedit/scene"
)

func terrainOf(ctx *Context, h scene.NodeHandle) *scene.Terrain {
	return ctx.Graph().At(h).AsTerrain()
}

func releaseLayer(ctx *Context, layer scene.Layer) {
	ctx.Scene.Resources.Release(layer.Texture)
	ctx.Scene.Resources.Release(layer.Mask)
}

// AddTerrainLayerCommand appends a layer to a terrain. The first Execute creates an empty
// mask texture sized by the terrain's MaskSize; redo re-appends the same layer.
//
// While undone the command owns the layer and its textures, and Finalize releases them.
type AddTerrainLayerCommand struct {
	terrain scene.NodeHandle
	texture scene.ResourceId
	layer   scene.Layer
	created bool
	owned   bool
}

// NewAddTerrainLayerCommand creates the command. A non-empty texture must carry a
// reference that is handed over to the new layer.
func NewAddTerrainLayerCommand(terrain scene.NodeHandle, texture scene.ResourceId) *AddTerrainLayerCommand {
	return &AddTerrainLayerCommand{terrain: terrain, texture: texture, owned: true}
}

func (c *AddTerrainLayerCommand) Name(*Context) string {
	return "Add Terrain Layer"
}

func (c *AddTerrainLayerCommand) Execute(ctx *Context) {
	terrain := terrainOf(ctx, c.terrain)
	if !c.created {
		c.layer = scene.Layer{
			Texture: c.texture,
			Mask:    ctx.Scene.Resources.CreateTexture(terrain.MaskSize, terrain.MaskSize),
		}
		c.created = true
	}
	terrain.AddLayer(c.layer)
	c.owned = false
}

func (c *AddTerrainLayerCommand) Revert(ctx *Context) {
	c.layer = terrainOf(ctx, c.terrain).PopLayer()
	c.owned = true
}

func (c *AddTerrainLayerCommand) Finalize(ctx *Context) {
	if !c.owned {
		return
	}
	if c.created {
		releaseLayer(ctx, c.layer)
	} else {
		ctx.Scene.Resources.Release(c.texture)
	}
	c.owned = false
}

// Layer returns the layer the command appends. It is zero before the first Execute.
func (c *AddTerrainLayerCommand) Layer() scene.Layer {
	return c.layer
}

// DeleteTerrainLayerCommand removes the layer at an index. While done the command owns
// the removed layer, and Finalize releases its textures.
type DeleteTerrainLayerCommand struct {
	terrain scene.NodeHandle
	index   int
	layer   scene.Layer
	owned   bool
}

func NewDeleteTerrainLayerCommand(terrain scene.NodeHandle, index int) *DeleteTerrainLayerCommand {
	return &DeleteTerrainLayerCommand{terrain: terrain, index: index}
}

func (c *DeleteTerrainLayerCommand) Name(*Context) string {
	return fmt.Sprintf("Delete Terrain Layer %d", c.index)
}

func (c *DeleteTerrainLayerCommand) Execute(ctx *Context) {
	c.layer = terrainOf(ctx, c.terrain).RemoveLayer(c.index)
	c.owned = true
}

func (c *DeleteTerrainLayerCommand) Revert(ctx *Context) {
	terrainOf(ctx, c.terrain).InsertLayer(c.index, c.layer)
	c.owned = false
}

func (c *DeleteTerrainLayerCommand) Finalize(ctx *Context) {
	if !c.owned {
		return
	}
	releaseLayer(ctx, c.layer)
	c.owned = false
}

// SetTerrainLayerTextureCommand replaces the diffuse texture of a layer.
//
// The layer and the command each hold one reference: whichever texture is not applied to
// the layer belongs to the command. Execute and Revert swap ownership without touching
// reference counts, and Finalize releases the one the command holds.
type SetTerrainLayerTextureCommand struct {
	terrain scene.NodeHandle
	index   int
	held    scene.ResourceId
	done    bool
	final   bool
}

// NewSetTerrainLayerTextureCommand creates the command. The caller hands over one
// reference to texture.
func NewSetTerrainLayerTextureCommand(terrain scene.NodeHandle, index int, texture scene.ResourceId) *SetTerrainLayerTextureCommand {
	return &SetTerrainLayerTextureCommand{terrain: terrain, index: index, held: texture}
}

func (c *SetTerrainLayerTextureCommand) Name(*Context) string {
	return "Set Terrain Layer Texture"
}

func (c *SetTerrainLayerTextureCommand) Execute(ctx *Context) {
	c.swap(ctx)
	c.done = true
}

func (c *SetTerrainLayerTextureCommand) Revert(ctx *Context) {
	c.swap(ctx)
	c.done = false
}

func (c *SetTerrainLayerTextureCommand) swap(ctx *Context) {
	layer := terrainOf(ctx, c.terrain).Layer(c.index)
	layer.Texture, c.held = c.held, layer.Texture
}

func (c *SetTerrainLayerTextureCommand) Finalize(ctx *Context) {
	if c.final {
		return
	}
	ctx.Scene.Resources.Release(c.held)
	c.final = true
}

// Done reports whether the new texture is currently applied.
func (c *SetTerrainLayerTextureCommand) Done() bool {
	return c.done
}
