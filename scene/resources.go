package scene

import (
	"fmt"

	"github.com/google/uuid"
)

// ResourceId identifies a texture owned by Resources.
type ResourceId string

// NewResourceId generates a fresh random id.
func NewResourceId() ResourceId {
	return ResourceId(uuid.NewString())
}

// Texture is the bookkeeping record of a texture. Pixel data lives with the renderer.
type Texture struct {
	Id     ResourceId
	Path   string
	Width  int
	Height int
	refs   int
}

// Resources is a reference-counted texture registry. A texture is dropped when its last
// reference is released.
type Resources struct {
	textures map[ResourceId]*Texture
}

func NewResources() *Resources {
	return &Resources{
		textures: make(map[ResourceId]*Texture),
	}
}

// LoadTexture registers a texture backed by a file and returns it with one reference.
// Loading the same path twice yields the same id with an extra reference.
func (r *Resources) LoadTexture(path string) ResourceId {
	for id, tex := range r.textures {
		if tex.Path == path {
			tex.refs++
			return id
		}
	}

	id := NewResourceId()
	r.textures[id] = &Texture{Id: id, Path: path, refs: 1}
	return id
}

// CreateTexture registers a procedural texture of the given size with one reference.
func (r *Resources) CreateTexture(width, height int) ResourceId {
	id := NewResourceId()
	r.textures[id] = &Texture{Id: id, Width: width, Height: height, refs: 1}
	return id
}

// Acquire adds a reference. Acquiring the empty id is a no-op.
func (r *Resources) Acquire(id ResourceId) {
	if id == "" {
		return
	}
	r.mustGet(id).refs++
}

// Release drops a reference and removes the texture when none remain.
// Releasing the empty id is a no-op.
func (r *Resources) Release(id ResourceId) {
	if id == "" {
		return
	}
	tex := r.mustGet(id)
	tex.refs--
	if tex.refs <= 0 {
		delete(r.textures, id)
	}
}

// Texture returns the texture registered under id.
func (r *Resources) Texture(id ResourceId) (*Texture, bool) {
	tex, ok := r.textures[id]
	return tex, ok
}

// RefCount returns the number of live references to id, 0 when unknown.
func (r *Resources) RefCount(id ResourceId) int {
	if tex, ok := r.textures[id]; ok {
		return tex.refs
	}
	return 0
}

// Len returns the number of live textures.
func (r *Resources) Len() int {
	return len(r.textures)
}

func (r *Resources) mustGet(id ResourceId) *Texture {
	tex, ok := r.textures[id]
	if !ok {
		panic(fmt.Sprintf("scene: unknown texture %s", id))
	}
	return tex
}
