package scene

import "fmt"

// Layer is one material layer of a terrain: a diffuse texture blended by a mask.
type Layer struct {
	Texture ResourceId
	Mask    ResourceId
}

// Terrain is the payload of a terrain node.
type Terrain struct {
	Width  float32
	Length float32
	// MaskSize is the edge length in texels of the mask created for each new layer.
	MaskSize int
	layers   []Layer
}

// NewTerrain creates a terrain without layers.
func NewTerrain(width, length float32, maskSize int) Terrain {
	return Terrain{
		Width:    width,
		Length:   length,
		MaskSize: maskSize,
	}
}

// Layers returns a copy of the terrain's layers.
func (t *Terrain) Layers() []Layer {
	out := make([]Layer, len(t.layers))
	copy(out, t.layers)
	return out
}

func (t *Terrain) LayerCount() int {
	return len(t.layers)
}

// Layer returns the layer at index, panicking when out of range.
func (t *Terrain) Layer(index int) *Layer {
	t.checkIndex(index, len(t.layers))
	return &t.layers[index]
}

func (t *Terrain) AddLayer(layer Layer) {
	t.layers = append(t.layers, layer)
}

// InsertLayer inserts layer before index; index may equal LayerCount.
func (t *Terrain) InsertLayer(index int, layer Layer) {
	t.checkIndex(index, len(t.layers)+1)
	t.layers = append(t.layers, Layer{})
	copy(t.layers[index+1:], t.layers[index:])
	t.layers[index] = layer
}

// RemoveLayer removes and returns the layer at index.
func (t *Terrain) RemoveLayer(index int) Layer {
	t.checkIndex(index, len(t.layers))
	layer := t.layers[index]
	t.layers = append(t.layers[:index], t.layers[index+1:]...)
	return layer
}

// PopLayer removes and returns the last layer.
func (t *Terrain) PopLayer() Layer {
	return t.RemoveLayer(len(t.layers) - 1)
}

func (t *Terrain) checkIndex(index, n int) {
	if index < 0 || index >= n {
		panic(fmt.Sprintf("scene: terrain layer index %d out of range [0, %d)", index, n))
	}
}
