package engine

import "slices"

// Layer groups objects for update order, rendering and collisions.
type Layer int

const (
	LayerBackground Layer = iota
	LayerStatic
	LayerDefault
	LayerUI
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerStatic:
		return "static"
	case LayerDefault:
		return "default"
	case LayerUI:
		return "ui"
	default:
		return "unknown"
	}
}

func (l Layer) valid() bool {
	return l >= 0 && l < layerCount
}

// collidingLayers lists the layer pairs tested for contacts. The first layer
// of each pair receives its callback first.
var collidingLayers = [][2]Layer{
	{LayerDefault, LayerDefault},
	{LayerDefault, LayerStatic},
}

type pending struct {
	obj   Object
	layer Layer
}

type contact struct {
	a, b Object
}

// Collection holds the objects of a scene by layer. Adds and removes are
// queued and applied on Flush, so callbacks may change the scene freely.
type Collection struct {
	layers   [layerCount][]Object
	toAdd    []pending
	toRemove []pending
	contacts map[contact]struct{}
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{contacts: make(map[contact]struct{})}
}

// Add queues obj for insertion into layer.
func (c *Collection) Add(obj Object, layer Layer) {
	if !layer.valid() {
		return
	}
	c.toAdd = append(c.toAdd, pending{obj, layer})
}

// Remove queues obj for removal from layer. It returns false when obj is
// neither in the layer nor queued for it.
func (c *Collection) Remove(obj Object, layer Layer) bool {
	if !layer.valid() {
		return false
	}
	found := slices.Contains(c.layers[layer], obj) ||
		slices.Contains(c.toAdd, pending{obj, layer})
	if !found {
		return false
	}
	c.toRemove = append(c.toRemove, pending{obj, layer})
	return true
}

// Contains reports whether obj is currently in layer, ignoring queued changes.
func (c *Collection) Contains(obj Object, layer Layer) bool {
	return layer.valid() && slices.Contains(c.layers[layer], obj)
}

// Objects returns the objects of a layer in insertion order.
// The slice must not be modified.
func (c *Collection) Objects(layer Layer) []Object {
	if !layer.valid() {
		return nil
	}
	return c.layers[layer]
}

// Len returns the number of objects in a layer.
func (c *Collection) Len(layer Layer) int {
	return len(c.Objects(layer))
}

// Flush applies queued adds, then queued removes.
func (c *Collection) Flush() {
	for _, p := range c.toAdd {
		c.layers[p.layer] = append(c.layers[p.layer], p.obj)
	}
	c.toAdd = c.toAdd[:0]

	for _, p := range c.toRemove {
		objs := c.layers[p.layer]
		if i := slices.Index(objs, p.obj); i >= 0 {
			c.layers[p.layer] = slices.Delete(objs, i, i+1)
		}
		for k := range c.contacts {
			if k.a == p.obj || k.b == p.obj {
				delete(c.contacts, k)
			}
		}
	}
	c.toRemove = c.toRemove[:0]
}

// Clear drops every object and all queued changes.
func (c *Collection) Clear() {
	for i := range c.layers {
		c.layers[i] = nil
	}
	c.toAdd = c.toAdd[:0]
	c.toRemove = c.toRemove[:0]
	clear(c.contacts)
}

// Step runs one frame: update every object, flush, dispatch collisions, flush.
func (c *Collection) Step(dt float64) {
	for l := range c.layers {
		for _, obj := range slices.Clone(c.layers[l]) {
			obj.Update(dt)
		}
	}
	c.Flush()
	c.DetectCollisions()
	c.Flush()
}

// DetectCollisions calls OnCollisionEnter on both objects of every pair that
// started overlapping since the previous call.
func (c *Collection) DetectCollisions() {
	current := make(map[contact]struct{}, len(c.contacts))

	for _, pair := range collidingLayers {
		first := slices.Clone(c.layers[pair[0]])
		second := slices.Clone(c.layers[pair[1]])
		same := pair[0] == pair[1]

		for i, a := range first {
			start := 0
			if same {
				start = i + 1
			}
			for _, b := range second[start:] {
				if a == b {
					continue
				}
				col, ok := Collide(a.Body(), b.Body())
				if !ok || !a.ShouldCollideWith(b) || !b.ShouldCollideWith(a) {
					continue
				}
				k := contact{a, b}
				current[k] = struct{}{}
				if _, touching := c.contacts[k]; touching {
					continue
				}
				a.OnCollisionEnter(b, col)
				b.OnCollisionEnter(a, col.Reversed())
			}
		}
	}

	c.contacts = current
}
