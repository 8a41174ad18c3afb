package particle

import "github.com/lixenwraith/cake-cutter/core"

// Container is the active set of one particle kind, the managed parent of a batch
type Container struct {
	kind      Kind
	bounds    core.Rect
	particles []Particle
}

// NewContainer creates an empty container covering bounds (stage pixels)
func NewContainer(kind Kind, bounds core.Rect) *Container {
	return &Container{
		kind:      kind,
		bounds:    bounds,
		particles: make([]Particle, 0, 64),
	}
}

// Kind returns the particle kind this container holds
func (c *Container) Kind() Kind {
	return c.kind
}

// Bounds returns the container area in stage pixels
func (c *Container) Bounds() core.Rect {
	return c.bounds
}

// Len returns the number of live particles
func (c *Container) Len() int {
	return len(c.particles)
}

// Add appends a particle to the active set
func (c *Container) Add(p Particle) {
	c.particles = append(c.particles, p)
}

// Has reports whether the particle is still attached
func (c *Container) Has(id uint64) bool {
	for i := range c.particles {
		if c.particles[i].ID == id {
			return true
		}
	}
	return false
}

// Remove detaches the particle; false if it was already gone (cleared by a newer batch)
func (c *Container) Remove(id uint64) bool {
	for i := range c.particles {
		if c.particles[i].ID == id {
			c.particles = append(c.particles[:i], c.particles[i+1:]...)
			return true
		}
	}
	return false
}

// Clear detaches every particle and returns how many were removed
func (c *Container) Clear() int {
	n := len(c.particles)
	clear(c.particles)
	c.particles = c.particles[:0]
	return n
}

// Particles returns a snapshot copy of the live particles
func (c *Container) Particles() []Particle {
	out := make([]Particle, len(c.particles))
	copy(out, c.particles)
	return out
}
