package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cake-cutter/scene"
)

type rendererEntry struct {
	renderer SceneRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing on screen at its current size
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		canvas:    NewCanvas(screen, w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator creates an orchestrator with every scene layer registered
func NewDefaultOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&BackgroundRenderer{}, PriorityBackground)
	o.Register(&CakeRenderer{}, PriorityCake)
	o.Register(&CandleRenderer{}, PriorityCandles)
	o.Register(&KnifeRenderer{}, PriorityKnife)
	o.Register(&ParticleRenderer{}, PriorityParticle)
	o.Register(&MessageRenderer{}, PriorityMessage)
	o.Register(&ControlsRenderer{}, PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SceneRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates canvas dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.canvas.width = width
	o.canvas.height = height
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(now time.Time, sc *scene.Scene) {
	w, h := o.canvas.Size()
	ctx := NewRenderContext(now, w, h)

	o.screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(sc) {
			continue
		}
		entry.renderer.Render(ctx, sc, o.canvas)
	}

	o.screen.Show()
}
