package render

import "github.com/lixenwraith/cake-cutter/scene"

// SceneRenderer is implemented by every layer with visual output
type SceneRenderer interface {
	Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas)
}

// VisibilityToggle is optionally implemented to skip a layer for the frame
type VisibilityToggle interface {
	IsVisible(sc *scene.Scene) bool
}
