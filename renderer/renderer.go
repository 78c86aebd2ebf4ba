package renderer

import (
	"log"

	"github.com/richinsley/gotriangle/graphics"
)

// Renderer drives the frame loop for one scene on one context.
type Renderer struct {
	context   graphics.Context
	scene     *Scene
	startTime float64
}

// NewRenderer records the start time that clear colours are measured from.
func NewRenderer(ctx graphics.Context) *Renderer {
	return &Renderer{
		context:   ctx,
		startTime: ctx.Time(),
	}
}

// SetScene selects the scene drawn by Run. The renderer does not own it.
func (r *Renderer) SetScene(s *Scene) {
	r.scene = s
}

// Elapsed returns seconds since the renderer was created.
func (r *Renderer) Elapsed() float64 {
	return r.context.Time() - r.startTime
}

// Run renders frames until a quit event arrives and returns the number of
// frames presented. Events queued with a quit are dropped.
func (r *Renderer) Run() int {
	frames := 0
	for {
		if graphics.HasQuit(r.context.PollEvents()) {
			break
		}
		r.scene.DrawFrame(r.Elapsed())
		r.context.SwapBuffers()
		frames++
	}
	log.Printf("Render loop stopped after %d frames", frames)
	return frames
}
