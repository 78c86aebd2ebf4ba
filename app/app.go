// Package app wires shader loading, scene setup and the frame loop together.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/richinsley/gotriangle/gpu"
	"github.com/richinsley/gotriangle/graphics"
	options "github.com/richinsley/gotriangle/options"
	renderer "github.com/richinsley/gotriangle/renderer"
	shader "github.com/richinsley/gotriangle/shader"
)

// Run loads the configured shaders, builds the triangle scene on b and renders
// into gctx until a quit event arrives. Every GPU resource created here is
// released before Run returns, on success and on every error path. The
// caller keeps ownership of gctx.
func Run(ctx context.Context, opts *options.HarnessOptions, gctx graphics.Context, b gpu.Backend) error {
	gctx.MakeCurrent()
	r := renderer.NewRenderer(gctx)

	sources, err := shader.LoadSources(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to load shaders: %w", err)
	}

	scene, err := renderer.LoadScene(b, sources.Vertex, sources.Fragment, renderer.Triangle)
	if err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}
	defer scene.Destroy()
	r.SetScene(scene)

	log.Println("Starting render loop...")
	r.Run()
	return nil
}
