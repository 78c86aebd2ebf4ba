package main

import (
	"context"
	"fmt"
	"log"
	"runtime"

	app "github.com/richinsley/gotriangle/app"
	"github.com/richinsley/gotriangle/glfwcontext"
	"github.com/richinsley/gotriangle/gpu/glbackend"
	options "github.com/richinsley/gotriangle/options"
)

func init() {
	runtime.LockOSThread()
}

func run(opts *options.HarnessOptions) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create glfw context: %w", err)
	}
	defer ctx.Shutdown()

	backend, err := glbackend.New()
	if err != nil {
		return err
	}

	return app.Run(context.Background(), opts, ctx, backend)
}

func main() {
	// Command-line arguments are ignored.
	opts, err := options.Load(options.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	if err := run(opts); err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
}
