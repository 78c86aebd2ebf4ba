package shader

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/richinsley/gotriangle/gpu"
	options "github.com/richinsley/gotriangle/options"
)

// Sources holds the text of both stages, ready for the driver.
type Sources struct {
	Vertex   string
	Fragment string
}

// Load reads a shader source file. A missing or unreadable file is a setup
// failure.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read shader source: %v", gpu.ErrResourceSetup, err)
	}
	return string(data), nil
}

// LoadSources reads both configured stages and converts them to desktop GLSL
// when the configured dialect requires it.
func LoadSources(ctx context.Context, opts *options.HarnessOptions) (*Sources, error) {
	vs, err := Load(opts.VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := Load(opts.FragmentShader)
	if err != nil {
		return nil, err
	}

	vs, err = Translate(ctx, vs, gpu.VertexShader, opts.ShaderDialect)
	if err != nil {
		return nil, fmt.Errorf("vertex shader %s: %w", opts.VertexShader, err)
	}
	fs, err = Translate(ctx, fs, gpu.FragmentShader, opts.ShaderDialect)
	if err != nil {
		return nil, fmt.Errorf("fragment shader %s: %w", opts.FragmentShader, err)
	}

	log.Printf("Loaded shader sources %s, %s (%s)", opts.VertexShader, opts.FragmentShader, opts.ShaderDialect)
	return &Sources{Vertex: vs, Fragment: fs}, nil
}
