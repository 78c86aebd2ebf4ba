package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/richinsley/gotriangle/gpu"
	"github.com/richinsley/gotriangle/gpu/gputest"
	"github.com/richinsley/gotriangle/graphics/graphicstest"
	options "github.com/richinsley/gotriangle/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bundledOptions points the shader paths at the repository's shaders/ dir.
func bundledOptions() *options.HarnessOptions {
	opts := options.Defaults()
	opts.VertexShader = filepath.Join("..", opts.VertexShader)
	opts.FragmentShader = filepath.Join("..", opts.FragmentShader)
	return opts
}

func TestRunQuitBeforeFirstFrameReleasesEverything(t *testing.T) {
	b := gputest.New()
	ctx := graphicstest.QuitImmediately()

	err := Run(context.Background(), bundledOptions(), ctx, b)
	require.NoError(t, err)

	assert.True(t, ctx.Current)
	assert.Zero(t, ctx.Swaps)
	assert.Empty(t, b.Draws())
	for _, k := range []gputest.Kind{gputest.KindShader, gputest.KindProgram, gputest.KindBuffer, gputest.KindVertexArray} {
		assert.Equal(t, b.Allocated(k), b.Released(k), "%s allocations", k)
		assert.NotZero(t, b.Allocated(k), "%s allocations", k)
	}
	assert.True(t, b.Balanced())
	assert.Empty(t, b.Misuse())
}

func TestRunRendersUntilQuit(t *testing.T) {
	b := gputest.New()
	ctx := &graphicstest.Context{Step: 1, QuitAfter: 3}

	require.NoError(t, Run(context.Background(), bundledOptions(), ctx, b))
	assert.Equal(t, 3, ctx.Swaps)
	assert.Len(t, b.Draws(), 3)

	colors := b.ClearColors()
	require.Len(t, colors, 3)
	assert.NotEqual(t, colors[0], colors[1])
	assert.NotEqual(t, colors[1], colors[2])
	assert.True(t, b.Balanced())
}

func TestRunMissingShaderFile(t *testing.T) {
	b := gputest.New()
	opts := bundledOptions()
	opts.FragmentShader = filepath.Join(t.TempDir(), "missing.glsl")

	err := Run(context.Background(), opts, graphicstest.QuitImmediately(), b)
	assert.ErrorIs(t, err, gpu.ErrResourceSetup)
	assert.Zero(t, b.Allocated(gputest.KindShader))
}

func TestRunBrokenShader(t *testing.T) {
	dir := t.TempDir()
	opts := bundledOptions()
	opts.FragmentShader = filepath.Join(dir, "broken.glsl")
	require.NoError(t, os.WriteFile(opts.FragmentShader, []byte("#version 330 core\nvoid main() {\n"), 0o644))

	b := gputest.New()
	ctx := graphicstest.QuitImmediately()
	err := Run(context.Background(), opts, ctx, b)

	var ce *gpu.CompileError
	require.ErrorAs(t, err, &ce)
	assert.NotEmpty(t, ce.Log)
	assert.Zero(t, ctx.Polls)
	assert.True(t, b.Balanced())
}
