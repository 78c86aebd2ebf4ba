package shader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/richinsley/gotriangle/gpu"
	options "github.com/richinsley/gotriangle/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.glsl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, gpu.ErrResourceSetup)
}

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()
	opts := options.Defaults()
	opts.VertexShader = filepath.Join(dir, "v.glsl")
	opts.FragmentShader = filepath.Join(dir, "f.glsl")
	require.NoError(t, os.WriteFile(opts.VertexShader, []byte("vertex text"), 0o644))
	require.NoError(t, os.WriteFile(opts.FragmentShader, []byte("fragment text"), 0o644))

	src, err := LoadSources(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "vertex text", src.Vertex)
	assert.Equal(t, "fragment text", src.Fragment)

	require.NoError(t, os.Remove(opts.FragmentShader))
	_, err = LoadSources(context.Background(), opts)
	assert.ErrorIs(t, err, gpu.ErrResourceSetup)
}

func TestBundledShadersLoad(t *testing.T) {
	for _, name := range []string{"vertex.glsl", "fragment.glsl"} {
		src, err := Load(filepath.Join("..", "shaders", name))
		require.NoError(t, err)
		assert.Contains(t, src, "#version 330 core")
		assert.Contains(t, src, "void main")
	}
}

func TestTranslatePassThrough(t *testing.T) {
	out, err := Translate(context.Background(), "#version 330 core\nvoid main() {}\n", gpu.VertexShader, options.DialectGLSL)
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\nvoid main() {}\n", out)
}

func TestTranslateUnknownDialect(t *testing.T) {
	_, err := Translate(context.Background(), "", gpu.FragmentShader, "metal")
	assert.ErrorIs(t, err, gpu.ErrResourceSetup)
}

func TestTranslateWebGL2(t *testing.T) {
	for _, tc := range []struct {
		file  string
		stage uint32
	}{
		{"vertex.glsl", gpu.VertexShader},
		{"fragment.glsl", gpu.FragmentShader},
	} {
		t.Run(gpu.StageName(tc.stage), func(t *testing.T) {
			src, err := Load(filepath.Join("..", "shaders", "webgl2", tc.file))
			require.NoError(t, err)
			require.Contains(t, src, "#version 300 es")

			out, err := Translate(context.Background(), src, tc.stage, options.DialectWebGL2)
			require.NoError(t, err)
			assert.Contains(t, out, "#version 330")
			assert.Contains(t, out, "main")
			assert.NotContains(t, out, "#version 300 es")
		})
	}
}

func TestLoadSourcesWebGL2(t *testing.T) {
	opts := options.Defaults()
	opts.VertexShader = filepath.Join("..", "shaders", "webgl2", "vertex.glsl")
	opts.FragmentShader = filepath.Join("..", "shaders", "webgl2", "fragment.glsl")
	opts.ShaderDialect = options.DialectWebGL2

	src, err := LoadSources(context.Background(), opts)
	require.NoError(t, err)
	for _, code := range []string{src.Vertex, src.Fragment} {
		assert.Contains(t, code, "#version 330")
		assert.Contains(t, code, "main")
	}
}
