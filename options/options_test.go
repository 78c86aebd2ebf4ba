package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileIsDefaults(t *testing.T) {
	o, err := Load(filepath.Join(t.TempDir(), ConfigFile))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), o)
	assert.Equal(t, 800, o.Width)
	assert.Equal(t, 600, o.Height)
	assert.Equal(t, "OpenGL", o.Title)
	assert.Equal(t, 3, o.GLMajor)
	assert.Equal(t, 3, o.GLMinor)
	assert.Equal(t, 1, o.SwapInterval)
	assert.Equal(t, DialectGLSL, o.ShaderDialect)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, "width: 640\nheight: 480\ntitle: from-file\nvertex_shader: a.vert\nshader_dialect: webgl2\n")

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, o.Width)
	assert.Equal(t, 480, o.Height)
	assert.Equal(t, "from-file", o.Title)
	assert.Equal(t, "a.vert", o.VertexShader)
	assert.Equal(t, "shaders/fragment.glsl", o.FragmentShader)
	assert.Equal(t, DialectWebGL2, o.ShaderDialect)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "width: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "width: -5\n"))
	assert.Error(t, err)

	// a directory in place of the file is unreadable, not missing
	_, err = Load(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(o *HarnessOptions){
		"zero width":      func(o *HarnessOptions) { o.Width = 0 },
		"negative height": func(o *HarnessOptions) { o.Height = -1 },
		"old gl":          func(o *HarnessOptions) { o.GLMajor, o.GLMinor = 3, 2 },
		"negative swap":   func(o *HarnessOptions) { o.SwapInterval = -1 },
		"no vertex":       func(o *HarnessOptions) { o.VertexShader = "" },
		"bad dialect":     func(o *HarnessOptions) { o.ShaderDialect = "hlsl" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			o := Defaults()
			mutate(o)
			assert.Error(t, o.Validate())
		})
	}
	assert.NoError(t, Defaults().Validate())
}
