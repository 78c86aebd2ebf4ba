package options

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Shader source dialects accepted by the harness.
const (
	DialectGLSL   = "glsl"   // desktop GLSL, compiled as is
	DialectWebGL2 = "webgl2" // GLSL ES 3.00, translated before compiling
)

// HarnessOptions holds every setting the harness reads at startup. The zero
// configuration is Defaults().
type HarnessOptions struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	Title          string `yaml:"title"`
	GLMajor        int    `yaml:"gl_major"`
	GLMinor        int    `yaml:"gl_minor"`
	SwapInterval   int    `yaml:"swap_interval"`
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
	ShaderDialect  string `yaml:"shader_dialect"`
}

// Defaults returns the fixed startup configuration.
func Defaults() *HarnessOptions {
	return &HarnessOptions{
		Width:          800,
		Height:         600,
		Title:          "OpenGL",
		GLMajor:        3,
		GLMinor:        3,
		SwapInterval:   1,
		VertexShader:   "shaders/vertex.glsl",
		FragmentShader: "shaders/fragment.glsl",
		ShaderDialect:  DialectGLSL,
	}
}

// LoadFile overlays the YAML document at path onto o. Keys missing from the
// file keep their current values.
func (o *HarnessOptions) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the harness cannot start with.
func (o *HarnessOptions) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", o.Width, o.Height))
	}
	if o.GLMajor < 3 || (o.GLMajor == 3 && o.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is older than the required 3.3 core", o.GLMajor, o.GLMinor))
	}
	if o.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval must not be negative, got %d", o.SwapInterval))
	}
	if o.VertexShader == "" || o.FragmentShader == "" {
		errs = append(errs, errors.New("both shader paths must be set"))
	}
	switch o.ShaderDialect {
	case DialectGLSL, DialectWebGL2:
	default:
		errs = append(errs, fmt.Errorf("unknown shader dialect %q", o.ShaderDialect))
	}
	return errors.Join(errs...)
}

// ConfigFile is the optional settings file read from the working directory.
const ConfigFile = "harness.yaml"

// Load returns Defaults() overlaid with the YAML file at path. A missing file
// is not an error; the defaults are used unchanged.
func Load(path string) (*HarnessOptions, error) {
	o := Defaults()
	if err := o.LoadFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else {
		log.Printf("Loaded settings from %s", path)
	}

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return o, nil
}
