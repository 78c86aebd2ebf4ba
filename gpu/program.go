package gpu

import (
	"fmt"
	"strings"
)

// Shader owns one compiled shader stage.
type Shader struct {
	backend Backend
	id      uint32
	stage   uint32
}

// CompileShader submits source to the driver for the given stage. On failure
// the driver object is deleted and the info log is returned as a *CompileError.
func CompileShader(b Backend, source string, stage uint32) (*Shader, error) {
	if stage != VertexShader && stage != FragmentShader {
		return nil, fmt.Errorf("%w: unsupported shader stage 0x%x", ErrResourceSetup, stage)
	}

	id := b.CreateShader(stage)
	if id == 0 {
		return nil, fmt.Errorf("%w: driver returned no %s shader object", ErrResourceSetup, StageName(stage))
	}
	b.ShaderSource(id, source)
	b.CompileShader(id)

	if b.GetShaderiv(id, CompileStatus) == 0 {
		logLength := b.GetShaderiv(id, InfoLogLength)
		logText := trimLog(b.GetShaderInfoLog(id, logLength))
		b.DeleteShader(id)
		if logText == "" {
			logText = "driver reported no diagnostics"
		}
		return nil, &CompileError{Stage: stage, Log: logText}
	}

	return &Shader{backend: b, id: id, stage: stage}, nil
}

// ID returns the driver handle, or 0 once the shader has been deleted.
func (s *Shader) ID() uint32 { return s.id }

// Stage returns the shader stage enum.
func (s *Shader) Stage() uint32 { return s.stage }

// Delete releases the driver object. It is safe to call more than once.
func (s *Shader) Delete() {
	if s == nil || s.id == 0 {
		return
	}
	s.backend.DeleteShader(s.id)
	s.id = 0
}

// Program owns a linked shader program.
type Program struct {
	backend Backend
	id      uint32
}

// LinkProgram attaches the shaders to a new program object and links it. The
// shaders stay owned by the caller and must still be deleted by it.
func LinkProgram(b Backend, shaders ...*Shader) (*Program, error) {
	if len(shaders) == 0 {
		return nil, &LinkError{Log: "no shaders attached to program"}
	}

	id := b.CreateProgram()
	if id == 0 {
		return nil, fmt.Errorf("%w: driver returned no program object", ErrResourceSetup)
	}
	for _, s := range shaders {
		if s == nil || s.id == 0 {
			b.DeleteProgram(id)
			return nil, fmt.Errorf("%w: cannot attach a deleted shader", ErrResourceSetup)
		}
		b.AttachShader(id, s.id)
	}
	b.LinkProgram(id)

	if b.GetProgramiv(id, LinkStatus) == 0 {
		logLength := b.GetProgramiv(id, InfoLogLength)
		logText := trimLog(b.GetProgramInfoLog(id, logLength))
		b.DeleteProgram(id)
		if logText == "" {
			logText = "driver reported no diagnostics"
		}
		return nil, &LinkError{Log: logText}
	}

	return &Program{backend: b, id: id}, nil
}

// ID returns the driver handle, or 0 once the program has been deleted.
func (p *Program) ID() uint32 { return p.id }

// Use makes p the program for subsequent draw calls.
func (p *Program) Use() {
	p.backend.UseProgram(p.id)
}

// Delete releases the driver object. It is safe to call more than once.
func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	p.backend.DeleteProgram(p.id)
	p.id = 0
}

// trimLog drops the NUL terminator and trailing whitespace drivers leave in
// info logs.
func trimLog(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, " \t\r\n")
}
