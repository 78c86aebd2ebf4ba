// Package glbackend implements gpu.Backend on top of the OpenGL 3.3 core
// bindings. A context must be current on the calling thread before New.
package glbackend

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/gotriangle/gpu"
)

var glInitOnce sync.Once

// Backend forwards every call to the driver.
type Backend struct{}

var _ gpu.Backend = (*Backend)(nil)

// New loads the GL function pointers for the current context.
func New() (*Backend, error) {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("%w: failed to initialize OpenGL: %v", gpu.ErrResourceSetup, initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return &Backend{}, nil
}

func (*Backend) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (*Backend) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*Backend) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*Backend) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (*Backend) GetShaderInfoLog(shader uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(logText))
	return logText
}

func (*Backend) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*Backend) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Backend) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*Backend) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (*Backend) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (*Backend) GetProgramInfoLog(program uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(logText))
	return logText
}

func (*Backend) UseProgram(program uint32) { gl.UseProgram(program) }

func (*Backend) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*Backend) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*Backend) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (*Backend) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (*Backend) BufferDataUint32(target uint32, data []uint32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (*Backend) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (*Backend) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*Backend) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (*Backend) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (*Backend) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (*Backend) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Backend) Clear(mask uint32) { gl.Clear(mask) }

func (*Backend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
