package renderer

import (
	"fmt"
	"log"

	"github.com/richinsley/gotriangle/gpu"
)

// Mesh is a list of 2D positions and the triangle indices over them.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Triangle is the mesh drawn by the harness.
var Triangle = Mesh{
	Vertices: []float32{-0.5, -0.5, 0.0, -0.5, 0.5, 0.5},
	Indices:  []uint32{0, 1, 2},
}

// Scene owns the program and mesh buffers for the single draw call.
type Scene struct {
	Program     *gpu.Program
	VertexBuf   *gpu.VertexBuffer
	VertexArray *gpu.VertexArray
	IndexBuf    *gpu.IndexBuffer
	backend     gpu.Backend
}

// LoadScene compiles and links the program, makes it current and uploads
// mesh. Anything created before a failure is released before returning.
func LoadScene(b gpu.Backend, vertexSrc, fragmentSrc string, mesh Mesh) (*Scene, error) {
	scene := &Scene{backend: b}

	program, err := newProgram(b, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	scene.Program = program
	scene.Program.Use()

	// The vertex buffer has to be bound when the vertex array is configured,
	// and the index buffer is recorded by the bound vertex array.
	if scene.VertexBuf, err = gpu.GenVertexBuffer(b); err != nil {
		scene.Destroy()
		return nil, err
	}
	scene.VertexBuf.Upload(mesh.Vertices)

	if scene.VertexArray, err = gpu.GenVertexArray(b); err != nil {
		scene.Destroy()
		return nil, err
	}
	scene.VertexArray.Configure()

	if scene.IndexBuf, err = gpu.GenIndexBuffer(b); err != nil {
		scene.Destroy()
		return nil, err
	}
	scene.IndexBuf.Upload(mesh.Indices)

	log.Printf("Loaded scene: %d vertices, %d indices", len(mesh.Vertices)/2, len(mesh.Indices))
	return scene, nil
}

// newProgram compiles both stages and links them. The shader objects are
// released on return whatever the outcome.
func newProgram(b gpu.Backend, vertexSrc, fragmentSrc string) (*gpu.Program, error) {
	vertexShader, err := gpu.CompileShader(b, vertexSrc, gpu.VertexShader)
	if err != nil {
		return nil, err
	}
	defer vertexShader.Delete()

	fragmentShader, err := gpu.CompileShader(b, fragmentSrc, gpu.FragmentShader)
	if err != nil {
		return nil, err
	}
	defer fragmentShader.Delete()

	program, err := gpu.LinkProgram(b, vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	return program, nil
}

// DrawFrame clears to the colour for elapsed and issues the indexed draw.
// Driver errors are not checked here.
func (s *Scene) DrawFrame(elapsed float64) {
	c := ClearColor(elapsed)
	s.backend.ClearColor(c[0], c[1], c[2], c[3])
	s.backend.Clear(gpu.ColorBufferBit)
	s.backend.DrawElements(gpu.Triangles, s.IndexBuf.Count(), gpu.UnsignedInt, 0)
}

// Destroy releases every resource in reverse order of creation. It is safe
// on a partially built scene and on repeated calls.
func (s *Scene) Destroy() {
	if s == nil {
		return
	}
	s.IndexBuf.Delete()
	s.VertexArray.Delete()
	s.VertexBuf.Delete()
	s.Program.Delete()
}
