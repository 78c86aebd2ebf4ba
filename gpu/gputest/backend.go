// Package gputest provides an in-memory gpu.Backend that behaves like a small
// OpenGL driver and records every call for inspection in tests.
package gputest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/richinsley/gotriangle/gpu"
)

// Kind groups driver objects by how they are allocated and released.
type Kind int

const (
	KindShader Kind = iota
	KindProgram
	KindBuffer
	KindVertexArray
)

func (k Kind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	case KindBuffer:
		return "buffer"
	case KindVertexArray:
		return "vertex array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Attrib is one vertex attribute declaration captured by a vertex array.
type Attrib struct {
	Enabled    bool
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
}

// DrawCall is one recorded DrawElements invocation.
type DrawCall struct {
	Program     uint32
	VertexArray uint32
	Mode        uint32
	Count       int32
	Type        uint32
	Offset      uintptr
}

type shaderState struct {
	stage    uint32
	source   string
	compiled bool
	log      string
}

type programState struct {
	attached []uint32
	linked   bool
	log      string
}

type bufferState struct {
	floats []float32
	uints  []uint32
	usage  uint32
}

type arrayState struct {
	attribs       map[uint32]*Attrib
	elementBuffer uint32
}

// Backend is a fake driver. It is not safe for concurrent use, matching the
// single-thread rule of a real context.
type Backend struct {
	// FailAlloc makes the next allocation of a kind return handle 0.
	FailAlloc map[Kind]bool

	next     uint32
	live     map[uint32]Kind
	allocs   map[Kind]int
	releases map[Kind]int

	shaders  map[uint32]*shaderState
	programs map[uint32]*programState
	buffers  map[uint32]*bufferState
	arrays   map[uint32]*arrayState

	bindings      map[uint32]uint32
	boundArray    uint32
	activeProgram uint32

	clearColors [][4]float32
	clears      []uint32
	draws       []DrawCall
	misuse      []string
}

var _ gpu.Backend = (*Backend)(nil)

// New returns an empty fake driver.
func New() *Backend {
	return &Backend{
		FailAlloc: make(map[Kind]bool),
		live:      make(map[uint32]Kind),
		allocs:    make(map[Kind]int),
		releases:  make(map[Kind]int),
		shaders:   make(map[uint32]*shaderState),
		programs:  make(map[uint32]*programState),
		buffers:   make(map[uint32]*bufferState),
		arrays:    make(map[uint32]*arrayState),
		bindings:  make(map[uint32]uint32),
	}
}

func (b *Backend) alloc(k Kind) uint32 {
	if b.FailAlloc[k] {
		delete(b.FailAlloc, k)
		return 0
	}
	b.next++
	b.live[b.next] = k
	b.allocs[k]++
	return b.next
}

func (b *Backend) release(id uint32, k Kind) bool {
	if id == 0 {
		return false
	}
	if got, ok := b.live[id]; !ok || got != k {
		b.misusef("delete of unknown %s %d", k, id)
		return false
	}
	delete(b.live, id)
	b.releases[k]++
	return true
}

func (b *Backend) check(id uint32, k Kind, op string) bool {
	if got, ok := b.live[id]; !ok || got != k {
		b.misusef("%s on unknown %s %d", op, k, id)
		return false
	}
	return true
}

func (b *Backend) misusef(format string, args ...any) {
	b.misuse = append(b.misuse, fmt.Sprintf(format, args...))
}

func (b *Backend) CreateShader(stage uint32) uint32 {
	id := b.alloc(KindShader)
	if id != 0 {
		b.shaders[id] = &shaderState{stage: stage}
	}
	return id
}

func (b *Backend) ShaderSource(shader uint32, source string) {
	if b.check(shader, KindShader, "ShaderSource") {
		b.shaders[shader].source = source
	}
}

// CompileShader accepts source that declares a #version, defines main and
// has balanced braces. Anything else fails with a driver-style log.
func (b *Backend) CompileShader(shader uint32) {
	if !b.check(shader, KindShader, "CompileShader") {
		return
	}
	s := b.shaders[shader]
	s.compiled, s.log = false, ""
	switch {
	case !strings.Contains(s.source, "#version"):
		s.log = "0:1(1): error: missing #version directive"
	case !strings.Contains(s.source, "void main"):
		s.log = "0:1(1): error: function `main' is not defined"
	case strings.Count(s.source, "{") != strings.Count(s.source, "}"):
		s.log = "0:1(1): error: syntax error, unexpected end of file"
	default:
		s.compiled = true
	}
}

func (b *Backend) GetShaderiv(shader uint32, pname uint32) int32 {
	if !b.check(shader, KindShader, "GetShaderiv") {
		return 0
	}
	s := b.shaders[shader]
	switch pname {
	case gpu.CompileStatus:
		if s.compiled {
			return 1
		}
		return 0
	case gpu.InfoLogLength:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	b.misusef("GetShaderiv with unknown pname 0x%x", pname)
	return 0
}

func (b *Backend) GetShaderInfoLog(shader uint32, length int32) string {
	if !b.check(shader, KindShader, "GetShaderInfoLog") {
		return ""
	}
	return clip(b.shaders[shader].log, length)
}

func (b *Backend) DeleteShader(shader uint32) {
	if b.release(shader, KindShader) {
		delete(b.shaders, shader)
	}
}

func (b *Backend) CreateProgram() uint32 {
	id := b.alloc(KindProgram)
	if id != 0 {
		b.programs[id] = &programState{}
	}
	return id
}

func (b *Backend) AttachShader(program, shader uint32) {
	if !b.check(program, KindProgram, "AttachShader") || !b.check(shader, KindShader, "AttachShader") {
		return
	}
	p := b.programs[program]
	p.attached = append(p.attached, shader)
}

// LinkProgram requires compiled shaders and exactly one vertex and one
// fragment stage.
func (b *Backend) LinkProgram(program uint32) {
	if !b.check(program, KindProgram, "LinkProgram") {
		return
	}
	p := b.programs[program]
	p.linked, p.log = false, ""

	var vertex, fragment int
	for _, id := range p.attached {
		s, ok := b.shaders[id]
		if !ok || !s.compiled {
			p.log = fmt.Sprintf("error: shader %d is not compiled", id)
			return
		}
		switch s.stage {
		case gpu.VertexShader:
			vertex++
		case gpu.FragmentShader:
			fragment++
		}
	}
	switch {
	case len(p.attached) == 0:
		p.log = "error: no shaders attached to the program"
	case vertex != 1 || fragment != 1:
		p.log = fmt.Sprintf("error: incompatible stages, %d vertex and %d fragment shaders attached", vertex, fragment)
	default:
		p.linked = true
	}
}

func (b *Backend) GetProgramiv(program uint32, pname uint32) int32 {
	if !b.check(program, KindProgram, "GetProgramiv") {
		return 0
	}
	p := b.programs[program]
	switch pname {
	case gpu.LinkStatus:
		if p.linked {
			return 1
		}
		return 0
	case gpu.InfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	}
	b.misusef("GetProgramiv with unknown pname 0x%x", pname)
	return 0
}

func (b *Backend) GetProgramInfoLog(program uint32, length int32) string {
	if !b.check(program, KindProgram, "GetProgramInfoLog") {
		return ""
	}
	return clip(b.programs[program].log, length)
}

func (b *Backend) UseProgram(program uint32) {
	if program != 0 {
		if !b.check(program, KindProgram, "UseProgram") {
			return
		}
		if !b.programs[program].linked {
			b.misusef("UseProgram on unlinked program %d", program)
			return
		}
	}
	b.activeProgram = program
}

func (b *Backend) DeleteProgram(program uint32) {
	if b.release(program, KindProgram) {
		delete(b.programs, program)
		if b.activeProgram == program {
			b.activeProgram = 0
		}
	}
}

func (b *Backend) GenBuffer() uint32 {
	id := b.alloc(KindBuffer)
	if id != 0 {
		b.buffers[id] = &bufferState{}
	}
	return id
}

func (b *Backend) BindBuffer(target, buffer uint32) {
	if buffer != 0 && !b.check(buffer, KindBuffer, "BindBuffer") {
		return
	}
	b.bindings[target] = buffer
	if target == gpu.ElementArrayBuffer && b.boundArray != 0 {
		b.arrays[b.boundArray].elementBuffer = buffer
	}
}

func (b *Backend) bound(target uint32, op string) *bufferState {
	id := b.bindings[target]
	if id == 0 {
		b.misusef("%s with no buffer bound to 0x%x", op, target)
		return nil
	}
	return b.buffers[id]
}

func (b *Backend) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	if s := b.bound(target, "BufferData"); s != nil {
		s.floats, s.uints, s.usage = slices.Clone(data), nil, usage
	}
}

func (b *Backend) BufferDataUint32(target uint32, data []uint32, usage uint32) {
	if s := b.bound(target, "BufferData"); s != nil {
		s.floats, s.uints, s.usage = nil, slices.Clone(data), usage
	}
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	if !b.release(buffer, KindBuffer) {
		return
	}
	delete(b.buffers, buffer)
	for target, id := range b.bindings {
		if id == buffer {
			b.bindings[target] = 0
		}
	}
}

func (b *Backend) GenVertexArray() uint32 {
	id := b.alloc(KindVertexArray)
	if id != 0 {
		b.arrays[id] = &arrayState{attribs: make(map[uint32]*Attrib)}
	}
	return id
}

func (b *Backend) BindVertexArray(array uint32) {
	if array != 0 && !b.check(array, KindVertexArray, "BindVertexArray") {
		return
	}
	b.boundArray = array
}

func (b *Backend) attrib(index uint32, op string) *Attrib {
	if b.boundArray == 0 {
		b.misusef("%s with no vertex array bound", op)
		return nil
	}
	a := b.arrays[b.boundArray]
	at, ok := a.attribs[index]
	if !ok {
		at = &Attrib{}
		a.attribs[index] = at
	}
	return at
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	if at := b.attrib(index, "EnableVertexAttribArray"); at != nil {
		at.Enabled = true
	}
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	buffer := b.bindings[gpu.ArrayBuffer]
	if buffer == 0 {
		b.misusef("VertexAttribPointer with no array buffer bound")
		return
	}
	if at := b.attrib(index, "VertexAttribPointer"); at != nil {
		at.Size, at.Type, at.Normalized, at.Stride, at.Offset, at.Buffer = size, xtype, normalized, stride, offset, buffer
	}
}

func (b *Backend) DeleteVertexArray(array uint32) {
	if !b.release(array, KindVertexArray) {
		return
	}
	delete(b.arrays, array)
	if b.boundArray == array {
		b.boundArray = 0
	}
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.clearColors = append(b.clearColors, [4]float32{r, g, bl, a})
}

func (b *Backend) Clear(mask uint32) {
	b.clears = append(b.clears, mask)
}

func (b *Backend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	switch {
	case b.activeProgram == 0:
		b.misusef("DrawElements with no program in use")
		return
	case b.boundArray == 0:
		b.misusef("DrawElements with no vertex array bound")
		return
	}
	ibo := b.arrays[b.boundArray].elementBuffer
	if ibo == 0 {
		b.misusef("DrawElements with no element buffer recorded in vertex array %d", b.boundArray)
		return
	}
	if n := len(b.buffers[ibo].uints); int(count) > n {
		b.misusef("DrawElements count %d exceeds %d uploaded indices", count, n)
		return
	}
	b.draws = append(b.draws, DrawCall{
		Program:     b.activeProgram,
		VertexArray: b.boundArray,
		Mode:        mode,
		Count:       count,
		Type:        xtype,
		Offset:      offset,
	})
}

// Allocated reports how many objects of kind k were handed out.
func (b *Backend) Allocated(k Kind) int { return b.allocs[k] }

// Released reports how many objects of kind k were deleted.
func (b *Backend) Released(k Kind) int { return b.releases[k] }

// Live reports how many objects of kind k are still alive.
func (b *Backend) Live(k Kind) int {
	n := 0
	for _, kind := range b.live {
		if kind == k {
			n++
		}
	}
	return n
}

// Balanced reports whether every allocation has exactly one matching release.
func (b *Backend) Balanced() bool {
	if len(b.live) != 0 {
		return false
	}
	for _, k := range []Kind{KindShader, KindProgram, KindBuffer, KindVertexArray} {
		if b.allocs[k] != b.releases[k] {
			return false
		}
	}
	return true
}

// Misuse lists calls that a real driver would reject or that touched a
// released handle.
func (b *Backend) Misuse() []string { return slices.Clone(b.misuse) }

// BufferFloats returns a copy of the float data last uploaded to buffer id.
func (b *Backend) BufferFloats(id uint32) []float32 {
	if s, ok := b.buffers[id]; ok {
		return slices.Clone(s.floats)
	}
	return nil
}

// BufferUints returns a copy of the index data last uploaded to buffer id.
func (b *Backend) BufferUints(id uint32) []uint32 {
	if s, ok := b.buffers[id]; ok {
		return slices.Clone(s.uints)
	}
	return nil
}

// BufferUsage returns the usage hint of the last upload to buffer id.
func (b *Backend) BufferUsage(id uint32) uint32 {
	if s, ok := b.buffers[id]; ok {
		return s.usage
	}
	return 0
}

// VertexAttrib returns the declaration of attribute index in vertex array id.
func (b *Backend) VertexAttrib(id, index uint32) (Attrib, bool) {
	a, ok := b.arrays[id]
	if !ok {
		return Attrib{}, false
	}
	at, ok := a.attribs[index]
	if !ok {
		return Attrib{}, false
	}
	return *at, true
}

// ElementBuffer returns the index buffer recorded by vertex array id.
func (b *Backend) ElementBuffer(id uint32) uint32 {
	if a, ok := b.arrays[id]; ok {
		return a.elementBuffer
	}
	return 0
}

// Binding returns the buffer currently bound to target.
func (b *Backend) Binding(target uint32) uint32 { return b.bindings[target] }

func (b *Backend) BoundVertexArray() uint32 { return b.boundArray }

func (b *Backend) ActiveProgram() uint32 { return b.activeProgram }

// ClearColors returns every colour passed to ClearColor, in call order.
func (b *Backend) ClearColors() [][4]float32 { return slices.Clone(b.clearColors) }

// Clears returns the mask of every Clear call, in call order.
func (b *Backend) Clears() []uint32 { return slices.Clone(b.clears) }

// Draws returns every accepted DrawElements call, in call order.
func (b *Backend) Draws() []DrawCall { return slices.Clone(b.draws) }

func clip(s string, length int32) string {
	if length <= 0 {
		return ""
	}
	if int(length) < len(s)+1 {
		return s[:max(int(length)-1, 0)]
	}
	return s
}
