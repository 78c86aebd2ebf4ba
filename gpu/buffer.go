package gpu

import "fmt"

// VertexBuffer is a GPU buffer bound to the array-buffer target.
type VertexBuffer struct {
	backend Backend
	id      uint32
}

// GenVertexBuffer allocates one buffer object.
func GenVertexBuffer(b Backend) (*VertexBuffer, error) {
	id := b.GenBuffer()
	if id == 0 {
		return nil, fmt.Errorf("%w: driver returned no vertex buffer", ErrResourceSetup)
	}
	return &VertexBuffer{backend: b, id: id}, nil
}

// ID returns the driver handle, or 0 once the buffer has been deleted.
func (v *VertexBuffer) ID() uint32 { return v.id }

// Upload binds the buffer and copies data into it. The dynamic usage hint is
// kept even though the harness never rewrites the data.
func (v *VertexBuffer) Upload(data []float32) {
	v.bind()
	v.backend.BufferDataFloat32(ArrayBuffer, data, DynamicDraw)
}

func (v *VertexBuffer) bind()   { v.backend.BindBuffer(ArrayBuffer, v.id) }
func (v *VertexBuffer) unbind() { v.backend.BindBuffer(ArrayBuffer, 0) }

// Delete unbinds the array-buffer target and releases the buffer.
func (v *VertexBuffer) Delete() {
	if v == nil || v.id == 0 {
		return
	}
	v.unbind()
	v.backend.DeleteBuffer(v.id)
	v.id = 0
}

// IndexBuffer is a GPU buffer bound to the element-array target.
type IndexBuffer struct {
	backend Backend
	id      uint32
	count   int32
}

// GenIndexBuffer allocates one buffer object.
func GenIndexBuffer(b Backend) (*IndexBuffer, error) {
	id := b.GenBuffer()
	if id == 0 {
		return nil, fmt.Errorf("%w: driver returned no index buffer", ErrResourceSetup)
	}
	return &IndexBuffer{backend: b, id: id}, nil
}

// ID returns the driver handle, or 0 once the buffer has been deleted.
func (i *IndexBuffer) ID() uint32 { return i.id }

// Count is the number of indices last uploaded.
func (i *IndexBuffer) Count() int32 { return i.count }

// Upload binds the buffer and copies indices into it.
func (i *IndexBuffer) Upload(indices []uint32) {
	i.bind()
	i.backend.BufferDataUint32(ElementArrayBuffer, indices, DynamicDraw)
	i.count = int32(len(indices))
}

func (i *IndexBuffer) bind()   { i.backend.BindBuffer(ElementArrayBuffer, i.id) }
func (i *IndexBuffer) unbind() { i.backend.BindBuffer(ElementArrayBuffer, 0) }

// Delete unbinds the element-array target and releases the buffer.
func (i *IndexBuffer) Delete() {
	if i == nil || i.id == 0 {
		return
	}
	i.unbind()
	i.backend.DeleteBuffer(i.id)
	i.id = 0
}

// VertexArray records the attribute layout of the bound vertex buffer.
type VertexArray struct {
	backend Backend
	id      uint32
}

// GenVertexArray allocates one vertex array object.
func GenVertexArray(b Backend) (*VertexArray, error) {
	id := b.GenVertexArray()
	if id == 0 {
		return nil, fmt.Errorf("%w: driver returned no vertex array", ErrResourceSetup)
	}
	return &VertexArray{backend: b, id: id}, nil
}

// ID returns the driver handle, or 0 once the array has been deleted.
func (a *VertexArray) ID() uint32 { return a.id }

// Configure binds the array and declares attribute 0 as a tightly packed
// vec2 of float32. The layout is fixed: one 2D position per vertex.
func (a *VertexArray) Configure() {
	a.backend.BindVertexArray(a.id)
	a.backend.EnableVertexAttribArray(0)
	a.backend.VertexAttribPointer(0, 2, Float, false, 2*4, 0)
}

// Delete unbinds the vertex array and releases it.
func (a *VertexArray) Delete() {
	if a == nil || a.id == 0 {
		return
	}
	a.backend.BindVertexArray(0)
	a.backend.DeleteVertexArray(a.id)
	a.id = 0
}
