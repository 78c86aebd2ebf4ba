package gpu

// Enum values used by this package. They carry the same numeric values as the
// OpenGL enums so a backend can hand them to the driver unchanged.
const (
	VertexShader   uint32 = 0x8B31
	FragmentShader uint32 = 0x8B30

	CompileStatus uint32 = 0x8B81
	LinkStatus    uint32 = 0x8B82
	InfoLogLength uint32 = 0x8B84

	ArrayBuffer        uint32 = 0x8892
	ElementArrayBuffer uint32 = 0x8893
	DynamicDraw        uint32 = 0x88E8

	Float       uint32 = 0x1406
	UnsignedInt uint32 = 0x1405
	Triangles   uint32 = 0x0004

	ColorBufferBit uint32 = 0x00004000
)

// Backend is the slice of the OpenGL API the harness needs. All calls must be
// made from the thread that owns the current context.
type Backend interface {
	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	// GetShaderInfoLog returns at most length bytes of the shader's info log.
	GetShaderInfoLog(shader uint32, length int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32, length int32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferDataFloat32(target uint32, data []float32, usage uint32)
	BufferDataUint32(target uint32, data []uint32, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	DeleteVertexArray(array uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}

// StageName returns a readable name for a shader stage enum.
func StageName(stage uint32) string {
	switch stage {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}
