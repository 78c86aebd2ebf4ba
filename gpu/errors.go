package gpu

import (
	"errors"
	"fmt"
)

// ErrResourceSetup is the kind shared by every failure to create a GPU
// resource during startup. Callers test for it with errors.Is.
var ErrResourceSetup = errors.New("gpu resource setup failed")

// CompileError carries the driver's diagnostic log for a shader that failed
// to compile.
type CompileError struct {
	Stage uint32
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", StageName(e.Stage), e.Log)
}

func (e *CompileError) Unwrap() error { return ErrResourceSetup }

// LinkError carries the driver's diagnostic log for a program that failed to
// link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

func (e *LinkError) Unwrap() error { return ErrResourceSetup }
