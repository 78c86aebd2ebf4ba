package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gotriangle/graphics"
	options "github.com/richinsley/gotriangle/options"
)

// Context owns the GLFW window, its OpenGL context and the queue fed by the
// window callbacks.
type Context struct {
	window *glfw.Window
	events []graphics.Event
}

var _ graphics.Context = (*Context)(nil)

// New creates the window, makes its context current and configures the swap
// interval. InitGraphics must have been called first.
func New(opts *options.HarnessOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %dx%d window: %w", opts.Width, opts.Height, err)
	}

	c := &Context{window: win}
	win.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	win.SetCloseCallback(c.glfwCloseCallback)
	win.SetKeyCallback(c.glfwKeyCallback)

	log.Printf("Created window %q (%dx%d), requested OpenGL %d.%d core", opts.Title, opts.Width, opts.Height, opts.GLMajor, opts.GLMinor)
	return c, nil
}

func (c *Context) glfwCloseCallback(w *glfw.Window) {
	c.events = append(c.events, graphics.Event{Kind: graphics.EventQuit})
}

// glfwKeyCallback turns key presses into events. Escape quits.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		c.events = append(c.events, graphics.Event{Kind: graphics.EventQuit, Key: int(key)})
		return
	}
	c.events = append(c.events, graphics.Event{Kind: graphics.EventKey, Key: int(key)})
}

// MakeCurrent makes the context current for the calling thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) PollEvents() []graphics.Event {
	glfw.PollEvents()
	events := c.events
	c.events = nil
	return events
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Shutdown destroys the window and its context.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
