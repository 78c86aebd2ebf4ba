// Package graphicstest provides a scripted graphics.Context for tests.
package graphicstest

import "github.com/richinsley/gotriangle/graphics"

// Context is a windowless graphics.Context. Each PollEvents call returns the
// next batch from Events (nothing once exhausted) and each SwapBuffers call
// advances the clock by Step seconds.
type Context struct {
	Now    float64
	Step   float64
	Events [][]graphics.Event

	// QuitAfter, when positive, injects a quit event on the poll that
	// follows that many presented frames.
	QuitAfter int

	Polls   int
	Swaps   int
	Current bool
	Closed  bool
}

var _ graphics.Context = (*Context)(nil)

// QuitImmediately returns a context whose first poll delivers a quit event.
func QuitImmediately() *Context {
	return &Context{Events: [][]graphics.Event{{{Kind: graphics.EventQuit}}}}
}

func (c *Context) MakeCurrent() { c.Current = true }

func (c *Context) PollEvents() []graphics.Event {
	c.Polls++
	if c.QuitAfter > 0 && c.Swaps >= c.QuitAfter {
		return []graphics.Event{{Kind: graphics.EventQuit}}
	}
	if len(c.Events) == 0 {
		return nil
	}
	batch := c.Events[0]
	c.Events = c.Events[1:]
	return batch
}

func (c *Context) SwapBuffers() {
	c.Swaps++
	c.Now += c.Step
}

func (c *Context) Time() float64 { return c.Now }

func (c *Context) Shutdown() { c.Closed = true }
