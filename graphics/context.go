package graphics

// EventKind classifies an input event drained from a Context.
type EventKind int

const (
	// EventQuit asks the application to stop.
	EventQuit EventKind = iota
	// EventKey is any other key press.
	EventKey
)

// Event is one input event.
type Event struct {
	Kind EventKind
	Key  int
}

// Context defines the interface for a window with an OpenGL context.
type Context interface {
	MakeCurrent()
	// PollEvents processes pending window-system events and returns every
	// event queued since the last call.
	PollEvents() []Event
	// SwapBuffers presents the frame, blocking for up to one vsync interval.
	SwapBuffers()
	// Time returns seconds since the graphics subsystem started.
	Time() float64
	Shutdown()
}

// HasQuit reports whether any event in events asks to quit.
func HasQuit(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return true
		}
	}
	return false
}
