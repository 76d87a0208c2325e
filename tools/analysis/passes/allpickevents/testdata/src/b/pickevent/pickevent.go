package pickevent

// Same names as the real package under a different path.

type (
	Logger interface{ LogEvent(Event) }
	Event  interface{ event() }
	Opened struct{}
	Closed struct{}
)

func (*Opened) event() {}
func (*Closed) event() {}
