package pickevent

// A fixed set of events to check loggers against.

type (
	Logger interface{ LogEvent(Event) }
	Event  interface{ event() }

	ScopeOpened  struct{}
	ScopeClosed  struct{}
	Instantiated struct{}
	Released     struct{}
)

func (*ScopeOpened) event()  {}
func (*ScopeClosed) event()  {}
func (*Instantiated) event() {}
func (*Released) event()     {}

type partialLogger struct{}

func (partialLogger) LogEvent(ev Event) { // want `partialLogger does not handle \*Released`
	switch ev.(type) {
	case *ScopeOpened, *ScopeClosed:
	case *Instantiated:
	}
}
