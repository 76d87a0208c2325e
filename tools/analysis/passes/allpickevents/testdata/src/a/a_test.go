package a

import "go.uber.org/pick/pickevent"

// Loggers in tests may handle only what they need.
type testLogger struct{ opened int }

func (l *testLogger) LogEvent(ev pickevent.Event) {
	if _, ok := ev.(*pickevent.ScopeOpened); ok {
		l.opened++
	}
}
