package b

import "b/pickevent"

type logger struct{}

var _ pickevent.Logger = logger{}

func (logger) LogEvent(ev pickevent.Event) {
	_, _ = ev.(*pickevent.Opened)
}
