package a

import (
	"fmt"
	"io"
	"log"

	"go.uber.org/pick/pickevent"
)

type fullLogger struct{ w io.Writer }

func (l *fullLogger) LogEvent(ev pickevent.Event) {
	switch e := ev.(type) {
	case *pickevent.ScopeOpened, *pickevent.ScopeClosed:
		fmt.Fprintln(l.w, e)
	case *pickevent.Instantiated:
		fmt.Fprintln(l.w, e)
	case *pickevent.Released:
		fmt.Fprintln(l.w, e)
	}
}

type nopLogger struct{}

func (nopLogger) LogEvent(pickevent.Event) {}

type assertLogger struct{}

func (*assertLogger) LogEvent(ev pickevent.Event) { // want `\*assertLogger does not handle \*Instantiated, \*Released`
	if e, ok := ev.(*pickevent.ScopeOpened); ok {
		log.Print(e)
	}
	if e, ok := ev.(*pickevent.ScopeClosed); ok {
		log.Print(e)
	}
}

type valueLogger struct{ w io.Writer }

func (l valueLogger) LogEvent(ev pickevent.Event) { // want `valueLogger does not handle \*Instantiated`
	switch ev.(type) {
	case *pickevent.ScopeOpened, *pickevent.ScopeClosed, *pickevent.Released:
		fmt.Fprintln(l.w, ev)
	}
}

// notALogger returns an error, so it doesn't implement pickevent.Logger.
type notALogger struct{}

func (notALogger) LogEvent(ev pickevent.Event) error {
	_, ok := ev.(*pickevent.Released)
	fmt.Println(ok)
	return nil
}

// helper is not a LogEvent method.
func helper(ev pickevent.Event) bool {
	_, ok := ev.(*pickevent.Released)
	return ok
}
