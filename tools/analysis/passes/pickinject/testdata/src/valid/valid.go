package valid

import "go.uber.org/pick"

type Logger interface {
	Log(string)
}

// Clock tells time in a zone.
//
//pick:scope app
//pick:singleton
//pick:releasable
type Clock struct {
	zone string
}

// NewClock builds a Clock.
//
//pick:inject
//pick:named zone tz
func NewClock(zone string) *Clock {
	return &Clock{zone: zone}
}

type Thermosiphon struct {
	clock *Clock
	log   pick.Lazy[Logger]
}

//pick:inject
func NewThermosiphon(c *Clock, log pick.Lazy[Logger]) (*Thermosiphon, error) {
	return &Thermosiphon{clock: c, log: log}, nil
}

type Base struct {
	Clock *Clock `inject:""`
}

type Activity struct {
	Base

	Pump   pick.Provider[*Thermosiphon] `inject:""`
	Region string                       `inject:"region"`
	name   string
}

type Value struct {
	Clock *Clock `inject:""`
}

//pick:inject
func NewValue(Logger) Value {
	return Value{}
}

// plain has neither annotations nor injection points.
type plain struct {
	clock *Clock
}

// Helper is not a constructor.
func Helper() *plain { return nil }
