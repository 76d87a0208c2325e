package bad

import "go.uber.org/pick"

type Dep struct{}

/* want "//pick:singleton belongs on a type declaration, not on function NewDep" */ //pick:singleton
//pick:inject
func NewDep() *Dep { return &Dep{} }

/* want "unknown directive //pick:bogus" */ //pick:bogus
type Unknown struct {
	D *Dep `inject:""`
}

/* want "//pick:inject belongs on a constructor function, not on type Misplaced" */ //pick:inject
type Misplaced struct {
	D *Dep `inject:""`
}

//pick:scope a
/* want "TwoScopes has more than one //pick:scope directive" */ //pick:scope b
type TwoScopes struct {
	D *Dep `inject:""`
}

/* want "//pick:scope takes exactly one scope name" */ //pick:scope
type NoScopeName struct {
	D *Dep `inject:""`
}

//pick:releasable
type Loose struct { // want "Loose is releasable but not a singleton"
	D *Dep `inject:""`
}

//pick:singleton
type Empty struct{} // want "Empty has pick annotations but neither an injectable constructor nor injected fields"

type Twice struct{}

//pick:inject
func NewTwiceA() *Twice { return nil } // want "Twice has more than one injectable constructor: NewTwiceA, NewTwiceB"

//pick:inject
func NewTwiceB() *Twice { return nil } // want "Twice has more than one injectable constructor: NewTwiceA, NewTwiceB"

//pick:inject
func NewNothing() {} // want "constructor NewNothing must return T or \\(T, error\\)"

//pick:inject
func NewPair() (*Dep, int) { return nil, 0 } // want "constructor NewPair must return T or \\(T, error\\)"

//pick:inject
func NewString() string { return "" } // want "constructor NewString must return a type declared in package bad, or a pointer to one, not string"

//pick:inject
func (Dep) Make() *Twice { return nil } // want "method Make cannot be an injectable constructor"

type Generic struct{}

//pick:inject
func NewGeneric[T any]() *Generic { return nil } // want "constructor NewGeneric cannot be generic"

type Variadic struct{}

//pick:inject
func NewVariadic(deps ...*Dep) *Variadic { return nil } // want "constructor NewVariadic cannot be variadic"

type Named struct{}

//pick:inject
/* want "names unknown parameter .missing. of NewNamed" */ //pick:named missing q
/* want "takes a parameter name and a qualifier" */ //pick:named only
//pick:named d first
/* want "parameter .d. of NewNamed is qualified more than once" */ //pick:named d second
func NewNamed(d *Dep) *Named { return nil }

/* want "//pick:named requires //pick:inject on Helper" */ //pick:named d q
func Helper(d *Dep) {}

type Basic struct{}

//pick:inject
func NewBasic(port int) *Basic { return nil } // want "port of basic type int needs a qualifier"

type Keys struct {
	Items  []string                        `inject:"items"` // want "Items has unnamed type \\[\\]string: declare a named type for it"
	Nested pick.Provider[pick.Lazy[*Dep]] `inject:""`      // want "Nested of .*: wrappers cannot be nested"
	Port   int                             `inject:""`      // want "Port of basic type int needs a qualifier"
}

type BaseA struct {
	D *Dep `inject:""`
}

type BaseB struct {
	D2 *Dep `inject:""`
}

type Diamond struct { // want "Diamond embeds more than one struct with injection points: BaseA, BaseB"
	BaseA
	*BaseB
}

/* want "//pick:singleton is not allowed on a var declaration" */ //pick:singleton
var v = 1

/* want "//pick:scope on a grouped declaration is ambiguous: annotate each type" */ //pick:scope app
type (
	GroupA struct{}
	GroupB struct{}
)

//pick:singleton
type Alias = Dep // want "Alias cannot be injected: aliases and generic types are not supported"
