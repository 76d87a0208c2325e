package cycle

import "go.uber.org/pick"

type A struct{} // want "dependency cycle: \\*A -> \\*B -> \\*A"

type B struct{}

//pick:inject
func NewA(b *B) *A { return &A{} }

//pick:inject
func NewB(a *A) *B { return &B{} }

// C and D only form a cycle through a Provider.
type C struct{}

type D struct{}

//pick:inject
func NewC(d *D) *C { return &C{} }

//pick:inject
func NewD(c pick.Provider[*C]) *D { return &D{} }

type E struct { // want "dependency cycle: \\*E -> \\*F -> \\*E"
	F *F `inject:""`
}

type F struct {
	E *E `inject:""`
}

// G and H only form a cycle through a qualified key, which needs a binding.
type G struct {
	H *H `inject:"h"`
}

type H struct {
	G *G `inject:""`
}

type Self struct{} // want "dependency cycle: \\*Self -> \\*Self"

//pick:inject
func NewSelf(s *Self) *Self { return s }
