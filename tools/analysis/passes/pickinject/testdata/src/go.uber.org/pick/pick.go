// Package pick is a stub of the pick runtime with the types the analyzer
// looks for.
package pick

type Provider[T any] interface {
	Get() (T, error)
}

type Lazy[T any] interface {
	Get() (T, error)
}
