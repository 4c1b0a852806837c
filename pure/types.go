package pure

import (
	"errors"
	"fmt"
	"iter"
)

// ErrAbsurd is wrapped by the panic value of Absurd.
var ErrAbsurd = errors.New("uninhabited value reached")

// Option is a value that may be absent.
type Option[T any] struct {
	Value T
	Ok    bool
}

// Some returns a present v.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Ok: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Ok
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PairOf pairs a with b.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.Fst, p.Snd
}

// Either holds exactly one of an L or an R. The zero value is a Left
// holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding l.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right returns an Either holding r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the left value and true if e is a Left.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and true if e is a Right.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Match applies exactly one of onLeft and onRight.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Void has no values other than nil, and nil is never a legitimate Void:
// nothing outside this package can implement it and nothing inside does.
type Void interface {
	absurd()
}

// Absurd marks a branch that is unreachable because it received a Void.
func Absurd[T any](v Void) T {
	panic(fmt.Errorf("pure.Absurd: %w: %v", ErrAbsurd, v))
}

// NonEmpty is a sequence with at least one element.
type NonEmpty[T any] struct {
	Head T
	Tail []T
}

// NewNonEmpty builds a NonEmpty from head and tail.
func NewNonEmpty[T any](head T, tail ...T) NonEmpty[T] {
	return NonEmpty[T]{Head: head, Tail: tail}
}

func (ne NonEmpty[T]) Len() int {
	return 1 + len(ne.Tail)
}

// All yields the elements in order.
func (ne NonEmpty[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(ne.Head) {
			return
		}
		for _, x := range ne.Tail {
			if !yield(x) {
				return
			}
		}
	}
}
