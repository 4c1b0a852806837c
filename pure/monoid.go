package pure

import (
	"iter"
	"maps"
)

// Semigroup combines two values associatively:
// Combine(Combine(a, b), c) == Combine(a, Combine(b, c)).
type Semigroup[T any] interface {
	Combine(a, b T) T
}

// Monoid is a Semigroup with a neutral element:
// Combine(Empty(), a) == a == Combine(a, Empty()).
type Monoid[T any] interface {
	Semigroup[T]
	Empty() T
}

// Concat folds xs left to right, starting from m.Empty().
func Concat[T any](m Monoid[T], xs ...T) T {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// ConcatSeq is Concat over an iterator.
func ConcatSeq[T any](m Monoid[T], xs iter.Seq[T]) T {
	acc := m.Empty()
	for x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// Concat1 folds a non-empty sequence without needing an identity.
func Concat1[T any](s Semigroup[T], xs NonEmpty[T]) T {
	acc := xs.Head
	for _, x := range xs.Tail {
		acc = s.Combine(acc, x)
	}
	return acc
}

var (
	_ Monoid[string]         = StringMonoid{}
	_ Monoid[[]int]          = SliceMonoid[int]{}
	_ Monoid[int]            = SumMonoid[int]{}
	_ Monoid[map[string]any] = MapMonoid[string, any]{}
)

// StringMonoid concatenates strings.
type StringMonoid struct{}

func (StringMonoid) Empty() string              { return "" }
func (StringMonoid) Combine(a, b string) string { return a + b }

// SliceMonoid appends slices. The result never aliases a or b.
type SliceMonoid[T any] struct{}

func (SliceMonoid[T]) Empty() []T { return nil }

func (SliceMonoid[T]) Combine(a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Number is the set of types SumMonoid adds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SumMonoid adds numbers.
type SumMonoid[N Number] struct{}

func (SumMonoid[N]) Empty() N         { return 0 }
func (SumMonoid[N]) Combine(a, b N) N { return a + b }

// MapMonoid merges maps into a fresh map. Keys present in both take the
// value from b.
type MapMonoid[K comparable, V any] struct{}

func (MapMonoid[K, V]) Empty() map[K]V { return nil }

func (MapMonoid[K, V]) Combine(a, b map[K]V) map[K]V {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[K]V, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
