package action

import "errors"

// ErrNegativeRepeat is the panic value of Repeat given a negative count.
var ErrNegativeRepeat = errors.New("negative repeat count")

// Action consumes a Msg and produces the unit effect F.
//
// The wrapped function is never exposed; an Action can only be run or fed
// to a combinator. The zero Action panics when run; build one with New or
// Empty.
type Action[F, Msg any] struct {
	run func(Msg) F
}

// New wraps run. Any function is accepted.
func New[F, Msg any](run func(Msg) F) Action[F, Msg] {
	return Action[F, Msg]{run: run}
}

// Run performs the action's effect on msg.
func (a Action[F, Msg]) Run(msg Msg) F {
	return a.run(msg)
}

// Invoke runs a on msg.
func Invoke[F, Msg any](a Action[F, Msg], msg Msg) F {
	return a.run(msg)
}

// Feed is Invoke with the message first, for pipelines that read left to
// right.
func Feed[F, Msg any](msg Msg, a Action[F, Msg]) F {
	return Invoke(a, msg)
}
