// Package effect describes the contexts in which an action's effect runs.
//
// Go has no higher-kinded generics, so a context M is not a type constructor
// here but a strategy value. Each strategy fixes two concrete types:
//
//   - F, the unit effect M<Unit> every action produces;
//   - FB, the effect M<B> carrying an intermediate result, for the
//     dependent ("monadic") combinators.
//
// A Sequencer[F] can run two unit effects in order. A Binder[F, FB, B] can
// additionally run an M<B> and feed its result into the next unit effect.
// Combinators in package action ask for the weaker of the two whenever they
// can.
//
// Provided strategies:
//
//	strategy              F             FB          runs
//	Identity/IdentityBind Unit          B           eagerly, on the caller's goroutine
//	Result/ResultBind     error         Try[B]      eagerly, first error short-circuits
//	Lazy/LazyBind         IO[Unit]      IO[B]       when the IO is executed with Run
//	Async/AsyncBind       Future[Unit]  Future[B]   on a goroutine, bound to a context.Context
//
// Example:
//
//	var seq effect.Result
//	err := seq.Then(write(a), func() error { return write(b) })
//
// The second write is never attempted when the first one fails.
package effect
