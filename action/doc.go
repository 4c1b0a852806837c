// Package action provides Action, a composable "consume a message, perform
// an effect" value, and the closed family of combinators over it.
//
// An Action[F, Msg] wraps one function Msg -> F, where F is the unit effect
// of some context (see package effect). Structured logging, metrics or any
// write-only sink can be described as an Action, and small Actions can be
// combined into whole pipelines without losing type safety or effect order.
//
// # What can be done with an Action?
//
// Every combinator is a pure function from Actions to a new Action. None of
// them mutates its inputs or holds shared state.
//
//   - Combine, Empty, Fold, Repeat: run several actions on the same message.
//   - Map, MapFallible, ReplaceConst: adapt the message before it arrives.
//   - Filter: drop messages.
//   - Divide, PairCombine, ThenConst, ConstThen: split a message between
//     actions that all run.
//   - Choose, EitherCombine, Lose: route a message to exactly one action.
//   - Extract, Extend, Duplicate, Multiplicate, Separate: accumulate
//     messages whose type is a monoid.
//   - Hoist: move an action to another effect context.
//
// Combinators ending in M take a function that itself runs in the effect
// context and need a Binder. The others need at most a Sequencer.
//
// # Effect order
//
// Whenever two effects run, the left one is issued first. If the context can
// fail, a failure of the first effect stops the second one; the combinators
// only ever sequence through the context's own Then and Bind.
//
// # Why is there no forward Map?
//
// An Action consumes messages, it never produces them. Mapping "forward"
// over its message type has no meaning, so Action does not offer it and its
// only method is Run. To change the message type use Map, which transforms
// the incoming message before the action sees it.
//
// Example:
//
//	var seq effect.Identity
//
//	stdout := action.New(func(s string) effect.Unit {
//	    fmt.Println(s)
//	    return effect.Unit{}
//	})
//	lengths := action.Map(func(n int) string { return strconv.Itoa(n) }, stdout)
//	both := action.Divide(seq, func(s string) pure.Pair[string, int] {
//	    return pure.PairOf(s, len(s))
//	}, stdout, lengths)
//
//	action.Feed("hello", both) // prints "hello" then "5"
package action
