package action

// Hoist moves a into another effect context by passing every effect it
// produces through nat.
//
// nat has to preserve structure: it may change how an effect is reported,
// never which effect runs. The transforms in package effect all qualify.
func Hoist[F, G, Msg any](nat func(F) G, a Action[F, Msg]) Action[G, Msg] {
	return New(func(msg Msg) G {
		return nat(a.run(msg))
	})
}
