package action_test

import (
	"fmt"

	"github.com/on-the-ground/action_ive_go/action"
	"github.com/on-the-ground/action_ive_go/effect"
)

// trace records every effect performed by the actions built from it.
type trace struct {
	events []string
}

func (tr *trace) add(name string, msg any) {
	tr.events = append(tr.events, fmt.Sprintf("%s:%v", name, msg))
}

func record[Msg any](tr *trace, name string) action.Action[effect.Unit, Msg] {
	return action.New(func(msg Msg) effect.Unit {
		tr.add(name, msg)
		return effect.Unit{}
	})
}

func recordResult[Msg any](tr *trace, name string, err error) action.Action[error, Msg] {
	return action.New(func(msg Msg) error {
		tr.add(name, msg)
		return err
	})
}

func recordLazy[Msg any](tr *trace, name string) action.Action[effect.IO[effect.Unit], Msg] {
	return action.New(func(msg Msg) effect.IO[effect.Unit] {
		return func() effect.Unit {
			tr.add(name, msg)
			return effect.Unit{}
		}
	})
}
