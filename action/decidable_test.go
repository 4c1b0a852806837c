package action_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/action_ive_go/action"
	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/on-the-ground/action_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bySign(n int) pure.Either[int, int] {
	if n < 0 {
		return pure.Left[int, int](n)
	}
	return pure.Right[int](n)
}

func TestChoose_RunsExactlyOneBranch(t *testing.T) {
	cases := []struct {
		in   int
		want []string
	}{
		{in: -1, want: []string{"neg:-1"}},
		{in: 5, want: []string{"pos:5"}},
		{in: 0, want: []string{"pos:0"}},
	}

	for _, tc := range cases {
		tr := &trace{}
		a := action.Choose(bySign, record[int](tr, "neg"), record[int](tr, "pos"))

		action.Feed(tc.in, a)

		assert.Equal(t, tc.want, tr.events, "input %d", tc.in)
	}
}

func TestChooseM(t *testing.T) {
	tr := &trace{}
	unknown := errors.New("unclassifiable")

	a := action.ChooseM(effect.ResultBind[pure.Either[int, int]]{}, func(n int) effect.Try[pure.Either[int, int]] {
		if n == 0 {
			return effect.Fail[pure.Either[int, int]](unknown)
		}
		return effect.Ok(bySign(n))
	}, recordResult[int](tr, "neg", nil), recordResult[int](tr, "pos", nil))

	require.NoError(t, action.Feed(-3, a))
	require.NoError(t, action.Feed(3, a))
	require.ErrorIs(t, action.Feed(0, a), unknown)

	assert.Equal(t, []string{"neg:-3", "pos:3"}, tr.events)
}

func TestEitherCombine(t *testing.T) {
	tr := &trace{}
	a := action.EitherCombine(record[string](tr, "err"), record[int](tr, "code"))

	action.Feed(pure.Left[string, int]("timeout"), a)
	action.Feed(pure.Right[string](200), a)

	assert.Equal(t, []string{"err:timeout", "code:200"}, tr.events)
}

func TestLose_PanicsWhenReached(t *testing.T) {
	a := action.Lose[effect.Unit](func(v pure.Void) pure.Void { return v })

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on uninhabited input")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, pure.ErrAbsurd)
	}()
	var impossible pure.Void
	action.Feed(impossible, a)
}
