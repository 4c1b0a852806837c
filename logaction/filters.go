package logaction

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/on-the-ground/action_ive_go/action"
	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/on-the-ground/action_ive_go/pure"
	"github.com/rickb777/date/v2/timespan"
)

// AtLeast drops messages below threshold.
func AtLeast[F any](seq effect.Sequencer[F], threshold Severity, a action.Action[F, Message]) action.Action[F, Message] {
	return action.Filter(seq, func(m Message) bool {
		return m.Severity >= threshold
	}, a)
}

// Sample keeps roughly one message in every, chosen by hashing the message
// text. The same text is always either kept or dropped. every <= 1 keeps
// everything.
func Sample[F any](seq effect.Sequencer[F], every uint64, a action.Action[F, Message]) action.Action[F, Message] {
	if every <= 1 {
		return a
	}
	return action.Filter(seq, func(m Message) bool {
		return xxhash.Sum64String(m.Text)%every == 0
	}, a)
}

// Within drops messages whose Time falls outside span. The start of the
// span is inclusive and the end exclusive.
func Within[F any](seq effect.Sequencer[F], span timespan.TimeSpan, a action.Action[F, Message]) action.Action[F, Message] {
	return action.Filter(seq, func(m Message) bool {
		return span.Contains(m.Time)
	}, a)
}

// Stamp fills in a missing Time from clock and a missing ID from ids before
// handing the message on.
func Stamp[F any](clock func() time.Time, ids func() string, a action.Action[F, Message]) action.Action[F, Message] {
	return StampTime(clock, StampID(ids, a))
}

// StampTime fills in a missing Time from clock.
func StampTime[F any](clock func() time.Time, a action.Action[F, Message]) action.Action[F, Message] {
	return action.Map(func(m Message) Message {
		if m.Time.IsZero() {
			m.Time = clock()
		}
		return m
	}, a)
}

// StampID fills in a missing ID from ids.
func StampID[F any](ids func() string, a action.Action[F, Message]) action.Action[F, Message] {
	return action.Map(func(m Message) Message {
		if m.ID == "" {
			m.ID = ids()
		}
		return m
	}, a)
}

// Stamped is Stamp with the wall clock and random UUIDs.
func Stamped[F any](a action.Action[F, Message]) action.Action[F, Message] {
	return Stamp(time.Now, uuid.NewString, a)
}

// Formatted adapts a text sink into a Message action using FormatMessage.
func Formatted[F any](a action.Action[F, string]) action.Action[F, Message] {
	return action.Map(FormatMessage, a)
}

// Routed sends Error messages to errs and everything else to rest.
func Routed[F any](errs, rest action.Action[F, Message]) action.Action[F, Message] {
	return action.Choose(func(m Message) pure.Either[Message, Message] {
		if m.Severity >= Error {
			return pure.Left[Message, Message](m)
		}
		return pure.Right[Message](m)
	}, errs, rest)
}
