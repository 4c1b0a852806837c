package logaction

import (
	"time"

	"github.com/on-the-ground/action_ive_go/action"
	"github.com/on-the-ground/action_ive_go/effect"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink writes every message through logger at the matching level. A
// non-zero Time is kept as the entry time; otherwise zap stamps the write.
func ZapSink(logger *zap.Logger) action.Action[effect.Unit, Message] {
	return action.New(func(m Message) effect.Unit {
		ce := logger.Check(m.Severity.ZapLevel(), m.Text)
		if ce == nil {
			return effect.Unit{}
		}
		if !m.Time.IsZero() {
			ce.Time = m.Time
		}
		ce.Write(m.zapFields()...)
		return effect.Unit{}
	})
}

// CoreSink writes every message straight to core and reports the write
// error, for pipelines running in the Result context.
//
// Messages below the core's level are dropped without error. A zero Time is
// replaced by the current time.
func CoreSink(core zapcore.Core) action.Action[error, Message] {
	return action.New(func(m Message) error {
		lvl := m.Severity.ZapLevel()
		if !core.Enabled(lvl) {
			return nil
		}

		ts := m.Time
		if ts.IsZero() {
			ts = time.Now()
		}
		return core.Write(zapcore.Entry{
			Level:   lvl,
			Time:    ts,
			Message: m.Text,
		}, m.zapFields())
	})
}

// Sync flushes logger, logging a warning through the same logger when the
// flush fails.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}

// SyncAction flushes logger whenever it runs. Pair it with action.ThenConst
// to flush after every message.
func SyncAction(logger *zap.Logger) action.Action[effect.Unit, effect.Unit] {
	return action.New(func(effect.Unit) effect.Unit {
		Sync(logger)
		return effect.Unit{}
	})
}
