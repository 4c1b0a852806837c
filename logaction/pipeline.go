package logaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/action_ive_go/action"
	"github.com/on-the-ground/action_ive_go/effect"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewPipeline builds the logging action described by cfg on top of logger.
//
// A message is stamped with a time, checked against the level, the sample
// rate and the window, then given an id and written. Dropped messages never
// get an id.
func NewPipeline(cfg Config, logger *zap.Logger) action.Action[effect.Unit, Message] {
	var seq effect.Identity

	sink := ZapSink(logger)
	if cfg.SyncEach {
		sink = action.ThenConst(seq, sink, SyncAction(logger))
	}
	return filtered(seq, cfg, sink)
}

// NewCorePipeline is NewPipeline writing to a zapcore.Core, reporting
// write errors.
func NewCorePipeline(cfg Config, core zapcore.Core) action.Action[error, Message] {
	var seq effect.Result

	sink := CoreSink(core)
	if cfg.SyncEach {
		sink = action.ThenConst(seq, sink, action.New(func(effect.Unit) error {
			return core.Sync()
		}))
	}
	return filtered(seq, cfg, sink)
}

func filtered[F any](seq effect.Sequencer[F], cfg Config, sink action.Action[F, Message]) action.Action[F, Message] {
	return stampedFiltered(seq, cfg, time.Now, uuid.NewString, sink)
}

func stampedFiltered[F any](
	seq effect.Sequencer[F],
	cfg Config,
	clock func() time.Time,
	ids func() string,
	sink action.Action[F, Message],
) action.Action[F, Message] {
	a := StampID(ids, sink)
	if cfg.Window != nil {
		a = Within(seq, *cfg.Window, a)
	}
	a = Sample(seq, cfg.SampleEvery, a)
	a = AtLeast(seq, cfg.Level, a)
	return StampTime(clock, a)
}
