// Package logaction builds structured logging on top of package action.
//
// Messages are plain values (Message); sinks, filters and enrichment are
// all actions, so a pipeline is assembled with the usual combinators:
//
//	logger, _ := zap.NewProduction()
//	log := logaction.NewPipeline(logaction.NewConfig(logaction.Info, 1), logger)
//	action.Feed(logaction.NewMessage(logaction.Warning, "disk almost full", nil), log)
//
// ZapSink and CoreSink are thin adapters over an externally configured zap
// logger or core; this package does not open files or sockets itself.
package logaction
