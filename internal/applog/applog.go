// Package applog is a thin project-local facade over zap, the way
// netex-validator's logging package wraps log/slog: callers get a narrow
// interface (build/serve milestones), not direct access to the zap API.
package applog

import "go.uber.org/zap"

// Logger wraps a zap.SugaredLogger for the orchestrator's milestone logs.
// Query-level detail never goes through Logger — stdout is reserved for the
// response document (spec §6).
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a production logger (JSON), or a development logger
// (human-readable console output) when dev is true.
func New(dev bool) (*Logger, error) {
	var zl *zap.Logger
	var err error
	if dev {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// Sync flushes any buffered log entries. Callers should defer this.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

// BuildStarted logs the start of make_base.
func (l *Logger) BuildStarted() {
	l.sugar.Info("make_base: reading base requests from stdin")
}

// BuildCompleted logs catalogue shape after a successful build.
func (l *Logger) BuildCompleted(stopCount, busCount, roadCount int) {
	l.sugar.Infow("make_base: catalogue built",
		"stops", stopCount, "buses", busCount, "roads", roadCount)
}

// ServeStarted logs the start of process_requests.
func (l *Logger) ServeStarted() {
	l.sugar.Info("process_requests: loading snapshot")
}

// SnapshotLoaded logs snapshot load shape.
func (l *Logger) SnapshotLoaded(stopCount, busCount int) {
	l.sugar.Infow("process_requests: snapshot loaded", "stops", stopCount, "buses", busCount)
}

// RoutingGraphBuilt logs that the time-expanded graph is ready and the
// serve phase can begin dispatching queries.
func (l *Logger) RoutingGraphBuilt(vertexCount int) {
	l.sugar.Infow("process_requests: routing graph built", "vertices", vertexCount)
}

// QueriesDispatched logs how many stat_requests were answered.
func (l *Logger) QueriesDispatched(count int) {
	l.sugar.Infow("process_requests: queries dispatched", "count", count)
}

// Error logs an aborting error before the process exits 1.
func (l *Logger) Error(stage string, err error) {
	l.sugar.Errorw(stage, "error", err)
}
