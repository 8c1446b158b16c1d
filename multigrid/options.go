// SPDX-License-Identifier: MIT

// Package multigrid: functional configuration of the Solver loop.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Numeric parameters (n, ω, depths, iteration counts) live in Config, which
// is validated and may come from a file. Options only tune how the outer
// loop behaves and reports.
package multigrid

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance disables early stopping: the loop always runs NCycle steps.
	DefaultTolerance = 0.0

	// DefaultMonitor records the field norm, as the reference driver does.
	DefaultMonitor = MonitorField
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "multigrid: WithTolerance: tol must be finite, non-negative"
	panicLoggerNil        = "multigrid: WithLogger: logger must be non-nil"
	panicObserverNil      = "multigrid: WithObserver: observer must be non-nil"
	panicMonitorInvalid   = "multigrid: WithMonitor: unknown monitor"
)

// Observer is called once per recorded history entry, including entry 0
// (the initial field).
type Observer func(cycle int, norm float64)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger   *slog.Logger
	tol      float64
	monitor  Monitor
	observer Observer
}

// WithLogger routes run and per-cycle logs to l.
// Start/finish are logged at Info, every cycle norm at Debug.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithTolerance stops the outer loop as soon as the monitored norm is ≤ tol.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 keeps the fixed-count behavior (the default).
//   - The check runs before each step, so a field already below tol costs
//     zero FMG steps and yields a history of length 1.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMonitor selects the quantity recorded in the history.
func WithMonitor(m Monitor) Option {
	if m != MonitorField && m != MonitorResidual {
		panic(panicMonitorInvalid)
	}

	return func(o *Options) { o.monitor = m }
}

// WithObserver registers fn to receive every recorded norm.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = fn }
}

// defaultOptions mirrors the Default* constants.
func defaultOptions() Options {
	return Options{
		logger:  slog.New(slog.DiscardHandler),
		tol:     DefaultTolerance,
		monitor: DefaultMonitor,
	}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
