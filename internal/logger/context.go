// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"sync/atomic"
)

// slot holds the active logger of one execution context.
type slot struct {
	active atomic.Pointer[handle]
}

// handle is never mutated after creation; replacing the logger swaps the pointer.
type handle struct {
	logger Logger
}

// background is the slot used by contexts that were not created with WithContext.
var background = new(slot)

// newDefaultLogger builds the logger a slot starts with. Every slot gets its own.
var newDefaultLogger = func() Logger {
	return NewConsoleLogger(nil, Options{})
}

func (s *slot) load() Logger {
	if h := s.active.Load(); h != nil {
		return h.logger
	}

	s.active.CompareAndSwap(nil, &handle{logger: newDefaultLogger()})
	return s.active.Load().logger
}

func (s *slot) store(logger Logger) {
	if logger == nil {
		logger = NullLogger{}
	}
	s.active.Store(&handle{logger: logger})
}

// WithContext returns a new execution context derived from ctx, with its own
// empty logger slot.
func WithContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey, new(slot))
}

// WithLogger returns a new execution context derived from ctx with logger
// already installed.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	ctx = WithContext(ctx)
	Install(ctx, logger)
	return ctx
}

// Install replaces the active logger of the execution context of ctx.
// A nil logger installs a NullLogger.
func Install(ctx context.Context, logger Logger) {
	slotFromContext(ctx).store(logger)
}

// Active returns the logger currently installed in the execution context of ctx.
func Active(ctx context.Context) Logger {
	return slotFromContext(ctx).load()
}

func slotFromContext(ctx context.Context) *slot {
	if ctx != nil {
		if s, ok := ctx.Value(contextKey).(*slot); ok {
			return s
		}
	}

	return background
}

// Unexported new type so that our context key never collides with another.
type contextKeyType struct{}

// contextKey is the key used for the context to store the logger slot.
var contextKey = contextKeyType{}
