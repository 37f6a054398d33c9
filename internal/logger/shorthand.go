// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"fmt"
)

// Debug delivers msg verbatim at DEBUG level to the logger active in ctx.
func (d *Dispatcher) Debug(ctx context.Context, msg string) {
	d.Log(ctx, DEBUG, msg)
}

// Info delivers msg verbatim at INFO level to the logger active in ctx.
func (d *Dispatcher) Info(ctx context.Context, msg string) {
	d.Log(ctx, INFO, msg)
}

// Warning delivers msg verbatim at WARNING level to the logger active in ctx.
func (d *Dispatcher) Warning(ctx context.Context, msg string) {
	d.Log(ctx, WARNING, msg)
}

// Severe delivers msg verbatim at SEVERE level to the logger active in ctx.
func (d *Dispatcher) Severe(ctx context.Context, msg string) {
	d.Log(ctx, SEVERE, msg)
}

// Debugf formats according to format and delivers the result at DEBUG level.
func (d *Dispatcher) Debugf(ctx context.Context, format string, args ...any) {
	d.Log(ctx, DEBUG, fmt.Sprintf(format, args...))
}

// Infof formats according to format and delivers the result at INFO level.
func (d *Dispatcher) Infof(ctx context.Context, format string, args ...any) {
	d.Log(ctx, INFO, fmt.Sprintf(format, args...))
}

// Warningf formats according to format and delivers the result at WARNING level.
func (d *Dispatcher) Warningf(ctx context.Context, format string, args ...any) {
	d.Log(ctx, WARNING, fmt.Sprintf(format, args...))
}

// Severef formats according to format and delivers the result at SEVERE level.
func (d *Dispatcher) Severef(ctx context.Context, format string, args ...any) {
	d.Log(ctx, SEVERE, fmt.Sprintf(format, args...))
}

// Debug delivers msg verbatim at DEBUG level through the standard dispatcher.
func Debug(ctx context.Context, msg string) {
	std.Log(ctx, DEBUG, msg)
}

// Info delivers msg verbatim at INFO level through the standard dispatcher.
func Info(ctx context.Context, msg string) {
	std.Log(ctx, INFO, msg)
}

// Warning delivers msg verbatim at WARNING level through the standard dispatcher.
func Warning(ctx context.Context, msg string) {
	std.Log(ctx, WARNING, msg)
}

// Severe delivers msg verbatim at SEVERE level through the standard dispatcher.
func Severe(ctx context.Context, msg string) {
	std.Log(ctx, SEVERE, msg)
}

// Debugf is the formatting variant of Debug.
func Debugf(ctx context.Context, format string, args ...any) {
	std.Log(ctx, DEBUG, fmt.Sprintf(format, args...))
}

// Infof is the formatting variant of Info.
func Infof(ctx context.Context, format string, args ...any) {
	std.Log(ctx, INFO, fmt.Sprintf(format, args...))
}

// Warningf is the formatting variant of Warning.
func Warningf(ctx context.Context, format string, args ...any) {
	std.Log(ctx, WARNING, fmt.Sprintf(format, args...))
}

// Severef is the formatting variant of Severe.
func Severef(ctx context.Context, format string, args ...any) {
	std.Log(ctx, SEVERE, fmt.Sprintf(format, args...))
}
