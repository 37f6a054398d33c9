// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"fmt"
)

// LogError delivers a SEVERE message if err is not nil and reports whether it
// did. When format has a verb left over after args, err fills it:
//
//	LogError(ctx, err, "cannot open %s: %v", path)
//
// Otherwise err is appended to the formatted text after ": ":
//
//	LogError(ctx, err, "cannot open config") // "cannot open config: <err>"
func (d *Dispatcher) LogError(ctx context.Context, err error, format string, args ...any) bool {
	if err == nil {
		return false
	}

	d.Log(ctx, SEVERE, errorMessage(format, args, err))
	return true
}

// LogErrorThen works like LogError and runs then once after the message has
// been delivered. then never runs when err is nil.
func (d *Dispatcher) LogErrorThen(ctx context.Context, err error, then func(), format string, args ...any) {
	if d.LogError(ctx, err, format, args...) && then != nil {
		then()
	}
}

// LogError is Dispatcher.LogError on the standard dispatcher.
func LogError(ctx context.Context, err error, format string, args ...any) bool {
	return std.LogError(ctx, err, format, args...)
}

// LogErrorThen is Dispatcher.LogErrorThen on the standard dispatcher.
func LogErrorThen(ctx context.Context, err error, then func(), format string, args ...any) {
	std.LogErrorThen(ctx, err, then, format, args...)
}

// errorMessage never lets err end up as an unused argument. args is never
// modified, the caller may still own its backing array.
func errorMessage(format string, args []any, err error) string {
	if consumedArgs(format) > len(args) {
		return fmt.Sprintf(format, append(args[:len(args):len(args)], err)...)
	}
	return fmt.Sprintf(format, args...) + ": " + err.Error()
}

// consumedArgs counts the operands format asks for, including '*' widths and
// precisions. Explicit argument indexes are not supported.
func consumedArgs(format string) int {
	count := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for ; i < len(format); i++ {
			c := format[i]
			if c == '*' {
				count++
				continue
			}
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				count++
				break
			}
		}
	}
	return count
}
