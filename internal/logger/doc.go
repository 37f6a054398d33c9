// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger keeps one active Logger per execution context and dispatches
// leveled messages to it.
//
// An execution context is a context.Context created with WithContext: it owns
// a slot that is lazily filled with a console logger on standard output and
// that can be replaced at any time with Install. Contexts that carry no slot
// share the process background slot.
//
// Delivery never returns an error to the caller. When the active Logger fails,
// a single diagnostic line is written to the raw standard error of the
// process; when that write fails too the dispatcher terminates with an
// *UnrecoverableError carrying both causes.
package logger
