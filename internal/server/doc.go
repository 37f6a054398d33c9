// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server exposes the log sinks over HTTP with the Fiber framework.
// Every request runs in its own execution context, and the messages posted to
// the log route are delivered through the dispatcher.
package server
