// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package fake provides loggers and writers for testing code that logs
// through the logger package.
package fake
