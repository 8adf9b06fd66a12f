// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of a binary until its context is
// cancelled and then shuts it down gracefully.
package server
