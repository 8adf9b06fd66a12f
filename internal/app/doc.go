// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires storage, services, transport and workers into the
// runnable processes of the module: the remote site daemon and the central
// server.
package app
