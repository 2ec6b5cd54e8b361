// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local store, the remote adapter and the sync engine into a
// single process lifecycle: the host state cache is filled from the local
// store, the background sync job keeps it fresh and the terminal UI shows
// progress.
package client
