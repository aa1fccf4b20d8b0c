// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line importer runtime.
//
// It reads the input file, runs one import against the configured vault,
// renders progress while the run is in flight and prints the final report.
package client
