// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the botfather command-line front end.
//
// Every command prints a single JSON document on stdout. Errors are written
// to stderr and turn into exit code 1; a failed command never prints a
// partial success payload.
package cli
