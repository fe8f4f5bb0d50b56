// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It maps a command and its arguments onto calls of an
// [adapter.PostsClient] and prints the results as indented JSON.
package client
