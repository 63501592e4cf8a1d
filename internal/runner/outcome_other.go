// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !unix

package runner

import "os"

// Without unix wait statuses every process ends with an exit code.
func signalName(*os.ProcessState) (string, bool) {
	return "", false
}
