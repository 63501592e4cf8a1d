// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for termination-class OS signals (SIGINT, SIGHUP, SIGTERM and
// SIGQUIT) sent to this process and forwards them as cascade triggers.
//
// Signal delivery is only supported on unix. Elsewhere New returns nil and no listener runs.
package signalbroker
