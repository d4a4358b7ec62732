// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics supplies the narrow metrics interfaces consumed by the
instrumentation options elsewhere in this module, together with
Prometheus-backed constructors for callers that want real metrics.  The more
general go-kit interfaces are used where possible, and the zero-cost default
everywhere is go-kit's discard package.
*/
package xmetrics
