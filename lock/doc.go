// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package lock provides the module's base binary mutex, a scoped guard over it,
and a guarded-scalar wrapper.

The Lock exposes two method sets over one primitive: blocking, timeout-bearing
calls for task context and non-blocking calls for interrupt context.  Picking
the right set for the calling context is a caller contract, not a runtime
check.  Timeout expiry is reported by a false return; there are no error
values and no cancellation beyond the timeout itself.
*/
package lock
