/*
Package queue provides a fixed-capacity generic message queue for handing data
between tasks, and from interrupt handlers to tasks.

Task-side callers use the blocking, timeout-bearing operations; interrupt-side
callers use only SendISR.  As everywhere in this module, a false return means
the timeout elapsed, and choosing the entry points legal for the calling
context is a caller contract rather than a runtime check.
*/
package queue
