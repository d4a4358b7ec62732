/*
Package types contains custom types shared across the module.  In particular,
better JSON support is provided for durations carried in configuration
payloads, such as the timeouts accepted by the blocking primitives.
*/
package types
