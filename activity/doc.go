// Package activity provides ActivitySink implementations for the audit records
// emitted after user mutations. LogSink forwards sanitized records to a logger
// and MemorySink retains them for inspection.
package activity
