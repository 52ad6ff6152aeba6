// Package logger implements the asynchronous multi-sink logging pipeline.
//
// Producers hand free-form text entries to a Logger from any goroutine;
// a single consumer goroutine drains them in arrival order and routes each
// entry to an interactive console sink and dated append-only log files,
// applying per-sink level thresholds, duplicate suppression, and multi-line
// prefix formatting along the way. Enqueue never blocks and never returns an
// error: logging is transparent to the code that calls it.
//
// Construct a Logger with New or NewFromConfig, then call Stop exactly once
// to drain and shut it down. WaitForEmptyQueue is a reusable barrier for
// callers that need quiet output before interactive prompts.
package logger
