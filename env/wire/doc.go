// Package wire implements the line-oriented stdio protocol the contest
// judge speaks: a query line of four whitespace-separated integers, a
// path line of {U,D,L,R} characters flushed immediately after each
// answer, and a response line of a single unsigned integer. Any parse or
// I/O error is fatal — RemoteEnvironment never retries.
package wire
