// Package processor runs transform sessions.
//
// A session is a two stage pipeline. The input stage reads lines, parses them into
// command.TransformRequest values and enqueues them on an unbounded channel. The process stage
// dequeues each request, applies its transform and prints the result. Parse and transform
// failures are reported on the error sink and never end the session: only "quit" or the end of
// the input stops the input stage, and the process stage stops once the channel is closed and
// drained.
package processor
