// Package transform implements the text transforms and the registry dispatching a
// command.TransformRequest to them.
//
// Every transform rejects blank input with ErrEmptyInput. Case mapping uses the full
// Unicode case tables, so a single character may map to several ("ß" upper-cases to "SS").
package transform
