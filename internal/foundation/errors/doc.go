// Package errors provides the classified error primitives used across blogbuilder.
//
// Every fatal condition in a build (missing configuration, missing template,
// malformed post) is reported as a ClassifiedError so the CLI can pick an exit
// code and print the offending file.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, not_found, validation, render, ...)
//   - ErrorSeverity: Impact level (fatal, error)
//   - ClassifiedError: Structured error with category, severity, cause, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing messages
//
// Example usage:
//
//	err := errors.ValidationError(cause, "invalid post").
//		WithContext("file", path).
//		Build()
package errors
