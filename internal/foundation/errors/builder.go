package errors

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		message:  message,
		cause:    err,
		context:  make(ErrorContext),
	}
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// Fatal sets the severity to fatal.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	b.severity = SeverityFatal
	return b
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// Constructors for the conditions a build reports. All but RuntimeError are
// fatal. cause may be nil.

// ConfigError reports an unusable site configuration.
func ConfigError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategoryConfig, message).Fatal()
}

// NotFoundError reports a required input that does not exist.
func NotFoundError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategoryNotFound, message).Fatal()
}

// ValidationError reports an input document that cannot be accepted.
func ValidationError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategoryValidation, message).Fatal()
}

// RenderError reports a failure to produce an artifact from valid input.
func RenderError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategoryRender, message).Fatal()
}

// FileSystemError reports a failed read, write or removal.
func FileSystemError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategoryFileSystem, message).Fatal()
}

// InternalError reports a condition that valid input can never trigger.
func InternalError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategoryInternal, message).Fatal()
}

// RuntimeError reports an interrupted run, e.g. a canceled context.
func RuntimeError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategoryRuntime, message)
}
