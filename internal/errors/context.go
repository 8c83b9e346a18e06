// Package errors provides contextual errors and the non-fatal warning model
// used by the rendering pipeline. Styling failures are never fatal: they are
// built as ContextualErrors, logged, and downgraded to Warnings.
package errors

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/pirrtools/richframe/internal/logging"
)

// ErrorType categorizes errors by the pipeline stage that produced them
type ErrorType string

const (
	ErrorTypeStyleSource   ErrorType = "style-source"
	ErrorTypeGradient      ErrorType = "gradient"
	ErrorTypeFormat        ErrorType = "format"
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeRender        ErrorType = "render"
)

// ErrorSeverity indicates the impact level of an error
type ErrorSeverity string

const (
	SeverityLow      ErrorSeverity = "low"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityHigh     ErrorSeverity = "high"
	SeverityCritical ErrorSeverity = "critical"
)

// ContextualError provides enhanced error information with diagnostic context
type ContextualError struct {
	Type        ErrorType              `json:"type"`
	Severity    ErrorSeverity          `json:"severity"`
	Message     string                 `json:"message"`
	Component   string                 `json:"component"`
	Operation   string                 `json:"operation,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
	StackTrace  []string               `json:"stackTrace,omitempty"`
	Cause       error                  `json:"-"`
	Recoverable bool                   `json:"recoverable"`
}

// Error implements the error interface
func (e *ContextualError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Component, e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Component, e.Type, e.Message)
}

// Unwrap provides access to the underlying error
func (e *ContextualError) Unwrap() error {
	return e.Cause
}

// IsRecoverable indicates if rendering can continue past the error
func (e *ContextualError) IsRecoverable() bool {
	return e.Recoverable
}

// ErrorBuilder provides a fluent interface for creating contextual errors
type ErrorBuilder struct {
	err          *ContextualError
	logger       *logging.Logger
	captureStack bool
}

// NewErrorBuilder creates a new error builder with default settings
func NewErrorBuilder(errorType ErrorType, component string) *ErrorBuilder {
	return &ErrorBuilder{
		err: &ContextualError{
			Type:        errorType,
			Severity:    SeverityMedium,
			Component:   component,
			Context:     make(map[string]interface{}),
			Timestamp:   time.Now(),
			Recoverable: true,
		},
		logger:       logging.GetGlobalLogger().WithComponent(component),
		captureStack: false,
	}
}

// WithSeverity sets the error severity level
func (eb *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	eb.err.Severity = severity
	return eb
}

// WithMessage sets the technical error message
func (eb *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	eb.err.Message = message
	return eb
}

// WithOperation sets the operation that failed
func (eb *ErrorBuilder) WithOperation(operation string) *ErrorBuilder {
	eb.err.Operation = operation
	return eb
}

// WithCause sets the underlying error that caused this error
func (eb *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	eb.err.Cause = cause
	return eb
}

// WithContext adds contextual information to the error
func (eb *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	eb.err.Context[key] = value
	return eb
}

// WithRecoverable sets whether the error is recoverable
func (eb *ErrorBuilder) WithRecoverable(recoverable bool) *ErrorBuilder {
	eb.err.Recoverable = recoverable
	return eb
}

// WithStackTrace enables stack trace capture
func (eb *ErrorBuilder) WithStackTrace() *ErrorBuilder {
	eb.captureStack = true
	return eb
}

// Build creates the contextual error and logs it according to its severity
func (eb *ErrorBuilder) Build() *ContextualError {
	if eb.captureStack {
		eb.err.StackTrace = captureStackTrace(3)
	}

	logFields := map[string]interface{}{
		"error_type":  eb.err.Type,
		"severity":    eb.err.Severity,
		"operation":   eb.err.Operation,
		"recoverable": eb.err.Recoverable,
	}
	for k, v := range eb.err.Context {
		logFields["ctx_"+k] = v
	}

	logMessage := eb.err.Message
	if eb.err.Cause != nil {
		logMessage = fmt.Sprintf("%s: %v", eb.err.Message, eb.err.Cause)
	}

	loggerWithFields := eb.logger.WithFields(logFields)

	switch eb.err.Severity {
	case SeverityCritical, SeverityHigh:
		loggerWithFields.Error(logMessage)
	case SeverityMedium:
		loggerWithFields.Warn(logMessage)
	case SeverityLow:
		loggerWithFields.Debug(logMessage)
	}

	return eb.err
}

// captureStackTrace captures the current stack trace
func captureStackTrace(skip int) []string {
	var traces []string
	for i := skip; i < skip+10; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		funcName := "unknown"
		if fn != nil {
			funcName = fn.Name()
		}

		if idx := strings.LastIndex(file, "/"); idx >= 0 {
			file = file[idx+1:]
		}

		traces = append(traces, fmt.Sprintf("%s:%d %s", file, line, funcName))
	}
	return traces
}

// Stage-specific error builders
func NewStyleSourceError(component string) *ErrorBuilder {
	return NewErrorBuilder(ErrorTypeStyleSource, component)
}

func NewGradientError(component string) *ErrorBuilder {
	return NewErrorBuilder(ErrorTypeGradient, component)
}

func NewFormatError(component string) *ErrorBuilder {
	return NewErrorBuilder(ErrorTypeFormat, component).WithSeverity(SeverityLow)
}

func NewConfigurationError(component string) *ErrorBuilder {
	return NewErrorBuilder(ErrorTypeConfiguration, component)
}

func NewRenderError(component string) *ErrorBuilder {
	return NewErrorBuilder(ErrorTypeRender, component).WithSeverity(SeverityHigh)
}

// WarningChain collects the warnings raised during a single render call
type WarningChain struct {
	warnings []Warning
	logger   *logging.Logger
}

// NewWarningChain creates an empty chain
func NewWarningChain(logger *logging.Logger) *WarningChain {
	return &WarningChain{logger: logger}
}

// Add appends a warning to the chain; nil is ignored
func (wc *WarningChain) Add(w *Warning) *WarningChain {
	if w == nil {
		return wc
	}
	wc.warnings = append(wc.warnings, *w)
	if wc.logger != nil {
		wc.logger.Debug("Warning added to chain", "warning", w.String(), "chain_length", len(wc.warnings))
	}
	return wc
}

// HasWarnings returns true if the chain contains any warnings
func (wc *WarningChain) HasWarnings() bool {
	return len(wc.warnings) > 0
}

// Warnings returns a copy of the collected warnings
func (wc *WarningChain) Warnings() []Warning {
	out := make([]Warning, len(wc.warnings))
	copy(out, wc.warnings)
	return out
}
