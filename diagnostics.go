package linkage

import "fmt"

// Severity of a diagnostic finding.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Diagnostic is one recoverable finding raised while applying or reading a
// joint: a severity, a human-readable message and the offending field.
// Errors here do not short-circuit the operation; later stages still run.
type Diagnostic struct {
	Severity Severity
	Field    string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Field == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Field, d.Message)
}

// Diagnostics accumulates findings across a single apply or read call.
type Diagnostics []Diagnostic

func (d *Diagnostics) warnf(field, format string, args ...any) {
	*d = append(*d, Diagnostic{Severity: SeverityWarning, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (d *Diagnostics) errorf(field, format string, args ...any) {
	*d = append(*d, Diagnostic{Severity: SeverityError, Field: field, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any finding has error severity.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Filter returns the findings of the given severity.
func (d Diagnostics) Filter(severity Severity) Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Severity == severity {
			out = append(out, diag)
		}
	}
	return out
}
