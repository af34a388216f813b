package booking

import (
	"sort"
	"strings"
)

// NonFieldErrors is the key for errors that implicate more than one field,
// such as the overlap rule. The name matches what the frontend already
// expects from the previous backend.
const NonFieldErrors = "non_field_errors"

// FieldErrors maps a field name to the validation messages for it.
// A nil or empty map means the candidate passed every check.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// HasErrors reports whether any check failed.
func (e FieldErrors) HasErrors() bool { return len(e) > 0 }

// Error flattens the map so FieldErrors can travel as an error value.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(strings.Join(e[f], ", "))
	}
	return b.String()
}
