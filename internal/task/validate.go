package task

import "regexp"

// Validation messages.
const (
	MsgTitleRequired       = "title is required"
	MsgDescriptionRequired = "description is required"
	MsgAlphanumeric        = "only alphanumeric characters and spaces are allowed"
)

// alphanumeric matches letters, digits and whitespace. Whitespace-only input
// matches.
var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

// Validate checks a draft and returns every violated field, in field order.
// A nil result means the draft is valid. Strings are checked raw, without
// trimming. Each field reports at most one error: an empty field only
// reports that it is required.
func Validate(d Draft) []FieldError {
	var errs []FieldError
	if err, ok := checkField(FieldTitle, d.Title, MsgTitleRequired); !ok {
		errs = append(errs, err)
	}
	if err, ok := checkField(FieldDescription, d.Description, MsgDescriptionRequired); !ok {
		errs = append(errs, err)
	}
	return errs
}

func checkField(field, value, requiredMsg string) (FieldError, bool) {
	if value == "" {
		return FieldError{Field: field, Message: requiredMsg}, false
	}
	if !alphanumeric.MatchString(value) {
		return FieldError{Field: field, Message: MsgAlphanumeric}, false
	}
	return FieldError{}, true
}

// ErrorFor returns the first message reported for field, or "".
func ErrorFor(errs []FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Without returns errs minus every error reported for field.
func Without(errs []FieldError, field string) []FieldError {
	var out []FieldError
	for _, e := range errs {
		if e.Field != field {
			out = append(out, e)
		}
	}
	return out
}
