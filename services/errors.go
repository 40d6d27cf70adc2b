package services

// FieldError is a validation failure tied to a single input field.
// Controllers render it as a {"field": "message"} body.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
