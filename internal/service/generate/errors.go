package generate

// ValidationError: required identifiers missing, nothing was fetched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError: record(s) or template not resolvable or not accessible.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// UnsupportedFormatError: the template's MIME type matches neither OOXML kind.
type UnsupportedFormatError struct {
	MimeType string
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported template format: " + e.MimeType
}
