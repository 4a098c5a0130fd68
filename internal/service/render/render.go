package render

import (
	"craneworks/internal/storage"
)

// Renderer fills a template's placeholders and returns the finished document.
// The two OOXML engines sit behind this interface so services and tests can
// swap them for fakes without real template fixtures.
type Renderer interface {
	Render(template []byte, placeholders map[string]string) ([]byte, error)
}

// RenderError wraps any failure of the underlying merge engine, typically a
// template whose internal structure does not match its MIME type.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "template render failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ForMimeType picks the engine and file extension for a template MIME type.
func ForMimeType(mimeType string) (Renderer, string, bool) {
	switch mimeType {
	case storage.MimeWord:
		return Word{}, ".docx", true
	case storage.MimeExcel:
		return Excel{}, ".xlsx", true
	}
	return nil, "", false
}
