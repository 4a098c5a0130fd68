package storage

// MIME types this backend knows how to fill in. Anything else uploaded as a
// template is stored but refused at generation time.
const (
	MimeWord  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeZip   = "application/zip"
)

const TemplateTypeReport = "REPORT"

type Template struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TemplateType string `json:"template_type"`
	MimeType     string `json:"mime_type"`
	Content      []byte `json:"-"`
	IsActive     bool   `json:"is_active"`
	IsDefault    bool   `json:"is_default"`
	UserID       int64  `json:"user_id"`
}
