package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	docx "github.com/lukasjarosch/go-docx"
)

var wordTag = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Word fills word-processing templates. go-docx merges fragmented runs
// before matching, so a placeholder fractured across formatting boundaries
// still resolves.
type Word struct{}

func (Word) Render(template []byte, placeholders map[string]string) (out []byte, err error) {
	// go-docx panics on delimiter sequences it cannot pair; a broken
	// template must come back as a RenderError, not kill the request.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &RenderError{Err: fmt.Errorf("merge engine panic: %v", r)}
		}
	}()

	// go-docx's delimiters are fixed single braces and its parser rejects
	// doubled ones, so the {{key}} syntax is rewritten to {key} inside the
	// archive before the engine sees it.
	normalized, tags, err := normalizeTemplate(template)
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("open document: %w", err)}
	}

	doc, err := docx.OpenBytes(normalized)
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("open document: %w", err)}
	}

	pm := make(docx.PlaceholderMap, len(placeholders))
	for key, value := range placeholders {
		pm[key] = value
	}
	// ReplaceAll fails on tags it has no value for; tags the template
	// references beyond the placeholder set resolve to blank output instead.
	for tag := range tags {
		if _, ok := pm[tag]; !ok {
			pm[tag] = ""
		}
	}

	if err := doc.ReplaceAll(pm); err != nil {
		return nil, &RenderError{Err: fmt.Errorf("replace placeholders: %w", err)}
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, &RenderError{Err: fmt.Errorf("write document: %w", err)}
	}

	return buf.Bytes(), nil
}

// normalizeTemplate rewrites {{ and }} to single braces in the document
// parts of the archive and collects the tag names those parts reference.
func normalizeTemplate(template []byte) ([]byte, map[string]struct{}, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, nil, err
	}

	tags := map[string]struct{}{}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, err
		}

		if isDocumentPart(f.Name) {
			data = bytes.ReplaceAll(data, []byte("{{"), []byte("{"))
			data = bytes.ReplaceAll(data, []byte("}}"), []byte("}"))

			for _, m := range wordTag.FindAllSubmatch(data, -1) {
				tags[string(m[1])] = struct{}{}
			}
		}

		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, nil, err
	}

	return buf.Bytes(), tags, nil
}

func isDocumentPart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	return (strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")) &&
		strings.HasSuffix(name, ".xml")
}
