package rest

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// File is one file part of a multipart body.
type File struct {
	Field   string
	Name    string
	Content io.Reader
}

// Multipart is a form body. PayloadJSON, when set, is encoded into the
// "payload_json" field.
type Multipart struct {
	Files       []File
	PayloadJSON any
}

// Encode renders the form and returns it with its content type, ready to
// be passed as RESTOptions.ContentType.
func (m Multipart) Encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range m.Files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("rest: multipart file %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("rest: multipart file %s: %w", f.Field, err)
		}
	}
	if m.PayloadJSON != nil {
		b, err := json.Marshal(m.PayloadJSON)
		if err != nil {
			return nil, "", fmt.Errorf("rest: multipart payload: %w", err)
		}
		if err := w.WriteField("payload_json", string(b)); err != nil {
			return nil, "", fmt.Errorf("rest: multipart payload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("rest: multipart close: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
