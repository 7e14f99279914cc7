package restclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// MultipartForm is a request body encoded as multipart/form-data, used for
// menu item uploads that carry an image alongside plain fields. When the
// body is a MultipartForm the client leaves the JSON content type unset so
// the encoder's boundary header is used instead.
type MultipartForm struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	field, filename string
	reader          io.Reader
}

func NewMultipartForm() *MultipartForm {
	return &MultipartForm{}
}

// AddField appends a plain text field. Fields are written in insertion
// order.
func (f *MultipartForm) AddField(name, value string) *MultipartForm {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddFile appends a file part read from r.
func (f *MultipartForm) AddFile(field, filename string, r io.Reader) *MultipartForm {
	f.files = append(f.files, formFile{field: field, filename: filename, reader: r})
	return f
}

// encode renders the form and returns the body with its content type,
// boundary included.
func (f *MultipartForm) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.reader); err != nil {
			return nil, "", fmt.Errorf("copy file part %s: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}
