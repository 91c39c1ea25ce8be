package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// Body is a request payload.
type Body interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	v interface{}
}

// JSON returns a Body that encodes v as application/json.
func JSON(v interface{}) Body {
	return jsonBody{v: v}
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("marshal json body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// Form is a multipart/form-data payload. Fields keep insertion order and a
// key may repeat, which is how list fields are sent.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	key      string
	path     string
	filename string
	reader   io.Reader
}

// NewForm returns an empty Form.
func NewForm() *Form {
	return &Form{}
}

// Set appends a scalar field.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// SetIfNotEmpty appends key only when value is non-empty.
func (f *Form) SetIfNotEmpty(key, value string) *Form {
	if value != "" {
		f.Set(key, value)
	}
	return f
}

// Add appends one field per value, all under key.
func (f *Form) Add(key string, values ...string) *Form {
	for _, v := range values {
		f.Set(key, v)
	}
	return f
}

// File attaches the file at path under key. The file is opened when the
// request is encoded.
func (f *Form) File(key, path string) *Form {
	f.files = append(f.files, formFile{key: key, path: path, filename: filepath.Base(path)})
	return f
}

// Reader attaches r under key with the given filename.
func (f *Form) Reader(key, filename string, r io.Reader) *Form {
	f.files = append(f.files, formFile{key: key, filename: filename, reader: r})
	return f
}

// Values returns every value recorded for key, in order.
func (f *Form) Values(key string) []string {
	var out []string
	for _, fld := range f.fields {
		if fld.key == key {
			out = append(out, fld.value)
		}
	}
	return out
}

// Files returns the file names attached under key.
func (f *Form) Files(key string) []string {
	var out []string
	for _, ff := range f.files {
		if ff.key == key {
			out = append(out, ff.filename)
		}
	}
	return out
}

// HasFiles reports whether any file part is attached.
func (f *Form) HasFiles() bool {
	return len(f.files) > 0
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := writer.WriteField(fld.key, fld.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", fld.key, err)
		}
	}

	for _, ff := range f.files {
		if err := writeFile(writer, ff); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func writeFile(writer *multipart.Writer, ff formFile) error {
	src := ff.reader
	if src == nil {
		file, err := os.Open(ff.path)
		if err != nil {
			return fmt.Errorf("open %s: %w", ff.key, err)
		}
		defer file.Close()
		src = file
	}

	part, err := writer.CreateFormFile(ff.key, ff.filename)
	if err != nil {
		return fmt.Errorf("create %s part: %w", ff.key, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("write %s part: %w", ff.key, err)
	}
	return nil
}
