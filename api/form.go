package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// multipartForm collects fields and files for a multipart upload. Errors
// from writing are kept and reported once on close.
type multipartForm struct {
	buf    *bytes.Buffer
	writer *multipart.Writer
	err    error
}

func newMultipartForm() *multipartForm {
	buf := &bytes.Buffer{}
	return &multipartForm{buf: buf, writer: multipart.NewWriter(buf)}
}

func (f *multipartForm) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.writer.WriteField(name, value)
}

// file adds a file part whose Content-Type is sniffed from its contents;
// the server rejects image uploads sent as application/octet-stream.
func (f *multipartForm) file(name, path string) error {
	if f.err != nil {
		return f.err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %v", path, err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(name), escapeQuotes(filepath.Base(path))))
	header.Set("Content-Type", http.DetectContentType(data))

	part, err := f.writer.CreatePart(header)
	if err != nil {
		f.err = err
		return err
	}

	_, f.err = part.Write(data)
	return f.err
}

func (f *multipartForm) close() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if err := f.writer.Close(); err != nil {
		return "", nil, err
	}
	return f.writer.FormDataContentType(), f.buf, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
