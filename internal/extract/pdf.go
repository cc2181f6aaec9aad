// Package extract is the reference implementation of the PDF-to-text
// collaborator consumed by the CLI. The analysis engine itself never reads
// PDF bytes; it only ever sees the plain text produced here.
package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// Error represents a failed text extraction.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf extraction error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Text extracts the plain text of a PDF from an in-memory byte slice.
func Text(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Message: "failed to parse PDF", Cause: err}
	}
	return plainText(reader)
}

// File extracts the plain text of a PDF on disk.
func File(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to open PDF %s", path), Cause: err}
	}
	defer func() { _ = f.Close() }()

	return plainText(reader)
}

func plainText(reader *pdf.Reader) (string, error) {
	r, err := reader.GetPlainText()
	if err != nil {
		return "", &Error{Message: "failed to extract text", Cause: err}
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", &Error{Message: "failed to read extracted text", Cause: err}
	}
	return string(text), nil
}
