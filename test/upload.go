package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// LoadTestFile loads a file from the testdata directory of the package
// under test as a multipart upload.
//
// File contents are returned as a buffer and a map for the HTTP request headers
func LoadTestFile(t *testing.T, name string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	defer file.Close()

	return Upload(t, name, file)
}

// Upload creates a multipart body with the content in the "file" field.
func Upload(t *testing.T, name string, content io.Reader) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	if _, err := io.Copy(w, content); err != nil {
		assert.FailNow(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
