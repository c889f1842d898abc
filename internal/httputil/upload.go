package httputil

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the room left for the multipart boundaries and part
// headers on top of the file size limit.
const multipartOverhead = 4 << 10

// UploadedFile opens the file sent in the "file" form field.
//
// The file name must end in one of the suffixes. Files larger than
// maxBytes are rejected if maxBytes is positive. The request body is
// limited before it is parsed, so oversized uploads are never read
// completely.
func UploadedFile(c *gin.Context, maxBytes int64, suffixes ...string) (multipart.File, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
	}

	formFile, err := c.FormFile("file")

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return nil, fmt.Errorf("%w, the limit is %d bytes", ErrFileTooLarge, maxBytes)
	}

	if formFile == nil {
		return nil, ErrNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if len(suffixes) > 0 && !hasSuffix(strings.ToLower(formFile.Filename), suffixes) {
		return nil, fmt.Errorf("%w: %s", ErrWrongFileSuffix, strings.Join(suffixes, ", "))
	}

	if maxBytes > 0 && formFile.Size > maxBytes {
		return nil, fmt.Errorf("%w, the limit is %d bytes", ErrFileTooLarge, maxBytes)
	}

	return formFile.Open()
}

func hasSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
