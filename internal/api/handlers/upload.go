package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/services"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// formImage stores the multipart "image" field, if any, and returns its public
// URL. Returns ("", nil) when the form carries no file.
func formImage(c *gin.Context, uploads services.UploadService) (string, error) {
	const op = "Handler.Upload"

	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", utils.E(utils.CodeInvalidArgument, op, "invalid multipart field 'image'", err)
	}

	if fh.Size <= 0 || fh.Size > maxImageSize {
		return "", utils.E(utils.CodeInvalidArgument, op, "image exceeds the 5MB limit", nil)
	}

	file, err := fh.Open()
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer file.Close()

	// sniff content type from the first 512 bytes; the client-sent header is
	// not trusted
	head := make([]byte, 512)
	n, _ := file.Read(head)
	head = head[:n]
	ct := http.DetectContentType(head)
	ct = strings.TrimSpace(strings.Split(ct, ";")[0])
	if _, ok := allowedImageTypes[ct]; !ok {
		return "", utils.E(utils.CodeInvalidArgument, op, "image must be JPEG, PNG, GIF or WebP", nil)
	}

	// re-compose stream: head + remaining file
	r := &readJoin{a: bytes.NewReader(head), b: file}

	return uploads.StoreImage(c.Request.Context(), fh.Filename, ct, r)
}

type readJoin struct {
	a *bytes.Reader
	b io.Reader
}

func (r *readJoin) Read(p []byte) (int, error) {
	if r.a != nil && r.a.Len() > 0 {
		return r.a.Read(p)
	}
	return r.b.Read(p)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
