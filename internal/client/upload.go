package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/onebluedot/site/internal/api/types"
)

// UploadImage posts the image as multipart field "file" and returns its URL.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if ct == "" {
		ct = "application/octet-stream"
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	hdr.Set("Content-Type", ct)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var body types.UploadResponse
	if err := do(c.http.POST("/upload-image").
		Context().Set(ctx).
		Header().Add("Authorization", c.userAuth()).
		Header().Add("Content-Type", mw.FormDataContentType()).
		Body().AsReader(buf), &body); err != nil {
		return "", err
	}
	if !body.Success || body.URL == "" {
		return "", errors.New("upload answered without a url")
	}
	return body.URL, nil
}
