package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"crm-dashboard/internal/dto"
)

const (
	multipartDataField  = "data"
	multipartPhotoField = "photo"
)

// buildMultipart собирает форму: часть data с JSON и необязательная часть photo.
func buildMultipart(data interface{}, photo *dto.PhotoUpload) (*bytes.Buffer, string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, "", fmt.Errorf("encode multipart data: %w", err)
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="blob"`, multipartDataField))
	header.Set("Content-Type", "application/json")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}

	if photo != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, multipartPhotoField, escapeQuotes(photo.FileName)))
		contentType := photo.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(photo.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' || r == '\r' || r == '\n' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func PostMultipart[T any](ctx context.Context, c *Client, path string, data interface{}, photo *dto.PhotoUpload) (T, error) {
	return sendMultipart[T](ctx, c, http.MethodPost, path, data, photo)
}

func PutMultipart[T any](ctx context.Context, c *Client, path string, data interface{}, photo *dto.PhotoUpload) (T, error) {
	return sendMultipart[T](ctx, c, http.MethodPut, path, data, photo)
}

func sendMultipart[T any](ctx context.Context, c *Client, method, path string, data interface{}, photo *dto.PhotoUpload) (T, error) {
	var zero T
	body, contentType, err := buildMultipart(data, photo)
	if err != nil {
		return zero, err
	}
	raw, err := c.do(ctx, method, path, nil, body, contentType)
	if err != nil {
		return zero, err
	}
	return decode[T](raw, method, path)
}
