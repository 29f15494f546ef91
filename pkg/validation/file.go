package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"crm-dashboard/config"
	"crm-dashboard/internal/dto"
	apperrors "crm-dashboard/pkg/errors"
)

// ValidateFile проверяет размер и MIME-тип файла.
// contextName - ключ из config.UploadContexts.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) (string, error) {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return "", fmt.Errorf("unknown upload context '%s'", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return "", apperrors.NewInvalidInputError("file size (%.2f MB) exceeds the %d MB limit", float64(fileHeader.Size)/1024/1024, rules.MaxSizeMB)
		}
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", apperrors.NewInvalidInputError("unable to read file")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", apperrors.NewInvalidInputError("unable to process file")
	}

	mimeType := http.DetectContentType(buffer[:n])
	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return "", apperrors.NewInvalidInputError("unsupported file type: %s", mimeType)
	}
	return mimeType, nil
}

// ReadUpload валидирует и читает файл целиком для пересылки дальше.
func ReadUpload(fileHeader *multipart.FileHeader, contextName string) (*dto.PhotoUpload, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewInvalidInputError("unable to open uploaded file")
	}
	defer src.Close()

	mimeType, err := ValidateFile(fileHeader, src, contextName)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("unable to read uploaded file")
	}
	return &dto.PhotoUpload{FileName: fileHeader.Filename, ContentType: mimeType, Data: data}, nil
}
