package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
}

const (
	UploadJobPhoto = "job_photo"
	UploadCV       = "cv"
)

var UploadContexts = map[string]UploadConfig{
	UploadJobPhoto: {
		AllowedMimeTypes: []string{"image/png", "image/jpeg", "image/webp"},
		MaxSizeMB:        5,
	},
	// docx определяется по сигнатуре как zip
	UploadCV: {
		AllowedMimeTypes: []string{"application/pdf", "application/msword", "application/zip", "application/octet-stream"},
		MaxSizeMB:        5,
	},
}
