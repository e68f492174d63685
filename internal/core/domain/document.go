package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

type Document struct {
	ID               string         `json:"id"`
	Filename         string         `json:"filename"`
	OriginalFilename string         `json:"original_filename"`
	FileType         string         `json:"file_type"`
	FileSize         int64          `json:"file_size"`
	StoragePath      string         `json:"storage_path"`
	ExtractedText    string         `json:"-"`
	Category         Category       `json:"category"`
	Status           DocumentStatus `json:"status"`
	Error            string         `json:"error,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// HasText reports whether text extraction produced anything usable.
func (d *Document) HasText() bool {
	return d.ExtractedText != ""
}
