package dto

import "time"

type UploadURLRequestDTO struct {
	Path        string `json:"path" binding:"required,max=1024"`
	ContentType string `json:"content_type"`
}

type UploadURLResponseDTO struct {
	Method    string            `json:"method"`
	URL       string            `json:"url"`
	Headers   map[string]string `json:"headers,omitempty"`
	Path      string            `json:"path"`
	PublicURL string            `json:"public_url,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}
