package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Uploader posts an image and returns its permanent hosted URL.
// Abstracted so services can be tested without touching the network.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// CloudinaryClient uploads images via Cloudinary's unsigned upload endpoint:
// a multipart POST carrying the file and the upload preset. Only secure_url
// is retained from the response; everything else is discarded.
type CloudinaryClient struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
}

// NewCloudinaryClient builds a client for the per-account upload URL.
// An empty cloudName produces a malformed URL, so every upload fails and the
// failure surfaces to the operator — misconfiguration fails closed.
func NewCloudinaryClient(cloudName, uploadPreset string) *CloudinaryClient {
	return &CloudinaryClient{
		uploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		uploadPreset: uploadPreset,
		// No timeout: a stalled upload stalls the save, matching the
		// blocking "Guardando..." behavior of the panel.
		httpClient: &http.Client{},
	}
}

// NewUploadClient is like NewCloudinaryClient but against an arbitrary
// endpoint; used by tests and by self-hosted upload services that speak the
// same multipart contract.
func NewUploadClient(uploadURL, uploadPreset string) *CloudinaryClient {
	return &CloudinaryClient{
		uploadURL:    uploadURL,
		uploadPreset: uploadPreset,
		httpClient:   &http.Client{},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload posts one file and returns its secure URL.
func (c *CloudinaryClient) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, pr)
	if err != nil {
		return "", fmt.Errorf("cloudinary: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary: upload returned %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("cloudinary: decode response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary: response missing secure_url")
	}
	return result.SecureURL, nil
}
