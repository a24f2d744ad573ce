package ocrspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const DefaultBaseURL = "https://api.ocr.space"

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// ParseImage uploads a local image file and returns the parsed text of the
// first result. Engine 2 handles the dense number grids on rate sheets
// better than the default.
func (c *Client) ParseImage(ctx context.Context, imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to buffer image: %w", err)
	}
	if err := c.writeOptions(writer); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	return c.post(ctx, &buf, writer.FormDataContentType())
}

// ParseImageURL asks OCR.space to fetch the image itself.
func (c *Client) ParseImageURL(ctx context.Context, imageURL string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("url", imageURL); err != nil {
		return "", err
	}
	if err := c.writeOptions(writer); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	return c.post(ctx, &buf, writer.FormDataContentType())
}

func (c *Client) writeOptions(writer *multipart.Writer) error {
	fields := map[string]string{
		"language":          "eng",
		"isOverlayRequired": "false",
		"OCREngine":         "2",
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, body io.Reader, contentType string) (string, error) {
	url := fmt.Sprintf("%s/parse/image", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("apikey", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ocr api returned status %d: %s", resp.StatusCode, string(raw))
	}

	var result parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode ocr response: %w", err)
	}

	if result.IsErroredOnProcessing {
		return "", fmt.Errorf("ocr processing failed: %v", result.ErrorMessage)
	}
	if len(result.ParsedResults) == 0 {
		return "", fmt.Errorf("ocr returned no parsed results")
	}

	return result.ParsedResults[0].ParsedText, nil
}
