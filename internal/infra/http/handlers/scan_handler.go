package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/loanpulse/internal/infra/http/middleware"
	"github.com/xavierca1/loanpulse/internal/infra/integration/ocrspace"
	"github.com/xavierca1/loanpulse/internal/infra/queue"
)

const maxUploadBytes = 10 << 20 // 10 MB

// OCRService is the synchronous slice of the OCR client used by the test
// endpoint; real scans go through the queue.
type OCRService interface {
	ParseImage(ctx context.Context, imagePath string) (string, error)
}

// ScanHandler accepts rate-sheet uploads and turns them into queued scan
// jobs. The upload is parked on disk so the worker can stream it to the OCR
// API later.
type ScanHandler struct {
	Producer  queue.ScanProducerInterface
	OCR       OCRService
	UploadDir string
}

func NewScanHandler(producer queue.ScanProducerInterface, ocr OCRService, uploadDir string) *ScanHandler {
	return &ScanHandler{
		Producer:  producer,
		OCR:       ocr,
		UploadDir: uploadDir,
	}
}

type scanAcceptedResponse struct {
	Status string `json:"status"`
	LeadID string `json:"lead_id"`
}

func (h *ScanHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	leadID := r.FormValue("lead_id")
	if leadID == "" {
		writeError(w, http.StatusBadRequest, "lead_id is required")
		return
	}

	payload := queue.ScanPayload{
		LeadID:        leadID,
		LeadName:      r.FormValue("lead_name"),
		OfficerEmail:  r.FormValue("officer_email"),
		ImageURL:      r.FormValue("image_url"),
		RateSheetDate: r.FormValue("rate_sheet_date"),
	}
	if payload.RateSheetDate == "" {
		payload.RateSheetDate = time.Now().Format("2006-01-02")
	}

	if payload.ImageURL == "" {
		path, err := h.saveUpload(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		payload.ImagePath = path
	}

	if err := h.Producer.PublishScan(r.Context(), payload); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to enqueue scan")
		return
	}

	middleware.RecordScanJobPublished()
	writeJSON(w, http.StatusAccepted, scanAcceptedResponse{Status: "queued", LeadID: leadID})
}

// HandleTestOCR runs the OCR synchronously and returns what came back.
// Handy with curl when a sheet refuses to parse; ?parsed=true applies the
// row heuristic too.
func (h *ScanHandler) HandleTestOCR(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	path, err := h.saveUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer os.Remove(path)

	text, err := h.OCR.ParseImage(r.Context(), path)
	if err != nil {
		middleware.RecordIntegrationError("ocrspace")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if r.URL.Query().Get("parsed") == "true" {
		writeJSON(w, http.StatusOK, ocrspace.ExtractRatePoints(text))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"parsed_text": text})
}

func (h *ScanHandler) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("image file is required")
	}
	defer file.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload dir")
	}

	path := filepath.Join(h.UploadDir, uuid.New().String()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to store upload")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to store upload")
	}
	return path, nil
}
