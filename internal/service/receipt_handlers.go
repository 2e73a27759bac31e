package service

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxReceiptSize caps uploads at 10 MB.
const maxReceiptSize = 10 << 20

var allowedReceiptTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// handleUploadReceipt stores a receipt file in the receipts bucket and
// returns the storage path to attach to an expense.
func (s *DashboardService) handleUploadReceipt(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	if s.storageBucket == nil {
		writeError(w, http.StatusServiceUnavailable, "storage service is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptSize)
	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}
	file, header, err := r.FormFile("receipt")
	if err != nil {
		writeError(w, http.StatusBadRequest, "receipt file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedReceiptTypes[contentType]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported content type %q", contentType))
		return
	}

	objectPath := fmt.Sprintf("receipts/%s/%s%s", businessID, uuid.New().String(), ext)
	writer := s.storageBucket.Object(objectPath).NewWriter(r.Context())
	writer.ContentType = contentType

	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		log.Printf("[Receipts] upload failed for business %s: %v", businessID, err)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}
	if err := writer.Close(); err != nil {
		log.Printf("[Receipts] upload close failed for business %s: %v", businessID, err)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"receiptPath": objectPath,
		"contentType": contentType,
		"filename":    header.Filename,
	})
}

// handleDownloadReceipt streams a stored receipt back to the caller. The
// path must belong to the business in the URL.
func (s *DashboardService) handleDownloadReceipt(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	if s.storageBucket == nil {
		writeError(w, http.StatusServiceUnavailable, "storage service is not configured")
		return
	}

	objectPath := r.URL.Query().Get("path")
	if objectPath == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	cleaned := path.Clean(objectPath)
	if !strings.HasPrefix(cleaned, fmt.Sprintf("receipts/%s/", businessID)) {
		writeError(w, http.StatusForbidden, "path does not belong to this business")
		return
	}

	reader, err := s.storageBucket.Object(cleaned).NewReader(r.Context())
	if err != nil {
		writeError(w, http.StatusNotFound, "receipt not found")
		return
	}
	defer reader.Close()

	if ct := reader.Attrs.ContentType; ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(cleaned)))
	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("[Receipts] download failed for %s: %v", cleaned, err)
	}
}
