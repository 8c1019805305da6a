package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/media"
)

// Upload limits, enforced before anything is sent to object storage.
const (
	maxUploadFiles    = 10
	maxUploadFileSize = 10 << 20 // 10 MiB per file
)

// UploadsHandler streams multipart image uploads to object storage.
type UploadsHandler struct {
	uploader *media.Uploader
	logger   *slog.Logger
}

// NewUploadsHandler constructs the handler. uploader may be nil when object
// storage is not configured; uploads then return 503.
func NewUploadsHandler(uploader *media.Uploader, logger *slog.Logger) *UploadsHandler {
	return &UploadsHandler{uploader: uploader, logger: logger}
}

type uploadedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// Upload accepts multipart form field "files" (up to maxUploadFiles, each at
// most maxUploadFileSize) and returns the public URL of each stored object.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		respond.Error(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	if err := r.ParseMultipartForm(maxUploadFileSize); err != nil {
		respond.Error(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	defer func() {
		// Removes the temporary files the multipart reader spilled to disk.
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("upload: temp file cleanup failed", "error", err)
		}
	}()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		respond.Error(w, http.StatusBadRequest, "no files uploaded (field 'files' missing or empty)")
		return
	}
	if len(files) > maxUploadFiles {
		respond.Error(w, http.StatusBadRequest, "too many files: at most 10 per request")
		return
	}
	for _, header := range files {
		if header.Size > maxUploadFileSize {
			respond.Error(w, http.StatusBadRequest, "file too large: "+header.Filename+" exceeds the 10 MB limit")
			return
		}
		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			respond.Error(w, http.StatusBadRequest, "unsupported file type: "+header.Filename+" is not an image")
			return
		}
	}

	var uploaded []uploadedFile
	for _, header := range files {
		src, err := header.Open()
		if err != nil {
			h.logger.Error("upload: open part failed", "filename", header.Filename, "error", err)
			respond.Error(w, http.StatusInternalServerError, "failed to read uploaded file")
			return
		}
		url, err := h.uploader.Upload(r.Context(), header.Filename, src, header.Size, header.Header.Get("Content-Type"))
		src.Close()
		if err != nil {
			h.logger.Error("upload: object storage put failed", "filename", header.Filename, "error", err)
			respond.Error(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		uploaded = append(uploaded, uploadedFile{
			Filename: header.Filename,
			URL:      url,
			Size:     header.Size,
		})
	}

	respond.JSON(w, http.StatusCreated, "files uploaded", uploaded)
}
