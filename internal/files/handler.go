package files

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/imagebed/service/internal/response"
	"github.com/imagebed/service/internal/storage"
)

// Handler holds HTTP handlers for file endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new files Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadResponse struct {
	Success     bool   `json:"success"`
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
	UploadTime  string `json:"uploadTime"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type listEntry struct {
	Key      string `json:"key"`
	FileID   string `json:"fileId"`
	Size     int64  `json:"size"`
	Uploaded string `json:"uploaded"`
	ETag     string `json:"etag"`
	URL      string `json:"url"`
}

type listResponse struct {
	Files     []listEntry `json:"files"`
	Truncated bool        `json:"truncated"`
	Cursor    string      `json:"cursor,omitempty"`
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Accepts a multipart image file and returns its public URL.
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Upload-Token	header		string	true	"upload token"
//	@Param			file			formData	file	true	"image file"
//	@Success		200				{object}	uploadResponse
//	@Failure		400				{object}	response.ErrorBody
//	@Failure		401				{object}	response.ErrorBody
//	@Failure		500				{object}	response.ErrorBody
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, response.CodeInvalidFile, "please select a file to upload")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.svc.Upload(r.Context(), UploadInput{
		Reader:       file,
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		ClientIP:     clientIP(r),
		UserAgent:    r.UserAgent(),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			response.BadRequest(w, response.CodeUnsupportedType, "unsupported file type, please upload an image")
		case errors.Is(err, ErrTooLarge):
			limitMB := h.svc.MaxBytes() / (1024 * 1024)
			response.BadRequest(w, response.CodeTooLarge, fmt.Sprintf("file exceeds the %dMB size limit", limitMB))
		default:
			log.Printf("files: upload of %q failed: %v", header.Filename, err)
			response.InternalError(w, response.CodeStorageWriteFailed, "upload failed, please retry")
		}
		return
	}

	response.JSON(w, http.StatusOK, uploadResponse{
		Success:     true,
		FileID:      result.FileID,
		FileName:    result.FileName,
		FileSize:    result.FileSize,
		ContentType: result.ContentType,
		URL:         fileURL(r, result.FileID),
		UploadTime:  result.UploadTime.Format(time.RFC3339),
	})
}

// Get godoc
//
//	@Summary		Fetch an image
//	@Description	Streams the image content. Content is immutable, so responses carry a 1-year cache header.
//	@Tags			files
//	@Produce		octet-stream
//	@Param			fileID	path	string	true	"public file identifier"
//	@Success		200
//	@Failure		404	{object}	response.ErrorBody
//	@Router			/file/{fileID} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	rc, info, err := h.svc.Open(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "file not found")
			return
		}
		log.Printf("files: get %q failed: %v", fileID, err)
		response.InternalError(w, response.CodeInternalError, "failed to fetch file")
		return
	}
	defer func() { _ = rc.Close() }()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name := info.UserMetadata[storage.MetaOriginalName]
	if name == "" {
		name = info.Key
	}

	w.Header().Set("Content-Type", contentType)
	// A fileId's content never changes after upload, so clients may cache it
	// for as long as they like.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("files: streaming %q aborted: %v", info.Key, err)
	}
}

// Delete godoc
//
//	@Summary		Delete an image
//	@Tags			files
//	@Produce		json
//	@Param			X-Upload-Token	header		string	true	"upload token"
//	@Param			fileID			path		string	true	"public file identifier"
//	@Success		200				{object}	deleteResponse
//	@Failure		401				{object}	response.ErrorBody
//	@Failure		404				{object}	response.ErrorBody
//	@Router			/delete/{fileID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	if err := h.svc.Remove(r.Context(), fileID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "file not found")
			return
		}
		log.Printf("files: delete %q failed: %v", fileID, err)
		response.InternalError(w, response.CodeInternalError, "failed to delete file")
		return
	}

	response.JSON(w, http.StatusOK, deleteResponse{Success: true, Message: "file deleted"})
}

// List godoc
//
//	@Summary		List stored images
//	@Description	Returns one page of files in backend-native key order.
//	@Tags			files
//	@Produce		json
//	@Param			limit	query		int		false	"page size (max 1000, default 50)"
//	@Param			cursor	query		string	false	"resume after this key"
//	@Success		200		{object}	listResponse
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/list [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	cursor := r.URL.Query().Get("cursor")

	listing, err := h.svc.List(r.Context(), limit, cursor)
	if err != nil {
		log.Printf("files: list failed: %v", err)
		response.InternalError(w, response.CodeInternalError, "failed to list files")
		return
	}

	resp := listResponse{
		Files:     make([]listEntry, 0, len(listing.Files)),
		Truncated: listing.Truncated,
		Cursor:    listing.Cursor,
	}
	for _, f := range listing.Files {
		resp.Files = append(resp.Files, listEntry{
			Key:      f.Key,
			FileID:   f.FileID,
			Size:     f.Size,
			Uploaded: f.Uploaded.UTC().Format(time.RFC3339),
			ETag:     f.ETag,
			URL:      fileURL(r, f.FileID),
		})
	}
	response.JSON(w, http.StatusOK, resp)
}

// fileURL builds the public URL from the request's own origin, so the gateway
// works unchanged behind any public hostname or accelerated edge alias.
func fileURL(r *http.Request, fileID string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s/api/file/%s", scheme, r.Host, fileID)
}

// clientIP extracts the caller's address; the RealIP middleware has already
// resolved forwarding headers into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
