// Package upload provides the authenticated image upload endpoint.
// Files are size- and type-checked before being pushed to the media
// store.
package upload

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"news-portal/internal/handler/http/authh"
	"news-portal/internal/handler/http/respond"
	"news-portal/internal/infra/upload"
)

// maxFileSize caps a single upload at 5 MB.
const maxFileSize = 5 << 20

// allowedTypes lists the accepted image MIME types, detected from
// content, not from the client-supplied header.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Uploader upload.Uploader
	Folder   string
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+4096)
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		respond.Error(w, http.StatusBadRequest, "file too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("file field is required"))
		return
	}
	defer file.Close()

	if header.Size > maxFileSize {
		respond.SafeError(w, http.StatusBadRequest, errors.New("file too large, limit is 5 MB"))
		return
	}

	// Sniff the real content type from the first bytes.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid file"))
		return
	}
	head = head[:n]
	if !allowedTypes[http.DetectContentType(head)] {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("unsupported file type, accepted: jpeg, png, gif, webp"))
		return
	}

	result, err := h.Uploader.Upload(r.Context(), io.MultiReader(bytes.NewReader(head), file), h.Folder)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.Success(w, http.StatusCreated, "file uploaded", map[string]any{
		"url":       result.URL,
		"public_id": result.PublicID,
		"width":     result.Width,
		"height":    result.Height,
		"format":    result.Format,
		"bytes":     result.Bytes,
	})
}

// Register wires the upload route behind the gate and the supplied
// rate limiter.
func Register(mux *http.ServeMux, h Handler, gate *authh.Gate, limiter func(http.Handler) http.Handler) {
	mux.Handle("POST   /api/upload", limiter(gate.Require(h)))
}
