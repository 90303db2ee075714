package upload_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	uploadh "news-portal/internal/handler/http/upload"
	"news-portal/internal/infra/upload"
)

type stubUploader struct {
	lastFolder string
	lastBytes  []byte
	err        error
}

func (s *stubUploader) Upload(_ context.Context, r io.Reader, folder string) (*upload.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.lastFolder = folder
	s.lastBytes = data
	return &upload.Result{
		URL:      "https://cdn.example.com/news/abc.png",
		PublicID: "news/abc",
		Format:   "png",
		Bytes:    len(data),
	}, nil
}

func (s *stubUploader) Delete(_ context.Context, _ string) error { return nil }

// Minimal valid PNG header so content sniffing passes.
var pngBytes = []byte("\x89PNG\r\n\x1a\n" + "0123456789abcdef")

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHandler_Success(t *testing.T) {
	stub := &stubUploader{}
	handler := uploadh.Handler{Uploader: stub, Folder: "news"}

	body, contentType := multipartBody(t, "file", "chart.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rr.Code, rr.Body)
	}
	if stub.lastFolder != "news" {
		t.Errorf("folder = %q, want news", stub.lastFolder)
	}
	if !bytes.Equal(stub.lastBytes, pngBytes) {
		t.Error("uploaded bytes differ from the submitted file")
	}
}

func TestHandler_MissingFileField(t *testing.T) {
	handler := uploadh.Handler{Uploader: &stubUploader{}, Folder: "news"}

	body, contentType := multipartBody(t, "attachment", "chart.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestHandler_UnsupportedType(t *testing.T) {
	handler := uploadh.Handler{Uploader: &stubUploader{}, Folder: "news"}

	body, contentType := multipartBody(t, "file", "notes.txt", []byte("plain text, not an image"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestHandler_SpoofedExtensionRejected(t *testing.T) {
	handler := uploadh.Handler{Uploader: &stubUploader{}, Folder: "news"}

	// Executable bytes behind an image filename.
	body, contentType := multipartBody(t, "file", "image.png", []byte("MZ\x90\x00 not a png"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want content sniffing to reject", rr.Code)
	}
}
