package news_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/news"
)

func TestStatusHandler_Publish(t *testing.T) {
	repo := newStubNewsRepo()
	repo.seed(&entity.News{Title: "T", Slug: "t", CategoryID: 2, Status: entity.StatusDraft})
	handler := news.StatusHandler{Svc: newService(repo)}

	req := httptest.NewRequest(http.MethodPatch, "/api/news/1/status",
		strings.NewReader(`{"status":"published"}`))
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rr.Code, rr.Body)
	}
	if repo.items[1].News.Status != entity.StatusPublished {
		t.Errorf("Status = %q, want published", repo.items[1].News.Status)
	}
}

func TestStatusHandler_InvalidStatus(t *testing.T) {
	repo := newStubNewsRepo()
	repo.seed(&entity.News{Title: "T", Slug: "t", CategoryID: 2, Status: entity.StatusDraft})
	handler := news.StatusHandler{Svc: newService(repo)}

	req := httptest.NewRequest(http.MethodPatch, "/api/news/1/status",
		strings.NewReader(`{"status":"archived"}`))
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestStatusHandler_NotFound(t *testing.T) {
	handler := news.StatusHandler{Svc: newService(newStubNewsRepo())}

	req := httptest.NewRequest(http.MethodPatch, "/api/news/9/status",
		strings.NewReader(`{"status":"published"}`))
	req.SetPathValue("id", "9")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestUpdateHandler_KeepsThumbnail(t *testing.T) {
	repo := newStubNewsRepo()
	repo.seed(&entity.News{
		Title: "T", Slug: "t", Summary: "S", Content: "C",
		Thumbnail: "/img/keep.png", CategoryID: 2, Status: entity.StatusPublished,
	})
	handler := news.UpdateHandler{Svc: newService(repo)}

	body := `{"title":"T Updated","summary":"S2","content":"C2","categoryId":2}`
	req := httptest.NewRequest(http.MethodPut, "/api/news/1", strings.NewReader(body))
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rr.Code, rr.Body)
	}
	updated := repo.items[1].News
	if updated.Thumbnail != "/img/keep.png" {
		t.Errorf("Thumbnail = %q, want stored one kept", updated.Thumbnail)
	}
	if updated.Slug != "t-updated" {
		t.Errorf("Slug = %q, want re-derived from the new title", updated.Slug)
	}
}

func TestDeleteHandler_NotFound(t *testing.T) {
	handler := news.DeleteHandler{Svc: newService(newStubNewsRepo())}

	req := httptest.NewRequest(http.MethodDelete, "/api/news/9", nil)
	req.SetPathValue("id", "9")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	handler := news.DeleteHandler{Svc: newService(newStubNewsRepo())}

	req := httptest.NewRequest(http.MethodDelete, "/api/news/abc", nil)
	req.SetPathValue("id", "abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
