package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/news/123", "/api/news/:id"},
		{"/api/news/123/status", "/api/news/:id/status"},
		{"/api/news/go-124-released", "/api/news/:slug"},
		{"/api/news/latest", "/api/news/latest"},
		{"/api/news/breaking", "/api/news/breaking"},
		{"/api/news/admin/stats", "/api/news/admin/stats"},
		{"/api/news/category/economy", "/api/news/category/:slug"},
		{"/api/categories/7", "/api/categories/:id"},
		{"/api/categories/economy", "/api/categories/:slug"},
		{"/api/contact/4/read", "/api/contact/:id/read"},
		{"/api/contact/unread-count", "/api/contact/unread-count"},
		{"/api/social-media/2/restore", "/api/social-media/:id/restore"},
		{"/api/settings/site_title", "/api/settings/:key"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/api/news/123?page=1", "/api/news/:id"},
		{"/api/news/123/", "/api/news/:id"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
