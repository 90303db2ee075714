package news_test

import (
	"context"
	"time"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// In-memory NewsRepository shared by the handler tests.
type stubNewsRepo struct {
	items  map[int64]*repository.NewsWithCategory
	nextID int64
	err    error
}

func newStubNewsRepo() *stubNewsRepo {
	return &stubNewsRepo{items: map[int64]*repository.NewsWithCategory{}, nextID: 1}
}

func (s *stubNewsRepo) seed(n *entity.News) {
	if n.ID == 0 {
		n.ID = s.nextID
		s.nextID++
	} else if n.ID >= s.nextID {
		s.nextID = n.ID + 1
	}
	s.items[n.ID] = &repository.NewsWithCategory{
		News:         n,
		CategoryName: "Economy",
		CategorySlug: "economy",
	}
}

func (s *stubNewsRepo) Insert(_ context.Context, n *entity.News) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	for _, it := range s.items {
		if it.News.Slug == n.Slug {
			return 0, entity.ErrConflict
		}
	}
	n.CreatedAt = time.Now()
	s.seed(n)
	return n.ID, nil
}

func (s *stubNewsRepo) Update(_ context.Context, n *entity.News) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	current, ok := s.items[n.ID]
	if !ok {
		return false, nil
	}
	n.Status = current.News.Status
	n.Views = current.News.Views
	s.items[n.ID].News = n
	return true, nil
}

func (s *stubNewsRepo) SetStatus(_ context.Context, id int64, status entity.Status) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	item, ok := s.items[id]
	if !ok {
		return false, nil
	}
	item.News.Status = status
	return true, nil
}

func (s *stubNewsRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *stubNewsRepo) IncrementViews(_ context.Context, id int64) (bool, error) {
	item, ok := s.items[id]
	if !ok {
		return false, nil
	}
	item.News.Views++
	return true, nil
}

func (s *stubNewsRepo) GetBySlug(_ context.Context, slug string, publishedOnly bool) (*repository.NewsWithCategory, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, it := range s.items {
		if it.News.Slug != slug {
			continue
		}
		if publishedOnly && it.News.Status != entity.StatusPublished {
			return nil, nil
		}
		// Detached copy, like a row scanned from the store.
		n := *it.News
		cp := *it
		cp.News = &n
		return &cp, nil
	}
	return nil, nil
}

func (s *stubNewsRepo) GetByID(_ context.Context, id int64) (*repository.NewsWithCategory, error) {
	return s.items[id], s.err
}

func (s *stubNewsRepo) SlugExists(_ context.Context, slug string, excludeID int64) (bool, error) {
	for _, it := range s.items {
		if it.News.Slug == slug && it.News.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubNewsRepo) ListFiltered(_ context.Context, offset, limit int, filters repository.NewsFilters) ([]repository.NewsWithCategory, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var matched []repository.NewsWithCategory
	for _, it := range s.items {
		if filters.Status != "" && it.News.Status != filters.Status {
			continue
		}
		if filters.CategoryID != 0 && it.News.CategoryID != filters.CategoryID {
			continue
		}
		matched = append(matched, *it)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (s *stubNewsRepo) ListByCategory(_ context.Context, categorySlug string, offset, limit int) ([]repository.NewsWithCategory, int64, error) {
	var matched []repository.NewsWithCategory
	for _, it := range s.items {
		if it.CategorySlug == categorySlug && it.News.Status == entity.StatusPublished {
			matched = append(matched, *it)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (s *stubNewsRepo) Latest(_ context.Context, limit int) ([]repository.NewsWithCategory, error) {
	var out []repository.NewsWithCategory
	for _, it := range s.items {
		if it.News.Status == entity.StatusPublished {
			out = append(out, *it)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubNewsRepo) Breaking(_ context.Context) (*repository.NewsWithCategory, error) {
	for _, it := range s.items {
		if it.News.Status == entity.StatusPublished {
			return it, nil
		}
	}
	return nil, nil
}

func (s *stubNewsRepo) Stats(_ context.Context) (*repository.NewsStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	stats := &repository.NewsStats{}
	for _, it := range s.items {
		stats.Total++
		switch it.News.Status {
		case entity.StatusPublished:
			stats.Published++
		case entity.StatusDraft:
			stats.Draft++
		}
		stats.TotalViews += it.News.Views
	}
	return stats, nil
}

// In-memory CategoryRepository with one active category.
type stubCategoryRepo struct {
	category *entity.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{category: &entity.Category{
		ID:       2,
		Name:     "Economy",
		Slug:     "economy",
		IsActive: true,
	}}
}

func (s *stubCategoryRepo) Insert(_ context.Context, c *entity.Category) (int64, error) {
	return 0, nil
}

func (s *stubCategoryRepo) Update(_ context.Context, _ *entity.Category) (bool, error) {
	return false, nil
}

func (s *stubCategoryRepo) Delete(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

func (s *stubCategoryRepo) Get(_ context.Context, id int64) (*entity.Category, error) {
	if s.category.ID == id {
		return s.category, nil
	}
	return nil, nil
}

func (s *stubCategoryRepo) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	if s.category.Slug == slug {
		return s.category, nil
	}
	return nil, nil
}

func (s *stubCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return []*entity.Category{s.category}, nil
}

func (s *stubCategoryRepo) NameExists(_ context.Context, _ string, _ int64) (bool, error) {
	return false, nil
}

func (s *stubCategoryRepo) SlugExists(_ context.Context, _ string, _ int64) (bool, error) {
	return false, nil
}
