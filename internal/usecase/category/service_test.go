package category_test

import (
	"context"
	"errors"
	"testing"

	"news-portal/internal/domain/entity"
	catUC "news-portal/internal/usecase/category"
)

// Minimal in-memory CategoryRepository.
type stubRepo struct {
	data   map[int64]*entity.Category
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Category{}, nextID: 1}
}

func (s *stubRepo) Insert(_ context.Context, c *entity.Category) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	c.ID = s.nextID
	c.IsActive = true
	s.nextID++
	s.data[c.ID] = c
	return c.ID, nil
}

func (s *stubRepo) Update(_ context.Context, c *entity.Category) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	cur, ok := s.data[c.ID]
	if !ok || !cur.IsActive {
		return false, nil
	}
	c.IsActive = true
	s.data[c.ID] = c
	return true, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	c, ok := s.data[id]
	if !ok || !c.IsActive {
		return false, nil
	}
	c.IsActive = false
	return true, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.data[id]
	if !ok || !c.IsActive {
		return nil, nil
	}
	return c, nil
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.data {
		if c.Slug == slug && c.IsActive {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Category
	for _, c := range s.data {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRepo) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, c := range s.data {
		if c.Name == name && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) SlugExists(_ context.Context, slug string, excludeID int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, c := range s.data {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func TestService_Create(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}

	id, err := svc.Create(context.Background(), catUC.CreateInput{
		Name: "World Politics", Description: "global affairs",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got := repo.data[id].Slug; got != "world-politics" {
		t.Errorf("slug = %q, want world-politics", got)
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}

	ctx := context.Background()
	if _, err := svc.Create(ctx, catUC.CreateInput{Name: "Sports"}); err != nil {
		t.Fatalf("first Create err=%v", err)
	}
	if _, err := svc.Create(ctx, catUC.CreateInput{Name: "Sports"}); !errors.Is(err, catUC.ErrCategoryExists) {
		t.Fatalf("second Create err=%v, want ErrCategoryExists", err)
	}
}

func TestService_Create_EmptyName(t *testing.T) {
	svc := &catUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), catUC.CreateInput{})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "name" {
		t.Fatalf("err=%v, want ValidationError on name", err)
	}
}

func TestService_Update_ExcludesSelf(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}

	ctx := context.Background()
	id, _ := svc.Create(ctx, catUC.CreateInput{Name: "Tech"})

	// Renaming to its own name must not collide with itself.
	if err := svc.Update(ctx, catUC.UpdateInput{ID: id, Name: "Tech", Description: "gadgets"}); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got := repo.data[id].Description; got != "gadgets" {
		t.Errorf("description = %q, want gadgets", got)
	}
}

func TestService_Delete_Soft(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}

	ctx := context.Background()
	id, _ := svc.Create(ctx, catUC.CreateInput{Name: "Tech"})

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if repo.data[id].IsActive {
		t.Error("category still active after delete")
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, catUC.ErrCategoryNotFound) {
		t.Fatalf("Get err=%v, want ErrCategoryNotFound after delete", err)
	}
	if err := svc.Delete(ctx, id); !errors.Is(err, catUC.ErrCategoryNotFound) {
		t.Fatalf("second Delete err=%v, want ErrCategoryNotFound", err)
	}
}

func TestService_GetBySlug_NotFound(t *testing.T) {
	svc := &catUC.Service{Repo: newStub()}

	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, catUC.ErrCategoryNotFound) {
		t.Fatalf("GetBySlug err=%v, want ErrCategoryNotFound", err)
	}
}
