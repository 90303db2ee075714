package contact_test

import (
	"context"
	"errors"
	"testing"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/entity"
	contactUC "news-portal/internal/usecase/contact"
)

// Minimal in-memory ContactRepository.
type stubRepo struct {
	data   map[int64]*entity.Contact
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Contact{}, nextID: 1}
}

func (s *stubRepo) Insert(_ context.Context, c *entity.Contact) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	c.ID = s.nextID
	s.nextID++
	s.data[c.ID] = c
	return c.ID, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Contact, error) {
	return s.data[id], s.err
}

func (s *stubRepo) List(_ context.Context, offset, limit int) ([]*entity.Contact, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var out []*entity.Contact
	for _, c := range s.data {
		out = append(out, c)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (s *stubRepo) MarkRead(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	c, ok := s.data[id]
	if !ok {
		return false, nil
	}
	c.IsRead = true
	return true, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *stubRepo) UnreadCount(_ context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, c := range s.data {
		if !c.IsRead {
			n++
		}
	}
	return n, nil
}

func TestService_Create(t *testing.T) {
	repo := newStub()
	svc := &contactUC.Service{Repo: repo}

	id, err := svc.Create(context.Background(), contactUC.CreateInput{
		Name: "Reader", Email: "reader@example.com", Message: "hello",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if repo.data[id].IsRead {
		t.Error("new message must start unread")
	}
}

func TestService_Create_InvalidEmail(t *testing.T) {
	svc := &contactUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), contactUC.CreateInput{
		Name: "Reader", Email: "not-an-address", Message: "hello",
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "email" {
		t.Fatalf("err=%v, want ValidationError on email", err)
	}
}

func TestService_Get_MarksRead(t *testing.T) {
	repo := newStub()
	svc := &contactUC.Service{Repo: repo}

	ctx := context.Background()
	id, _ := svc.Create(ctx, contactUC.CreateInput{
		Name: "Reader", Email: "reader@example.com", Message: "hello",
	})

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if !got.IsRead || !repo.data[id].IsRead {
		t.Error("Get must mark the message read")
	}

	count, err := svc.UnreadCount(ctx)
	if err != nil || count != 0 {
		t.Fatalf("UnreadCount = %d err=%v, want 0", count, err)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := &contactUC.Service{Repo: newStub()}

	if err := svc.Delete(context.Background(), 9); !errors.Is(err, contactUC.ErrContactNotFound) {
		t.Fatalf("Delete err=%v, want ErrContactNotFound", err)
	}
}

func TestService_List(t *testing.T) {
	repo := newStub()
	svc := &contactUC.Service{Repo: repo}

	ctx := context.Background()
	for range [3]struct{}{} {
		if _, err := svc.Create(ctx, contactUC.CreateInput{
			Name: "Reader", Email: "reader@example.com", Message: "hi",
		}); err != nil {
			t.Fatalf("Create err=%v", err)
		}
	}

	got, err := svc.List(ctx, pagination.Params{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got.Items) != 2 || got.Pagination.Total != 3 || got.Pagination.Pages != 2 {
		t.Fatalf("List items=%d total=%d pages=%d", len(got.Items), got.Pagination.Total, got.Pagination.Pages)
	}
}
