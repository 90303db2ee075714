package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"news-portal/internal/domain/entity"
	pg "news-portal/internal/infra/adapter/persistence/postgres"
	"news-portal/internal/repository"
)

var newsCols = []string{
	"id", "title", "slug", "summary", "content", "thumbnail",
	"category_id", "status", "views", "admin_id", "created_at", "updated_at",
	"category_name", "category_slug",
}

func newsRow(item *repository.NewsWithCategory) *sqlmock.Rows {
	n := item.News
	return sqlmock.NewRows(newsCols).AddRow(
		n.ID, n.Title, n.Slug, n.Summary, n.Content, n.Thumbnail,
		n.CategoryID, string(n.Status), n.Views, n.AdminID, n.CreatedAt, n.UpdatedAt,
		item.CategoryName, item.CategorySlug,
	)
}

func sampleNews() *repository.NewsWithCategory {
	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	return &repository.NewsWithCategory{
		News: &entity.News{
			ID: 1, Title: "Markets Rally", Slug: "markets-rally",
			Summary: "sum", Content: "<p>body</p>", Thumbnail: "/t.jpg",
			CategoryID: 2, Status: entity.StatusPublished, Views: 7,
			AdminID: 3, CreatedAt: now, UpdatedAt: now,
		},
		CategoryName: "Economy",
		CategorySlug: "economy",
	}
}

func TestNewsRepo_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO news")).
		WithArgs("Markets Rally", "markets-rally", "sum", "<p>body</p>", "/t.jpg",
			int64(2), int64(3), "draft").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	repo := pg.NewNewsRepo(db)
	id, err := repo.Insert(context.Background(), &entity.News{
		Title: "Markets Rally", Slug: "markets-rally", Summary: "sum",
		Content: "<p>body</p>", Thumbnail: "/t.jpg",
		CategoryID: 2, AdminID: 3, Status: entity.StatusDraft,
	})
	if err != nil {
		t.Fatalf("Insert err=%v", err)
	}
	if id != 9 {
		t.Fatalf("Insert id=%d, want 9", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewsRepo_Insert_DuplicateSlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO news")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := pg.NewNewsRepo(db)
	_, err := repo.Insert(context.Background(), &entity.News{
		Title: "dup", Slug: "dup", Status: entity.StatusDraft,
	})
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("Insert err=%v, want ErrConflict", err)
	}
}

func TestNewsRepo_GetBySlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleNews()
	mock.ExpectQuery("FROM news n").
		WithArgs("markets-rally", "published").
		WillReturnRows(newsRow(want))

	repo := pg.NewNewsRepo(db)
	got, err := repo.GetBySlug(context.Background(), "markets-rally", true)
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNewsRepo_GetBySlug_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM news n").
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows(newsCols))

	repo := pg.NewNewsRepo(db)
	got, err := repo.GetBySlug(context.Background(), "gone", false)
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if got != nil {
		t.Fatalf("GetBySlug got=%+v, want nil", got)
	}
}

func TestNewsRepo_ListFiltered(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	item := sampleNews()
	mock.ExpectQuery("FROM news n").
		WithArgs("published", 10, 0).
		WillReturnRows(newsRow(item))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM news")).
		WithArgs("published").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	repo := pg.NewNewsRepo(db)
	items, total, err := repo.ListFiltered(context.Background(), 0, 10,
		repository.NewsFilters{Status: entity.StatusPublished})
	if err != nil {
		t.Fatalf("ListFiltered err=%v", err)
	}
	if len(items) != 1 || total != 1 {
		t.Fatalf("ListFiltered len=%d total=%d", len(items), total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewsRepo_ListFiltered_Search(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM news n").
		WithArgs("%rally%", "%rally%", 10, 0).
		WillReturnRows(sqlmock.NewRows(newsCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM news")).
		WithArgs("%rally%", "%rally%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	repo := pg.NewNewsRepo(db)
	items, total, err := repo.ListFiltered(context.Background(), 0, 10,
		repository.NewsFilters{Search: "rally"})
	if err != nil {
		t.Fatalf("ListFiltered err=%v", err)
	}
	if len(items) != 0 || total != 0 {
		t.Fatalf("ListFiltered len=%d total=%d", len(items), total)
	}
}

func TestNewsRepo_SetStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE news SET status").
		WithArgs("hidden", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewNewsRepo(db)
	ok, err := repo.SetStatus(context.Background(), 1, entity.StatusHidden)
	if err != nil || !ok {
		t.Fatalf("SetStatus err=%v ok=%v", err, ok)
	}
}

func TestNewsRepo_IncrementViews(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE news SET views = views + 1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewNewsRepo(db)
	ok, err := repo.IncrementViews(context.Background(), 4)
	if err != nil || !ok {
		t.Fatalf("IncrementViews err=%v ok=%v", err, ok)
	}
}

func TestNewsRepo_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM news").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewNewsRepo(db)
	ok, err := repo.Delete(context.Background(), 99)
	if err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if ok {
		t.Fatal("Delete ok=true, want false")
	}
}

func TestNewsRepo_SlugExists_Exclude(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM news WHERE slug = $1 AND id != $2)")).
		WithArgs("markets-rally", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	repo := pg.NewNewsRepo(db)
	ok, err := repo.SlugExists(context.Background(), "markets-rally", 5)
	if err != nil || ok {
		t.Fatalf("SlugExists err=%v ok=%v", err, ok)
	}
}

func TestNewsRepo_Stats(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM news")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM news WHERE status = $1")).
		WithArgs("published").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM news WHERE status = $1")).
		WithArgs("draft").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(views), 0) FROM news")).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(int64(420)))

	repo := pg.NewNewsRepo(db)
	got, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats err=%v", err)
	}
	want := &repository.NewsStats{Total: 10, Published: 6, Draft: 3, TotalViews: 420}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
