package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var resumeColumnList = []string{
	"id", "user_id", "title", "personal_info", "summary",
	"education", "experience", "skills", "projects",
	"responsibilities", "achievements", "theme_color",
	"created_at", "updated_at",
}

func TestPGRepoCreateWritesAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	doc := Resume{
		ID:         "9f9d2a53-06ae-4a49-9b3e-111111111111",
		UserID:     "user-1",
		Title:      "New Edition",
		Summary:    "summary",
		Skills:     []Skill{{Name: "Go, SQL", Level: "Technical"}},
		ThemeColor: DefaultThemeColor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			doc.ID,
			doc.UserID,
			doc.Title,
			[]byte(`{"fullName":"","email":"","phone":"","address":"","linkedin":"","website":""}`),
			doc.Summary,
			[]byte(`[]`), // education
			[]byte(`[]`), // experience
			[]byte(`[{"name":"Go, SQL","level":"Technical"}]`),
			[]byte(`[]`), // projects
			[]byte(`[]`), // responsibilities
			[]byte(`[]`), // achievements
			doc.ThemeColor,
			doc.CreatedAt,
			doc.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScansSections(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	id := "9f9d2a53-06ae-4a49-9b3e-222222222222"

	rows := sqlmock.NewRows(resumeColumnList).AddRow(
		id, "user-1", "Title",
		[]byte(`{"fullName":"Ada Lovelace"}`),
		"summary",
		[]byte(`[{"institution":"UCL","degree":"BSc"}]`),
		[]byte(`[]`),
		[]byte(`[{"name":"Go"}]`),
		[]byte(`[]`),
		[]byte(`[]`),
		[]byte(`[]`),
		"#2563eb",
		now, now,
	)
	mock.ExpectQuery(`(?s)SELECT.+FROM resumes.+WHERE id`).WithArgs(id).WillReturnRows(rows)

	doc, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if doc.PersonalInfo.FullName != "Ada Lovelace" {
		t.Fatalf("personal info not scanned: %+v", doc.PersonalInfo)
	}
	if len(doc.Education) != 1 || doc.Education[0].Institution != "UCL" {
		t.Fatalf("education not scanned: %+v", doc.Education)
	}
	if len(doc.Skills) != 1 || doc.Skills[0].Name != "Go" {
		t.Fatalf("skills not scanned: %+v", doc.Skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery(`(?s)SELECT.+FROM resumes.+WHERE id`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(resumeColumnList))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByOwnerOrdersByUpdatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows(resumeColumnList).
		AddRow("a", "user-1", "Newer", []byte(`{}`), "", []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), "#2563eb", now, now).
		AddRow("b", "user-1", "Older", []byte(`{}`), "", []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), "#2563eb", now, now.Add(-time.Hour))
	mock.ExpectQuery(`(?s)SELECT.+FROM resumes.+WHERE user_id.+ORDER BY updated_at DESC`).
		WithArgs("user-1").
		WillReturnRows(rows)

	docs, err := repo.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(docs) != 2 || docs[0].Title != "Newer" {
		t.Fatalf("unexpected list: %+v", docs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), Resume{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
