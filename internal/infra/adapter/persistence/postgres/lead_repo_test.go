package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"vmfit/internal/domain/entity"
)

func TestLeadRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	now := time.Now()
	lead := &entity.Lead{
		Name:      "Ana",
		Email:     "ana@example.com",
		Source:    "hero-form",
		CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO leads").
		WithArgs(lead.Name, lead.Email, lead.Source, lead.PlanRequested, lead.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	repo := NewLeadRepo(db)
	if err := repo.Create(context.Background(), lead); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if lead.ID != 3 {
		t.Errorf("expected assigned ID 3, got %d", lead.ID)
	}
}

func TestLeadRepo_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "source", "plan_requested", "created_at"}).
		AddRow(2, "Bea", "bea@example.com", "ai-generator", "fat loss", now).
		AddRow(1, "Ana", "ana@example.com", "hero-form", "", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, name, email, source, plan_requested, created_at").
		WithArgs(20, 0).
		WillReturnRows(rows)

	repo := NewLeadRepo(db)
	leads, err := repo.List(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}
	if leads[0].Name != "Bea" {
		t.Errorf("expected most recent lead first, got %q", leads[0].Name)
	}
}

func TestLeadRepo_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	repo := NewLeadRepo(db)
	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}
}

func TestLeadRepo_ExistsByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewLeadRepo(db)
	exists, err := repo.ExistsByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if exists {
		t.Error("expected exists=false")
	}
}
