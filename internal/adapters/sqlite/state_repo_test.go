package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/empdir/internal/adapters/sqlite"
	"github.com/example/empdir/internal/db"
	"github.com/example/empdir/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { testDB.Close() })

	if err := db.InitSchema(testDB); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	return testDB
}

func sampleSnapshot() *secondary.DirectorySnapshot {
	return &secondary.DirectorySnapshot{
		Employees: []secondary.EmployeeRecord{
			{
				ID:               "1700000000000",
				FirstName:        "Ahmet",
				LastName:         "Yılmaz",
				Email:            "ahmet.yilmaz@ing.com",
				Phone:            "+90 532 123 45 67",
				Department:       "Analytics",
				Position:         "Senior",
				DateOfEmployment: "2022-09-23",
				DateOfBirth:      "1990-03-15",
				DateHired:        "2024-01-05",
			},
		},
		ViewMode: "table",
	}
}

func TestStateRepository_LoadWithoutPriorState(t *testing.T) {
	repo := sqlite.NewStateRepository(setupTestDB(t))

	snap, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected no prior state, got %+v", snap)
	}
}

func TestStateRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := sqlite.NewStateRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a snapshot")
	}
	if loaded.ViewMode != "table" {
		t.Errorf("ViewMode = %q, want table", loaded.ViewMode)
	}
	if len(loaded.Employees) != 1 {
		t.Fatalf("loaded %d employees, want 1", len(loaded.Employees))
	}
	if got := loaded.Employees[0]; got != sampleSnapshot().Employees[0] {
		t.Errorf("employee round-trip mismatch: %+v", got)
	}
}

func TestStateRepository_SaveReplacesPreviousSnapshot(t *testing.T) {
	repo := sqlite.NewStateRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := repo.Save(ctx, &secondary.DirectorySnapshot{ViewMode: "list"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Employees) != 0 || loaded.ViewMode != "list" {
		t.Errorf("second save did not replace the first: %+v", loaded)
	}
}

func TestStateRepository_SaveNilSnapshot(t *testing.T) {
	repo := sqlite.NewStateRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil || len(loaded.Employees) != 0 {
		t.Errorf("expected an empty snapshot, got %+v", loaded)
	}
}

func TestStateRepository_LoadCorruptBlob(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewStateRepository(testDB)

	_, err := testDB.Exec(
		"INSERT INTO state (key, value) VALUES (?, ?)",
		"empdir.directory", []byte("not json at all"))
	if err != nil {
		t.Fatalf("failed to plant corrupt blob: %v", err)
	}

	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("expected an error for a corrupt blob")
	}
}
