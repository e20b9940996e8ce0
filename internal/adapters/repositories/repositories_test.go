package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestInitSchema(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS categories`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS geocode_cache`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCommit()

	if err := InitSchema(context.Background(), mock); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaNil(t *testing.T) {
	if err := InitSchema(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestSeedFromJSON(t *testing.T) {
	mock := newMock(t)

	path := filepath.Join(t.TempDir(), "categories.json")
	seed := `[
		{"name": "Restaurant", "keywords": "Restaurantes, Comida"},
		{"name": " Hotels ", "keywords": "Hoteles, Hospedaje, Alojamiento"}
	]`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO categories`).
		WithArgs("Restaurant", "Restaurantes, Comida", 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO categories`).
		WithArgs("Hotels", "Hoteles, Hospedaje, Alojamiento", 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	if err := SeedFromJSON(context.Background(), mock, path); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedCategoriesValidation(t *testing.T) {
	mock := newMock(t)

	err := SeedCategories(context.Background(), mock, []CategorySeed{{Name: "Empty"}})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	if err := SeedFromJSON(context.Background(), mock, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestListCategories(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT\s+name,\s+keywords\s+FROM categories`).
		WillReturnRows(pgxmock.NewRows([]string{"name", "keywords"}).
			AddRow("Restaurant", "Restaurantes, Comida").
			AddRow("Coffee Shop", "Cafeterías, Café"))

	got, err := NewSQLCategoryRepository(mock).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(got) != 2 || got[1].Name != "Coffee Shop" || got[1].Keywords != "Cafeterías, Café" {
		t.Fatalf("unexpected categories: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListCategoriesQueryError(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	if _, err := NewSQLCategoryRepository(mock).ListCategories(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
