package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/infrastructure/database"

	"github.com/shopspring/decimal"
)

// testDB opens a fresh file-backed SQLite database in a temp dir and runs
// the embedded migrations against it.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestIngredientSQLiteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewIngredientSQLiteRepository(testDB(t))

	created, err := repo.Create(ctx, entities.Ingredient{Name: "Flour", CostPerUnit: decimal.RequireFromString("1.25")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Flour" || !got.CostPerUnit.Equal(decimal.RequireFromString("1.25")) {
		t.Fatalf("unexpected ingredient: %+v", got)
	}

	missing, err := repo.GetByID(ctx, created.ID+100)
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil) for missing id, got (%+v, %v)", missing, err)
	}

	created.CostPerUnit = decimal.RequireFromString("1.50")
	ok, err := repo.Update(ctx, created)
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	noRow, err := repo.Update(ctx, entities.Ingredient{ID: created.ID + 100, Name: "x"})
	if err != nil || noRow {
		t.Fatalf("expected update of missing row to report false")
	}

	all, err := repo.GetAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("get all: %v (%d rows)", err, len(all))
	}
	if !all[0].CostPerUnit.Equal(decimal.RequireFromString("1.50")) {
		t.Fatalf("update not persisted: %+v", all[0])
	}

	ok, err = repo.Delete(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, created.ID)
	if err != nil || ok {
		t.Fatalf("expected second delete to report false")
	}
}

func TestCakeSQLiteRepository_JoinsTemplate(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	templates := NewTemplateSQLiteRepository(db)
	cakes := NewCakeSQLiteRepository(db)

	tpl, err := templates.Create(ctx, entities.Template{
		Name:            "Classic Sponge",
		Size:            "8 inch",
		Type:            "Sponge",
		BaseIngredients: `{"1": 2.5, "2": 1}`,
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}

	cake, err := cakes.Create(ctx, entities.Cake{
		Name:             "Birthday",
		TemplateID:       tpl.ID,
		ExtraIngredients: `{"3": 0.5}`,
		Labor:            decimal.RequireFromString("12"),
		OtherCosts:       decimal.RequireFromString("3"),
	})
	if err != nil {
		t.Fatalf("create cake: %v", err)
	}

	got, err := cakes.GetByID(ctx, cake.ID)
	if err != nil {
		t.Fatalf("get cake: %v", err)
	}
	if got == nil || got.Template == nil {
		t.Fatalf("expected joined template, got %+v", got)
	}
	if got.Template.BaseIngredients != `{"1": 2.5, "2": 1}` {
		t.Fatalf("unexpected template payload: %q", got.Template.BaseIngredients)
	}
	if !got.Labor.Equal(decimal.RequireFromString("12")) || !got.OtherCosts.Equal(decimal.RequireFromString("3")) {
		t.Fatalf("unexpected costs: %+v", got)
	}

	all, err := cakes.GetAll(ctx)
	if err != nil || len(all) != 1 || all[0].Template == nil {
		t.Fatalf("get all: %v (%+v)", err, all)
	}

	missing, err := cakes.GetByID(ctx, cake.ID+100)
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil) for missing cake")
	}
}

func TestCatalogSQLiteRepository_ListsAndFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogSQLiteRepository(testDB(t))

	round, err := repo.CreateShape(ctx, entities.CakeShape{Name: "Round", SortOrder: 1, IsActive: true})
	if err != nil {
		t.Fatalf("create shape: %v", err)
	}
	rect, err := repo.CreateShape(ctx, entities.CakeShape{Name: "Rectangle", SortOrder: 2, IsActive: true})
	if err != nil {
		t.Fatalf("create shape: %v", err)
	}
	if _, err := repo.CreateShape(ctx, entities.CakeShape{Name: "Retired", SortOrder: 0, IsActive: false}); err != nil {
		t.Fatalf("create shape: %v", err)
	}

	shapes, err := repo.ListShapes(ctx)
	if err != nil {
		t.Fatalf("list shapes: %v", err)
	}
	if len(shapes) != 2 || shapes[0].Name != "Round" || shapes[1].Name != "Rectangle" {
		t.Fatalf("expected active shapes in sort order, got %+v", shapes)
	}

	if _, err := repo.CreateSize(ctx, entities.CakeSize{
		ShapeID: round.ID, Name: `10" Round`, Dimensions: `{"roundDiameterIn": 10}`, SortOrder: 1, IsActive: true,
	}); err != nil {
		t.Fatalf("create size: %v", err)
	}
	sheet, err := repo.CreateSize(ctx, entities.CakeSize{
		ShapeID: rect.ID, Name: "Quarter Sheet", Dimensions: `{"lengthIn": 13, "widthIn": 9}`, SortOrder: 1, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create size: %v", err)
	}

	all, err := repo.ListSizes(ctx, nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("list sizes: %v (%d rows)", err, len(all))
	}
	filtered, err := repo.ListSizes(ctx, &rect.ID)
	if err != nil || len(filtered) != 1 || filtered[0].Name != "Quarter Sheet" {
		t.Fatalf("expected shape filter to apply, got %+v (err %v)", filtered, err)
	}

	size, err := repo.GetSizeByID(ctx, sheet.ID)
	if err != nil || size == nil || size.Dimensions != `{"lengthIn": 13, "widthIn": 9}` {
		t.Fatalf("get size: %+v (err %v)", size, err)
	}

	filling, err := repo.CreateFilling(ctx, entities.Filling{Name: "Raspberry", SortOrder: 1, IsActive: true})
	if err != nil {
		t.Fatalf("create filling: %v", err)
	}
	gotFilling, err := repo.GetFillingByID(ctx, filling.ID)
	if err != nil || gotFilling == nil || gotFilling.Name != "Raspberry" {
		t.Fatalf("get filling: %+v (err %v)", gotFilling, err)
	}

	missingType, err := repo.GetTypeByID(ctx, 999)
	if err != nil || missingType != nil {
		t.Fatalf("expected (nil, nil) for missing type")
	}
}

func TestRoleSQLiteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleSQLiteRepository(testDB(t))

	created, err := repo.Create(ctx, entities.Role{Name: "Decorator", HourlyRate: decimal.RequireFromString("28.50")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil || got == nil || !got.HourlyRate.Equal(decimal.RequireFromString("28.50")) {
		t.Fatalf("get: %+v (err %v)", got, err)
	}

	ok, err := repo.Delete(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
}
