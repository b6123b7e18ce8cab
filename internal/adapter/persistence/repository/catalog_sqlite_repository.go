package repository

import (
	"context"
	"database/sql"
	"errors"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

// CatalogSQLiteRepository persists the order-form catalogs in SQLite. The
// five tables share one column layout (name, image_path, sort_order,
// is_active), so the per-table methods delegate to shared helpers keyed by
// table name. List methods return active records ordered by sort order
// then id.

type CatalogSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ICatalogRepository = (*CatalogSQLiteRepository)(nil)

func NewCatalogSQLiteRepository(db *sql.DB) *CatalogSQLiteRepository {
	return &CatalogSQLiteRepository{db: db}
}

// catalogRow is the shared shape of cake_types, cake_shapes, fillings and
// frostings rows.
type catalogRow struct {
	ID        int64
	Name      string
	ImagePath string
	SortOrder int
	IsActive  bool
}

func (r *CatalogSQLiteRepository) listCatalog(ctx context.Context, table string) ([]catalogRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, image_path, sort_order, is_active FROM `+table+
			` WHERE is_active = 1 ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []catalogRow{}
	for rows.Next() {
		var c catalogRow
		if err := rows.Scan(&c.ID, &c.Name, &c.ImagePath, &c.SortOrder, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogSQLiteRepository) getCatalogByID(ctx context.Context, table string, id int64) (*catalogRow, error) {
	var c catalogRow
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, image_path, sort_order, is_active FROM `+table+` WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.ImagePath, &c.SortOrder, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogSQLiteRepository) createCatalog(ctx context.Context, table string, c catalogRow) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO `+table+` (name, image_path, sort_order, is_active) VALUES (?, ?, ?, ?)`,
		c.Name, c.ImagePath, c.SortOrder, c.IsActive)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *CatalogSQLiteRepository) ListTypes(ctx context.Context) ([]entities.CakeType, error) {
	rows, err := r.listCatalog(ctx, "cake_types")
	if err != nil {
		return nil, err
	}
	out := make([]entities.CakeType, 0, len(rows))
	for _, c := range rows {
		out = append(out, entities.CakeType(c))
	}
	return out, nil
}

func (r *CatalogSQLiteRepository) GetTypeByID(ctx context.Context, id int64) (*entities.CakeType, error) {
	c, err := r.getCatalogByID(ctx, "cake_types", id)
	if c == nil || err != nil {
		return nil, err
	}
	t := entities.CakeType(*c)
	return &t, nil
}

func (r *CatalogSQLiteRepository) CreateType(ctx context.Context, t entities.CakeType) (entities.CakeType, error) {
	id, err := r.createCatalog(ctx, "cake_types", catalogRow(t))
	if err != nil {
		return entities.CakeType{}, err
	}
	t.ID = id
	return t, nil
}

func (r *CatalogSQLiteRepository) ListShapes(ctx context.Context) ([]entities.CakeShape, error) {
	rows, err := r.listCatalog(ctx, "cake_shapes")
	if err != nil {
		return nil, err
	}
	out := make([]entities.CakeShape, 0, len(rows))
	for _, c := range rows {
		out = append(out, entities.CakeShape(c))
	}
	return out, nil
}

func (r *CatalogSQLiteRepository) GetShapeByID(ctx context.Context, id int64) (*entities.CakeShape, error) {
	c, err := r.getCatalogByID(ctx, "cake_shapes", id)
	if c == nil || err != nil {
		return nil, err
	}
	s := entities.CakeShape(*c)
	return &s, nil
}

func (r *CatalogSQLiteRepository) CreateShape(ctx context.Context, s entities.CakeShape) (entities.CakeShape, error) {
	id, err := r.createCatalog(ctx, "cake_shapes", catalogRow(s))
	if err != nil {
		return entities.CakeShape{}, err
	}
	s.ID = id
	return s, nil
}

func (r *CatalogSQLiteRepository) ListSizes(ctx context.Context, shapeID *int64) ([]entities.CakeSize, error) {
	query := `SELECT id, shape_id, name, dimensions, image_path, sort_order, is_active
FROM cake_sizes WHERE is_active = 1`
	args := []any{}
	if shapeID != nil {
		query += ` AND shape_id = ?`
		args = append(args, *shapeID)
	}
	query += ` ORDER BY sort_order, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.CakeSize{}
	for rows.Next() {
		var s entities.CakeSize
		if err := rows.Scan(&s.ID, &s.ShapeID, &s.Name, &s.Dimensions, &s.ImagePath, &s.SortOrder, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CatalogSQLiteRepository) GetSizeByID(ctx context.Context, id int64) (*entities.CakeSize, error) {
	var s entities.CakeSize
	err := r.db.QueryRowContext(ctx,
		`SELECT id, shape_id, name, dimensions, image_path, sort_order, is_active FROM cake_sizes WHERE id = ?`, id).
		Scan(&s.ID, &s.ShapeID, &s.Name, &s.Dimensions, &s.ImagePath, &s.SortOrder, &s.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogSQLiteRepository) CreateSize(ctx context.Context, s entities.CakeSize) (entities.CakeSize, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cake_sizes (shape_id, name, dimensions, image_path, sort_order, is_active) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ShapeID, s.Name, s.Dimensions, s.ImagePath, s.SortOrder, s.IsActive)
	if err != nil {
		return entities.CakeSize{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.CakeSize{}, err
	}
	s.ID = id
	return s, nil
}

func (r *CatalogSQLiteRepository) ListFillings(ctx context.Context) ([]entities.Filling, error) {
	rows, err := r.listCatalog(ctx, "fillings")
	if err != nil {
		return nil, err
	}
	out := make([]entities.Filling, 0, len(rows))
	for _, c := range rows {
		out = append(out, entities.Filling(c))
	}
	return out, nil
}

func (r *CatalogSQLiteRepository) GetFillingByID(ctx context.Context, id int64) (*entities.Filling, error) {
	c, err := r.getCatalogByID(ctx, "fillings", id)
	if c == nil || err != nil {
		return nil, err
	}
	f := entities.Filling(*c)
	return &f, nil
}

func (r *CatalogSQLiteRepository) CreateFilling(ctx context.Context, f entities.Filling) (entities.Filling, error) {
	id, err := r.createCatalog(ctx, "fillings", catalogRow(f))
	if err != nil {
		return entities.Filling{}, err
	}
	f.ID = id
	return f, nil
}

func (r *CatalogSQLiteRepository) ListFrostings(ctx context.Context) ([]entities.Frosting, error) {
	rows, err := r.listCatalog(ctx, "frostings")
	if err != nil {
		return nil, err
	}
	out := make([]entities.Frosting, 0, len(rows))
	for _, c := range rows {
		out = append(out, entities.Frosting(c))
	}
	return out, nil
}

func (r *CatalogSQLiteRepository) GetFrostingByID(ctx context.Context, id int64) (*entities.Frosting, error) {
	c, err := r.getCatalogByID(ctx, "frostings", id)
	if c == nil || err != nil {
		return nil, err
	}
	f := entities.Frosting(*c)
	return &f, nil
}

func (r *CatalogSQLiteRepository) CreateFrosting(ctx context.Context, f entities.Frosting) (entities.Frosting, error) {
	id, err := r.createCatalog(ctx, "frostings", catalogRow(f))
	if err != nil {
		return entities.Frosting{}, err
	}
	f.ID = id
	return f, nil
}
