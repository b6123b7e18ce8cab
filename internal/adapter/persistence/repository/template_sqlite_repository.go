package repository

import (
	"context"
	"database/sql"
	"errors"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

// TemplateSQLiteRepository persists Template entities in SQLite. The
// base-ingredient quantity map is stored verbatim as TEXT; the pricing
// core owns its parsing.

type TemplateSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ITemplateRepository = (*TemplateSQLiteRepository)(nil)

func NewTemplateSQLiteRepository(db *sql.DB) *TemplateSQLiteRepository {
	return &TemplateSQLiteRepository{db: db}
}

func (r *TemplateSQLiteRepository) Create(ctx context.Context, t entities.Template) (entities.Template, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO templates (name, size, type, base_ingredients) VALUES (?, ?, ?, ?)`,
		t.Name, t.Size, t.Type, t.BaseIngredients)
	if err != nil {
		return entities.Template{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.Template{}, err
	}
	t.ID = id
	return t, nil
}

func (r *TemplateSQLiteRepository) GetByID(ctx context.Context, id int64) (*entities.Template, error) {
	var t entities.Template
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, size, type, base_ingredients FROM templates WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Size, &t.Type, &t.BaseIngredients)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateSQLiteRepository) GetAll(ctx context.Context) ([]entities.Template, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, size, type, base_ingredients FROM templates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Template{}
	for rows.Next() {
		var t entities.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Size, &t.Type, &t.BaseIngredients); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TemplateSQLiteRepository) Update(ctx context.Context, t entities.Template) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE templates SET name = ?, size = ?, type = ?, base_ingredients = ? WHERE id = ?`,
		t.Name, t.Size, t.Type, t.BaseIngredients, t.ID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}

func (r *TemplateSQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}
