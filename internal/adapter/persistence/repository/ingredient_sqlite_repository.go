package repository

import (
	"context"
	"database/sql"
	"errors"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

// IngredientSQLiteRepository persists Ingredient entities in SQLite.
//
// Monetary columns are stored as TEXT and scanned through
// decimal.Decimal's sql.Scanner, so costs survive round-trips exactly.

type IngredientSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IIngredientRepository = (*IngredientSQLiteRepository)(nil)

func NewIngredientSQLiteRepository(db *sql.DB) *IngredientSQLiteRepository {
	return &IngredientSQLiteRepository{db: db}
}

func (r *IngredientSQLiteRepository) Create(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ingredients (name, cost_per_unit) VALUES (?, ?)`,
		i.Name, i.CostPerUnit)
	if err != nil {
		return entities.Ingredient{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.Ingredient{}, err
	}
	i.ID = id
	return i, nil
}

func (r *IngredientSQLiteRepository) GetByID(ctx context.Context, id int64) (*entities.Ingredient, error) {
	var i entities.Ingredient
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, cost_per_unit FROM ingredients WHERE id = ?`, id).
		Scan(&i.ID, &i.Name, &i.CostPerUnit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IngredientSQLiteRepository) GetAll(ctx context.Context) ([]entities.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, cost_per_unit FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Ingredient{}
	for rows.Next() {
		var i entities.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.CostPerUnit); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *IngredientSQLiteRepository) Update(ctx context.Context, i entities.Ingredient) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ingredients SET name = ?, cost_per_unit = ? WHERE id = ?`,
		i.Name, i.CostPerUnit, i.ID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}

func (r *IngredientSQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}
