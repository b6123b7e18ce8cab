package repository

import (
	"context"
	"database/sql"
	"errors"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

// CakeSQLiteRepository persists Cake entities in SQLite.
//
// Reads join the owning template so callers get the base-ingredient map in
// one round-trip; the join is LEFT so a cake whose template row vanished
// still comes back (with Template nil), which the pricing core treats as a
// zero-cost template.

type CakeSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ICakeRepository = (*CakeSQLiteRepository)(nil)

func NewCakeSQLiteRepository(db *sql.DB) *CakeSQLiteRepository {
	return &CakeSQLiteRepository{db: db}
}

const cakeSelect = `
SELECT c.id, c.name, c.template_id, c.extra_ingredients, c.labor, c.other_costs,
       t.id, t.name, t.size, t.type, t.base_ingredients
FROM cakes c
LEFT JOIN templates t ON t.id = c.template_id`

func scanCake(scan func(dest ...any) error) (entities.Cake, error) {
	var (
		c      entities.Cake
		tplID  sql.NullInt64
		tpl    entities.Template
		tplStr [3]sql.NullString
		tplIng sql.NullString
	)
	err := scan(&c.ID, &c.Name, &c.TemplateID, &c.ExtraIngredients, &c.Labor, &c.OtherCosts,
		&tplID, &tplStr[0], &tplStr[1], &tplStr[2], &tplIng)
	if err != nil {
		return entities.Cake{}, err
	}
	if tplID.Valid {
		tpl.ID = tplID.Int64
		tpl.Name = tplStr[0].String
		tpl.Size = tplStr[1].String
		tpl.Type = tplStr[2].String
		tpl.BaseIngredients = tplIng.String
		c.Template = &tpl
	}
	return c, nil
}

func (r *CakeSQLiteRepository) Create(ctx context.Context, c entities.Cake) (entities.Cake, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cakes (name, template_id, extra_ingredients, labor, other_costs) VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.TemplateID, c.ExtraIngredients, c.Labor, c.OtherCosts)
	if err != nil {
		return entities.Cake{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.Cake{}, err
	}
	c.ID = id
	return c, nil
}

func (r *CakeSQLiteRepository) GetByID(ctx context.Context, id int64) (*entities.Cake, error) {
	row := r.db.QueryRowContext(ctx, cakeSelect+` WHERE c.id = ?`, id)
	c, err := scanCake(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CakeSQLiteRepository) GetAll(ctx context.Context) ([]entities.Cake, error) {
	rows, err := r.db.QueryContext(ctx, cakeSelect+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Cake{}
	for rows.Next() {
		c, err := scanCake(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CakeSQLiteRepository) Update(ctx context.Context, c entities.Cake) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cakes SET name = ?, template_id = ?, extra_ingredients = ?, labor = ?, other_costs = ? WHERE id = ?`,
		c.Name, c.TemplateID, c.ExtraIngredients, c.Labor, c.OtherCosts, c.ID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}

func (r *CakeSQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cakes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}
