package repository

import (
	"context"
	"database/sql"
	"errors"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

// RoleSQLiteRepository persists labor Role entities in SQLite.

type RoleSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IRoleRepository = (*RoleSQLiteRepository)(nil)

func NewRoleSQLiteRepository(db *sql.DB) *RoleSQLiteRepository {
	return &RoleSQLiteRepository{db: db}
}

func (r *RoleSQLiteRepository) Create(ctx context.Context, role entities.Role) (entities.Role, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (name, hourly_rate) VALUES (?, ?)`,
		role.Name, role.HourlyRate)
	if err != nil {
		return entities.Role{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.Role{}, err
	}
	role.ID = id
	return role, nil
}

func (r *RoleSQLiteRepository) GetByID(ctx context.Context, id int64) (*entities.Role, error) {
	var role entities.Role
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, hourly_rate FROM roles WHERE id = ?`, id).
		Scan(&role.ID, &role.Name, &role.HourlyRate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleSQLiteRepository) GetAll(ctx context.Context) ([]entities.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, hourly_rate FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Role{}
	for rows.Next() {
		var role entities.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.HourlyRate); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (r *RoleSQLiteRepository) Update(ctx context.Context, role entities.Role) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roles SET name = ?, hourly_rate = ? WHERE id = ?`,
		role.Name, role.HourlyRate, role.ID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}

func (r *RoleSQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}
