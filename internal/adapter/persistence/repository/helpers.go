package repository

import "database/sql"

// rowsAffected reports whether the statement touched at least one row, so
// repositories can surface "not found" for updates and deletes.
func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
