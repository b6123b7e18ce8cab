package entities

import "github.com/shopspring/decimal"

// Role is a labor role with its hourly rate.
type Role struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}
