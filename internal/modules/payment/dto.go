package payment

import "inspectbook/internal/domain"

// Overview splits order history the way the dashboard shows it: pending
// payment on top, everything already paid or scheduled below.
type Overview struct {
	Pending   []domain.Order `json:"pending"`
	Completed []domain.Order `json:"completed"`
}
