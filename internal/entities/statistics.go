package entities

import (
	"intranet-portal/pkg/types"
)

// MonthlyStatistics — снимок бизнес-показателей за месяц.
// Пара (month, year) уникальна на уровне БД.
type MonthlyStatistics struct {
	ID    uint64 `json:"id" db:"id"`
	Month string `json:"month" db:"month"`
	Year  int    `json:"year" db:"year"`

	NetIncome        float64 `json:"netIncome" db:"net_income"`
	Commissions      float64 `json:"commissions" db:"commissions"`
	NumberOfOrders   int     `json:"numberOfOrders" db:"number_of_orders"`
	AvgOrdersPerUser float64 `json:"avgOrdersPerUser" db:"avg_orders_per_user"`
	AvgTicketValue   float64 `json:"avgTicketValue" db:"avg_ticket_value"`

	types.BaseEntity
}
