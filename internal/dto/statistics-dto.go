package dto

// Числовые поля — указатели: проверяется наличие значения, а не его "истинность",
// поэтому легальный ноль проходит валидацию.
type CreateStatisticsDTO struct {
	Month            string   `json:"month" validate:"required"`
	Year             int      `json:"year" validate:"required"`
	NetIncome        *float64 `json:"netIncome" validate:"required"`
	Commissions      *float64 `json:"commissions" validate:"required"`
	NumberOfOrders   *int     `json:"numberOfOrders" validate:"required"`
	AvgOrdersPerUser *float64 `json:"avgOrdersPerUser" validate:"required"`
	AvgTicketValue   *float64 `json:"avgTicketValue" validate:"required"`
}

// BulkStatisticsDTO — полный апсерт года: существующие месяцы перезаписываются,
// отсутствующие создаются. Повторная отправка того же payload безопасна.
type BulkStatisticsDTO []CreateStatisticsDTO
