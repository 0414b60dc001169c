package dto

import "intranet-portal/internal/entities"

// OrgChartDTO — фиксированная форма организационной структуры:
// три одиночные карточки сверху и две группы рядом.
type OrgChartDTO struct {
	Owner    *entities.User   `json:"owner,omitempty"`
	CEO      *entities.User   `json:"ceo,omitempty"`
	Director *entities.User   `json:"director,omitempty"`
	Groups   [2]OrgChartGroup `json:"groups"`
}

type OrgChartGroup struct {
	Number  int             `json:"number"`
	Leader  *entities.User  `json:"leader,omitempty"`
	Members []entities.User `json:"members"`
}
