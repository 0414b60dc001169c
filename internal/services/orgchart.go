package services

import (
	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/pkg/constants"
)

// BuildOrgChart раскладывает пользователей по фиксированной форме оргструктуры:
// owner, ceo и director занимают по одной карточке, groupLeader и member
// попадают в группы 1 и 2 по номеру группы. Пользователи без подходящей роли
// или с номером группы вне диапазона в структуру не включаются.
func BuildOrgChart(users []*entities.User) *dto.OrgChartDTO {
	chart := &dto.OrgChartDTO{}
	chart.Groups[0] = dto.OrgChartGroup{Number: 1, Members: make([]entities.User, 0)}
	chart.Groups[1] = dto.OrgChartGroup{Number: 2, Members: make([]entities.User, 0)}

	for _, u := range users {
		switch u.Role {
		case constants.RoleOwner:
			if chart.Owner == nil {
				chart.Owner = u
			}
		case constants.RoleCEO:
			if chart.CEO == nil {
				chart.CEO = u
			}
		case constants.RoleDirector:
			if chart.Director == nil {
				chart.Director = u
			}
		case constants.RoleGroupLeader:
			if g := groupSlot(chart, u); g != nil && g.Leader == nil {
				g.Leader = u
			}
		case constants.RoleMember:
			if g := groupSlot(chart, u); g != nil {
				g.Members = append(g.Members, *u)
			}
		}
	}
	return chart
}

func groupSlot(chart *dto.OrgChartDTO, u *entities.User) *dto.OrgChartGroup {
	if u.GroupNumber == nil {
		return nil
	}
	switch *u.GroupNumber {
	case 1:
		return &chart.Groups[0]
	case 2:
		return &chart.Groups[1]
	}
	return nil
}
