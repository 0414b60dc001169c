package authz

import (
	"intranet-portal/pkg/constants"
)

// Действия над ресурсом. Read покрывает GET-маршруты, остальные — мутации.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Ресурсы портала. Имена совпадают с префиксами маршрутов.
const (
	ResourceUsers            = "users"
	ResourcePositions        = "positions"
	ResourceRegulations      = "regulations"
	ResourceRegulationGroups = "regulation-groups"
	ResourcePosts            = "posts"
	ResourceComments         = "comments"
	ResourceLikes            = "likes"
	ResourceEvents           = "events"
	ResourceFeedback         = "feedback"
	ResourceFeedbackAnswers  = "feedback-answers"
	ResourceStatistics       = "statistics"
	ResourceLinks            = "links"
	ResourceDocumentation    = "documentation"
)

var anyAuthenticated = constants.AllRoles

var adminOnly = []string{constants.RoleAdmin}

// policy — единственное место, где определяется, какие роли имеют доступ
// к какому действию над каким ресурсом. Маршруты берут правила отсюда,
// поэтому дублирующихся и противоречащих проверок по обработчикам нет.
var policy = map[string]map[string][]string{
	ResourceUsers: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourcePositions: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceRegulations: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceRegulationGroups: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourcePosts: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceComments: {
		ActionCreate: anyAuthenticated,
	},
	ResourceLikes: {
		ActionCreate: anyAuthenticated,
	},
	ResourceEvents: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceFeedback: {
		ActionRead:   anyAuthenticated,
		ActionCreate: anyAuthenticated,
	},
	ResourceFeedbackAnswers: {
		ActionCreate: adminOnly,
	},
	ResourceStatistics: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceLinks: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceDocumentation: {
		ActionRead:   anyAuthenticated,
		ActionCreate: adminOnly,
	},
}

// Can сообщает, разрешено ли роли выполнить действие над ресурсом.
// Неизвестный ресурс или действие запрещены.
func Can(role, resource, action string) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}
	allowed, ok := actions[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
