package constants

// Роли пользователей портала. Значения хранятся в колонке users.role как есть.
const (
	RoleOwner       = "owner"
	RoleCEO         = "ceo"
	RoleDirector    = "director"
	RoleGroupLeader = "groupLeader"
	RoleMember      = "member"
	RoleAdmin       = "admin"
)

// AllRoles — полный список допустимых ролей для валидации входных данных.
var AllRoles = []string{RoleOwner, RoleCEO, RoleDirector, RoleGroupLeader, RoleMember, RoleAdmin}

// Типы постов ленты новостей.
const (
	PostTypeAnnouncement = "announcement"
	PostTypeEvent        = "event"
	PostTypeAchievement  = "achievement"
	PostTypePlan         = "plan"
)

// Статусы постов-планов.
const (
	PlanStatusPending    = "pending"
	PlanStatusInProgress = "in_progress"
	PlanStatusCompleted  = "completed"
)
