package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"intranet-portal/pkg/constants"
)

func TestCan_AdminOnlyMutations(t *testing.T) {
	resources := []string{
		ResourceUsers, ResourcePositions, ResourceRegulations,
		ResourceRegulationGroups, ResourcePosts, ResourceEvents,
		ResourceStatistics, ResourceLinks,
	}

	for _, resource := range resources {
		assert.True(t, Can(constants.RoleAdmin, resource, ActionCreate), resource)
		assert.False(t, Can(constants.RoleMember, resource, ActionCreate), resource)
		assert.False(t, Can(constants.RoleOwner, resource, ActionCreate), resource)
	}
}

func TestCan_ReadOpenToAllRoles(t *testing.T) {
	for _, role := range constants.AllRoles {
		assert.True(t, Can(role, ResourcePosts, ActionRead), role)
		assert.True(t, Can(role, ResourceRegulations, ActionRead), role)
		assert.True(t, Can(role, ResourceStatistics, ActionRead), role)
	}
}

func TestCan_LikesAndCommentsForEveryone(t *testing.T) {
	for _, role := range constants.AllRoles {
		assert.True(t, Can(role, ResourceLikes, ActionCreate), role)
		assert.True(t, Can(role, ResourceComments, ActionCreate), role)
	}
}

func TestCan_FeedbackAnswersAdminOnly(t *testing.T) {
	assert.True(t, Can(constants.RoleAdmin, ResourceFeedbackAnswers, ActionCreate))
	assert.False(t, Can(constants.RoleGroupLeader, ResourceFeedbackAnswers, ActionCreate))
}

func TestCan_UnknownDenied(t *testing.T) {
	assert.False(t, Can(constants.RoleAdmin, "unknown-resource", ActionRead))
	assert.False(t, Can(constants.RoleAdmin, ResourceLikes, ActionDelete))
	assert.False(t, Can("unknown-role", ResourcePosts, ActionRead))
}
