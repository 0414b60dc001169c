package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intranet-portal/internal/entities"
	"intranet-portal/pkg/constants"
)

func groupNum(n int) *int { return &n }

func TestBuildOrgChart_FullHierarchy(t *testing.T) {
	users := []*entities.User{
		{ID: 1, Name: "Owner", Role: constants.RoleOwner},
		{ID: 2, Name: "CEO", Role: constants.RoleCEO},
		{ID: 3, Name: "Director", Role: constants.RoleDirector},
		{ID: 4, Name: "Leader1", Role: constants.RoleGroupLeader, GroupNumber: groupNum(1)},
		{ID: 5, Name: "Leader2", Role: constants.RoleGroupLeader, GroupNumber: groupNum(2)},
		{ID: 6, Name: "Member1", Role: constants.RoleMember, GroupNumber: groupNum(1)},
		{ID: 7, Name: "Member2", Role: constants.RoleMember, GroupNumber: groupNum(1)},
		{ID: 8, Name: "Member3", Role: constants.RoleMember, GroupNumber: groupNum(2)},
	}

	chart := BuildOrgChart(users)

	require.NotNil(t, chart.Owner)
	assert.Equal(t, uint64(1), chart.Owner.ID)
	require.NotNil(t, chart.CEO)
	assert.Equal(t, uint64(2), chart.CEO.ID)
	require.NotNil(t, chart.Director)
	assert.Equal(t, uint64(3), chart.Director.ID)

	require.NotNil(t, chart.Groups[0].Leader)
	assert.Equal(t, uint64(4), chart.Groups[0].Leader.ID)
	assert.Len(t, chart.Groups[0].Members, 2)

	require.NotNil(t, chart.Groups[1].Leader)
	assert.Equal(t, uint64(5), chart.Groups[1].Leader.ID)
	assert.Len(t, chart.Groups[1].Members, 1)
	assert.Equal(t, uint64(8), chart.Groups[1].Members[0].ID)
}

func TestBuildOrgChart_SkipsUnrecognized(t *testing.T) {
	users := []*entities.User{
		{ID: 1, Name: "Admin", Role: constants.RoleAdmin},
		{ID: 2, Name: "NoGroupLeader", Role: constants.RoleGroupLeader},
		{ID: 3, Name: "OutOfRange", Role: constants.RoleMember, GroupNumber: groupNum(3)},
		{ID: 4, Name: "NoGroupMember", Role: constants.RoleMember},
	}

	chart := BuildOrgChart(users)

	assert.Nil(t, chart.Owner)
	assert.Nil(t, chart.CEO)
	assert.Nil(t, chart.Director)
	assert.Nil(t, chart.Groups[0].Leader)
	assert.Nil(t, chart.Groups[1].Leader)
	assert.Empty(t, chart.Groups[0].Members)
	assert.Empty(t, chart.Groups[1].Members)
}

func TestBuildOrgChart_FirstSingletonWins(t *testing.T) {
	users := []*entities.User{
		{ID: 1, Name: "FirstOwner", Role: constants.RoleOwner},
		{ID: 2, Name: "SecondOwner", Role: constants.RoleOwner},
		{ID: 3, Name: "FirstLeader", Role: constants.RoleGroupLeader, GroupNumber: groupNum(1)},
		{ID: 4, Name: "SecondLeader", Role: constants.RoleGroupLeader, GroupNumber: groupNum(1)},
	}

	chart := BuildOrgChart(users)

	require.NotNil(t, chart.Owner)
	assert.Equal(t, uint64(1), chart.Owner.ID)
	require.NotNil(t, chart.Groups[0].Leader)
	assert.Equal(t, uint64(3), chart.Groups[0].Leader.ID)
}

func TestBuildOrgChart_GroupNumbersFixed(t *testing.T) {
	chart := BuildOrgChart(nil)

	assert.Equal(t, 1, chart.Groups[0].Number)
	assert.Equal(t, 2, chart.Groups[1].Number)
	assert.NotNil(t, chart.Groups[0].Members)
	assert.NotNil(t, chart.Groups[1].Members)
}
