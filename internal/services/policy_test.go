package services

import (
	"testing"

	"rentledger/internal/models"
	"rentledger/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyService_Allowed(t *testing.T) {
	policy, err := NewPolicyService()
	require.NoError(t, err)

	testCases := []struct {
		role    models.Role
		kind    types.ResourceKind
		action  types.Action
		allowed bool
	}{
		{models.RoleHouseOwner, types.ResourceUtility, types.ActionWrite, true},
		{models.RoleHouseOwner, types.ResourceReport, types.ActionRead, true},
		{models.RoleRenter, types.ResourceUtility, types.ActionRead, true},
		{models.RoleRenter, types.ResourceUtility, types.ActionWrite, false},
		{models.RoleRenter, types.ResourceHouse, types.ActionRead, false},
		{models.RoleRenter, types.ResourceFollow, types.ActionWrite, true},
		{models.RoleAdmin, types.ResourceHouse, types.ActionRead, true},
		{models.RoleAdmin, types.ResourceUtility, types.ActionWrite, false},
		{models.Role("GUEST"), types.ResourceRoom, types.ActionRead, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role)+"/"+tc.kind.String()+"/"+tc.action.String(), func(t *testing.T) {
			ok, err := policy.Allowed(tc.role, tc.kind, tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, ok)
		})
	}
}

func TestPolicyService_Require(t *testing.T) {
	policy, err := NewPolicyService()
	require.NoError(t, err)

	assert.NoError(t, policy.Require(models.RoleHouseOwner, types.ResourceRoom, types.ActionWrite))
	assert.ErrorIs(t, policy.Require(models.RoleRenter, types.ResourceRoom, types.ActionWrite), types.ErrPermissionDenied)
}
