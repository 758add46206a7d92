package kernel_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse known roles", func(t *testing.T) {
		cases := map[string]kernel.Role{
			"customer":  kernel.RoleCustomer,
			"fulfiller": kernel.RoleFulfiller,
			"admin":     kernel.RoleAdmin,
		}

		for name, want := range cases {
			role, err := kernel.RoleFromString(name)

			require.NoError(t, err)
			assert.Equal(t, want, role)
			assert.Equal(t, name, role.String())
		}
	})

	t.Run("should reject unknown role names", func(t *testing.T) {
		role, err := kernel.RoleFromString("manager")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, kernel.RoleUnknown, role)
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, kernel.RoleCustomer.Validate())
	require.NoError(t, kernel.RoleFulfiller.Validate())
	require.NoError(t, kernel.RoleAdmin.Validate())
	require.Error(t, kernel.RoleUnknown.Validate())
	require.Error(t, kernel.Role(42).Validate())
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor with valid identity and role", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleCustomer)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleCustomer, actor.Role())
		assert.False(t, actor.IsAdmin())
		require.NoError(t, actor.Validate())
	})

	t.Run("should fail with zero identity", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.NewActor(id, kernel.RoleCustomer)

		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value actor fails validation", func(t *testing.T) {
		var actor kernel.Actor

		require.Error(t, actor.Validate())
	})
}
