//go:build unit

package operator_test

import (
	"testing"

	"adslot-panel/internal/domain/operator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func TestNewOperator(t *testing.T) {
	t.Run("stable id per name", func(t *testing.T) {
		op1, err := operator.NewOperator("ana", operator.RoleAdmin, hash)
		require.NoError(t, err)
		op2, err := operator.NewOperator("ana", operator.RoleViewer, hash)
		require.NoError(t, err)
		op3, err := operator.NewOperator("luis", operator.RoleAdmin, hash)
		require.NoError(t, err)

		assert.Equal(t, op1.ID(), op2.ID(), "id derives from the name only")
		assert.NotEqual(t, op1.ID(), op3.ID())
		assert.NotEqual(t, uuid.Nil, op1.ID())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := operator.NewOperator("", operator.RoleAdmin, hash)
		require.ErrorIs(t, err, operator.ErrMalformedEntry)

		_, err = operator.NewOperator("ana", operator.RoleAdmin, "")
		require.ErrorIs(t, err, operator.ErrMalformedEntry)

		_, err = operator.NewOperator("ana", operator.Role("owner"), hash)
		require.ErrorIs(t, err, operator.ErrInvalidRole)
	})
}

func TestParseDirectory(t *testing.T) {
	t.Run("parses entries and resolves lookups", func(t *testing.T) {
		dir, err := operator.ParseDirectory([]string{
			"ana:admin:" + hash,
			"luis:viewer:" + hash,
		})
		require.NoError(t, err)

		ana, err := dir.FindByName("ana")
		require.NoError(t, err)
		assert.Equal(t, operator.RoleAdmin, ana.Role())
		assert.Equal(t, hash, ana.PasswordHash())

		byID, err := dir.FindByID(ana.ID())
		require.NoError(t, err)
		assert.Equal(t, ana, byID)
	})

	t.Run("hash containing colons survives the split", func(t *testing.T) {
		dir, err := operator.ParseDirectory([]string{"ana:admin:a:b:c"})
		require.NoError(t, err)

		ana, err := dir.FindByName("ana")
		require.NoError(t, err)
		assert.Equal(t, "a:b:c", ana.PasswordHash())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := operator.ParseDirectory([]string{"ana:admin"})
		require.ErrorIs(t, err, operator.ErrMalformedEntry)

		_, err = operator.ParseDirectory([]string{"ana:owner:" + hash})
		require.ErrorIs(t, err, operator.ErrInvalidRole)
	})

	t.Run("unknown lookups", func(t *testing.T) {
		dir, err := operator.ParseDirectory(nil)
		require.NoError(t, err)

		_, err = dir.FindByName("nadie")
		require.ErrorIs(t, err, operator.ErrOperatorNotFound)

		_, err = dir.FindByID(uuid.New())
		require.ErrorIs(t, err, operator.ErrOperatorNotFound)
	})
}
