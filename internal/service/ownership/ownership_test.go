package ownership

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savori/savory-api/internal/domain"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	todo, err := domain.NewTodo(ownerID, "task", "desc", false)
	require.NoError(t, err)

	t.Run("owner passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Check(todo, ownerID))
	})

	t.Run("other user rejected", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, Check(todo, uuid.New()), ErrNotOwned)
	})

	t.Run("nil uuid rejected", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, Check(todo, uuid.Nil), ErrNotOwned)
	})
}
