package guard_test

import (
	"errors"
	"testing"

	"pizzaria/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage demonstrates the pattern the application commands
// rely on: a guarded struct rejects zero-value instances during Validate.
func TestConstructorGuardUsage(t *testing.T) {
	type cancelRequest struct {
		reason string
		guard  guard.ConstructorGuard
	}

	errNotConstructed := errors.New("cancelRequest must be created via newCancelRequest")

	newCancelRequest := func(reason string) cancelRequest {
		return cancelRequest{reason: reason, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_request_is_valid", func(t *testing.T) {
		req := newCancelRequest("cliente desistiu")

		require.NoError(t, req.guard.Validate(errNotConstructed))
		assert.Equal(t, "cliente desistiu", req.reason)
	})

	t.Run("zero_value_request_is_rejected", func(t *testing.T) {
		var req cancelRequest

		err := req.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
