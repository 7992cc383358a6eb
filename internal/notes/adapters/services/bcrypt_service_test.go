package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/services"
	svc "github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/services"
)

func TestServiceBcrypt_Hash(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	t.Run("Успешное хэширование", func(t *testing.T) {
		hash, err := service.Hash(ctx, "correct-horse-battery")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "correct-horse-battery", hash)
	})

	t.Run("Пустой пароль", func(t *testing.T) {
		_, err := service.Hash(ctx, "")

		assert.ErrorIs(t, err, svc.ErrInvalidPassword)
	})

	t.Run("Слишком короткий пароль", func(t *testing.T) {
		_, err := service.Hash(ctx, "short")

		assert.ErrorIs(t, err, svc.ErrInvalidPassword)
	})
}

func TestServiceBcrypt_Verify(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	hash, err := service.Hash(ctx, "correct-horse-battery")
	require.NoError(t, err)

	t.Run("Пароль совпадает", func(t *testing.T) {
		ok, err := service.Verify(ctx, "correct-horse-battery", hash)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Пароль не совпадает", func(t *testing.T) {
		ok, err := service.Verify(ctx, "wrong-password", hash)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Пустой пароль", func(t *testing.T) {
		ok, err := service.Verify(ctx, "", hash)

		assert.False(t, ok)
		assert.ErrorIs(t, err, svc.ErrInvalidPassword)
	})
}
