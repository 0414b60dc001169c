package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
)

func testUser(email string) entities.User {
	return entities.User{
		Email:          email,
		Password:       "hash",
		Name:           "Сотрудник Тестовый",
		Role:           "member",
		BirthDate:      time.Date(1991, 3, 14, 0, 0, 0, 0, time.UTC),
		EmploymentDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository_Integration_UpdateOwnerFlag(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	repo := NewUserRepository(testPool, zap.NewNop())

	var newID uint64
	err := WithTx(context.Background(), testPool, func(tx pgx.Tx) error {
		var txErr error
		newID, txErr = repo.Create(context.Background(), tx, testUser("owner-flag@portal.local"), nil)
		return txErr
	})
	require.NoError(t, err)

	created, err := repo.FindByID(context.Background(), newID)
	require.NoError(t, err)
	require.False(t, created.IsOwner)

	updated := *created
	updated.IsOwner = true
	err = WithTx(context.Background(), testPool, func(tx pgx.Tx) error {
		return repo.Update(context.Background(), tx, newID, updated, nil)
	})
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), newID)
	require.NoError(t, err)
	assert.True(t, found.IsOwner, "Признак владельца должен меняться при редактировании")
	assert.Equal(t, created.Email, found.Email)
}
