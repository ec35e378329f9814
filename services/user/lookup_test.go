package user

import (
	"context"
	"errors"
	"testing"

	"glowbook/database/repository/memory"
	"glowbook/models"
	"glowbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUserExists(t *testing.T) {
	svc := NewUserService(memory.NewUserStore(models.User{ID: "u1", Username: "zawadi", Email: "zawadi@example.com"}))

	got, err := svc.CheckUserExists(context.Background(), "zawadi", "")
	require.NoError(t, err)
	assert.Equal(t, models.UserExistence{UsernameExists: true}, *got)

	got, err = svc.CheckUserExists(context.Background(), "nobody", " zawadi@example.com ")
	require.NoError(t, err)
	assert.Equal(t, models.UserExistence{EmailExists: true}, *got)
}

func TestCheckUserExistsRequiresOneField(t *testing.T) {
	svc := NewUserService(memory.NewUserStore())

	_, err := svc.CheckUserExists(context.Background(), " ", "")
	assert.True(t, utils.HasCode(err, utils.ErrInvalidArgument))
}

func TestCheckUserExistsStoreFailure(t *testing.T) {
	store := memory.NewUserStore()
	store.Err = errors.New("server selection timeout")
	svc := NewUserService(store)

	_, err := svc.CheckUserExists(context.Background(), "zawadi", "")
	assert.True(t, utils.HasCode(err, utils.ErrUpstreamUnavailable))
}
