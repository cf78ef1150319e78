package service

import (
	"testing"

	"jokes-web/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndCheckUser(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	user, err := s.CreateUser("testuser", "hunter42")
	require.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.Equal(t, "testuser", user.Username)
	assert.NotEqual(t, "hunter42", user.PasswordHash)

	// correct credentials resolve to the created account
	got := s.CheckUser("testuser", "hunter42")
	require.NotNil(t, got)
	assert.Equal(t, user.Id, got.Id)

	// wrong password and unknown username are both nil
	assert.Nil(t, s.CheckUser("testuser", "wrong-password"))
	assert.Nil(t, s.CheckUser("nobody", "hunter42"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	_, err := s.CreateUser("dupe", "password1")
	require.NoError(t, err)

	_, err = s.CreateUser("dupe", "password2")
	assert.Error(t, err)

	count, err := s.CountUsers()
	require.NoError(t, err)
	// seed user plus one
	assert.EqualValues(t, 2, count)
}

func TestGetUser(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	user, err := s.CreateUser("lookup", "password1")
	require.NoError(t, err)

	got, err := s.GetUser(user.Id)
	require.NoError(t, err)
	assert.Equal(t, "lookup", got.Username)

	_, err = s.GetUser(999999)
	assert.True(t, database.IsNotFound(err))

	byName, err := s.GetUserByUsername("lookup")
	require.NoError(t, err)
	assert.Equal(t, user.Id, byName.Id)

	_, err = s.GetUserByUsername("missing")
	assert.True(t, database.IsNotFound(err))
}
