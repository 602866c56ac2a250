package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carolinyr9/estocai/pkg/jwt"
)

const testSecret = "chave-de-teste"

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "carol", "ADMIN", "estocai", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "carol", username)
	assert.Equal(t, "ADMIN", role)
}

func TestGenerateEmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "carol", "USER", "estocai", 15)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "carol", "USER", "estocai", 15)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("outra-chave", token)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "carol", "USER", "estocai", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, _, _, err := jwt.Parse(testSecret, "nem.um.jwt")
	assert.Error(t, err)
}
