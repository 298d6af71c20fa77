package services

import (
	"testing"

	"hotelhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	userInfo := UserInfo{
		UserId:   12,
		Username: "nguyenvana",
		Email:    "a@example.com",
		Role:     1,
	}

	token, err := GenerateToken(userInfo, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, appErr := ParseToken(token)
	require.Nil(t, appErr)
	assert.Equal(t, userInfo, claims.UserInfo)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 1}, -5)
	require.NoError(t, err)

	_, appErr := ParseToken(token)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeExpiredToken, appErr.Code)
}

func TestParseTokenGarbage(t *testing.T) {
	_, appErr := ParseToken("not-a-token")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidToken, appErr.Code)
}

func TestGetUserIDFromToken(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 7, Role: 1}, 60)
	require.NoError(t, err)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, 1, role)
}
