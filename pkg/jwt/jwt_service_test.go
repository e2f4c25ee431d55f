package jwt

import (
	"Groeneweide-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("s3cret", "GROENEWEIDE")
	require.True(t, svc.Enabled())

	token, err := svc.GenerateToken("staff-1", domain.RoleStaff, time.Hour)
	require.NoError(t, err)

	subject, role, err := svc.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", subject)
	assert.Equal(t, domain.RoleStaff, role)
}

func TestGetSubjectByToken_Rejections(t *testing.T) {
	svc := NewJWTService("s3cret", "GROENEWEIDE")

	expired, err := svc.GenerateToken("staff-1", domain.RoleStaff, -time.Minute)
	require.NoError(t, err)
	_, _, err = svc.GetSubjectByToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	other, err := NewJWTService("different", "GROENEWEIDE").GenerateToken("x", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	_, _, err = svc.GetSubjectByToken(other)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	foreign, err := NewJWTService("s3cret", "ELSEWHERE").GenerateToken("x", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	_, _, err = svc.GetSubjectByToken(foreign)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = svc.GetSubjectByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewJWTService("", "GROENEWEIDE").Enabled())
}
