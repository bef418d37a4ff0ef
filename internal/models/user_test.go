package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueOTP(t *testing.T) {
	var u User
	code, err := u.IssueOTP()
	require.NoError(t, err)

	assert.Len(t, code, 6)
	require.NotNil(t, u.OTPCode)
	assert.Equal(t, code, *u.OTPCode)
	require.NotNil(t, u.OTPExpiresAt)
	assert.WithinDuration(t, time.Now().Add(otpTTL), *u.OTPExpiresAt, time.Second)
}

func TestVerifyOTP(t *testing.T) {
	t.Run("correct code verifies and is consumed", func(t *testing.T) {
		var u User
		code, err := u.IssueOTP()
		require.NoError(t, err)

		assert.True(t, u.VerifyOTP(code))
		assert.True(t, u.IsVerified)
		assert.Nil(t, u.OTPCode)
		assert.Nil(t, u.OTPExpiresAt)

		// Single use: the same code never works twice.
		assert.False(t, u.VerifyOTP(code))
	})

	t.Run("wrong code fails but does not consume", func(t *testing.T) {
		var u User
		code, err := u.IssueOTP()
		require.NoError(t, err)

		assert.False(t, u.VerifyOTP("000000"))
		assert.False(t, u.IsVerified)
		require.NotNil(t, u.OTPCode)

		assert.True(t, u.VerifyOTP(code))
	})

	t.Run("expired code fails and is consumed", func(t *testing.T) {
		var u User
		code, err := u.IssueOTP()
		require.NoError(t, err)

		past := time.Now().Add(-time.Minute)
		u.OTPExpiresAt = &past

		assert.False(t, u.VerifyOTP(code))
		assert.Nil(t, u.OTPCode)
		assert.Nil(t, u.OTPExpiresAt)
	})

	t.Run("no pending code", func(t *testing.T) {
		var u User
		assert.False(t, u.VerifyOTP("123456"))
	})
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleStaff))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}

func TestValidDepartment(t *testing.T) {
	assert.True(t, ValidDepartment("Roads"))
	assert.True(t, ValidDepartment("Other"))
	assert.False(t, ValidDepartment("roads"))
	assert.False(t, ValidDepartment("Parking"))
}
