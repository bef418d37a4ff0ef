package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/config"
	"github.com/smartcity/complaint-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService() *AuthService {
	return &AuthService{
		cfg: &config.Config{
			JWTSecret:   "test-secret",
			JWTExpiry:   168 * time.Hour,
			AdminSecret: "city-hall-42",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	svc := testAuthService()
	user := &models.User{
		ID:    uuid.New(),
		Email: "citizen@example.com",
		Role:  models.RoleUser,
	}

	signed, err := svc.GenerateToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "citizen@example.com", claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64((168 * time.Hour).Seconds()), exp-iat)
}

func TestResolveRole(t *testing.T) {
	svc := testAuthService()

	tests := []struct {
		name       string
		secret     string
		department string
		role       string
		wantDept   bool
	}{
		{"no secret is a citizen", "", "", models.RoleUser, false},
		{"wrong secret is a citizen", "guess", "Roads", models.RoleUser, false},
		{"secret with department is staff", "city-hall-42", "Roads", models.RoleStaff, true},
		{"secret without department is admin", "city-hall-42", "", models.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, dept := svc.resolveRole(tt.secret, tt.department)
			assert.Equal(t, tt.role, role)
			if tt.wantDept {
				require.NotNil(t, dept)
				assert.Equal(t, tt.department, *dept)
			} else {
				assert.Nil(t, dept)
			}
		})
	}
}

func TestCompleteSignup(t *testing.T) {
	t.Run("wrong code leaves the name untouched", func(t *testing.T) {
		user := &models.User{Name: "Original Name", Email: "victim@example.com"}
		_, err := user.IssueOTP()
		require.NoError(t, err)

		assert.False(t, completeSignup(user, "Attacker Chosen Name", "000000"))
		assert.Equal(t, "Original Name", user.Name)
		assert.False(t, user.IsVerified)
	})

	t.Run("expired code leaves the name untouched", func(t *testing.T) {
		user := &models.User{Name: "Original Name"}
		code, err := user.IssueOTP()
		require.NoError(t, err)
		past := time.Now().Add(-time.Minute)
		user.OTPExpiresAt = &past

		assert.False(t, completeSignup(user, "New Name", code))
		assert.Equal(t, "Original Name", user.Name)
	})

	t.Run("valid code finalizes name and verifies", func(t *testing.T) {
		user := &models.User{Name: "placeholder"}
		code, err := user.IssueOTP()
		require.NoError(t, err)

		assert.True(t, completeSignup(user, "Ayşe Yılmaz", code))
		assert.Equal(t, "Ayşe Yılmaz", user.Name)
		assert.True(t, user.IsVerified)
		assert.Nil(t, user.OTPCode)
	})
}

func TestSecretMatches(t *testing.T) {
	svc := testAuthService()
	assert.True(t, svc.SecretMatches("city-hall-42"))
	assert.False(t, svc.SecretMatches("wrong"))
	assert.False(t, svc.SecretMatches(""))

	// An unset secret matches nothing, including the empty string.
	unset := &AuthService{cfg: &config.Config{}}
	assert.False(t, unset.SecretMatches(""))
}
