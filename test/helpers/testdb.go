package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cornerstone_backend/internal/models"
)

// CreateUser inserts a user, hashing PasswordHash when it is still a raw
// password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash password")
		user.PasswordHash = string(hashed)
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.UserRoleMember
	}

	require.NoError(t, db.Create(user).Error, "failed to create user %s", user.Email)
}

// CreateAndLoginUser inserts a user and logs them in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: %s", bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginMember creates a member with a unique email.
func CreateAndLoginMember(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("member_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Member", email, "password123", models.UserRoleMember)
}
