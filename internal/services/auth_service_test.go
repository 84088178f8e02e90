package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/onebluedot/site/internal/models"
	appErr "github.com/onebluedot/site/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

func TestRegisterHashesPassword(t *testing.T) {
	repo := new(mockUserRepo)
	var saved *models.AdminUser
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.AdminUser")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.AdminUser) }).
		Return(nil)

	u, err := NewAuthService(repo, testSecret).Register(context.Background(), SignupInput{
		Email: " Admin@OneBlueDot.studio ", Password: "s3cret!", Name: "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@onebluedot.studio", u.Email)
	assert.Equal(t, models.RoleAdmin, u.Role)
	require.NotNil(t, saved)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("s3cret!")))
}

func TestRegisterValidation(t *testing.T) {
	_, err := NewAuthService(new(mockUserRepo), testSecret).Register(context.Background(), SignupInput{Email: "nope", Password: "1"})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestRegisterDuplicate(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(appErr.New(appErr.CodeConflict, "entity already exists"))

	_, err := NewAuthService(repo, testSecret).Register(context.Background(), SignupInput{
		Email: "a@b.co", Password: "secret", Name: "A",
	})
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	assert.Contains(t, appErr.Message(err), "already been registered")
}

func TestLoginIssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.AdminUser{ID: uuid.New(), Email: "a@b.co", PasswordHash: string(hash), Role: models.RoleAdmin}

	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "a@b.co").Return(user, nil)

	svc := NewAuthService(repo, testSecret).(*authService)
	now := time.Now()
	svc.now = func() time.Time { return now }

	sess, err := svc.Login(context.Background(), "A@b.co", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bearer", sess.TokenType)
	assert.Equal(t, int64(3600), sess.ExpiresIn)

	tok, err := jwt.Parse(sess.AccessToken, func(*jwt.Token) (any, error) { return testSecret, nil })
	require.NoError(t, err)
	sub, err := tok.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), sub)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "a@b.co").Return(&models.AdminUser{PasswordHash: string(hash)}, nil)
	repo.On("GetByEmail", mock.Anything, "x@b.co").Return(nil, appErr.New(appErr.CodeNotFound, "user not found"))

	svc := NewAuthService(repo, testSecret)
	_, err := svc.Login(context.Background(), "a@b.co", "wrong")
	assert.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
	_, err = svc.Login(context.Background(), "x@b.co", "secret")
	assert.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}
