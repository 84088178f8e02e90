package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/repository"
	"github.com/onebluedot/site/internal/validators"
	appErr "github.com/onebluedot/site/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of an issued access token.
const TokenTTL = time.Hour

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type Session struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
	User        models.AdminUser `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, in SignupInput) (*models.AdminUser, error)
	Login(ctx context.Context, email, password string) (*Session, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hmacSecret []byte
	now        func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, secret []byte) AuthService {
	return &authService{
		userRepo:   userRepo,
		hmacSecret: secret,
		now:        time.Now,
	}
}

func (s *authService) Register(ctx context.Context, in SignupInput) (*models.AdminUser, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validators.New().Struct(in); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, "Invalid signup data: "+strings.Join(validators.Fields(err), ", "))
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.AdminUser{
		Email:        in.Email,
		PasswordHash: string(ph),
		Name:         in.Name,
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "A user with this email address has already been registered")
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "Failed to create user")
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	invalid := appErr.New(appErr.CodeUnauthorized, "Invalid login credentials")

	var user models.AdminUser
	if err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)), &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"exp":   s.now().Add(TokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(TokenTTL / time.Second),
		User:        user,
	}, nil
}
