package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medingen/internal/apperror"
	"medingen/internal/config"
	"medingen/internal/models"
	"medingen/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EventUserRegistered is the routing key published after a successful registration.
const EventUserRegistered = "user.registered"

var (
	// ErrTokenExpired is returned by ValidateToken for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrInvalidToken is returned by ValidateToken for any other rejected token.
	ErrInvalidToken = errors.New("invalid token")
)

// EventPublisher publishes domain events. A nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// AuthResult is returned by Login and Register.
type AuthResult struct {
	Token    string
	UserID   string
	Username string
}

// TokenClaims are the claims carried by an access token.
type TokenClaims struct {
	jwt.StandardClaims
	Type string `json:"type"`
}

type registration struct {
	Username string `validate:"min=3,max=50"`
	Password string `validate:"min=6"`
}

// AuthService handles business logic for authentication.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
	publisher  EventPublisher
	validate   *validator.Validate
	log        *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtCfg config.JWTConfig, bcryptCost int, publisher EventPublisher, log *zap.Logger) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtCfg.Secret),
		tokenTTL:   jwtCfg.AccessTokenTTL,
		bcryptCost: bcryptCost,
		publisher:  publisher,
		validate:   validator.New(),
		log:        log,
	}
}

// Login checks the credentials and issues a token. An unknown username and a
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, apperror.Validation("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.Auth("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Auth("Invalid credentials")
	}

	return s.issue(user)
}

// Register creates an account and logs it in.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, apperror.Validation("Username and password are required")
	}

	input := registration{Username: strings.TrimSpace(username), Password: password}
	if err := s.validate.Struct(input); err != nil {
		return nil, registrationError(err)
	}

	if _, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperror.Conflict("Username already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.Validation("Password must be at most 72 bytes long")
		}
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		UserID:       newPublicID(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperror.Conflict("Username already exists")
		}
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.UserID), zap.String("username", user.Username))
	s.publishRegistered(user)

	return s.issue(user)
}

// ValidateToken verifies the signature and expiry of an access token.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 &&
			validationErr.Errors&^(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet|jwt.ValidationErrorIssuedAt) == 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetUser loads the account behind a token subject.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	now := time.Now()
	claims := TokenClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   user.UserID,
			IssuedAt:  now.Unix(),
			NotBefore: now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
			Id:        uuid.New().String(),
		},
		Type: "access",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &AuthResult{Token: token, UserID: user.UserID, Username: user.Username}, nil
}

func (s *AuthService) publishRegistered(user *models.User) {
	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"user_id":    user.UserID,
		"username":   user.Username,
		"created_at": user.CreatedAt,
	}
	if err := s.publisher.Publish(EventUserRegistered, event); err != nil {
		s.log.Warn("failed to publish registration event", zap.String("user_id", user.UserID), zap.Error(err))
	}
}

func registrationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Username":
			return apperror.Validation("Username must be between 3 and 50 characters")
		case "Password":
			return apperror.Validation("Password must be at least 6 characters long")
		}
	}
	return errors.Wrap(err, "failed to validate registration")
}

// newPublicID returns "user_" followed by the first 8 characters of a fresh UUID.
func newPublicID() string {
	return "user_" + uuid.New().String()[:8]
}
