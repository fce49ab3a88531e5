package services

import (
	"errors"
	"fmt"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/redis"
	"restaurant_manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionStore is the slice of the Redis client auth needs. Deleting a
// session revokes its token before the JWT expiry.
type SessionStore interface {
	SetSession(sessionID string, data *redis.StaffSession, ttl time.Duration) error
	GetSession(sessionID string) (*redis.StaffSession, error)
	DeleteSession(sessionID string) error
}

type AuthService interface {
	Login(username, password string) (string, *models.User, error)
	Logout(sessionID string) error
	CreateStaff(username, password, role string) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   SessionStore
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, jwtSecret string, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	session := &redis.StaffSession{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(sessionID, session, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"sid":  sessionID,
		"exp":  time.Now().Add(s.sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, user, nil
}

func (s *authService) Logout(sessionID string) error {
	return s.sessions.DeleteSession(sessionID)
}

func (s *authService) CreateStaff(username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if !models.ValidStaffRole(role) {
		return nil, fmt.Errorf("%w: role must be manager, chef, kitchen_staff or server", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
