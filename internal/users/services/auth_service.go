package services

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/users/models"
	"github.com/architect/francais-pro/internal/users/repository"
)

const sessionTTL = 30 * 24 * time.Hour

// Register creates an account, its session and one progress row per
// module. The learner's age is derived from the birth date.
func Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, errors.Validation("invalid birth date", "expected YYYY-MM-DD")
	}

	if existing, err := repository.GetUserByEmail(req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.Conflict("email already registered")
	}
	if existing, err := repository.GetUserByUsername(req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err.Error())
	}

	user := &models.User{
		Username:      req.Username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BirthDate:     birthDate,
		ClassLevel:    req.ClassLevel,
		Age:           ageAt(birthDate, time.Now()),
		Email:         req.Email,
		PasswordHash:  string(hash),
		Level:         1,
		XPToNextLevel: models.BaseXPPerLevel,
	}
	if err := repository.CreateUser(user); err != nil {
		return nil, err
	}

	for _, module := range catalog.Categories() {
		progress := &models.ModuleProgress{
			UserID:     user.ID,
			Module:     string(module),
			SkillLevel: 1,
		}
		if err := repository.CreateModuleProgress(progress); err != nil {
			return nil, err
		}
	}

	token, err := createSession(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: user, Token: token}, nil
}

// Login authenticates by email and password and opens a new session.
func Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := repository.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.Unauthorized("invalid email or password")
	}

	if err := repository.TouchLastLogin(user.ID); err != nil {
		return nil, err
	}

	token, err := createSession(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: user, Token: token}, nil
}

// Logout closes every session for the user.
func Logout(userID uint) error {
	return repository.DeleteSessionsByUser(userID)
}

// ValidateSession resolves a session token to a user id. Used by the
// auth middleware.
func ValidateSession(token string) (uint, error) {
	session, err := repository.GetSessionByToken(token)
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, errors.Unauthorized("invalid or expired session")
	}
	return session.UserID, nil
}

func createSession(userID uint) (string, error) {
	session := &models.Session{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := repository.CreateSession(session); err != nil {
		return "", err
	}
	return session.Token, nil
}

// ageAt computes full years elapsed between birth and now.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
