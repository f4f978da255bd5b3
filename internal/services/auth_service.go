package services

import (
	"context"
	"strings"
	"time"

	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterStudentInput carries the fields of a student sign-up.
type RegisterStudentInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

// RegisterVendorInput carries the fields of a stall sign-up.
type RegisterVendorInput struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	StallName string  `json:"stall_name"`
	OwnerName string  `json:"owner_name"`
	Phone     *string `json:"phone"`
}

// AuthServiceInterface defines registration, login, and token issuing.
type AuthServiceInterface interface {
	RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*models.Student, error)
	RegisterVendor(ctx context.Context, input *RegisterVendorInput) (*models.Vendor, error)
	Login(ctx context.Context, username, password string) (*models.TokenResponse, error)
	ParseToken(tokenString string) (userID uuid.UUID, role string, err error)
}

type authService struct {
	userRepo    repositories.UserRepository
	studentRepo repositories.StudentRepository
	vendorRepo  repositories.VendorRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, studentRepo repositories.StudentRepository, vendorRepo repositories.VendorRepository, jwtSecret string, tokenTTL time.Duration) AuthServiceInterface {
	return &authService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		vendorRepo:  vendorRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

func (s *authService) createUser(ctx context.Context, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return nil, ErrInvalidInput
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*models.Student, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.createUser(ctx, input.Username, input.Password, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:      uuid.New(),
		UserID:  user.ID,
		Name:    strings.TrimSpace(input.Name),
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *authService) RegisterVendor(ctx context.Context, input *RegisterVendorInput) (*models.Vendor, error) {
	if strings.TrimSpace(input.StallName) == "" || strings.TrimSpace(input.OwnerName) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.createUser(ctx, input.Username, input.Password, models.RoleVendor)
	if err != nil {
		return nil, err
	}

	vendor := &models.Vendor{
		ID:        uuid.New(),
		UserID:    user.ID,
		StallName: strings.TrimSpace(input.StallName),
		OwnerName: strings.TrimSpace(input.OwnerName),
		Phone:     input.Phone,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrUnauthenticated
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokenTTL.Seconds()),
	}, nil
}

// ParseToken validates a signed token and extracts the identity claims.
func (s *authService) ParseToken(tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrUnauthenticated
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrUnauthenticated
	}
	return userID, role, nil
}
