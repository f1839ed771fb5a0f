package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/techmire/payroll-backend-go/internal/domain/auth"
	"github.com/techmire/payroll-backend-go/internal/domain/employee"
	"github.com/techmire/payroll-backend-go/internal/domain/user"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
	"github.com/techmire/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Register implements auth.AuthService. Employee accounts must reference an
// existing directory entry so their payroll scoping works.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	if req.Role == string(user.RoleEmployee) {
		if _, err := s.employeeRepo.GetByEmployeeID(ctx, *req.EmployeeID); err != nil {
			return auth.AuthResponse{}, "", 0, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	return s.issueTokens(created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, "", 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh implements auth.AuthService. The presented refresh token is
// revoked on success so each token is single-use.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, string, int64, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AuthResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.AuthResponse{}, "", 0, auth.ErrInvalidToken
	}

	if typ, ok := token.Get("type"); !ok || typ != "refresh" {
		return auth.AuthResponse{}, "", 0, auth.ErrInvalidToken
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return auth.AuthResponse{}, "", 0, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID.(string))
	if err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.AuthResponse, string, int64, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.EmployeeID)
	if err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	resp := auth.AuthResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		User: auth.UserResponse{
			ID:         u.ID,
			Email:      u.Email,
			Role:       string(u.Role),
			EmployeeID: u.EmployeeID,
		},
	}
	return resp, refreshToken, refreshExpiresAt, nil
}
