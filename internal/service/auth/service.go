package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/auth"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/organization"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/user"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/jwt"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db               *database.DB
	jwtService       jwt.Service
	jwtRepo          postgresql.JWTRepository
	userRepo         user.UserRepository
	organizationRepo organization.OrganizationRepository
}

func NewAuthService(
	db *database.DB,
	jwtService jwt.Service,
	jwtRepo postgresql.JWTRepository,
	userRepo user.UserRepository,
	organizationRepo organization.OrganizationRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:               db,
		jwtService:       jwtService,
		jwtRepo:          jwtRepo,
		userRepo:         userRepo,
		organizationRepo: organizationRepo,
	}
}

// Register creates a new organization with its owner user in one
// transaction.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	exists, err := a.organizationRepo.ExistsByUsername(ctx, req.OrganizationUsername)
	if err != nil {
		return auth.RegisterResponse{}, err
	}
	if exists {
		return auth.RegisterResponse{}, organization.ErrUsernameExists
	}

	if _, err := a.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.RegisterResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.RegisterResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var response auth.RegisterResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		org, err := a.organizationRepo.Create(txCtx, organization.Organization{
			Name:     req.OrganizationName,
			Username: req.OrganizationUsername,
		})
		if err != nil {
			return err
		}

		hash := string(passwordHash)
		owner, err := a.userRepo.Create(txCtx, user.User{
			OrganizationID: org.ID,
			Email:          req.Email,
			PasswordHash:   &hash,
			Role:           user.RoleOwner,
			FullName:       req.FullName,
		})
		if err != nil {
			return err
		}

		response = auth.RegisterResponse{
			OrganizationID: org.ID,
			UserID:         owner.ID,
			Email:          owner.Email,
		}
		return nil
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return response, nil
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.OrganizationID, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.jwtRepo.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// Rotate: revoke the presented token before issuing a new pair.
	if err := a.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return a.jwtRepo.RevokeRefreshToken(ctx, refreshToken)
}
