package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"adslot-panel/internal/domain/operator"
	reqdto "adslot-panel/internal/handler/dto/request"
	"adslot-panel/internal/pkg/errs"
	"adslot-panel/internal/pkg/jwt"
	"adslot-panel/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type LoginResult struct {
	OperatorID uuid.UUID
	TokenPair  *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	directory  *operator.Directory
	jwtService *jwt.Service
}

func NewAuthCommands(directory *operator.Directory, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		directory:  directory,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	op, err := a.directory.FindByName(req.Username)
	if err != nil {
		// Same response as a bad password: never leak which accounts exist
		slog.Warn("login attempt for unknown operator", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(op.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := a.issueTokens(op.ID(), op.Role())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		OperatorID: op.ID(),
		TokenPair:  tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(_ context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The account may have been removed from config since the token was cut
	op, err := a.directory.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrTokenValidation
	}

	return a.issueTokens(op.ID(), op.Role())
}

func (a *authCommandsImpl) issueTokens(id uuid.UUID, role operator.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(id, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
