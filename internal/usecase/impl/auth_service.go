package impl

import (
	"context"
	"log/slog"
	"strings"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.RefreshTokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        service.Clock
	adminEmail   string
	adminPass    string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.RefreshTokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        params.Clock,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		srv.adminEmail = strings.TrimSpace(params.Config.Auth.DefaultAdmin.Email)
		srv.adminPass = params.Config.Auth.DefaultAdmin.Password
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues an access and a refresh token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, domainerrors.ErrUserInactive
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := entity.NewRefreshToken(user.ID, refreshToken, srv.clock.Now().Add(srv.tokenService.GetRefreshTokenDuration()))
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()), slog.String("role", user.Role.String()))

	return &usecase.TokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
	}, nil
}

// Refresh exchanges a valid, unrevoked refresh token for a new access token carrying the user's current role.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	session, err := srv.sessionRepo.FindByHash(ctx, entity.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	if session.UserID != userID || !session.Usable(srv.clock.Now()) {
		srv.log(ctx).Warn("Refresh rejected",
			slog.String("user_id", userID.String()),
			slog.Bool("revoked", session.Revoked),
		)

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if !user.IsActive() {
		return nil, domainerrors.ErrUserInactive
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
	}, nil
}

// Logout revokes a refresh token owned by userID. Tokens already revoked are rejected.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	session, err := srv.sessionRepo.FindByHash(ctx, entity.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrLogoutTokenInvalid
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if session.UserID != userID || session.Revoked {
		return domainerrors.ErrLogoutTokenInvalid
	}

	if err := srv.sessionRepo.Revoke(ctx, session.ID); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrLogoutTokenInvalid
		}

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	srv.log(ctx).Info("User logged out", slog.String("user_id", userID.String()))

	return nil
}

// SeedDefaultAdmin creates the configured admin account if it does not exist yet.
func (srv *authService) SeedDefaultAdmin(ctx context.Context) error {
	if srv.adminEmail == "" || srv.adminPass == "" {
		srv.log(ctx).Debug("No default admin configured")

		return nil
	}

	_, err := srv.userRepo.FindByEmail(ctx, srv.adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up default admin")
	}

	hash, err := srv.hasher.Hash(srv.adminPass)
	if err != nil {
		return err
	}

	admin := &entity.User{
		ID:           uuid.New(),
		Email:        srv.adminEmail,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
	}
	if err := srv.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil
		}

		return errors.Wrap(err, "failed to create default admin")
	}

	srv.log(ctx).Info("Default admin created", slog.String("email", srv.adminEmail))

	return nil
}
