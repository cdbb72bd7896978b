package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/config"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, userID uint64) error
	GetProfile(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
	cfg        *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		logger:     logger,
		cfg:        cfg,
	}
}

func loginAttemptsKey(email string) string { return fmt.Sprintf("login_attempts:%s", email) }
func refreshKey(userID uint64) string      { return fmt.Sprintf("refresh_whitelist:%d", userID) }

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	logger := s.logger.With(zap.String("email", payload.Email))

	attemptsKey := loginAttemptsKey(payload.Email)
	attemptsStr, _ := s.cacheRepo.Get(ctx, attemptsKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		logger.Warn("Вход заблокирован: превышено число неудачных попыток")
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Слишком много попыток входа. Попробуйте через %.0f минут.", s.cfg.LockoutDuration.Minutes()),
			nil, nil,
		)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		s.registerFailedAttempt(ctx, attemptsKey)
		logger.Warn("Попытка входа с неизвестным email")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, attemptsKey)
		logger.Warn("Неверный пароль", zap.Uint64("userID", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("не удалось выпустить токены: %w", err)
	}

	// whitelist: действителен только последний выданный refresh-токен
	if err := s.cacheRepo.Set(ctx, refreshKey(user.ID), refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, fmt.Errorf("не удалось сохранить refresh-токен: %w", err)
	}
	_ = s.cacheRepo.Del(ctx, attemptsKey)

	logger.Info("Пользователь вошёл в систему", zap.Uint64("userID", user.ID))

	return &dto.LoginResponseDTO{
		TokenPairDTO: dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken},
		User:         utils.ToUserDTO(user),
	}, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	count, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		s.logger.Error("Не удалось увеличить счётчик неудачных попыток", zap.Error(err))
		return
	}
	if count == 1 {
		_, _ = s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration)
	}
}

// Refresh меняет действующую пару токенов на новую. Старый refresh-токен
// после ротации недействителен.
func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.cacheRepo.Get(ctx, refreshKey(claims.UserID))
	if err != nil || stored != payload.RefreshToken {
		s.logger.Warn("Refresh-токен отсутствует в whitelist", zap.Uint64("userID", claims.UserID))
		return nil, apperrors.ErrTokenRevoked
	}

	// роль перечитываем из БД: могла измениться с момента выпуска токена
	user, err := s.userRepo.FindUser(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrTokenRevoked
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("не удалось выпустить токены: %w", err)
	}

	if err := s.cacheRepo.Set(ctx, refreshKey(user.ID), refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, fmt.Errorf("не удалось сохранить refresh-токен: %w", err)
	}

	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint64) error {
	if err := s.cacheRepo.Del(ctx, refreshKey(userID)); err != nil {
		return fmt.Errorf("не удалось отозвать refresh-токен: %w", err)
	}
	s.logger.Info("Пользователь вышел из системы", zap.Uint64("userID", userID))
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint64) (*entities.User, error) {
	return s.userRepo.FindUser(ctx, userID)
}
