package home

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

const DefaultSessionTTL = 24 * time.Hour

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

type authService struct {
	home *Home
	ttl  time.Duration
	now  func() time.Time
}

func (a *authService) conn(ctx context.Context) *gorm.DB {
	return a.home.Db.Conn.WithContext(ctx)
}

func (a *authService) logger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)
}

func (a *authService) storeError(op, family string, err error) error {
	a.logger().Error("Store operation failed", zap.String("op", op), zap.String("family", family), zap.Error(err))
	return &StoreError{Op: op, Family: family, Err: err}
}

// Login checks the credentials and opens a session. An unknown username and a
// wrong password are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	logger := a.logger()

	var user models.User
	err := a.conn(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_, _ = VerifyPassword(password, unknownUserHash())
		logger.Info("Login rejected", zap.String("username", username))
		return nil, "", ErrAuthFailure
	}
	if err != nil {
		return nil, "", a.storeError("get", "user", err)
	}

	ok, err := VerifyPassword(password, user.Password)
	if err != nil {
		logger.Warn("Stored password hash is unreadable", zap.Uint("user", user.ID), zap.Error(err))
	}
	if !ok {
		logger.Info("Login rejected", zap.String("username", username))
		return nil, "", ErrAuthFailure
	}

	now := a.now()
	token := newSessionToken()
	session := models.Session{
		TokenHash: HashToken(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(a.ttl),
	}
	if err := a.conn(ctx).Create(&session).Error; err != nil {
		return nil, "", a.storeError("create", "session", err)
	}

	if err := a.conn(ctx).Where("expires_at <= ?", now).Delete(&models.Session{}).Error; err != nil {
		logger.Warn("Failed to purge expired sessions", zap.Error(err))
	}

	logger.Info("Login accepted", zap.Uint("user", user.ID), zap.Time("expires_at", session.ExpiresAt))
	return &user, token, nil
}

func (a *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var session models.Session
	err := a.conn(ctx).Where("token_hash = ?", HashToken(token)).Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, a.storeError("get", "session", err)
	}

	if !a.now().Before(session.ExpiresAt) {
		if err := a.conn(ctx).Delete(&session).Error; err != nil {
			a.logger().Warn("Failed to delete expired session", zap.Uint("session", session.ID), zap.Error(err))
		}
		return nil, ErrUnauthenticated
	}

	var user models.User
	err = a.conn(ctx).Take(&user, session.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, a.storeError("get", "user", err)
	}
	return &user, nil
}

// Logout discards the session behind token; unknown tokens are not an error.
func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	result := a.conn(ctx).Where("token_hash = ?", HashToken(token)).Delete(&models.Session{})
	if result.Error != nil {
		return a.storeError("delete", "session", result.Error)
	}
	if result.RowsAffected > 0 {
		a.logger().Info("Logout")
	}
	return nil
}

func (a *authService) CreateUser(ctx context.Context, username, name, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, Name: name, Password: hash}
	err = a.conn(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrUsernameExists
	}
	if err != nil {
		return nil, a.storeError("create", "user", err)
	}

	a.logger().Info("Created user", zap.Uint("user", user.ID), zap.String("username", user.Username))
	return &user, nil
}

func (a *authService) SetPassword(ctx context.Context, userID uint, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	result := a.conn(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password", hash)
	if result.Error != nil {
		return a.storeError("update", "user", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func newSessionToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

func (h *Home) GetIAuth() IAuth {
	ttl := h.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &authService{home: h, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}
