package home

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

const ownedRow = "id = ? AND user_id = ?"

type resourceStore[T models.Record] struct {
	home   *Home
	family string
}

func newResourceStore[T models.Record](h *Home, family string) *resourceStore[T] {
	return &resourceStore[T]{home: h, family: family}
}

func (s *resourceStore[T]) conn(ctx context.Context) *gorm.DB {
	return s.home.Db.Conn.WithContext(ctx)
}

func (s *resourceStore[T]) logger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, s.family),
	)
}

func (s *resourceStore[T]) storeError(op string, id uint, err error) error {
	s.logger().Error("Store operation failed",
		zap.String("op", op),
		zap.Uint("id", id),
		zap.Error(err),
	)
	return &StoreError{Op: op, Family: s.family, ID: id, Err: err}
}

func (s *resourceStore[T]) List(ctx context.Context, userID uint) ([]T, error) {
	records := []T{}
	if err := s.conn(ctx).Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, s.storeError("list", 0, err)
	}
	return records, nil
}

func (s *resourceStore[T]) Get(ctx context.Context, userID, id uint) (*T, error) {
	var rec T
	err := s.conn(ctx).Where(ownedRow, id, userID).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.storeError("get", id, err)
	}
	return &rec, nil
}

// Create inserts rec and reads it back through Get, so the caller sees
// exactly what was persisted.
func (s *resourceStore[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if rec == nil {
		return nil, s.storeError("create", 0, errors.New("nil record"))
	}

	logger := s.logger()
	logger.Info("Received "+s.family, zap.Reflect(s.family, *rec))

	if err := s.conn(ctx).Create(rec).Error; err != nil {
		return nil, s.storeError("create", 0, err)
	}

	meta := (*rec).Meta()
	logger.Info("Created "+s.family, zap.Uint("id", meta.ID), zap.Uint("user", meta.UserID))

	return s.Get(ctx, meta.UserID, meta.ID)
}

// Update replaces date and value of the row owned by userID. The id and owner
// carried by rec are ignored.
func (s *resourceStore[T]) Update(ctx context.Context, userID, id uint, rec *T) (*T, error) {
	if rec == nil {
		return nil, s.storeError("update", id, errors.New("nil record"))
	}

	result := s.conn(ctx).
		Model(new(T)).
		Where(ownedRow, id, userID).
		Select("date", "value").
		Updates(rec)
	if result.Error != nil {
		return nil, s.storeError("update", id, result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger().Info("Updated "+s.family, zap.Uint("id", id), zap.Uint("user", userID))
	}

	// mysql reports 0 rows for a matched but unchanged row, so Get decides
	// between ErrNotFound and the current state
	return s.Get(ctx, userID, id)
}

// Delete is idempotent: removing an absent or foreign row is not an error.
func (s *resourceStore[T]) Delete(ctx context.Context, userID, id uint) error {
	result := s.conn(ctx).Where(ownedRow, id, userID).Delete(new(T))
	if result.Error != nil {
		return s.storeError("delete", id, result.Error)
	}

	s.logger().Info("Deleted "+s.family,
		zap.Uint("id", id),
		zap.Uint("user", userID),
		zap.Int64("rows", result.RowsAffected),
	)
	return nil
}

func (h *Home) GetISwitch() ISwitch {
	return newResourceStore[models.Switch](h, "switch")
}

func (h *Home) GetILight() ILight {
	return newResourceStore[models.Light](h, "light")
}
