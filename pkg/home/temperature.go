package home

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

type temperatureStore struct {
	*resourceStore[models.Temperature]
}

// GetLatest returns the reading with the newest date, ties broken by id.
func (s *temperatureStore) GetLatest(ctx context.Context, userID uint) (*models.Temperature, error) {
	var rec models.Temperature
	err := s.conn(ctx).
		Where("user_id = ?", userID).
		Order("date desc, id desc").
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.storeError("get latest", 0, err)
	}
	return &rec, nil
}

func (h *Home) GetITemperature() ITemperature {
	return &temperatureStore{resourceStore: newResourceStore[models.Temperature](h, "temperature")}
}
