package home

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

type SeedUser struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type SeedFile struct {
	Users []SeedUser `yaml:"users"`
}

func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, u := range seed.Users {
		if u.Username == "" || u.Password == "" {
			return nil, fmt.Errorf("seed user #%d: username and password are required", i+1)
		}
	}
	return &seed, nil
}

// SeedUsers creates the accounts listed in seed. Existing accounts keep their
// id and rows; name and password are refreshed when they differ.
// Returns how many accounts were created or changed.
func (h *Home) SeedUsers(ctx context.Context, seed *SeedFile) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySeed),
	)

	changed := 0
	for _, su := range seed.Users {
		var existing models.User
		err := h.Db.Conn.WithContext(ctx).Where("username = ?", su.Username).Take(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if _, err := h.Auth.CreateUser(ctx, su.Username, su.Name, su.Password); err != nil {
				return changed, fmt.Errorf("seeding user %q: %w", su.Username, err)
			}
			changed++
			continue
		}
		if err != nil {
			return changed, fmt.Errorf("seeding user %q: %w", su.Username, err)
		}

		updated := false
		if existing.Name != su.Name {
			if err := h.Db.Conn.WithContext(ctx).Model(&existing).Update("name", su.Name).Error; err != nil {
				return changed, fmt.Errorf("seeding user %q: %w", su.Username, err)
			}
			updated = true
		}
		if ok, _ := VerifyPassword(su.Password, existing.Password); !ok {
			if err := h.Auth.SetPassword(ctx, existing.ID, su.Password); err != nil {
				return changed, fmt.Errorf("seeding user %q: %w", su.Username, err)
			}
			updated = true
		}
		if updated {
			logger.Info("Refreshed seeded user", zap.String("username", su.Username))
			changed++
		}
	}

	logger.Info("Seeding completed", zap.Int("users", len(seed.Users)), zap.Int("changed", changed))
	return changed, nil
}
