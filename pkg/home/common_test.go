package home

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/home-sensor-api/pkg/db"
	"liyu1981.xyz/home-sensor-api/pkg/home/mocks"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

func GetMockHomeWithMemorySqliteDialector(t *testing.T, useMockTemperatures, useMockAuth bool) (
	*gomock.Controller,
	*Home,
	*mocks.MockITemperature,
	*mocks.MockIAuth,
) {
	ctrl := gomock.NewController(t)

	mockTemperatures := mocks.NewMockITemperature(ctrl)
	mockAuth := mocks.NewMockIAuth(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	homeInstance := (&Home{Db: *dbInstance}).WithDefaultServices()

	opts := ServiceOpts{}
	if useMockTemperatures {
		opts.Temperatures = mockTemperatures
	}
	if useMockAuth {
		opts.Auth = mockAuth
	}
	homeInstance.WithServices(opts)

	return ctrl, homeInstance, mockTemperatures, mockAuth
}

// createTestUser inserts a user with a unique username straight through gorm,
// the shared memory database outlives a single test.
func createTestUser(t *testing.T, h *Home) *models.User {
	t.Helper()

	user := &models.User{
		Username: "u-" + uuid.NewString()[:8],
		Name:     "Test User",
		Password: "unused",
	}
	require.NoError(t, h.Db.Conn.WithContext(context.Background()).Create(user).Error)
	return user
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
