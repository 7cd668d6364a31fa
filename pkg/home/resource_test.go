package home

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/models"
	_ "liyu1981.xyz/home-sensor-api/pkg/testing"
)

func TestResource_CreateAndGet(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	user := createTestUser(t, h)
	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	created, err := h.Switches.Create(ctx, &models.Switch{
		Base:  models.Base{Date: date, UserID: user.ID},
		Value: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.True(t, created.Value)
	assert.WithinDuration(t, date, created.Date, time.Millisecond)

	got, err := h.Switches.Get(ctx, user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Value)
}

func TestResource_ListIsScopedToOwner(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	alice := createTestUser(t, h)
	bob := createTestUser(t, h)

	list, err := h.Lights.List(ctx, alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)

	for _, v := range []int{10, 20} {
		_, err := h.Lights.Create(ctx, &models.Light{Base: models.Base{Date: time.Now().UTC(), UserID: alice.ID}, Value: v})
		require.NoError(t, err)
	}
	_, err = h.Lights.Create(ctx, &models.Light{Base: models.Base{Date: time.Now().UTC(), UserID: bob.ID}, Value: 99})
	require.NoError(t, err)

	list, err = h.Lights.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, l := range list {
		assert.Equal(t, alice.ID, l.UserID)
	}

	list, err = h.Lights.List(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 99, list[0].Value)
}

func TestResource_GetNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	alice := createTestUser(t, h)
	bob := createTestUser(t, h)

	_, err := h.Temperatures.Get(ctx, alice.ID, 999999)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := h.Temperatures.Create(ctx, &models.Temperature{
		Base:  models.Base{Date: time.Now().UTC(), UserID: alice.ID},
		Value: 19.5,
	})
	require.NoError(t, err)

	// another user's row behaves as absent
	_, err = h.Temperatures.Get(ctx, bob.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResource_Update(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	user := createTestUser(t, h)
	other := createTestUser(t, h)

	created, err := h.Switches.Create(ctx, &models.Switch{
		Base:  models.Base{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), UserID: user.ID},
		Value: true,
	})
	require.NoError(t, err)

	newDate := time.Date(2024, 2, 2, 8, 30, 0, 0, time.UTC)
	updated, err := h.Switches.Update(ctx, user.ID, created.ID, &models.Switch{
		Base:  models.Base{ID: created.ID + 100, Date: newDate, UserID: other.ID},
		Value: false,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, user.ID, updated.UserID)
	assert.False(t, updated.Value)
	assert.WithinDuration(t, newDate, updated.Date, time.Millisecond)

	// the stored row changed, owner and id did not
	got, err := h.Switches.Get(ctx, user.ID, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Value)

	// updating with identical values still returns the row
	again, err := h.Switches.Update(ctx, user.ID, created.ID, &models.Switch{Base: models.Base{Date: newDate}, Value: false})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestResource_UpdateMissingOrForeign(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	alice := createTestUser(t, h)
	bob := createTestUser(t, h)

	_, err := h.Lights.Update(ctx, alice.ID, 999999, &models.Light{Base: models.Base{Date: time.Now().UTC()}, Value: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := h.Lights.Create(ctx, &models.Light{Base: models.Base{Date: time.Now().UTC(), UserID: alice.ID}, Value: 5})
	require.NoError(t, err)

	_, err = h.Lights.Update(ctx, bob.ID, created.ID, &models.Light{Base: models.Base{Date: time.Now().UTC()}, Value: 50})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := h.Lights.Get(ctx, alice.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Value)
}

func TestResource_DeleteIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	alice := createTestUser(t, h)
	bob := createTestUser(t, h)

	created, err := h.Temperatures.Create(ctx, &models.Temperature{
		Base:  models.Base{Date: time.Now().UTC(), UserID: alice.ID},
		Value: 20,
	})
	require.NoError(t, err)

	// bob cannot remove alice's reading
	require.NoError(t, h.Temperatures.Delete(ctx, bob.ID, created.ID))
	_, err = h.Temperatures.Get(ctx, alice.ID, created.ID)
	require.NoError(t, err)

	require.NoError(t, h.Temperatures.Delete(ctx, alice.ID, created.ID))
	_, err = h.Temperatures.Get(ctx, alice.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, h.Temperatures.Delete(ctx, alice.ID, created.ID))
}

func TestResource_CreateStoreFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	// no such user, the foreign key rejects the row
	_, err := h.Switches.Create(context.Background(), &models.Switch{
		Base:  models.Base{Date: time.Now().UTC(), UserID: 987654321},
		Value: true,
	})
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "create", storeErr.Op)
	assert.Equal(t, "switch", storeErr.Family)

	_, err = h.Switches.Create(context.Background(), nil)
	assert.ErrorAs(t, err, &storeErr)
}

func TestResource_Logs(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)
	defer common.SetTestLoggerNop()

	ctrl, h, _, _ := GetMockHomeWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, h)
	_, err := h.Lights.Create(context.Background(), &models.Light{
		Base:  models.Base{Date: time.Now().UTC(), UserID: user.ID},
		Value: 42,
	})
	require.NoError(t, err)

	logs := ParseLogs(&buf)
	require.NotEmpty(t, logs)

	messages := []string{}
	for _, l := range logs {
		entry := l.(map[string]any)
		assert.Equal(t, common.LoggerNameHomeCore, entry["logger"])
		assert.Equal(t, "light", entry[common.LoggerFieldCategory])
		messages = append(messages, entry["msg"].(string))
	}
	assert.Contains(t, messages, "Received light")
	assert.Contains(t, messages, "Created light")
}
