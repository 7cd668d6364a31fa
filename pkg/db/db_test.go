package db

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/config"
	"liyu1981.xyz/home-sensor-api/pkg/models"
	_ "liyu1981.xyz/home-sensor-api/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"users", "temperatures", "switches", "lights", "sessions"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())

	// no user 0 exists, so the user_id reference must reject the row
	orphan := models.Switch{Base: models.Base{UserID: 0}, Value: true}
	err := instance.Conn.Create(&orphan).Error
	assert.Error(t, err)
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestUseDialector(t *testing.T) {
	cases := map[string]string{
		config.DBTypeFile:     "sqlite",
		config.DBTypeMemory:   "sqlite",
		config.DBTypeMySQL:    "mysql",
		config.DBTypePostgres: "postgres",
	}

	for dbType, name := range cases {
		dialector, err := UseDialector(&config.Config{DBType: dbType, DBPath: "home.db", DBDSN: "dsn"})
		require.NoError(t, err, dbType)
		assert.Equal(t, name, dialector.Name(), dbType)
	}

	_, err := UseDialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "home.db?_foreign_keys=on", withForeignKeys("home.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", withForeignKeys("file::memory:?cache=shared"))
	assert.Equal(t, "home.db?_fk=1", withForeignKeys("home.db?_fk=1"))
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.DebugLevel)
	defer common.SetTestLoggerNop()

	l := newGormLogger(common.GetLoggerWith(common.LoggerNameDB))
	query := func() (string, int64) { return "SELECT * FROM lights WHERE id = 9", 0 }

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), query, errors.New("database is locked"))
	assert.Contains(t, buf.String(), "database is locked")
	assert.Contains(t, buf.String(), `"logger":"db"`)
}
