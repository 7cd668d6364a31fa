package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/config"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance opens, migrates and memoizes the process-wide connection.
// Only the first dialector passed in is ever used.
func GetInstance(dialector gorm.Dialector) *DB {
	var logger = common.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{
			Logger:         newGormLogger(common.GetLoggerWith(common.LoggerNameDB)),
			TranslateError: true,
		})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		if dialector.Name() == "sqlite" {
			// foreign keys must be on before migration so user_id references are created and enforced
			if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
				log.Fatal("Failed to enable sqlite foreign key support", err)
			}
			if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
				log.Fatal("Failed to set sqlite journal mode", err)
			}
		}

		instance = &DB{Conn: conn}

		if err := instance.Conn.AutoMigrate(models.AllModels()...); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")
	})
	return instance
}

// newGormLogger feeds gorm's warnings and SQL errors into zap. A missing row is
// an ordinary outcome for the stores, so it is not logged.
func newGormLogger(logger *zap.Logger) gormLogger.Interface {
	writer, err := zap.NewStdLogAt(logger, zapcore.WarnLevel)
	if err != nil {
		writer = zap.NewStdLog(logger)
	}
	return gormLogger.New(writer, gormLogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// UseDialector picks the gorm dialector for cfg.DBType.
func UseDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case config.DBTypeFile:
		return sqlite.Open(withForeignKeys(cfg.DBPath)), nil
	case config.DBTypeMemory:
		return UseMemorySqliteDialector(), nil
	case config.DBTypeMySQL:
		return mysql.Open(cfg.DBDSN), nil
	case config.DBTypePostgres:
		return postgres.Open(cfg.DBDSN), nil
	default:
		return nil, fmt.Errorf("unknown %s: %s", common.EnvKeyDBType, cfg.DBType)
	}
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyDBPath); !found {
		dbPath = "home.db"
	}
	return sqlite.Open(withForeignKeys(dbPath))
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(withForeignKeys("file::memory:?cache=shared"))
}

// withForeignKeys makes every pooled sqlite connection enforce user_id references,
// the PRAGMA in GetInstance only reaches the first one.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
