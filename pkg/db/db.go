package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	_ "github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	constant "liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

const (
	// SqliteDriverName is go-sqlite3 with UnicodeLowerFunc registered on
	// every connection.
	SqliteDriverName = "sqlite3_alerts"

	// UnicodeLowerFunc folds case for any script; sqlite's LOWER only folds
	// ASCII.
	UnicodeLowerFunc = "unicode_lower"
)

func init() {
	sql.Register(SqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(UnicodeLowerFunc, strings.ToLower, true)
		},
	})
}

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// activeAlertIndexes back the "one active alert per key" invariant. Inserts
// that would create a second active row for the same key are rejected by the
// database, whichever pass gets there first.
var activeAlertIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_alerts_active_stock ON alerts (product_id) WHERE type = 'STOCK_LOW' AND resolved_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_alerts_active_expiry ON alerts (lot_id) WHERE type = 'EXPIRY' AND resolved_at IS NULL`,
}

// GetInstance opens the process-wide connection once. Failures are fatal.
func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		if instance, err = Open(dialector); err != nil {
			log.Fatal("Failed to open database: ", err)
		}
	})
	return instance
}

// Open connects, migrates and prepares a database. Unlike GetInstance it
// returns a fresh handle on every call.
func Open(dialector gorm.Dialector) (*DB, error) {
	var logger = constant.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	if dialector.Name() == "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("get sqlite pool: %w", err)
		}
		// one connection keeps sqlite transactions serialized and pragmas in effect
		sqlDB.SetMaxOpenConns(1)

		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
		}
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	logger.Info("Database migration completed")

	return &DB{Conn: conn}, nil
}

// Migrate creates the inventory read models, the alerts table and the active
// alert uniqueness indexes.
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.Brand{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.Lot{},
		&models.Alert{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	for _, stmt := range activeAlertIndexes {
		if err := conn.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create active alert index: %w", err)
		}
	}
	return nil
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyDbPath); !found {
		dbPath = "alerts.db"
	}
	return UseSqliteFileDialector(dbPath)
}

func UseSqliteFileDialector(dbPath string) gorm.Dialector {
	return useSqlite(dbPath + "?_journal_mode=WAL&_foreign_keys=1")
}

func UseMemorySqliteDialector() gorm.Dialector {
	return useSqlite("file::memory:?cache=shared&_foreign_keys=1")
}

// UseNamedMemorySqliteDialector gives every caller-chosen name its own
// in-memory database, so tests do not see each other's rows.
func UseNamedMemorySqliteDialector(name string) gorm.Dialector {
	return useSqlite(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name))
}

func useSqlite(dsn string) gorm.Dialector {
	return &sqlite.Dialector{DriverName: SqliteDriverName, DSN: dsn}
}

// UsePostgresDialector connects through lib/pq.
func UsePostgresDialector(dsn string) gorm.Dialector {
	return postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	})
}
