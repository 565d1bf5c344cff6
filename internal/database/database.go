package database

import (
	"fmt"
	"time"

	"property-analyst/internal/config"
	"property-analyst/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm connection. Every query method takes an explicit broker
// id; rows belonging to other brokers behave as if they do not exist.
type DB struct {
	db *gorm.DB
}

// New opens a connection for the configured database type.
func New(cfg config.DatabaseConfig) (*DB, error) {
	switch cfg.Type {
	case "mysql":
		return NewMySQL(cfg.MySQL)
	case "postgres":
		return NewPostgres(cfg.Postgres)
	case "sqlite", "":
		return NewSQLite(cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}

// NewMySQL connects to MySQL
func NewMySQL(cfg config.MySQLConfig) (*DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	return pinged(db)
}

// NewPostgres connects to PostgreSQL
func NewPostgres(cfg config.PostgresConfig) (*DB, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, sslMode)

	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	return pinged(db)
}

// NewSQLite opens (or creates) a SQLite database file
func NewSQLite(path string) (*DB, error) {
	if path == "" {
		path = "property_analyst.db"
	}
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// NewFromGorm wraps an existing gorm.DB instance (used by tests)
func NewFromGorm(db *gorm.DB) *DB {
	return &DB{db: db}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}
}

func pinged(db *gorm.DB) (*DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// DB returns the underlying gorm.DB instance
func (d *DB) DB() *gorm.DB {
	return d.db
}

func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables using GORM AutoMigrate
func (d *DB) InitSchema() error {
	return d.db.AutoMigrate(
		&models.Broker{},
		&models.Property{},
		&models.PropertyOwner{},
		&models.PropertyLog{},
	)
}
