package infra

import (
	"fmt"

	"github.com/marco2712/POS-PROCESOS/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for all tables.
//
// TranslateError is enabled so that unique-constraint and foreign-key
// violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated;
// the service layer maps those two — and only those two — to
// domain-specific user messages. Everything else stays generic.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Organizacion{},
		&model.Usuario{},
		&model.UsuarioRol{},
		&model.Cliente{},
		&model.Producto{},
		&model.Venta{},
		&model.VentaItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
