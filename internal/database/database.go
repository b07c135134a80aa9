package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"foodgram/internal/domain"
	"foodgram/internal/logging"
)

// Connect opens PostgreSQL for postgres:// DSNs and SQLite otherwise.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logging.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	logging.Info().Str("dsn", dsn).Msg("using SQLite")

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// SQLite has a single writer; one connection also keeps ":memory:"
	// databases alive for the lifetime of the pool.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&domain.Recipe{}, "Tags", &domain.RecipeTag{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Ingredient{},
		&domain.Tag{},
		&domain.Recipe{},
		&domain.RecipeTag{},
		&domain.IngredientInRecipe{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
		&domain.Subscribe{},
	); err != nil {
		return err
	}
	return backfillIngredientSearch(db)
}

// backfillIngredientSearch fills name_lower for rows stored before the
// column existed.
func backfillIngredientSearch(db *gorm.DB) error {
	var rows []domain.Ingredient
	if err := db.Where("name_lower = ''").Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		if err := db.Model(&domain.Ingredient{}).
			Where("id = ?", row.ID).
			UpdateColumn("name_lower", domain.FoldName(row.Name)).Error; err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		logging.Info().Int("rows", len(rows)).Msg("ingredient search column backfilled")
	}
	return nil
}

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
