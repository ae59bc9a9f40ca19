package db

import (
	"github.com/recetario-dev/recetario/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite database and returns the handle. The handle is
// owned by the caller and threaded through the application; nothing
// re-opens the file per call.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func Migrate(gdb *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.Recipe{},
		&models.Favorite{},
		&models.Comment{},
		&models.CommentReaction{},
		&models.Suggestion{},
	}

	migrator := gdb.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := gdb.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
