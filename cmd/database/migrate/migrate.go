package migration

import (
	"Recipe-Sharing-API/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model interface{}
	}{
		{"user", &entities.User{}},
		{"category", &entities.Category{}},
		{"recipe", &entities.Recipe{}},
		{"recipe category", &entities.RecipeCategory{}},
		{"ingredient", &entities.Ingredient{}},
		{"step", &entities.Step{}},
		{"review", &entities.Review{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Errorf("error migrating %s table: %v", m.name, err)
			return err
		}
	}

	log.Info("database migration complete")
	return nil
}
