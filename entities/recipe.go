package entities

import "time"

type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`

	User        *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Categories  []RecipeCategory `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"categories,omitempty"`
	Ingredients []Ingredient     `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps       []Step           `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"steps,omitempty"`
	Reviews     []Review         `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviews,omitempty"`
	Timestamp
}

// RecipeCategory is the join row between a recipe and one of its categories.
type RecipeCategory struct {
	RecipeID   uint      `gorm:"primaryKey" json:"recipe_id"`
	CategoryID uint      `gorm:"primaryKey" json:"category_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
