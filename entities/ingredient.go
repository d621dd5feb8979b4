package entities

type Ingredient struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null" json:"description"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	RecipeID    uint   `gorm:"not null;index" json:"recipe_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}

type Step struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"type:text;not null" json:"description"`
	RecipeID    uint   `gorm:"not null;index" json:"recipe_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}
