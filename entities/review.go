package entities

type Review struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Rating   int    `gorm:"not null" json:"rating"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_reviews_user_recipe" json:"user_id"`
	RecipeID uint   `gorm:"not null;uniqueIndex:idx_reviews_user_recipe" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}
