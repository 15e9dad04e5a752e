package entities

// Recipe is the single persisted entity of the catalog.
// cooking_time > 0 is checked by the request validator, not by the table.
type Recipe struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"column:title;not null" json:"title"`
	Views       int    `gorm:"column:views;not null;default:0" json:"views"`
	CookingTime int    `gorm:"column:cooking_time;not null" json:"cooking_time"`
	Ingredients string `gorm:"column:ingredients;type:text;not null" json:"ingredients"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
}

func (Recipe) TableName() string {
	return "recipes"
}
