package recipe_test

import (
	"github.com/DATA-DOG/go-sqlmock"

	"recipe-catalog/entities"
)

var recipeColumns = []string{"id", "title", "views", "cooking_time", "ingredients", "description"}

func recipeRows(recipes ...entities.Recipe) *sqlmock.Rows {
	rows := sqlmock.NewRows(recipeColumns)
	for _, r := range recipes {
		rows.AddRow(int64(r.ID), r.Title, int64(r.Views), int64(r.CookingTime), r.Ingredients, r.Description)
	}
	return rows
}

func soup(id uint, views int) entities.Recipe {
	return entities.Recipe{
		ID:          id,
		Title:       "Delicious Soup",
		Views:       views,
		CookingTime: 20,
		Ingredients: "water, salt, vegetables",
		Description: "Boil everything together.",
	}
}
