package service

import (
	"context"

	"codcoz/cmd/internal/domain/entity"
)

// The document-store operations each service depends on. *docstore.Client
// satisfies all of them.

type RecipeStore interface {
	ListRecipes(ctx context.Context, companyID string) ([]*entity.Recipe, error)
	GetRecipe(ctx context.Context, companyID, recipeID string) (*entity.Recipe, error)
	CreateRecipe(ctx context.Context, companyID string, recipe *entity.Recipe) (*entity.Recipe, error)
	UpdateRecipe(ctx context.Context, companyID, recipeID string, recipe *entity.Recipe) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, companyID, recipeID string) error
}

type IngredientStore interface {
	ListIngredients(ctx context.Context, companyID string) ([]*entity.Ingredient, error)
	CreateIngredient(ctx context.Context, companyID string, ingredient *entity.Ingredient) (*entity.Ingredient, error)
	UpdateIngredient(ctx context.Context, companyID, ingredientID string, ingredient *entity.Ingredient) (*entity.Ingredient, error)
}

type MenuStore interface {
	ListMenus(ctx context.Context, companyID string) ([]*entity.WeeklyMenu, error)
	GetMenu(ctx context.Context, companyID, menuID string) (*entity.WeeklyMenu, error)
	CreateMenu(ctx context.Context, companyID string, menu *entity.WeeklyMenu) (*entity.WeeklyMenu, error)
	UpdateMenu(ctx context.Context, companyID, menuID string, menu *entity.WeeklyMenu) (*entity.WeeklyMenu, error)
}

type MenuRecordRepository interface {
	FindByWeek(companyID, startDate string) (*entity.MenuRecord, error)
	FindByCompany(companyID string) ([]*entity.MenuRecord, error)
	Save(record *entity.MenuRecord) error
	Update(record *entity.MenuRecord) error
	Delete(id int) error
}

type Pinger interface {
	Ping(ctx context.Context) bool
}
