package handler

import "github.com/labstack/echo/v4"

type Routes struct {
	Recipes *DefaultRecipeRoute
	Menus   *DefaultMenuRoute
	Utils   *DefaultUtilRoute
}

func Register(e *echo.Echo, r Routes) {
	// Docker Compose healthcheck
	e.GET("/health", r.Utils.Health)
	e.GET("/api/upstreams/health", r.Utils.GetUpstreamHealth)

	company := e.Group("/api/empresas/:companyId")

	// Ingredients
	company.GET("/ingredientes", r.Utils.GetIngredients)
	company.POST("/ingredientes", r.Utils.CreateIngredient)
	company.PUT("/ingredientes/:id", r.Utils.UpdateIngredient)

	// Recipes
	company.GET("/receitas", r.Recipes.GetRecipes)
	company.GET("/receitas/:id", r.Recipes.GetRecipe)
	company.POST("/receitas", r.Recipes.CreateRecipe)
	company.PUT("/receitas/:id", r.Recipes.UpdateRecipe)
	company.DELETE("/receitas/:id", r.Recipes.DeleteRecipe)
	company.POST("/receitas/:id/imagem", r.Recipes.UploadImage)

	// Menus
	company.GET("/cardapios", r.Menus.GetMenus)
	company.GET("/cardapios/historico", r.Menus.GetHistory)
	company.GET("/cardapios/:id", r.Menus.GetMenu)
	company.PUT("/cardapios/:id", r.Menus.UpdateMenu)
	company.POST("/cardapios/proxima-semana", r.Menus.PlanNextWeek)
}
