package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/utils"
	"codcoz/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type RecipeService interface {
	ListRecipes(ctx context.Context, companyID, query string) []*contract.RecipeResponse
	GetRecipe(ctx context.Context, companyID, recipeID string) (*contract.RecipeResponse, apierror.ErrorResponse)
	CreateRecipe(ctx context.Context, companyID string, req *contract.RecipeRequest) (*contract.RecipeResponse, apierror.ErrorResponse)
	UpdateRecipe(ctx context.Context, companyID, recipeID string, req *contract.RecipeRequest) (*contract.RecipeResponse, apierror.ErrorResponse)
	DeleteRecipe(ctx context.Context, companyID, recipeID string) apierror.ErrorResponse
	UploadImage(ctx context.Context, companyID, recipeID string, fileHeader *multipart.FileHeader) (*contract.RecipeResponse, apierror.ErrorResponse)
}

type DefaultRecipeRoute struct {
	RecipeService RecipeService
}

func NewRecipeRoute(recipeService RecipeService) *DefaultRecipeRoute {
	return &DefaultRecipeRoute{RecipeService: recipeService}
}

func (r *DefaultRecipeRoute) GetRecipes(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	recipes := r.RecipeService.ListRecipes(c.Request().Context(), companyID, c.QueryParam("q"))
	return c.JSON(http.StatusOK, recipes)
}

func (r *DefaultRecipeRoute) GetRecipe(c echo.Context) error {
	companyID, recipeID, apierr := recipePath(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	recipe, apierr := r.RecipeService.GetRecipe(c.Request().Context(), companyID, recipeID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, recipe)
}

func (r *DefaultRecipeRoute) CreateRecipe(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.RecipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	recipe, apierr := r.RecipeService.CreateRecipe(c.Request().Context(), companyID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, recipe)
}

func (r *DefaultRecipeRoute) UpdateRecipe(c echo.Context) error {
	companyID, recipeID, apierr := recipePath(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.RecipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	recipe, apierr := r.RecipeService.UpdateRecipe(c.Request().Context(), companyID, recipeID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, recipe)
}

func (r *DefaultRecipeRoute) DeleteRecipe(c echo.Context) error {
	companyID, recipeID, apierr := recipePath(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.RecipeService.DeleteRecipe(c.Request().Context(), companyID, recipeID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultRecipeRoute) UploadImage(c echo.Context) error {
	companyID, recipeID, apierr := recipePath(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	fileHeader, err := c.FormFile("imagem")
	if err != nil {
		return c.JSON(apierror.MissingImageError.Code(), apierror.MissingImageError)
	}

	recipe, apierr := r.RecipeService.UploadImage(c.Request().Context(), companyID, recipeID, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, recipe)
}

func recipePath(c echo.Context) (string, string, apierror.ErrorResponse) {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return "", "", apierr
	}

	recipeID, apierr := utils.GetPathID(c, "id")
	if apierr != nil {
		return "", "", apierr
	}
	return companyID, recipeID, nil
}
