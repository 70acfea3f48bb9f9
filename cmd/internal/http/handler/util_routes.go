package handler

import (
	"context"
	"net/http"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/utils"
	"codcoz/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type IngredientService interface {
	ListIngredients(ctx context.Context, companyID, query string) []*contract.IngredientResponse
	CreateIngredient(ctx context.Context, companyID string, req *contract.IngredientRequest) (*contract.IngredientResponse, apierror.ErrorResponse)
	UpdateIngredient(ctx context.Context, companyID, ingredientID string, req *contract.IngredientRequest) (*contract.IngredientResponse, apierror.ErrorResponse)
}

type HealthService interface {
	CheckUpstreams(ctx context.Context) *contract.UpstreamHealthResponse
}

type DefaultUtilRoute struct {
	IngredientService IngredientService
	HealthService     HealthService
}

func NewUtilRoute(ingredientService IngredientService, healthService HealthService) *DefaultUtilRoute {
	return &DefaultUtilRoute{
		IngredientService: ingredientService,
		HealthService:     healthService,
	}
}

func (u *DefaultUtilRoute) GetIngredients(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	ingredients := u.IngredientService.ListIngredients(c.Request().Context(), companyID, c.QueryParam("q"))
	return c.JSON(http.StatusOK, ingredients)
}

func (u *DefaultUtilRoute) CreateIngredient(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.IngredientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	ingredient, apierr := u.IngredientService.CreateIngredient(c.Request().Context(), companyID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, ingredient)
}

func (u *DefaultUtilRoute) UpdateIngredient(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	ingredientID, apierr := utils.GetPathID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.IngredientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	ingredient, apierr := u.IngredientService.UpdateIngredient(c.Request().Context(), companyID, ingredientID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ingredient)
}

func (u *DefaultUtilRoute) GetUpstreamHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, u.HealthService.CheckUpstreams(c.Request().Context()))
}

// Health is used by the container healthcheck.
func (u *DefaultUtilRoute) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
