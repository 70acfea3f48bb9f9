package handler

import (
	"context"
	"net/http"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/utils"
	"codcoz/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type MenuService interface {
	ListMenus(ctx context.Context, companyID, query string) []*contract.MenuSummaryResponse
	GetMenuDetail(ctx context.Context, companyID, menuID string) (*contract.MenuDetailResponse, apierror.ErrorResponse)
	UpdateMenu(ctx context.Context, companyID, menuID string, req *contract.MenuUpdateRequest) (*contract.MenuDetailResponse, apierror.ErrorResponse)
	PlanNextWeek(ctx context.Context, companyID string, req *contract.PlanWeekRequest) (*contract.MenuDetailResponse, apierror.ErrorResponse)
	GetHistory(companyID string) ([]*contract.MenuRecordResponse, apierror.ErrorResponse)
}

type DefaultMenuRoute struct {
	MenuService MenuService
}

func NewMenuRoute(menuService MenuService) *DefaultMenuRoute {
	return &DefaultMenuRoute{MenuService: menuService}
}

func (m *DefaultMenuRoute) GetMenus(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	menus := m.MenuService.ListMenus(c.Request().Context(), companyID, c.QueryParam("q"))
	return c.JSON(http.StatusOK, menus)
}

func (m *DefaultMenuRoute) GetMenu(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	menuID, apierr := utils.GetPathID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	menu, apierr := m.MenuService.GetMenuDetail(c.Request().Context(), companyID, menuID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, menu)
}

func (m *DefaultMenuRoute) UpdateMenu(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	menuID, apierr := utils.GetPathID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.MenuUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	menu, apierr := m.MenuService.UpdateMenu(c.Request().Context(), companyID, menuID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, menu)
}

func (m *DefaultMenuRoute) PlanNextWeek(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.PlanWeekRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	menu, apierr := m.MenuService.PlanNextWeek(c.Request().Context(), companyID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, menu)
}

func (m *DefaultMenuRoute) GetHistory(c echo.Context) error {
	companyID, apierr := utils.GetCompanyID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	records, apierr := m.MenuService.GetHistory(companyID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, records)
}
