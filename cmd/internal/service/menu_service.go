package service

import (
	"context"
	"errors"
	"time"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/domain/cache"
	"codcoz/cmd/internal/domain/cardapio"
	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/domain/sqlite/repository"
	"codcoz/cmd/internal/infrastructure/docstore"
	"codcoz/cmd/internal/utils"
	"codcoz/cmd/internal/utils/apierror"
	"codcoz/cmd/internal/utils/dates"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

type MenuService struct {
	Menus       MenuStore
	Recipes     RecipeStore
	Ingredients IngredientStore
	RecordRepo  MenuRecordRepository
	Validate    *validator.Validate
	Now         func() time.Time
}

func NewMenuService(
	menus MenuStore,
	recipes RecipeStore,
	ingredients IngredientStore,
	recordRepo MenuRecordRepository,
	validate *validator.Validate,
) *MenuService {
	return &MenuService{
		Menus:       menus,
		Recipes:     recipes,
		Ingredients: ingredients,
		RecordRepo:  recordRepo,
		Validate:    validate,
		Now:         time.Now,
	}
}

// ListMenus returns the company's menus matching query. A failed fetch
// yields an empty list.
func (s *MenuService) ListMenus(ctx context.Context, companyID, query string) []*contract.MenuSummaryResponse {
	menus, err := s.Menus.ListMenus(ctx, companyID)
	if err != nil {
		log.Warnf("failed to fetch menus for company %s: %v", companyID, err)
		menus = nil
	}

	resp := make([]*contract.MenuSummaryResponse, 0, len(menus))
	for _, m := range menus {
		if !menuMatches(m, query) {
			continue
		}
		resp = append(resp, toMenuSummary(m))
	}
	return resp
}

// GetMenuDetail refreshes the recipe and ingredient lists, then resolves
// every slot of the menu against them.
func (s *MenuService) GetMenuDetail(ctx context.Context, companyID, menuID string) (*contract.MenuDetailResponse, apierror.ErrorResponse) {
	menu, err := s.Menus.GetMenu(ctx, companyID, menuID)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			log.Warnf("failed to fetch menu %s for company %s: %v", menuID, companyID, err)
		}
		return nil, apierror.NotFoundError
	}

	return s.renderDetail(ctx, companyID, menu), nil
}

// UpdateMenu replaces the day entries (and the name, when given) of a stored
// menu, then renders the result.
func (s *MenuService) UpdateMenu(ctx context.Context, companyID, menuID string, req *contract.MenuUpdateRequest) (*contract.MenuDetailResponse, apierror.ErrorResponse) {
	if req == nil {
		return nil, apierror.MalformedJSONError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	days, apierr := toDayEntries(req.Days)
	if apierr != nil {
		return nil, apierr
	}

	menu, err := s.Menus.GetMenu(ctx, companyID, menuID)
	if err != nil {
		return nil, mapStoreError(err, "fetch menu "+menuID)
	}

	if req.Name != "" {
		menu.Name = req.Name
	}
	menu.CompanyID = companyID
	menu.Days = days

	updated, err := s.Menus.UpdateMenu(ctx, companyID, menuID, menu)
	if err != nil {
		return nil, mapStoreError(err, "update menu "+menuID)
	}
	return s.renderDetail(ctx, companyID, updated), nil
}

// renderDetail refreshes the entity lists and resolves every slot of menu
// against fresh caches.
func (s *MenuService) renderDetail(ctx context.Context, companyID string, menu *entity.WeeklyMenu) *contract.MenuDetailResponse {
	recipes, ingredients := s.refreshEntities(ctx, companyID)

	recipeCache := cache.New[entity.Recipe]()
	recipeCache.Ingest(recipes)
	ingredientCache := cache.New[entity.Ingredient]()
	ingredientCache.Ingest(ingredients)

	resolver := cardapio.NewResolver(recipeCache, ingredientCache)
	return toMenuDetail(menu, resolver.RenderMenu(*menu))
}

// refreshEntities fetches both lists concurrently. Either one degrades to an
// empty list on failure.
func (s *MenuService) refreshEntities(ctx context.Context, companyID string) ([]entity.Recipe, []entity.Ingredient) {
	var (
		recipes     []entity.Recipe
		ingredients []entity.Ingredient
	)

	var g errgroup.Group
	g.Go(func() error {
		list, err := s.Recipes.ListRecipes(ctx, companyID)
		if err != nil {
			log.Warnf("failed to fetch recipes for company %s: %v", companyID, err)
			return nil
		}
		recipes = derefAll(list)
		return nil
	})
	g.Go(func() error {
		list, err := s.Ingredients.ListIngredients(ctx, companyID)
		if err != nil {
			log.Warnf("failed to fetch ingredients for company %s: %v", companyID, err)
			return nil
		}
		ingredients = derefAll(list)
		return nil
	})
	_ = g.Wait()

	return recipes, ingredients
}

// PlanNextWeek creates an empty menu for the next Monday..Friday and records
// it in the ledger. A company can plan each week only once: the week is
// claimed in the ledger before the upstream create, so concurrent requests
// for the same week get a conflict instead of a second menu.
func (s *MenuService) PlanNextWeek(ctx context.Context, companyID string, req *contract.PlanWeekRequest) (*contract.MenuDetailResponse, apierror.ErrorResponse) {
	if req == nil {
		req = &contract.PlanWeekRequest{}
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	week := cardapio.BuildNextWeek(s.Now())

	existing, err := s.RecordRepo.FindByWeek(companyID, week.StartKey())
	if err != nil {
		log.Errorf("failed to look up menu ledger: %v", err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.MenuAlreadyPlannedError
	}

	menu := week.Menu(companyID, req.Name)
	claim := &entity.MenuRecord{
		CompanyID: companyID,
		Name:      menu.Name,
		StartDate: week.StartKey(),
		EndDate:   week.EndKey(),
		CreatedAt: utils.NowUTC(),
	}
	if err := s.RecordRepo.Save(claim); err != nil {
		if errors.Is(err, repository.ErrDuplicateWeek) {
			return nil, apierror.MenuAlreadyPlannedError
		}
		log.Errorf("failed to claim week %s for company %s: %v", claim.StartDate, companyID, err)
		return nil, apierror.InternalServerError
	}

	created, err := s.Menus.CreateMenu(ctx, companyID, &menu)
	if err != nil {
		log.Errorf("failed to create menu for company %s: %v", companyID, err)
		if err := s.RecordRepo.Delete(claim.ID); err != nil {
			log.Errorf("failed to release week %s for company %s: %v", claim.StartDate, companyID, err)
		}
		return nil, apierror.UpstreamUnavailableError
	}

	claim.MenuID = created.PrimaryID()
	claim.Name = created.Name
	if claim.MenuID == "" {
		log.Warnf("document store returned no id for the menu of week %s, company %s", claim.StartDate, companyID)
	}
	if err := s.RecordRepo.Update(claim); err != nil {
		// The menu exists upstream already, so the request still succeeds.
		log.Errorf("failed to record menu %s in ledger: %v", claim.MenuID, err)
	}

	resolver := cardapio.NewResolver(nil, nil)
	return toMenuDetail(created, resolver.RenderMenu(*created)), nil
}

// GetHistory lists the menus this service planned for the company, newest
// first.
func (s *MenuService) GetHistory(companyID string) ([]*contract.MenuRecordResponse, apierror.ErrorResponse) {
	records, err := s.RecordRepo.FindByCompany(companyID)
	if err != nil {
		log.Errorf("failed to list menu ledger: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.MenuRecordResponse, len(records))
	for i, r := range records {
		resp[i] = &contract.MenuRecordResponse{
			MenuID:    r.MenuID,
			Name:      r.Name,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			CreatedAt: utils.FormatEpoch(r.CreatedAt),
		}
	}
	return resp, nil
}

func menuMatches(m *entity.WeeklyMenu, query string) bool {
	return utils.MatchesQuery(query,
		m.Name,
		m.Periodicity,
		dates.FormatDate(m.StartDate, dates.Options{}),
		dates.FormatDate(m.EndDate, dates.Options{}),
	)
}

func toMenuSummary(m *entity.WeeklyMenu) *contract.MenuSummaryResponse {
	return &contract.MenuSummaryResponse{
		ID:           m.PrimaryID(),
		Name:         m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Periodicity:  m.Periodicity,
		DisplayRange: dates.FormatRange(m.StartDate, m.EndDate),
		DayCount:     len(m.Days),
	}
}

func toMenuDetail(m *entity.WeeklyMenu, days []cardapio.DayView) *contract.MenuDetailResponse {
	resp := &contract.MenuDetailResponse{
		ID:           m.PrimaryID(),
		Name:         m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Periodicity:  m.Periodicity,
		DisplayRange: dates.FormatRange(m.StartDate, m.EndDate),
		Days:         make([]*contract.DayResponse, len(days)),
	}

	for i, d := range days {
		day := &contract.DayResponse{
			Weekday:   d.Weekday,
			Date:      d.Date,
			DateLabel: d.DateLabel,
			Groups:    make([]*contract.MealGroupResponse, len(d.Groups)),
		}
		for j, g := range d.Groups {
			group := &contract.MealGroupResponse{
				Key:   g.Key,
				Title: g.Title,
				Slots: make([]*contract.SlotResponse, len(g.Lines)),
			}
			for k, l := range g.Lines {
				group.Slots[k] = &contract.SlotResponse{
					Label:    l.Label,
					Name:     l.Name,
					Priority: l.Priority,
					Kind:     l.Kind,
					RefID:    l.RefID,
					Resolved: l.Resolved,
				}
			}
			day.Groups[j] = group
		}
		resp.Days[i] = day
	}
	return resp
}

func derefAll[T any](list []*T) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
