package service

import (
	"context"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/utils"
	"codcoz/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type IngredientService struct {
	Ingredients IngredientStore
	Validate    *validator.Validate
}

func NewIngredientService(ingredients IngredientStore, validate *validator.Validate) *IngredientService {
	return &IngredientService{Ingredients: ingredients, Validate: validate}
}

// ListIngredients returns the menu-scoped ingredients whose name contains
// query. A failed fetch yields an empty list.
func (s *IngredientService) ListIngredients(ctx context.Context, companyID, query string) []*contract.IngredientResponse {
	ingredients, err := s.Ingredients.ListIngredients(ctx, companyID)
	if err != nil {
		log.Warnf("failed to fetch ingredients for company %s: %v", companyID, err)
		ingredients = nil
	}

	resp := make([]*contract.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		if utils.MatchesQuery(query, ing.Name) {
			resp = append(resp, toIngredientResponse(ing))
		}
	}
	return resp
}

// CreateIngredient adds an ingredient to the document store copy that menu
// slots reference.
func (s *IngredientService) CreateIngredient(ctx context.Context, companyID string, req *contract.IngredientRequest) (*contract.IngredientResponse, apierror.ErrorResponse) {
	ingredient, apierr := s.toIngredient(companyID, req)
	if apierr != nil {
		return nil, apierr
	}

	created, err := s.Ingredients.CreateIngredient(ctx, companyID, ingredient)
	if err != nil {
		log.Errorf("failed to create ingredient for company %s: %v", companyID, err)
		return nil, apierror.UpstreamUnavailableError
	}
	return toIngredientResponse(created), nil
}

func (s *IngredientService) UpdateIngredient(ctx context.Context, companyID, ingredientID string, req *contract.IngredientRequest) (*contract.IngredientResponse, apierror.ErrorResponse) {
	ingredient, apierr := s.toIngredient(companyID, req)
	if apierr != nil {
		return nil, apierr
	}
	ingredient.DocumentID = ingredientID

	updated, err := s.Ingredients.UpdateIngredient(ctx, companyID, ingredientID, ingredient)
	if err != nil {
		return nil, mapStoreError(err, "update ingredient "+ingredientID)
	}
	return toIngredientResponse(updated), nil
}

func (s *IngredientService) toIngredient(companyID string, req *contract.IngredientRequest) (*entity.Ingredient, apierror.ErrorResponse) {
	if req == nil {
		return nil, apierror.MalformedJSONError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	return &entity.Ingredient{
		CompanyID:    companyID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		MinimumStock: req.MinimumStock,
	}, nil
}

func toIngredientResponse(i *entity.Ingredient) *contract.IngredientResponse {
	return &contract.IngredientResponse{
		ID:           i.PrimaryID(),
		CompanyID:    i.CompanyID,
		Name:         i.Name,
		Description:  i.Description,
		Category:     i.Category,
		MinimumStock: i.MinimumStock,
	}
}
