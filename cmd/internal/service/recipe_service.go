package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"sort"
	"strings"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/infrastructure/aws/storage"
	"codcoz/cmd/internal/infrastructure/docstore"
	"codcoz/cmd/internal/utils"
	"codcoz/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type RecipeService struct {
	Recipes  RecipeStore
	Images   storage.ImageStorage // nil when uploads are disabled
	Validate *validator.Validate
}

func NewRecipeService(recipes RecipeStore, images storage.ImageStorage, validate *validator.Validate) *RecipeService {
	return &RecipeService{
		Recipes:  recipes,
		Images:   images,
		Validate: validate,
	}
}

// ListRecipes returns the recipes whose name contains query. A failed fetch
// yields an empty list.
func (s *RecipeService) ListRecipes(ctx context.Context, companyID, query string) []*contract.RecipeResponse {
	recipes, err := s.Recipes.ListRecipes(ctx, companyID)
	if err != nil {
		log.Warnf("failed to fetch recipes for company %s: %v", companyID, err)
		recipes = nil
	}

	resp := make([]*contract.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		if utils.MatchesQuery(query, r.Name) {
			resp = append(resp, toRecipeResponse(r))
		}
	}
	return resp
}

func (s *RecipeService) GetRecipe(ctx context.Context, companyID, recipeID string) (*contract.RecipeResponse, apierror.ErrorResponse) {
	recipe, apierr := s.findRecipe(ctx, companyID, recipeID)
	if apierr != nil {
		return nil, apierr
	}
	return toRecipeResponse(recipe), nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, companyID string, req *contract.RecipeRequest) (*contract.RecipeResponse, apierror.ErrorResponse) {
	recipe := &entity.Recipe{CompanyID: companyID}
	if apierr := s.applyRequest(recipe, req); apierr != nil {
		return nil, apierr
	}

	created, err := s.Recipes.CreateRecipe(ctx, companyID, recipe)
	if err != nil {
		log.Errorf("failed to create recipe for company %s: %v", companyID, err)
		return nil, apierror.UpstreamUnavailableError
	}
	return toRecipeResponse(created), nil
}

// UpdateRecipe replaces the recipe's contents. The stored image is kept
// when the request carries none.
func (s *RecipeService) UpdateRecipe(ctx context.Context, companyID, recipeID string, req *contract.RecipeRequest) (*contract.RecipeResponse, apierror.ErrorResponse) {
	recipe, apierr := s.findRecipe(ctx, companyID, recipeID)
	if apierr != nil {
		return nil, apierr
	}

	recipe.Ingredients = nil
	recipe.Steps = nil
	if apierr := s.applyRequest(recipe, req); apierr != nil {
		return nil, apierr
	}
	recipe.CompanyID = companyID

	updated, err := s.Recipes.UpdateRecipe(ctx, companyID, recipeID, recipe)
	if err != nil {
		return nil, mapStoreError(err, "update recipe "+recipeID)
	}
	return toRecipeResponse(updated), nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, companyID, recipeID string) apierror.ErrorResponse {
	if err := s.Recipes.DeleteRecipe(ctx, companyID, recipeID); err != nil {
		return mapStoreError(err, "delete recipe "+recipeID)
	}
	return nil
}

// UploadImage stores the image in S3 and points the recipe at it.
func (s *RecipeService) UploadImage(ctx context.Context, companyID, recipeID string, fileHeader *multipart.FileHeader) (*contract.RecipeResponse, apierror.ErrorResponse) {
	if s.Images == nil {
		return nil, apierror.ImagesDisabledError
	}

	ext, apierr := checkImageFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	recipe, apierr := s.findRecipe(ctx, companyID, recipeID)
	if apierr != nil {
		return nil, apierr
	}

	data, apierr := readImageFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	_, url, err := s.Images.UploadRecipeImage(ctx, data, uuid.NewString()+ext)
	if err != nil {
		log.Errorf("failed to upload recipe image: %v", err)
		return nil, apierror.InternalServerError
	}

	recipe.ImageURL = url
	recipe.CompanyID = companyID
	updated, err := s.Recipes.UpdateRecipe(ctx, companyID, recipeID, recipe)
	if err != nil {
		return nil, mapStoreError(err, "update recipe image "+recipeID)
	}
	return toRecipeResponse(updated), nil
}

func (s *RecipeService) findRecipe(ctx context.Context, companyID, recipeID string) (*entity.Recipe, apierror.ErrorResponse) {
	recipe, err := s.Recipes.GetRecipe(ctx, companyID, recipeID)
	if err != nil {
		return nil, mapStoreError(err, "fetch recipe "+recipeID)
	}
	return recipe, nil
}

// applyRequest validates req and copies it into recipe. Steps are sorted by
// their requested order and renumbered; blank steps are dropped.
func (s *RecipeService) applyRequest(recipe *entity.Recipe, req *contract.RecipeRequest) apierror.ErrorResponse {
	if req == nil {
		return apierror.MalformedJSONError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.PrepMinutes = req.PrepMinutes
	recipe.CookMinutes = req.CookMinutes
	recipe.Servings = req.Servings
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}

	for _, ing := range req.Ingredients {
		err := recipe.AddIngredient(entity.RecipeIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     strings.TrimSpace(ing.Unit),
		})
		if errors.Is(err, entity.ErrDuplicateIngredient) {
			apierr := apierror.NewStructured(400)
			apierr.Add("ingredients", "Each ingredient may appear only once")
			return apierr
		}
	}

	steps := append([]*contract.StepRequest(nil), req.Steps...)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})
	for _, step := range steps {
		recipe.AddStep(step.Text)
	}
	return nil
}

func checkImageFile(fileHeader *multipart.FileHeader) (string, apierror.ErrorResponse) {
	if fileHeader == nil {
		return "", apierror.MissingImageError
	}

	if fileHeader.Size > contract.MaxRecipeImageSizeBytes {
		return "", apierror.NewFileTooLargeError(contract.MaxRecipeImageSizeBytes)
	}

	ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidRecipeImageTypes)
	if !ok {
		return "", apierror.InvalidImageExtError
	}
	return ext, nil
}

func readImageFile(fileHeader *multipart.FileHeader) ([]byte, apierror.ErrorResponse) {
	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open file: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, contract.MaxRecipeImageSizeBytes+1))
	if err != nil {
		log.Errorf("failed to read file: %v", err)
		return nil, apierror.InternalServerError
	}

	if len(data) > contract.MaxRecipeImageSizeBytes {
		return nil, apierror.NewFileTooLargeError(contract.MaxRecipeImageSizeBytes)
	}
	return data, nil
}

// mapStoreError converts a document-store failure into the API response.
func mapStoreError(err error, op string) apierror.ErrorResponse {
	if errors.Is(err, docstore.ErrNotFound) {
		return apierror.NotFoundError
	}
	log.Errorf("docstore: failed to %s: %v", op, err)
	return apierror.UpstreamUnavailableError
}

func toRecipeResponse(r *entity.Recipe) *contract.RecipeResponse {
	resp := &contract.RecipeResponse{
		ID:          r.PrimaryID(),
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Description: r.Description,
		Ingredients: make([]*contract.RecipeIngredientResponse, len(r.Ingredients)),
		Steps:       make([]*contract.StepResponse, len(r.Steps)),
		PrepMinutes: r.PrepMinutes,
		CookMinutes: r.CookMinutes,
		Servings:    r.Servings,
		ImageURL:    r.ImageURL,
	}
	for i, ing := range r.Ingredients {
		resp.Ingredients[i] = &contract.RecipeIngredientResponse{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
	}
	for i, step := range r.Steps {
		resp.Steps[i] = &contract.StepResponse{Order: step.Order, Text: step.Text}
	}
	return resp
}
