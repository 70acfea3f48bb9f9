package contract

const MaxRecipeImageSizeBytes = 5 * 1024 * 1024

var ValidRecipeImageTypes = []string{"png", "jpg", "jpeg", "webp"}

type RecipeResponse struct {
	ID          string                      `json:"id"`
	CompanyID   string                      `json:"company_id,omitempty"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Ingredients []*RecipeIngredientResponse `json:"ingredients"`
	Steps       []*StepResponse             `json:"steps"`
	PrepMinutes int                         `json:"prep_minutes"`
	CookMinutes int                         `json:"cook_minutes"`
	Servings    int                         `json:"servings"`
	ImageURL    string                      `json:"image_url,omitempty"`
}

type RecipeIngredientResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type StepResponse struct {
	Order int    `json:"order"`
	Text  string `json:"text"`
}

type RecipeRequest struct {
	Name        string                     `json:"name" validate:"required,notblank,min=2,max=120"`
	Description string                     `json:"description" validate:"max=2000"`
	Ingredients []*RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,max=100,uniquenames,dive,required"`
	Steps       []*StepRequest             `json:"steps" validate:"max=100,dive,required"`
	PrepMinutes int                        `json:"prep_minutes" validate:"gte=0,max=10000"`
	CookMinutes int                        `json:"cook_minutes" validate:"gte=0,max=10000"`
	Servings    int                        `json:"servings" validate:"gte=0,max=10000"`
	ImageURL    string                     `json:"image_url" validate:"omitempty,url"`
}

type RecipeIngredientRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=120"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	Unit     string  `json:"unit" validate:"required,notblank,max=30"`
}

// StepRequest is one preparation step. Order is only used to sort the
// steps; they are renumbered 1..N before being stored.
type StepRequest struct {
	Order int    `json:"order"`
	Text  string `json:"text" validate:"max=2000"`
}
