package contract

type IngredientResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category,omitempty"`
	MinimumStock float64 `json:"minimum_stock"`
}

type IngredientRequest struct {
	Name         string  `json:"name" validate:"required,notblank,min=2,max=120"`
	Description  string  `json:"description" validate:"max=2000"`
	Category     string  `json:"category" validate:"omitempty,nospaces,max=64"`
	MinimumStock float64 `json:"minimum_stock" validate:"gte=0"`
}
