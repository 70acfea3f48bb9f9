package contract

type MenuSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Periodicity  string `json:"periodicity"`
	DisplayRange string `json:"display_range"`
	DayCount     int    `json:"day_count"`
}

type MenuDetailResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	Periodicity  string         `json:"periodicity"`
	DisplayRange string         `json:"display_range"`
	Days         []*DayResponse `json:"days"`
}

type DayResponse struct {
	Weekday   string               `json:"weekday"`
	Date      string               `json:"date"`
	DateLabel string               `json:"date_label"`
	Groups    []*MealGroupResponse `json:"groups"`
}

type MealGroupResponse struct {
	Key   string          `json:"key"`
	Title string          `json:"title"`
	Slots []*SlotResponse `json:"slots"`
}

type SlotResponse struct {
	Label    string `json:"label"`
	Name     string `json:"name"`
	Priority string `json:"priority,omitempty"`
	Kind     string `json:"kind"`
	RefID    string `json:"ref_id"`
	Resolved bool   `json:"resolved"`
}

type PlanWeekRequest struct {
	Name string `json:"name" validate:"omitempty,max=120"`
}

type MenuRecordResponse struct {
	MenuID    string `json:"menu_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
}

// MenuUpdateRequest replaces the name and the five day entries of a menu.
// Each ref carries exactly one of recipe_id or ingredient_id.
type MenuUpdateRequest struct {
	Name string        `json:"name" validate:"omitempty,notblank,max=120"`
	Days []*DayRequest `json:"days" validate:"required,len=5,dive,required"`
}

type DayRequest struct {
	Weekday        string        `json:"weekday" validate:"required"`
	Date           string        `json:"date" validate:"required,datetime=2006-01-02"`
	MorningSnack   *SnackRequest `json:"morning_snack"`
	Lunch          *LunchRequest `json:"lunch"`
	AfternoonSnack *SnackRequest `json:"afternoon_snack"`
}

type SnackRequest struct {
	Options []*OptionRequest `json:"options" validate:"max=10,dive,required"`
	Fixed   *OptionRequest   `json:"fixed"`
	FruitID string           `json:"fruit_id" validate:"omitempty,nospaces,max=64"`
}

type LunchRequest struct {
	Rice      *RefRequest      `json:"rice"`
	BrownRice *RefRequest      `json:"brown_rice"`
	Beans     *RefRequest      `json:"beans"`
	Proteins  []*OptionRequest `json:"proteins" validate:"max=10,dive,required"`
	Side      *RefRequest      `json:"side"`
	Salads    []*OptionRequest `json:"salads" validate:"max=10,dive,required"`
	Dressing  *RefRequest      `json:"dressing"`
	Dessert   *RefRequest      `json:"dessert"`
}

type RefRequest struct {
	RecipeID     string `json:"recipe_id" validate:"omitempty,nospaces,max=64"`
	IngredientID string `json:"ingredient_id" validate:"omitempty,nospaces,max=64"`
}

type OptionRequest struct {
	Priority string `json:"priority" validate:"max=30"`
	RefRequest
}
