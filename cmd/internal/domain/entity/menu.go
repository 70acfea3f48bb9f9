package entity

import "strings"

// DaysPerWeek is the number of served days in a planned week (Monday..Friday).
const DaysPerWeek = 5

const PeriodicityWeekly = "SEMANAL"

var WeekdayLabels = [DaysPerWeek]string{
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
}

type WeeklyMenu struct {
	ID         string
	DocumentID string
	CompanyID  string

	Name        string
	StartDate   string
	EndDate     string
	Periodicity string
	Days        []DayEntry
}

func (m WeeklyMenu) PrimaryID() string {
	if strings.TrimSpace(m.ID) != "" {
		return m.ID
	}
	return m.DocumentID
}

// DayEntry holds one served day. A nil group means nothing was planned for it.
type DayEntry struct {
	Weekday        string
	Date           string // 2006-01-02
	MorningSnack   *SnackGroup
	Lunch          *LunchGroup
	AfternoonSnack *SnackGroup
}

// Ref points at a recipe or an ingredient. When both are set the recipe wins.
type Ref struct {
	RecipeID     string
	IngredientID string
}

func (r Ref) IsZero() bool {
	return strings.TrimSpace(r.RecipeID) == "" && strings.TrimSpace(r.IngredientID) == ""
}

// Targeted reports whether exactly one of the recipe or the ingredient is set.
func (r Ref) Targeted() bool {
	hasRecipe := strings.TrimSpace(r.RecipeID) != ""
	hasIngredient := strings.TrimSpace(r.IngredientID) != ""
	return hasRecipe != hasIngredient
}

type Option struct {
	Priority string
	Ref
}

type SnackGroup struct {
	Options []Option
	Fixed   *Option
	FruitID string
}

type LunchGroup struct {
	Rice      *Ref
	BrownRice *Ref
	Beans     *Ref
	Proteins  []Option
	Side      *Ref
	Salads    []Option
	Dressing  *Ref
	Dessert   *Ref
}
