package entity

import (
	"errors"
	"strings"
)

var ErrDuplicateIngredient = errors.New("ingredient already listed in this recipe")

type Recipe struct {
	ID         string
	DocumentID string // "_id" as stored by the document API
	CompanyID  string

	Name        string
	Description string
	Ingredients []RecipeIngredient
	Steps       []PrepStep
	PrepMinutes int
	CookMinutes int
	Servings    int
	ImageURL    string
}

type RecipeIngredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// PrepStep is one instruction of the preparation. Order starts at 1.
type PrepStep struct {
	Order int
	Text  string
}

func (r Recipe) IdentityKeys() []string {
	return []string{r.ID, r.DocumentID}
}

func (r Recipe) DisplayName() string {
	return r.Name
}

// PrimaryID returns the id used when addressing the recipe upstream.
func (r Recipe) PrimaryID() string {
	if strings.TrimSpace(r.ID) != "" {
		return r.ID
	}
	return r.DocumentID
}

// HasIngredient compares names case-insensitively, ignoring surrounding spaces.
func (r Recipe) HasIngredient(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, ing := range r.Ingredients {
		if strings.ToLower(strings.TrimSpace(ing.Name)) == needle {
			return true
		}
	}
	return false
}

func (r *Recipe) AddIngredient(ing RecipeIngredient) error {
	if r.HasIngredient(ing.Name) {
		return ErrDuplicateIngredient
	}
	ing.Name = strings.TrimSpace(ing.Name)
	r.Ingredients = append(r.Ingredients, ing)
	return nil
}

// AddStep appends a step at the end. Blank text is ignored.
func (r *Recipe) AddStep(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	r.Steps = append(r.Steps, PrepStep{Order: len(r.Steps) + 1, Text: text})
	return true
}

// RemoveStep drops the step at index i (0-based) and renumbers the rest.
func (r *Recipe) RemoveStep(i int) bool {
	if i < 0 || i >= len(r.Steps) {
		return false
	}
	r.Steps = append(r.Steps[:i], r.Steps[i+1:]...)
	r.ResequenceSteps()
	return true
}

// MoveStep swaps the step at index i with its neighbour in direction dir
// (-1 up, +1 down). Moves past either end are no-ops.
func (r *Recipe) MoveStep(i, dir int) bool {
	j := i + dir
	if dir == 0 || i < 0 || i >= len(r.Steps) || j < 0 || j >= len(r.Steps) {
		return false
	}
	r.Steps[i], r.Steps[j] = r.Steps[j], r.Steps[i]
	r.ResequenceSteps()
	return true
}

// ResequenceSteps drops blank steps and renumbers the remainder 1..N.
func (r *Recipe) ResequenceSteps() {
	kept := r.Steps[:0]
	for _, s := range r.Steps {
		s.Text = strings.TrimSpace(s.Text)
		if s.Text == "" {
			continue
		}
		kept = append(kept, s)
	}
	for i := range kept {
		kept[i].Order = i + 1
	}
	r.Steps = kept
}
