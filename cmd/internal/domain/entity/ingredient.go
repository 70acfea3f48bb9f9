package entity

import "strings"

type Ingredient struct {
	ID         string
	DocumentID string
	CompanyID  string

	Name         string
	Description  string
	Category     string
	MinimumStock float64
}

func (i Ingredient) IdentityKeys() []string {
	return []string{i.ID, i.DocumentID}
}

func (i Ingredient) DisplayName() string {
	return i.Name
}

func (i Ingredient) PrimaryID() string {
	if strings.TrimSpace(i.ID) != "" {
		return i.ID
	}
	return i.DocumentID
}
