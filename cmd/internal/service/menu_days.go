package service

import (
	"fmt"
	"strings"
	"time"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/utils/apierror"
	"codcoz/cmd/internal/utils/dates"
)

const refTargetProblem = "Exactly one of recipe_id or ingredient_id is required"

// dayConverter turns requested days into day entries, collecting every
// problem it finds under the request's json path.
type dayConverter struct {
	problems *apierror.StructuredError
}

// toDayEntries checks the Monday..Friday shape of days and that every ref
// targets exactly one entity.
func toDayEntries(days []*contract.DayRequest) ([]entity.DayEntry, apierror.ErrorResponse) {
	c := &dayConverter{problems: apierror.NewStructured(400)}

	if len(days) != entity.DaysPerWeek {
		c.problems.Add("days", fmt.Sprintf("Must contain exactly %d items", entity.DaysPerWeek))
		return nil, c.problems
	}

	var monday time.Time
	entries := make([]entity.DayEntry, len(days))
	for i, d := range days {
		path := fmt.Sprintf("days[%d]", i)

		if strings.TrimSpace(d.Weekday) != entity.WeekdayLabels[i] {
			c.problems.Add(path+".weekday", "Expected "+entity.WeekdayLabels[i])
		}

		date, err := time.Parse(dates.ISODate, strings.TrimSpace(d.Date))
		switch {
		case err != nil:
			c.problems.Add(path+".date", "Value must be a date formatted as yyyy-MM-dd")
		case i == 0:
			if date.Weekday() != time.Monday {
				c.problems.Add(path+".date", "The first day must be a Monday")
			}
			monday = date
		case !monday.IsZero() && !date.Equal(monday.AddDate(0, 0, i)):
			c.problems.Add(path+".date", "Expected "+monday.AddDate(0, 0, i).Format(dates.ISODate))
		}

		entries[i] = entity.DayEntry{
			Weekday:        entity.WeekdayLabels[i],
			Date:           strings.TrimSpace(d.Date),
			MorningSnack:   c.snack(path+".morning_snack", d.MorningSnack),
			Lunch:          c.lunch(path+".lunch", d.Lunch),
			AfternoonSnack: c.snack(path+".afternoon_snack", d.AfternoonSnack),
		}
	}

	if !c.problems.Empty() {
		return nil, c.problems
	}
	return entries, nil
}

func (c *dayConverter) snack(path string, g *contract.SnackRequest) *entity.SnackGroup {
	if g == nil {
		return nil
	}

	group := &entity.SnackGroup{
		Options: c.options(path+".options", g.Options),
		FruitID: g.FruitID,
	}
	if g.Fixed != nil {
		fixed := c.option(path+".fixed", g.Fixed)
		group.Fixed = &fixed
	}
	return group
}

func (c *dayConverter) lunch(path string, g *contract.LunchRequest) *entity.LunchGroup {
	if g == nil {
		return nil
	}

	return &entity.LunchGroup{
		Rice:      c.ref(path+".rice", g.Rice),
		BrownRice: c.ref(path+".brown_rice", g.BrownRice),
		Beans:     c.ref(path+".beans", g.Beans),
		Proteins:  c.options(path+".proteins", g.Proteins),
		Side:      c.ref(path+".side", g.Side),
		Salads:    c.options(path+".salads", g.Salads),
		Dressing:  c.ref(path+".dressing", g.Dressing),
		Dessert:   c.ref(path+".dessert", g.Dessert),
	}
}

func (c *dayConverter) options(path string, opts []*contract.OptionRequest) []entity.Option {
	if len(opts) == 0 {
		return nil
	}

	out := make([]entity.Option, len(opts))
	for i, o := range opts {
		out[i] = c.option(fmt.Sprintf("%s[%d]", path, i), o)
	}
	return out
}

func (c *dayConverter) option(path string, o *contract.OptionRequest) entity.Option {
	ref := entity.Ref{RecipeID: o.RecipeID, IngredientID: o.IngredientID}
	if !ref.Targeted() {
		c.problems.Add(path, refTargetProblem)
	}
	return entity.Option{Priority: strings.TrimSpace(o.Priority), Ref: ref}
}

// ref converts an optional slot. A nil request leaves the slot empty.
func (c *dayConverter) ref(path string, r *contract.RefRequest) *entity.Ref {
	if r == nil {
		return nil
	}

	ref := entity.Ref{RecipeID: r.RecipeID, IngredientID: r.IngredientID}
	if !ref.Targeted() {
		c.problems.Add(path, refTargetProblem)
	}
	return &ref
}
