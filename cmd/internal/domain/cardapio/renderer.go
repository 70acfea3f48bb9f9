package cardapio

import (
	"strconv"
	"strings"

	"codcoz/cmd/internal/domain/cache"
	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/utils/dates"
)

const (
	RecipeNotFound     = "Receita não encontrada"
	IngredientNotFound = "Ingrediente não encontrado"
)

const (
	GroupMorningSnack   = "lanche_manha"
	GroupLunch          = "almoco"
	GroupAfternoonSnack = "lanche_tarde"
)

const (
	KindRecipe     = "receita"
	KindIngredient = "ingrediente"
)

// Line is one resolved slot.
type Line struct {
	Label    string
	Name     string
	Priority string
	Kind     string
	RefID    string
	Resolved bool
}

type GroupView struct {
	Key   string
	Title string
	Lines []Line
}

type DayView struct {
	Weekday   string
	Date      string
	DateLabel string
	Groups    []GroupView
}

// Resolver renders day entries against one recipe cache and one ingredient
// cache. It is meant to live for a single menu view.
type Resolver struct {
	recipes     *cache.Cache[entity.Recipe]
	ingredients *cache.Cache[entity.Ingredient]
}

func NewResolver(recipes *cache.Cache[entity.Recipe], ingredients *cache.Cache[entity.Ingredient]) *Resolver {
	if recipes == nil {
		recipes = cache.New[entity.Recipe]()
	}
	if ingredients == nil {
		ingredients = cache.New[entity.Ingredient]()
	}
	return &Resolver{recipes: recipes, ingredients: ingredients}
}

// Resolve returns the line for ref. The boolean is false when ref points at
// nothing, in which case the slot must be left out.
func (r *Resolver) Resolve(label string, ref entity.Ref) (Line, bool) {
	switch {
	case strings.TrimSpace(ref.RecipeID) != "":
		name, ok := r.recipes.NameOr(ref.RecipeID, RecipeNotFound)
		return Line{Label: label, Name: name, Kind: KindRecipe, RefID: ref.RecipeID, Resolved: ok}, true
	case strings.TrimSpace(ref.IngredientID) != "":
		name, ok := r.ingredients.NameOr(ref.IngredientID, IngredientNotFound)
		return Line{Label: label, Name: name, Kind: KindIngredient, RefID: ref.IngredientID, Resolved: ok}, true
	default:
		return Line{}, false
	}
}

// RenderMenu renders every day in persisted order.
func (r *Resolver) RenderMenu(m entity.WeeklyMenu) []DayView {
	views := make([]DayView, 0, len(m.Days))
	for _, d := range m.Days {
		views = append(views, r.RenderDay(d))
	}
	return views
}

// RenderDay resolves every slot of d. Groups that were never planned are
// omitted, as are slots with no reference.
func (r *Resolver) RenderDay(d entity.DayEntry) DayView {
	view := DayView{
		Weekday:   d.Weekday,
		Date:      d.Date,
		DateLabel: dates.FormatDayMonth(d.Date),
		Groups:    []GroupView{},
	}

	if d.MorningSnack != nil {
		view.Groups = append(view.Groups, r.renderSnack(GroupMorningSnack, "Lanche da manhã", d.MorningSnack))
	}
	if d.Lunch != nil {
		view.Groups = append(view.Groups, r.renderLunch(d.Lunch))
	}
	if d.AfternoonSnack != nil {
		view.Groups = append(view.Groups, r.renderSnack(GroupAfternoonSnack, "Lanche da tarde", d.AfternoonSnack))
	}
	return view
}

func (r *Resolver) renderSnack(key, title string, g *entity.SnackGroup) GroupView {
	view := GroupView{Key: key, Title: title, Lines: []Line{}}

	view.Lines = r.appendOptions(view.Lines, "Opção", g.Options)
	if g.Fixed != nil {
		view.Lines = r.appendOption(view.Lines, "Opção fixa", *g.Fixed)
	}
	view.Lines = r.appendRef(view.Lines, "Fruta", &entity.Ref{IngredientID: g.FruitID})
	return view
}

func (r *Resolver) renderLunch(g *entity.LunchGroup) GroupView {
	view := GroupView{Key: GroupLunch, Title: "Almoço", Lines: []Line{}}

	view.Lines = r.appendRef(view.Lines, "Arroz", g.Rice)
	view.Lines = r.appendRef(view.Lines, "Arroz integral", g.BrownRice)
	view.Lines = r.appendRef(view.Lines, "Feijão", g.Beans)
	view.Lines = r.appendOptions(view.Lines, "Proteína", g.Proteins)
	view.Lines = r.appendRef(view.Lines, "Guarnição", g.Side)
	view.Lines = r.appendOptions(view.Lines, "Salada", g.Salads)
	view.Lines = r.appendRef(view.Lines, "Molho", g.Dressing)
	view.Lines = r.appendRef(view.Lines, "Sobremesa", g.Dessert)
	return view
}

// appendOptions numbers options by their position in the stored list.
func (r *Resolver) appendOptions(lines []Line, prefix string, opts []entity.Option) []Line {
	for i, opt := range opts {
		lines = r.appendOption(lines, prefix+" "+strconv.Itoa(i+1), opt)
	}
	return lines
}

func (r *Resolver) appendOption(lines []Line, label string, opt entity.Option) []Line {
	line, ok := r.Resolve(label, opt.Ref)
	if !ok {
		return lines
	}
	line.Priority = opt.Priority
	return append(lines, line)
}

func (r *Resolver) appendRef(lines []Line, label string, ref *entity.Ref) []Line {
	if ref == nil {
		return lines
	}
	if line, ok := r.Resolve(label, *ref); ok {
		lines = append(lines, line)
	}
	return lines
}
