package docstore

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/domain/ident"
)

// The document API is not consistent about attribute casing, so every
// document below reads both the snake_case and the camelCase spelling and
// keeps the first one present. Outgoing documents only use snake_case.

type recipeDocument struct {
	ID         ident.FlexID `json:"id,omitempty"`
	DocumentID ident.FlexID `json:"_id,omitempty"`

	CompanyID      ident.FlexID `json:"empresa_id,omitempty"`
	CompanyIDCamel ident.FlexID `json:"empresaId,omitempty"`

	Name        string                      `json:"nome"`
	Description string                      `json:"descricao"`
	Ingredients []*recipeIngredientDocument `json:"ingredientes"`

	Steps      []*stepDocument `json:"modo_preparo"`
	StepsCamel []*stepDocument `json:"modoPreparo,omitempty"`

	PrepMinutes      flexNumber `json:"tempo_preparo_minutos"`
	PrepMinutesCamel flexNumber `json:"tempoPreparoMinutos,omitempty"`
	CookMinutes      flexNumber `json:"tempo_cozimento_minutos"`
	CookMinutesCamel flexNumber `json:"tempoCozimentoMinutos,omitempty"`
	Servings         flexNumber `json:"porcoes"`

	ImageURL      string `json:"imagem_url,omitempty"`
	ImageURLCamel string `json:"imagemUrl,omitempty"`
}

type recipeIngredientDocument struct {
	Name      string     `json:"nome"`
	Quantity  flexNumber `json:"quantidade"`
	Unit      string     `json:"unidade_medida"`
	UnitCamel string     `json:"unidadeMedida,omitempty"`
}

type stepDocument struct {
	Order flexNumber `json:"ordem"`
	Text  string     `json:"passo"`
}

func (d *recipeDocument) ToDomain() *entity.Recipe {
	r := &entity.Recipe{
		ID:          d.ID.String(),
		DocumentID:  d.DocumentID.String(),
		CompanyID:   firstNonEmpty(d.CompanyID.String(), d.CompanyIDCamel.String()),
		Name:        d.Name,
		Description: d.Description,
		PrepMinutes: d.PrepMinutes.Or(d.PrepMinutesCamel).Int(),
		CookMinutes: d.CookMinutes.Or(d.CookMinutesCamel).Int(),
		Servings:    d.Servings.Int(),
		ImageURL:    firstNonEmpty(d.ImageURL, d.ImageURLCamel),
	}

	for _, ing := range d.Ingredients {
		if ing == nil {
			continue
		}
		r.Ingredients = append(r.Ingredients, entity.RecipeIngredient{
			Name:     ing.Name,
			Quantity: float64(ing.Quantity),
			Unit:     firstNonEmpty(ing.Unit, ing.UnitCamel),
		})
	}

	steps := d.Steps
	if len(steps) == 0 {
		steps = d.StepsCamel
	}
	for _, s := range steps {
		if s == nil {
			continue
		}
		r.Steps = append(r.Steps, entity.PrepStep{Order: s.Order.Int(), Text: s.Text})
	}
	return r
}

func newRecipeDocument(r *entity.Recipe) *recipeDocument {
	d := &recipeDocument{
		CompanyID:   ident.FlexID(r.CompanyID),
		Name:        r.Name,
		Description: r.Description,
		Ingredients: make([]*recipeIngredientDocument, 0, len(r.Ingredients)),
		Steps:       make([]*stepDocument, 0, len(r.Steps)),
		PrepMinutes: flexNumber(r.PrepMinutes),
		CookMinutes: flexNumber(r.CookMinutes),
		Servings:    flexNumber(r.Servings),
		ImageURL:    r.ImageURL,
	}
	for _, ing := range r.Ingredients {
		d.Ingredients = append(d.Ingredients, &recipeIngredientDocument{
			Name:     ing.Name,
			Quantity: flexNumber(ing.Quantity),
			Unit:     ing.Unit,
		})
	}
	for _, s := range r.Steps {
		d.Steps = append(d.Steps, &stepDocument{Order: flexNumber(s.Order), Text: s.Text})
	}
	return d
}

type ingredientDocument struct {
	ID         ident.FlexID `json:"id,omitempty"`
	DocumentID ident.FlexID `json:"_id,omitempty"`

	CompanyID      ident.FlexID `json:"empresa_id,omitempty"`
	CompanyIDCamel ident.FlexID `json:"empresaId,omitempty"`

	Name          string       `json:"nome"`
	Description   string       `json:"descricao"`
	Category      ident.FlexID `json:"categoria"`
	MinStock      flexNumber   `json:"quantidade_minima"`
	MinStockCamel flexNumber   `json:"quantidadeMinima,omitempty"`
}

func (d *ingredientDocument) ToDomain() *entity.Ingredient {
	return &entity.Ingredient{
		ID:           d.ID.String(),
		DocumentID:   d.DocumentID.String(),
		CompanyID:    firstNonEmpty(d.CompanyID.String(), d.CompanyIDCamel.String()),
		Name:         d.Name,
		Description:  d.Description,
		Category:     d.Category.String(),
		MinimumStock: float64(d.MinStock.Or(d.MinStockCamel)),
	}
}

func newIngredientDocument(i *entity.Ingredient) *ingredientDocument {
	return &ingredientDocument{
		ID:          ident.FlexID(i.ID),
		DocumentID:  ident.FlexID(i.DocumentID),
		CompanyID:   ident.FlexID(i.CompanyID),
		Name:        i.Name,
		Description: i.Description,
		Category:    ident.FlexID(i.Category),
		MinStock:    flexNumber(i.MinimumStock),
	}
}

type menuDocument struct {
	ID         ident.FlexID `json:"id,omitempty"`
	DocumentID ident.FlexID `json:"_id,omitempty"`

	CompanyID      ident.FlexID `json:"empresa_id,omitempty"`
	CompanyIDCamel ident.FlexID `json:"empresaId,omitempty"`

	Name           string `json:"nome"`
	StartDate      string `json:"data_inicio"`
	StartDateCamel string `json:"dataInicio,omitempty"`
	EndDate        string `json:"data_fim"`
	EndDateCamel   string `json:"dataFim,omitempty"`
	Periodicity    string `json:"periodicidade"`

	Days      []*dayDocument `json:"cardapio_semanal"`
	DaysCamel []*dayDocument `json:"cardapioSemanal,omitempty"`
}

type dayDocument struct {
	Weekday      string `json:"diaSemana"`
	WeekdaySnake string `json:"dia_semana,omitempty"`
	Date         string `json:"data"`

	MorningSnack        *snackDocument `json:"lanche_manha"`
	MorningSnackCamel   *snackDocument `json:"lancheManha,omitempty"`
	Lunch               *lunchDocument `json:"almoco"`
	AfternoonSnack      *snackDocument `json:"lanche_tarde"`
	AfternoonSnackCamel *snackDocument `json:"lancheTarde,omitempty"`
}

type snackDocument struct {
	Options    []*optionDocument `json:"opcoes"`
	Fixed      *optionDocument   `json:"opcao_fixa,omitempty"`
	FixedCamel *optionDocument   `json:"opcaoFixa,omitempty"`
	Fruit      ident.FlexID      `json:"fruta_id,omitempty"`
	FruitCamel ident.FlexID      `json:"frutaId,omitempty"`
}

type lunchDocument struct {
	Rice           *optionDocument   `json:"arroz,omitempty"`
	BrownRice      *optionDocument   `json:"arroz_integral,omitempty"`
	BrownRiceCamel *optionDocument   `json:"arrozIntegral,omitempty"`
	Beans          *optionDocument   `json:"feijao,omitempty"`
	Proteins       []*optionDocument `json:"proteinas"`
	Side           *optionDocument   `json:"guarnicao,omitempty"`
	Salads         []*optionDocument `json:"saladas"`
	Dressing       *optionDocument   `json:"molho,omitempty"`
	Dessert        *optionDocument   `json:"sobremesa,omitempty"`
}

type optionDocument struct {
	Priority          ident.FlexID `json:"prioridade,omitempty"`
	RecipeID          ident.FlexID `json:"receita_id,omitempty"`
	RecipeIDCamel     ident.FlexID `json:"receitaId,omitempty"`
	IngredientID      ident.FlexID `json:"ingrediente_id,omitempty"`
	IngredientIDCamel ident.FlexID `json:"ingredienteId,omitempty"`
}

func (d *menuDocument) ToDomain() *entity.WeeklyMenu {
	m := &entity.WeeklyMenu{
		ID:          d.ID.String(),
		DocumentID:  d.DocumentID.String(),
		CompanyID:   firstNonEmpty(d.CompanyID.String(), d.CompanyIDCamel.String()),
		Name:        d.Name,
		StartDate:   firstNonEmpty(d.StartDate, d.StartDateCamel),
		EndDate:     firstNonEmpty(d.EndDate, d.EndDateCamel),
		Periodicity: d.Periodicity,
	}

	days := d.Days
	if len(days) == 0 {
		days = d.DaysCamel
	}
	for _, day := range days {
		if day == nil {
			continue
		}
		m.Days = append(m.Days, day.toDomain())
	}
	return m
}

func (d *dayDocument) toDomain() entity.DayEntry {
	return entity.DayEntry{
		Weekday:        firstNonEmpty(d.Weekday, d.WeekdaySnake),
		Date:           d.Date,
		MorningSnack:   firstSnack(d.MorningSnack, d.MorningSnackCamel).toDomain(),
		Lunch:          d.Lunch.toDomain(),
		AfternoonSnack: firstSnack(d.AfternoonSnack, d.AfternoonSnackCamel).toDomain(),
	}
}

func (d *snackDocument) toDomain() *entity.SnackGroup {
	if d == nil {
		return nil
	}
	g := &entity.SnackGroup{
		Options: optionsToDomain(d.Options),
		FruitID: firstNonEmpty(d.Fruit.String(), d.FruitCamel.String()),
	}
	if fixed := firstOption(d.Fixed, d.FixedCamel); fixed != nil {
		opt := fixed.toDomain()
		g.Fixed = &opt
	}
	return g
}

func (d *lunchDocument) toDomain() *entity.LunchGroup {
	if d == nil {
		return nil
	}
	return &entity.LunchGroup{
		Rice:      d.Rice.refToDomain(),
		BrownRice: firstOption(d.BrownRice, d.BrownRiceCamel).refToDomain(),
		Beans:     d.Beans.refToDomain(),
		Proteins:  optionsToDomain(d.Proteins),
		Side:      d.Side.refToDomain(),
		Salads:    optionsToDomain(d.Salads),
		Dressing:  d.Dressing.refToDomain(),
		Dessert:   d.Dessert.refToDomain(),
	}
}

func (d *optionDocument) toDomain() entity.Option {
	return entity.Option{
		Priority: d.Priority.String(),
		Ref: entity.Ref{
			RecipeID:     firstNonEmpty(d.RecipeID.String(), d.RecipeIDCamel.String()),
			IngredientID: firstNonEmpty(d.IngredientID.String(), d.IngredientIDCamel.String()),
		},
	}
}

func (d *optionDocument) refToDomain() *entity.Ref {
	if d == nil {
		return nil
	}
	ref := d.toDomain().Ref
	return &ref
}

func optionsToDomain(docs []*optionDocument) []entity.Option {
	var out []entity.Option
	for _, o := range docs {
		if o == nil {
			continue
		}
		out = append(out, o.toDomain())
	}
	return out
}

func newMenuDocument(m *entity.WeeklyMenu) *menuDocument {
	d := &menuDocument{
		CompanyID:   ident.FlexID(m.CompanyID),
		Name:        m.Name,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Periodicity: m.Periodicity,
		Days:        make([]*dayDocument, 0, len(m.Days)),
	}
	for _, day := range m.Days {
		d.Days = append(d.Days, &dayDocument{
			Weekday:        day.Weekday,
			Date:           day.Date,
			MorningSnack:   newSnackDocument(day.MorningSnack),
			Lunch:          newLunchDocument(day.Lunch),
			AfternoonSnack: newSnackDocument(day.AfternoonSnack),
		})
	}
	return d
}

func newSnackDocument(g *entity.SnackGroup) *snackDocument {
	if g == nil {
		return nil
	}
	d := &snackDocument{Options: newOptionDocuments(g.Options), Fruit: ident.FlexID(g.FruitID)}
	if g.Fixed != nil {
		d.Fixed = newOptionDocument(g.Fixed.Priority, g.Fixed.Ref)
	}
	return d
}

func newLunchDocument(g *entity.LunchGroup) *lunchDocument {
	if g == nil {
		return nil
	}
	return &lunchDocument{
		Rice:      newRefDocument(g.Rice),
		BrownRice: newRefDocument(g.BrownRice),
		Beans:     newRefDocument(g.Beans),
		Proteins:  newOptionDocuments(g.Proteins),
		Side:      newRefDocument(g.Side),
		Salads:    newOptionDocuments(g.Salads),
		Dressing:  newRefDocument(g.Dressing),
		Dessert:   newRefDocument(g.Dessert),
	}
}

func newOptionDocuments(opts []entity.Option) []*optionDocument {
	out := make([]*optionDocument, 0, len(opts))
	for _, o := range opts {
		out = append(out, newOptionDocument(o.Priority, o.Ref))
	}
	return out
}

func newOptionDocument(priority string, ref entity.Ref) *optionDocument {
	return &optionDocument{
		Priority:     ident.FlexID(priority),
		RecipeID:     ident.FlexID(ref.RecipeID),
		IngredientID: ident.FlexID(ref.IngredientID),
	}
}

func newRefDocument(ref *entity.Ref) *optionDocument {
	if ref == nil {
		return nil
	}
	return newOptionDocument("", *ref)
}

// flexNumber accepts JSON numbers, numeric strings and empty strings.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = flexNumber(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = flexNumber(f)
	return nil
}

func (n flexNumber) Int() int {
	return int(n)
}

// Or returns n unless it is zero.
func (n flexNumber) Or(other flexNumber) flexNumber {
	if n != 0 {
		return n
	}
	return other
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstSnack(a, b *snackDocument) *snackDocument {
	if a != nil {
		return a
	}
	return b
}

func firstOption(a, b *optionDocument) *optionDocument {
	if a != nil {
		return a
	}
	return b
}
