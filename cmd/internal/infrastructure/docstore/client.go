// Package docstore talks to the document-store API that persists recipes,
// menu-scoped ingredients and weekly menus.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codcoz/cmd/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("not found")
)

const (
	resourceRecipe     = "receita"
	resourceIngredient = "ingrediente"
	resourceMenu       = "cardapio"
)

// StatusError is returned for any non-2xx answer other than 404.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("docstore %s %s failed with status code: %d", e.Method, e.Path, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListRecipes(ctx context.Context, companyID string) ([]*entity.Recipe, error) {
	var docs []*recipeDocument
	if err := c.do(ctx, http.MethodGet, c.path(companyID, resourceRecipe, ""), nil, &docs); err != nil {
		return nil, err
	}

	recipes := make([]*entity.Recipe, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			recipes = append(recipes, d.ToDomain())
		}
	}
	return recipes, nil
}

func (c *Client) GetRecipe(ctx context.Context, companyID, recipeID string) (*entity.Recipe, error) {
	var doc recipeDocument
	if err := c.do(ctx, http.MethodGet, c.path(companyID, resourceRecipe, recipeID), nil, &doc); err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (c *Client) CreateRecipe(ctx context.Context, companyID string, recipe *entity.Recipe) (*entity.Recipe, error) {
	return c.writeRecipe(ctx, http.MethodPost, c.path(companyID, resourceRecipe, ""), recipe)
}

func (c *Client) UpdateRecipe(ctx context.Context, companyID, recipeID string, recipe *entity.Recipe) (*entity.Recipe, error) {
	return c.writeRecipe(ctx, http.MethodPut, c.path(companyID, resourceRecipe, recipeID), recipe)
}

func (c *Client) DeleteRecipe(ctx context.Context, companyID, recipeID string) error {
	return c.do(ctx, http.MethodDelete, c.path(companyID, resourceRecipe, recipeID), nil, nil)
}

func (c *Client) writeRecipe(ctx context.Context, method, path string, recipe *entity.Recipe) (*entity.Recipe, error) {
	var doc recipeDocument
	found, err := c.doOptional(ctx, method, path, newRecipeDocument(recipe), &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return recipe, nil
	}
	return doc.ToDomain(), nil
}

func (c *Client) ListIngredients(ctx context.Context, companyID string) ([]*entity.Ingredient, error) {
	var docs []*ingredientDocument
	if err := c.do(ctx, http.MethodGet, c.path(companyID, resourceIngredient, ""), nil, &docs); err != nil {
		return nil, err
	}

	ingredients := make([]*entity.Ingredient, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			ingredients = append(ingredients, d.ToDomain())
		}
	}
	return ingredients, nil
}

func (c *Client) CreateIngredient(ctx context.Context, companyID string, ingredient *entity.Ingredient) (*entity.Ingredient, error) {
	return c.writeIngredient(ctx, http.MethodPost, c.path(companyID, resourceIngredient, ""), ingredient)
}

func (c *Client) UpdateIngredient(ctx context.Context, companyID, ingredientID string, ingredient *entity.Ingredient) (*entity.Ingredient, error) {
	return c.writeIngredient(ctx, http.MethodPut, c.path(companyID, resourceIngredient, ingredientID), ingredient)
}

func (c *Client) writeIngredient(ctx context.Context, method, path string, ingredient *entity.Ingredient) (*entity.Ingredient, error) {
	var doc ingredientDocument
	found, err := c.doOptional(ctx, method, path, newIngredientDocument(ingredient), &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return ingredient, nil
	}
	return doc.ToDomain(), nil
}

func (c *Client) ListMenus(ctx context.Context, companyID string) ([]*entity.WeeklyMenu, error) {
	var docs []*menuDocument
	if err := c.do(ctx, http.MethodGet, c.path(companyID, resourceMenu, ""), nil, &docs); err != nil {
		return nil, err
	}

	menus := make([]*entity.WeeklyMenu, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			menus = append(menus, d.ToDomain())
		}
	}
	return menus, nil
}

func (c *Client) GetMenu(ctx context.Context, companyID, menuID string) (*entity.WeeklyMenu, error) {
	var doc menuDocument
	if err := c.do(ctx, http.MethodGet, c.path(companyID, resourceMenu, menuID), nil, &doc); err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (c *Client) CreateMenu(ctx context.Context, companyID string, menu *entity.WeeklyMenu) (*entity.WeeklyMenu, error) {
	return c.writeMenu(ctx, http.MethodPost, c.path(companyID, resourceMenu, ""), menu)
}

func (c *Client) UpdateMenu(ctx context.Context, companyID, menuID string, menu *entity.WeeklyMenu) (*entity.WeeklyMenu, error) {
	return c.writeMenu(ctx, http.MethodPut, c.path(companyID, resourceMenu, menuID), menu)
}

func (c *Client) writeMenu(ctx context.Context, method, path string, menu *entity.WeeklyMenu) (*entity.WeeklyMenu, error) {
	var doc menuDocument
	found, err := c.doOptional(ctx, method, path, newMenuDocument(menu), &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return menu, nil
	}

	written := doc.ToDomain()
	// Some deployments echo only the id back.
	if len(written.Days) == 0 && len(menu.Days) > 0 {
		copied := *menu
		if written.PrimaryID() != "" {
			copied.ID, copied.DocumentID = written.ID, written.DocumentID
		}
		written = &copied
	}
	return written, nil
}

// Ping reports whether the API answers at all. Any HTTP status counts.
func (c *Client) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/empresa/1", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

func (c *Client) path(companyID, resource, id string) string {
	p := "/api/v1/empresa/" + url.PathEscape(companyID) + "/" + resource
	if id != "" {
		p += "/" + url.PathEscape(id)
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	_, err := c.doOptional(ctx, method, path, in, out)
	return err
}

// doOptional performs the request and decodes the answer into out. The
// boolean is false when the API answered with an empty body.
func (c *Client) doOptional(ctx context.Context, method, path string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return false, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("docstore %s %s: decoding response: %w", method, path, err)
	}
	return true, nil
}
