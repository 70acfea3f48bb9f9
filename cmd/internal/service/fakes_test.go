package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/infrastructure/docstore"
)

var errUpstream = errors.New("connection refused")

// fakeDocStore keeps documents in memory and can be told to fail.
type fakeDocStore struct {
	mu sync.Mutex

	recipes     []*entity.Recipe
	ingredients []*entity.Ingredient
	menus       []*entity.WeeklyMenu

	failRecipes     bool
	failIngredients bool
	failMenus       bool

	// createDelay slows CreateMenu down to widen race windows.
	createDelay time.Duration

	createdMenus       []*entity.WeeklyMenu
	updatedMenus       []*entity.WeeklyMenu
	updated            []*entity.Recipe
	deleted            []string
	writtenIngredients []*entity.Ingredient
}

func (f *fakeDocStore) ListRecipes(_ context.Context, _ string) ([]*entity.Recipe, error) {
	if f.failRecipes {
		return nil, errUpstream
	}
	return f.recipes, nil
}

func (f *fakeDocStore) GetRecipe(_ context.Context, _, recipeID string) (*entity.Recipe, error) {
	if f.failRecipes {
		return nil, errUpstream
	}
	for _, r := range f.recipes {
		if r.PrimaryID() == recipeID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, docstore.ErrNotFound
}

func (f *fakeDocStore) CreateRecipe(_ context.Context, _ string, recipe *entity.Recipe) (*entity.Recipe, error) {
	if f.failRecipes {
		return nil, errUpstream
	}
	cp := *recipe
	cp.DocumentID = "new-recipe"
	f.recipes = append(f.recipes, &cp)
	return &cp, nil
}

func (f *fakeDocStore) UpdateRecipe(_ context.Context, _, recipeID string, recipe *entity.Recipe) (*entity.Recipe, error) {
	for i, r := range f.recipes {
		if r.PrimaryID() == recipeID {
			cp := *recipe
			f.recipes[i] = &cp
			f.updated = append(f.updated, &cp)
			return &cp, nil
		}
	}
	return nil, docstore.ErrNotFound
}

func (f *fakeDocStore) DeleteRecipe(_ context.Context, _, recipeID string) error {
	if f.failRecipes {
		return errUpstream
	}
	for _, r := range f.recipes {
		if r.PrimaryID() == recipeID {
			f.deleted = append(f.deleted, recipeID)
			return nil
		}
	}
	return docstore.ErrNotFound
}

func (f *fakeDocStore) ListIngredients(_ context.Context, _ string) ([]*entity.Ingredient, error) {
	if f.failIngredients {
		return nil, errUpstream
	}
	return f.ingredients, nil
}

func (f *fakeDocStore) CreateIngredient(_ context.Context, _ string, ingredient *entity.Ingredient) (*entity.Ingredient, error) {
	if f.failIngredients {
		return nil, errUpstream
	}
	cp := *ingredient
	cp.DocumentID = "new-ingredient"
	f.writtenIngredients = append(f.writtenIngredients, &cp)
	return &cp, nil
}

func (f *fakeDocStore) UpdateIngredient(_ context.Context, _, ingredientID string, ingredient *entity.Ingredient) (*entity.Ingredient, error) {
	if f.failIngredients {
		return nil, errUpstream
	}
	for _, i := range f.ingredients {
		if i.PrimaryID() == ingredientID {
			cp := *ingredient
			f.writtenIngredients = append(f.writtenIngredients, &cp)
			return &cp, nil
		}
	}
	return nil, docstore.ErrNotFound
}

func (f *fakeDocStore) ListMenus(_ context.Context, _ string) ([]*entity.WeeklyMenu, error) {
	if f.failMenus {
		return nil, errUpstream
	}
	return f.menus, nil
}

func (f *fakeDocStore) GetMenu(_ context.Context, _, menuID string) (*entity.WeeklyMenu, error) {
	if f.failMenus {
		return nil, errUpstream
	}
	for _, m := range f.menus {
		if m.PrimaryID() == menuID {
			return m, nil
		}
	}
	return nil, docstore.ErrNotFound
}

func (f *fakeDocStore) CreateMenu(_ context.Context, _ string, menu *entity.WeeklyMenu) (*entity.WeeklyMenu, error) {
	time.Sleep(f.createDelay)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMenus {
		return nil, errUpstream
	}
	cp := *menu
	cp.DocumentID = "menu-" + menu.StartDate
	f.createdMenus = append(f.createdMenus, &cp)
	return &cp, nil
}

func (f *fakeDocStore) UpdateMenu(_ context.Context, _, menuID string, menu *entity.WeeklyMenu) (*entity.WeeklyMenu, error) {
	if f.failMenus {
		return nil, errUpstream
	}
	for _, m := range f.menus {
		if m.PrimaryID() == menuID {
			cp := *menu
			f.updatedMenus = append(f.updatedMenus, &cp)
			return &cp, nil
		}
	}
	return nil, docstore.ErrNotFound
}

type fakePinger bool

func (p fakePinger) Ping(context.Context) bool {
	return bool(p)
}
