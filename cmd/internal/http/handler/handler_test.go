package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codcoz/cmd/internal/contract"
	"codcoz/cmd/internal/domain/sqlite"
	"codcoz/cmd/internal/domain/sqlite/repository"
	"codcoz/cmd/internal/infrastructure/docstore"
	"codcoz/cmd/internal/infrastructure/relstore"
	"codcoz/cmd/internal/service"
	"codcoz/cmd/internal/utils/validators"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocumentAPI serves a single company ("7") the way the document API does.
func fakeDocumentAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/empresa/7/receita", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `[{"id": 42, "nome": "Arroz branco"}, {"_id": "r2", "nome": "Feijoada"}]`)
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			var doc map[string]any
			assert.NoError(t, json.Unmarshal(body, &doc))
			doc["_id"] = "created"
			w.WriteHeader(http.StatusCreated)
			assert.NoError(t, json.NewEncoder(w).Encode(doc))
		}
	})
	mux.HandleFunc("/api/v1/empresa/7/ingrediente", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			echoDocument(t, w, r, "6")
			return
		}
		fmt.Fprint(w, `[{"_id": "5", "nome": "Banana"}]`)
	})
	mux.HandleFunc("/api/v1/empresa/7/cardapio", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `[{"_id": "m1", "nome": "Semana 1", "data_inicio": "2025-03-17", "data_fim": "2025-03-21",
				"periodicidade": "SEMANAL", "cardapio_semanal": [{"diaSemana": "Segunda-feira", "data": "2025-03-17"}]}]`)
		case http.MethodPost:
			fmt.Fprint(w, `{"_id": "planned"}`)
		}
	})
	mux.HandleFunc("/api/v1/empresa/7/cardapio/m1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			echoDocument(t, w, r, "m1")
			return
		}
		fmt.Fprint(w, `{"_id": "m1", "nome": "Semana 1", "data_inicio": "2025-03-17", "data_fim": "2025-03-21",
			"cardapio_semanal": [{"diaSemana": "Segunda-feira", "data": "2025-03-17",
				"almoco": {"arroz": {"receita_id": "42"}, "proteinas": [{"prioridade": "ALTA", "receita_id": "gone"}]},
				"lanche_tarde": {"opcoes": [], "fruta_id": "5"}}]}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// echoDocument answers a write with the received document under id.
func echoDocument(t *testing.T, w http.ResponseWriter, r *http.Request, id string) {
	var doc map[string]any
	assert.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
	doc["_id"] = id
	assert.NoError(t, json.NewEncoder(w).Encode(doc))
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	upstream := fakeDocumentAPI(t)
	docs := docstore.NewClient(upstream.URL, time.Second)
	rel := relstore.NewClient("", time.Second)

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	validate := validators.New()

	menuService := service.NewMenuService(docs, docs, docs, repository.NewMenuRecordRepository(db), validate)
	menuService.Now = func() time.Time { return time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC) }

	e := echo.New()
	Register(e, Routes{
		Recipes: NewRecipeRoute(service.NewRecipeService(docs, nil, validate)),
		Menus:   NewMenuRoute(menuService),
		Utils:   NewUtilRoute(service.NewIngredientService(docs, validate), service.NewHealthService(docs, rel)),
	})
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = do(e, http.MethodGet, "/api/upstreams/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"docstore": true, "relstore": false}`, rec.Body.String())
}

func TestGetMenuDetailRoute(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/empresas/7/cardapios/m1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail contract.MenuDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.Len(t, detail.Days, 1)

	groups := detail.Days[0].Groups
	require.Len(t, groups, 2)
	assert.Equal(t, "Arroz branco", groups[0].Slots[0].Name)
	assert.Equal(t, "Receita não encontrada", groups[0].Slots[1].Name)
	assert.Equal(t, "Fruta", groups[1].Slots[0].Label)
	assert.Equal(t, "Banana", groups[1].Slots[0].Name)

	rec = do(e, http.MethodGet, "/api/empresas/7/cardapios/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/empresas/7/receitas?q=feij", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var recipes []contract.RecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, "r2", recipes[0].ID)

	rec = do(e, http.MethodGet, "/api/empresas/7/ingredientes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Banana")

	rec = do(e, http.MethodGet, "/api/empresas/7/cardapios", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var menus []contract.MenuSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menus))
	require.Len(t, menus, 1)
	assert.Equal(t, "17/03/2025 - 21/03/2025", menus[0].DisplayRange)
	assert.Equal(t, 1, menus[0].DayCount)

	// Unknown company: the upstream answers 404, the list degrades to empty.
	rec = do(e, http.MethodGet, "/api/empresas/8/cardapios", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInvalidCompanyID(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/empresas/a%20b/receitas", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecipeRoute(t *testing.T) {
	e := newTestServer(t)

	body := `{"name": "Bolo", "ingredients": [{"name": "Farinha", "quantity": 2, "unit": "xícara"}],
		"steps": [{"order": 2, "text": "assar"}, {"order": 1, "text": "misturar"}]}`
	rec := do(e, http.MethodPost, "/api/empresas/7/receitas", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var recipe contract.RecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipe))
	assert.Equal(t, "created", recipe.ID)
	require.Len(t, recipe.Steps, 2)
	assert.Equal(t, "misturar", recipe.Steps[0].Text)
	assert.Equal(t, 1, recipe.Steps[0].Order)

	rec = do(e, http.MethodPost, "/api/empresas/7/receitas", `{"name": "x"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/empresas/7/receitas", `{"name": "Bolo", "ingredients": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "errors")
}

func TestPlanNextWeekRoute(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/empresas/7/cardapios/proxima-semana", `{}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var detail contract.MenuDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "planned", detail.ID)
	require.Len(t, detail.Days, 5)
	assert.Equal(t, "2025-03-17", detail.Days[0].Date)
	assert.Equal(t, "Sexta-feira", detail.Days[4].Weekday)

	rec = do(e, http.MethodPost, "/api/empresas/7/cardapios/proxima-semana", `{}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodGet, "/api/empresas/7/cardapios/historico", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []contract.MenuRecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "planned", history[0].MenuID)
}

func TestUploadImageDisabled(t *testing.T) {
	e := newTestServer(t)

	body := &strings.Builder{}
	body.WriteString("--X\r\nContent-Disposition: form-data; name=\"imagem\"; filename=\"a.png\"\r\nContent-Type: image/png\r\n\r\npng\r\n--X--\r\n")
	req := httptest.NewRequest(http.MethodPost, "/api/empresas/7/receitas/42/imagem", strings.NewReader(body.String()))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=X")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUpdateMenuRoute(t *testing.T) {
	e := newTestServer(t)

	body := `{"name": "Semana 1", "days": [
		{"weekday": "Segunda-feira", "date": "2025-03-17",
		 "lunch": {"rice": {"recipe_id": "42"}, "proteins": [{"priority": "ALTA", "recipe_id": "r2"}]}},
		{"weekday": "Terça-feira", "date": "2025-03-18"},
		{"weekday": "Quarta-feira", "date": "2025-03-19", "morning_snack": {"fruit_id": "5"}},
		{"weekday": "Quinta-feira", "date": "2025-03-20"},
		{"weekday": "Sexta-feira", "date": "2025-03-21"}
	]}`
	rec := do(e, http.MethodPut, "/api/empresas/7/cardapios/m1", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail contract.MenuDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "m1", detail.ID)
	require.Len(t, detail.Days, 5)

	lunch := detail.Days[0].Groups[0]
	require.Len(t, lunch.Slots, 2)
	assert.Equal(t, "Arroz branco", lunch.Slots[0].Name)
	assert.Equal(t, "Feijoada", lunch.Slots[1].Name)
	assert.Equal(t, "Banana", detail.Days[2].Groups[0].Slots[0].Name)

	both := strings.Replace(body, `{"recipe_id": "42"}`, `{"recipe_id": "42", "ingredient_id": "5"}`, 1)
	rec = do(e, http.MethodPut, "/api/empresas/7/cardapios/m1", both)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "days[0].lunch.rice")

	rec = do(e, http.MethodPut, "/api/empresas/7/cardapios/m1", `{"days": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateIngredientRoute(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/empresas/7/ingredientes", `{"name": "Maçã", "minimum_stock": 4}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var ingredient contract.IngredientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ingredient))
	assert.Equal(t, "6", ingredient.ID)
	assert.Equal(t, "Maçã", ingredient.Name)
	assert.Equal(t, 4.0, ingredient.MinimumStock)

	rec = do(e, http.MethodPost, "/api/empresas/7/ingredientes", `{"name": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
