package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/middleware"
	"github.com/pageza/mealrank/backend/internal/mocks"
	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/recipeparser"
	"github.com/pageza/mealrank/backend/internal/service"
	"github.com/pageza/mealrank/backend/internal/types"
)

type testServer struct {
	router  *gin.Engine
	meals   *mocks.MockMealService
	rank    *mocks.MockRankService
	stats   *mocks.MockStatsService
	images  *mocks.MockImageService
	recipes *mocks.MockRecipeService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := &testServer{
		router:  gin.New(),
		meals:   &mocks.MockMealService{},
		rank:    &mocks.MockRankService{},
		stats:   &mocks.MockStatsService{},
		images:  &mocks.MockImageService{},
		recipes: &mocks.MockRecipeService{},
	}
	log := zap.NewNop()
	g := s.router.Group("/api")
	NewMealHandler(s.meals, log).RegisterRoutes(g)
	NewRankHandler(s.rank, s.stats, log).RegisterRoutes(g)
	NewRecipeHandler(s.recipes, nil, log).RegisterRoutes(g)
	NewImageHandler(s.images, log).RegisterRoutes(g)

	t.Cleanup(func() {
		s.meals.AssertExpectations(t)
		s.rank.AssertExpectations(t)
		s.stats.AssertExpectations(t)
		s.images.AssertExpectations(t)
		s.recipes.AssertExpectations(t)
	})
	return s
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

type errorBody struct {
	Error  string  `json:"error"`
	Issues []Issue `json:"issues"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestListMealsPassesQuery(t *testing.T) {
	s := newTestServer(t)
	s.meals.On("List", mock.Anything, service.ListOptions{SortBy: "rating", SortDir: "asc", Search: "soup"}).
		Return([]model.Meal{{ID: 1, Name: "Soup", ImageURL: "https://example.com/s.jpg"}}, nil)

	rr := s.do(http.MethodGet, "/api/meals?sortBy=rating&sortDir=asc&search=soup", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	meals := decode[[]map[string]any](t, rr)
	require.Len(t, meals, 1)
	assert.Equal(t, "Soup", meals[0]["name"])
	assert.Equal(t, "https://example.com/s.jpg", meals[0]["imageUrl"])
}

func TestGetMeal(t *testing.T) {
	s := newTestServer(t)
	s.meals.On("Get", mock.Anything, uint(7)).Return(&model.Meal{ID: 7, Name: "Curry"}, nil)
	s.meals.On("Get", mock.Anything, uint(8)).Return(nil, service.ErrNotFound)

	rr := s.do(http.MethodGet, "/api/meals/7", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Curry", decode[model.Meal](t, rr).Name)

	rr = s.do(http.MethodGet, "/api/meals/8", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Meal not found", decode[errorBody](t, rr).Error)

	rr = s.do(http.MethodGet, "/api/meals/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid meal ID", decode[errorBody](t, rr).Error)
}

func TestCreateMeal(t *testing.T) {
	s := newTestServer(t)
	s.meals.On("Create", mock.Anything, mock.MatchedBy(func(req *types.CreateMealRequest) bool {
		return req.Name == "Omelette" && len(req.Ingredients) == 1 && req.Ingredients[0].Unit == "egg"
	})).Return(&model.Meal{ID: 3, Name: "Omelette"}, nil)

	rr := s.do(http.MethodPost, "/api/meals", map[string]any{
		"name":        "Omelette",
		"ingredients": []map[string]any{{"name": "egg", "amount": 3, "unit": "egg", "calories": 210}},
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, uint(3), decode[model.Meal](t, rr).ID)
}

func TestCreateMealValidation(t *testing.T) {
	s := newTestServer(t)

	tooMany := make([]map[string]any, types.MaxIngredients+1)
	for i := range tooMany {
		tooMany[i] = map[string]any{"name": "salt", "amount": 1, "unit": "pinch"}
	}

	tests := []struct {
		name      string
		body      any
		wantField string
	}{
		{"missing name", map[string]any{"servings": 1}, "name"},
		{"negative amount", map[string]any{
			"name":        "Stew",
			"ingredients": []map[string]any{{"name": "beef", "amount": -1, "unit": "lb"}},
		}, "ingredients[0].amount"},
		{"missing unit", map[string]any{
			"name":        "Stew",
			"ingredients": []map[string]any{{"name": "beef", "amount": 1}},
		}, "ingredients[0].unit"},
		{"too many ingredients", map[string]any{"name": "Stew", "ingredients": tooMany}, "ingredients"},
		{"bad servings", map[string]any{"name": "Stew", "servings": -2}, "servings"},
		{"bad recipe url", map[string]any{"name": "Stew", "recipeUrl": "not a url"}, "recipeUrl"},
		{"bad image type", map[string]any{
			"name":   "Stew",
			"images": []map[string]any{{"type": "file"}},
		}, "images[0].type"},
		{"negative override", map[string]any{
			"name":              "Stew",
			"nutritionOverride": map[string]any{"totalCalories": -5},
		}, "nutritionOverride.totalCalories"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(http.MethodPost, "/api/meals", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			body := decode[errorBody](t, rr)
			assert.Equal(t, "Validation failed", body.Error)
			require.NotEmpty(t, body.Issues)
			assert.Equal(t, tt.wantField, body.Issues[0].Field)
		})
	}

	rr := s.do(http.MethodPost, "/api/meals", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Validation failed", decode[errorBody](t, rr).Error)
}

func TestCreateMealInvalidImage(t *testing.T) {
	s := newTestServer(t)
	s.meals.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.Join(service.ErrInvalidImage, errors.New("unsupported type")))

	rr := s.do(http.MethodPost, "/api/meals", map[string]any{"name": "Stew"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Validation failed", decode[errorBody](t, rr).Error)
}

func TestUpdateAndDeleteMeal(t *testing.T) {
	s := newTestServer(t)
	s.meals.On("Update", mock.Anything, uint(4), mock.MatchedBy(func(req *types.UpdateMealRequest) bool {
		return req.Name != nil && *req.Name == "Better" && req.Ingredients == nil
	})).Return(&model.Meal{ID: 4, Name: "Better"}, nil)
	s.meals.On("Delete", mock.Anything, uint(4)).Return(nil).Once()
	s.meals.On("Delete", mock.Anything, uint(5)).Return(service.ErrNotFound)

	rr := s.do(http.MethodPut, "/api/meals/4", map[string]any{"name": "Better"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodPut, "/api/meals/4", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodDelete, "/api/meals/4", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodDelete, "/api/meals/5", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHistory(t *testing.T) {
	s := newTestServer(t)
	s.meals.On("History", mock.Anything, uint(2)).Return([]service.HistoryEntry{
		{ID: 9, Type: "win", OpponentID: 3, OpponentName: "Toast"},
	}, nil)

	rr := s.do(http.MethodGet, "/api/meals/2/history", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	entries := decode[[]service.HistoryEntry](t, rr)
	require.Len(t, entries, 1)
	assert.Equal(t, "Toast", entries[0].OpponentName)
}

func TestRankPair(t *testing.T) {
	s := newTestServer(t)
	s.rank.On("Pair", mock.Anything).Return(&service.Pair{}, nil).Once()
	s.rank.On("Pair", mock.Anything).Return(&service.Pair{
		MealA: &model.Meal{ID: 1, Name: "A"},
		MealB: &model.Meal{ID: 2, Name: "B"},
	}, nil).Once()

	rr := s.do(http.MethodGet, "/api/rank/pair", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"mealA":null,"mealB":null,"message":"Add at least 2 meals to start ranking!"}`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/rank/pair", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decode[PairResponse](t, rr)
	assert.Nil(t, resp.Message)
	assert.Equal(t, "A", resp.MealA.Name)
	assert.Equal(t, "B", resp.MealB.Name)
}

func TestVote(t *testing.T) {
	s := newTestServer(t)
	s.rank.On("Vote", mock.Anything, uint(1), uint(2)).Return(&service.VoteResult{
		Winner:      &model.Meal{ID: 1, Rating: 1016},
		Loser:       &model.Meal{ID: 2, Rating: 984},
		DeltaWinner: 16,
		DeltaLoser:  -16,
	}, nil)
	s.rank.On("Vote", mock.Anything, uint(1), uint(99)).Return(nil, service.ErrNotFound)

	rr := s.do(http.MethodPost, "/api/rank/vote", map[string]any{"winnerId": 1, "loserId": 2})
	require.Equal(t, http.StatusOK, rr.Code)
	res := decode[map[string]any](t, rr)
	assert.EqualValues(t, 16, res["deltaWinner"])
	assert.EqualValues(t, -16, res["deltaLoser"])

	rr = s.do(http.MethodPost, "/api/rank/vote", map[string]any{"winnerId": 1, "loserId": 99})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Meals not found", decode[errorBody](t, rr).Error)

	for _, body := range []map[string]any{
		{"winnerId": 0, "loserId": 2},
		{"winnerId": 3, "loserId": 3},
		{"winnerId": 3},
	} {
		rr = s.do(http.MethodPost, "/api/rank/vote", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "%v", body)
	}
}

func TestSkipLeaderboardStats(t *testing.T) {
	s := newTestServer(t)
	s.rank.On("Skip").Return()
	s.rank.On("Leaderboard", mock.Anything).Return([]model.Meal{{ID: 2, Rating: 1100}, {ID: 1, Rating: 900}}, nil)
	s.stats.On("Stats", mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodPost, "/api/rank/skip", nil).Code)

	rr := s.do(http.MethodGet, "/api/rank/leaderboard", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]model.Meal](t, rr), 2)

	rr = s.do(http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, middleware.MsgInternalError, decode[errorBody](t, rr).Error)
}

func TestParseRecipe(t *testing.T) {
	s := newTestServer(t)
	servings := 4
	s.recipes.On("Parse", mock.Anything, "https://example.com/pancakes").Return(&recipeparser.ParsedRecipe{
		Name:     "Pancakes",
		Servings: servings,
		Ingredients: []recipeparser.Ingredient{
			{Name: "milk", Amount: 1, Unit: "cup(s)", Calories: 149, Protein: 8, Carbs: 12, Fat: 8},
		},
	}, nil)
	s.recipes.On("Parse", mock.Anything, "https://example.com/missing").Return(nil, &recipeparser.Error{
		Kind:       recipeparser.KindHTTPStatus,
		StatusCode: http.StatusNotFound,
		Message:    "Page not found (404). Check the recipe URL.",
	})

	rr := s.do(http.MethodPost, "/api/recipes/parse", map[string]any{"url": "https://example.com/pancakes"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"name": "Pancakes",
		"servings": 4,
		"ingredients": [{"name":"milk","amount":1,"unit":"cup(s)","calories":149,"protein":8,"carbs":12,"fat":8}]
	}`, rr.Body.String())

	rr = s.do(http.MethodPost, "/api/recipes/parse", map[string]any{"url": "https://example.com/missing"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Page not found (404). Check the recipe URL."}`, rr.Body.String())

	rr = s.do(http.MethodPost, "/api/recipes/parse", map[string]any{"url": "nope"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "url", decode[errorBody](t, rr).Issues[0].Field)
}

func TestLookupNutrition(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodPost, "/api/nutrition/lookup", map[string]any{"name": "milk", "amount": 1, "unit": "cup(s)"})
	require.Equal(t, http.StatusOK, rr.Code)
	macros := decode[map[string]int](t, rr)
	assert.Equal(t, 149, macros["calories"])
	assert.Equal(t, 8, macros["protein"])

	rr = s.do(http.MethodPost, "/api/nutrition/lookup", map[string]any{"name": "moon rock", "amount": 2})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"calories":0,"protein":0,"carbs":0,"fat":0}`, rr.Body.String())
}

func TestGetImage(t *testing.T) {
	s := newTestServer(t)
	s.images.On("Content", mock.Anything, uint(1)).Return(&service.ImageContent{RedirectURL: "https://example.com/a.jpg"}, nil)
	s.images.On("Content", mock.Anything, uint(2)).Return(&service.ImageContent{Data: []byte("png"), MimeType: "image/png"}, nil)
	s.images.On("Content", mock.Anything, uint(3)).Return(nil, service.ErrNotFound)

	rr := s.do(http.MethodGet, "/api/images/1", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://example.com/a.jpg", rr.Header().Get("Location"))

	rr = s.do(http.MethodGet, "/api/images/2", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "png", rr.Body.String())

	rr = s.do(http.MethodGet, "/api/images/3", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Image not found", decode[errorBody](t, rr).Error)

	rr = s.do(http.MethodGet, "/api/images/0", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
