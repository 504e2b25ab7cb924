// Package mocks provides testify mocks of the service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/recipeparser"
	"github.com/pageza/mealrank/backend/internal/service"
	"github.com/pageza/mealrank/backend/internal/types"
)

// MockMealService is a mock implementation of the meal service
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) List(ctx context.Context, opts service.ListOptions) ([]model.Meal, error) {
	args := m.Called(ctx, opts)
	meals, _ := args.Get(0).([]model.Meal)
	return meals, args.Error(1)
}

func (m *MockMealService) Get(ctx context.Context, id uint) (*model.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealService) Create(ctx context.Context, req *types.CreateMealRequest) (*model.Meal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealService) Update(ctx context.Context, id uint, req *types.UpdateMealRequest) (*model.Meal, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMealService) History(ctx context.Context, id uint) ([]service.HistoryEntry, error) {
	args := m.Called(ctx, id)
	entries, _ := args.Get(0).([]service.HistoryEntry)
	return entries, args.Error(1)
}

// MockRankService is a mock implementation of the rank service
type MockRankService struct {
	mock.Mock
}

func (m *MockRankService) Pair(ctx context.Context) (*service.Pair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Pair), args.Error(1)
}

func (m *MockRankService) Vote(ctx context.Context, winnerID, loserID uint) (*service.VoteResult, error) {
	args := m.Called(ctx, winnerID, loserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VoteResult), args.Error(1)
}

func (m *MockRankService) Skip() {
	m.Called()
}

func (m *MockRankService) Leaderboard(ctx context.Context) ([]model.Meal, error) {
	args := m.Called(ctx)
	meals, _ := args.Get(0).([]model.Meal)
	return meals, args.Error(1)
}

// MockStatsService is a mock implementation of the stats service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Prepare(ctx context.Context, inputs []types.ImageInput) ([]model.Image, error) {
	args := m.Called(ctx, inputs)
	images, _ := args.Get(0).([]model.Image)
	return images, args.Error(1)
}

func (m *MockImageService) Content(ctx context.Context, id uint) (*service.ImageContent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageContent), args.Error(1)
}

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Parse(ctx context.Context, url string) (*recipeparser.ParsedRecipe, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipeparser.ParsedRecipe), args.Error(1)
}

var (
	_ service.IMealService   = (*MockMealService)(nil)
	_ service.IRankService   = (*MockRankService)(nil)
	_ service.IStatsService  = (*MockStatsService)(nil)
	_ service.IImageService  = (*MockImageService)(nil)
	_ service.IRecipeService = (*MockRecipeService)(nil)
)
