package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/pageza/mealrank/backend/internal/model"
)

// Stats summarises the meal log.
type Stats struct {
	TotalMeals       int64 `json:"totalMeals"`
	TotalComparisons int64 `json:"totalComparisons"`
	AvgCalories      int   `json:"avgCalories"`
}

// StatsService computes dashboard statistics
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsService instance
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Stats counts live meals and all matchups, and averages calories over meals
// with a nonzero total.
func (s *StatsService) Stats(ctx context.Context) (*Stats, error) {
	db := s.db.WithContext(ctx)
	var stats Stats

	if err := db.Model(&model.Meal{}).Count(&stats.TotalMeals).Error; err != nil {
		return nil, fmt.Errorf("failed to count meals: %w", err)
	}
	if err := db.Model(&model.Matchup{}).Count(&stats.TotalComparisons).Error; err != nil {
		return nil, fmt.Errorf("failed to count matchups: %w", err)
	}

	var avg sql.NullFloat64
	row := db.Model(&model.Meal{}).Where("total_calories <> 0").Select("AVG(total_calories)").Row()
	if err := row.Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to average calories: %w", err)
	}
	if avg.Valid {
		stats.AvgCalories = int(math.Round(avg.Float64))
	}
	return &stats, nil
}
