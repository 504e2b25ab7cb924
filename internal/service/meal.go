package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/types"
)

var sortColumns = map[string]string{"date": "date", "rating": "rating", "name": "name"}

// ListOptions controls meal listing. Unknown values fall back to date, desc.
type ListOptions struct {
	SortBy  string
	SortDir string
	Search  string
}

// HistoryEntry is one matchup seen from a single meal's side.
type HistoryEntry struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Type         string    `json:"type"`
	OpponentID   uint      `json:"opponentId"`
	OpponentName string    `json:"opponentName"`
}

// MealService handles meal operations
type MealService struct {
	db     *gorm.DB
	images IImageService
	logger *zap.Logger
}

// NewMealService creates a new MealService instance
func NewMealService(db *gorm.DB, images IImageService, logger *zap.Logger) *MealService {
	return &MealService{db: db, images: images, logger: logger}
}

// List returns live meals, each carrying at most its first image.
func (s *MealService) List(ctx context.Context, opts ListOptions) ([]model.Meal, error) {
	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "date"
	}
	desc := opts.SortDir != "asc"

	query := s.db.WithContext(ctx).Model(&model.Meal{})
	if search := strings.TrimSpace(opts.Search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var meals []model.Meal
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order("id").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	if err := attachFirstImages(s.db.WithContext(ctx), meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// attachFirstImages sets Images to the lowest-id image of each meal.
func attachFirstImages(db *gorm.DB, meals []model.Meal) error {
	if len(meals) == 0 {
		return nil
	}
	ids := make([]uint, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}

	var images []model.Image
	if err := db.Where("meal_id IN ?", ids).Order("meal_id, id").Find(&images).Error; err != nil {
		return fmt.Errorf("failed to load meal images: %w", err)
	}
	first := make(map[uint]model.Image, len(images))
	for _, img := range images {
		if _, seen := first[img.MealID]; !seen {
			img.URL = img.PublicURL()
			first[img.MealID] = img
		}
	}

	for i := range meals {
		meals[i].Images = []model.Image{}
		if img, ok := first[meals[i].ID]; ok {
			meals[i].Images = []model.Image{img}
			meals[i].ImageURL = img.URL
		}
	}
	return nil
}

// Get returns a live meal with its ingredients and images.
func (s *MealService) Get(ctx context.Context, id uint) (*model.Meal, error) {
	return getMeal(s.db.WithContext(ctx), id)
}

func getMeal(db *gorm.DB, id uint) (*model.Meal, error) {
	var meal model.Meal
	err := db.
		Preload("Ingredients", func(q *gorm.DB) *gorm.DB { return q.Order("id") }).
		Preload("Images", func(q *gorm.DB) *gorm.DB { return q.Order("id") }).
		First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load meal %d: %w", id, err)
	}
	withPublicURLs(meal.Images)
	return &meal, nil
}

func toIngredients(inputs []types.IngredientInput) []model.Ingredient {
	ings := make([]model.Ingredient, len(inputs))
	for i, in := range inputs {
		ings[i] = model.Ingredient{
			Name:     in.Name,
			Amount:   in.Amount,
			Unit:     in.Unit,
			Calories: in.Calories,
			Protein:  in.Protein,
			Carbs:    in.Carbs,
			Fat:      in.Fat,
		}
	}
	return ings
}

// totals uses the override when any of its fields is set, with missing fields
// as zero, and sums the ingredients otherwise.
func totals(override *types.NutritionOverride, ings []model.Ingredient) model.Macros {
	if !override.IsSet() {
		return model.SumIngredients(ings)
	}
	value := func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	}
	return model.Macros{
		Calories: value(override.TotalCalories),
		Protein:  value(override.TotalProtein),
		Carbs:    value(override.TotalCarbs),
		Fat:      value(override.TotalFat),
	}
}

// Create stores a new meal starting at the default rating.
func (s *MealService) Create(ctx context.Context, req *types.CreateMealRequest) (*model.Meal, error) {
	images, err := s.images.Prepare(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	meal := model.Meal{
		Name:         req.Name,
		Date:         time.Now().UTC(),
		Instructions: req.Instructions,
		Notes:        req.Notes,
		RecipeURL:    req.RecipeURL,
		Servings:     req.Servings,
		Rating:       model.StartingRating,
		Ingredients:  toIngredients(req.Ingredients),
		Images:       images,
	}
	if req.Date != nil {
		meal.Date = *req.Date
	}
	if meal.Servings < 1 {
		meal.Servings = types.DefaultMealServing
	}
	meal.SetTotals(totals(req.NutritionOverride, meal.Ingredients))

	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}
	s.logger.Info("meal created", zap.Uint("id", meal.ID), zap.Int("ingredients", len(meal.Ingredients)))
	return s.Get(ctx, meal.ID)
}

// Update applies the non-nil fields of req. Totals are recomputed on every
// update from the override or the resulting ingredient list.
func (s *MealService) Update(ctx context.Context, id uint, req *types.UpdateMealRequest) (*model.Meal, error) {
	var images []model.Image
	if req.Images != nil {
		var err error
		if images, err = s.images.Prepare(ctx, req.Images); err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := getMeal(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Date != nil {
			updates["date"] = *req.Date
		}
		if req.Instructions != nil {
			updates["instructions"] = *req.Instructions
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.RecipeURL != "" {
			updates["recipe_url"] = req.RecipeURL
		}
		if req.Servings != nil {
			updates["servings"] = *req.Servings
		}

		ings := current.Ingredients
		if req.Ingredients != nil {
			ings = toIngredients(req.Ingredients)
			if err := tx.Where("meal_id = ?", id).Delete(&model.Ingredient{}).Error; err != nil {
				return fmt.Errorf("failed to clear ingredients: %w", err)
			}
			for i := range ings {
				ings[i].MealID = id
			}
			if len(ings) > 0 {
				if err := tx.Create(&ings).Error; err != nil {
					return fmt.Errorf("failed to save ingredients: %w", err)
				}
			}
		}

		m := totals(req.NutritionOverride, ings)
		updates["total_calories"] = m.Calories
		updates["total_protein"] = m.Protein
		updates["total_carbs"] = m.Carbs
		updates["total_fat"] = m.Fat

		if err := tx.Model(&model.Meal{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update meal: %w", err)
		}

		if req.Images != nil {
			if err := tx.Where("meal_id = ?", id).Delete(&model.Image{}).Error; err != nil {
				return fmt.Errorf("failed to clear images: %w", err)
			}
			for i := range images {
				images[i].MealID = id
			}
			if len(images) > 0 {
				if err := tx.Create(&images).Error; err != nil {
					return fmt.Errorf("failed to save images: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes a meal. Its matchups are kept for history.
func (s *MealService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Meal{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// History lists a meal's wins and losses, newest first. Opponents that were
// deleted since still appear by name.
func (s *MealService) History(ctx context.Context, id uint) ([]HistoryEntry, error) {
	db := s.db.WithContext(ctx)

	var matchups []model.Matchup
	err := db.Where("winner_id = ? OR loser_id = ?", id, id).
		Order("created_at DESC, id DESC").
		Find(&matchups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(matchups))
	if len(matchups) == 0 {
		return entries, nil
	}

	opponentIDs := make([]uint, 0, len(matchups))
	for _, m := range matchups {
		if m.WinnerID == id {
			opponentIDs = append(opponentIDs, m.LoserID)
		} else {
			opponentIDs = append(opponentIDs, m.WinnerID)
		}
	}
	var opponents []model.Meal
	if err := db.Unscoped().Select("id", "name").Where("id IN ?", opponentIDs).Find(&opponents).Error; err != nil {
		return nil, fmt.Errorf("failed to load opponents: %w", err)
	}
	names := make(map[uint]string, len(opponents))
	for _, o := range opponents {
		names[o.ID] = o.Name
	}

	for i, m := range matchups {
		entry := HistoryEntry{ID: m.ID, CreatedAt: m.CreatedAt, OpponentID: opponentIDs[i], Type: "loss"}
		if m.WinnerID == id {
			entry.Type = "win"
		}
		entry.OpponentName = names[entry.OpponentID]
		entries = append(entries, entry)
	}
	return entries, nil
}
