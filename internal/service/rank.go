package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/mealrank/backend/internal/model"
)

const (
	// KFactor is the Elo K used for every matchup.
	KFactor = 32
	// maxPairAttempts bounds the search for a pair different from the last one.
	maxPairAttempts = 50
)

// Elo returns the new ratings after winner beats loser.
func Elo(winner, loser int) (int, int) {
	expectedWinner := 1 / (1 + math.Pow(10, float64(loser-winner)/400))
	expectedLoser := 1 / (1 + math.Pow(10, float64(winner-loser)/400))
	newWinner := math.Round(float64(winner) + KFactor*(1-expectedWinner))
	newLoser := math.Round(float64(loser) + KFactor*(0-expectedLoser))
	return int(newWinner), int(newLoser)
}

// PairMemory remembers the last pair offered so it is not offered twice in a
// row. It is safe for concurrent use.
type PairMemory struct {
	mu   sync.Mutex
	last [2]uint
	set  bool
}

func pairKey(a, b uint) [2]uint {
	if a > b {
		a, b = b, a
	}
	return [2]uint{a, b}
}

// Offer records a,b as the current pair unless it equals the last one, and
// reports whether it was accepted.
func (m *PairMemory) Offer(a, b uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey(a, b)
	if m.set && m.last == key {
		return false
	}
	m.last, m.set = key, true
	return true
}

// Reset forgets the last pair.
func (m *PairMemory) Reset() {
	m.mu.Lock()
	m.set = false
	m.mu.Unlock()
}

// Pair is two meals to compare. Both are nil when fewer than two meals exist.
type Pair struct {
	MealA *model.Meal `json:"mealA"`
	MealB *model.Meal `json:"mealB"`
}

// VoteResult carries both meals after a vote and their rating changes.
type VoteResult struct {
	Winner      *model.Meal `json:"winner"`
	Loser       *model.Meal `json:"loser"`
	DeltaWinner int         `json:"deltaWinner"`
	DeltaLoser  int         `json:"deltaLoser"`
}

// RankService picks matchups and maintains Elo ratings.
type RankService struct {
	db     *gorm.DB
	memory *PairMemory
	logger *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRankService creates a new RankService instance. rng drives pair
// selection; memory is shared by every request.
func NewRankService(db *gorm.DB, memory *PairMemory, rng *rand.Rand, logger *zap.Logger) *RankService {
	return &RankService{db: db, memory: memory, rng: rng, logger: logger}
}

func (s *RankService) pick(n int) (int, int) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	i := s.rng.Intn(n)
	j := s.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// Pair returns two distinct random meals, avoiding the previous pair when
// another one can be found.
func (s *RankService) Pair(ctx context.Context) (*Pair, error) {
	db := s.db.WithContext(ctx)

	var ids []uint
	if err := db.Model(&model.Meal{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list meal ids: %w", err)
	}
	if len(ids) < 2 {
		return &Pair{}, nil
	}

	var a, b uint
	for attempt := 0; attempt < maxPairAttempts; attempt++ {
		i, j := s.pick(len(ids))
		a, b = ids[i], ids[j]
		if s.memory.Offer(a, b) {
			break
		}
	}

	mealA, err := getMeal(db, a)
	if err != nil {
		return nil, err
	}
	mealB, err := getMeal(db, b)
	if err != nil {
		return nil, err
	}
	return &Pair{MealA: mealA, MealB: mealB}, nil
}

// Vote records that winnerID beat loserID and updates both ratings in one
// transaction.
func (s *RankService) Vote(ctx context.Context, winnerID, loserID uint) (*VoteResult, error) {
	if winnerID == loserID {
		return nil, ErrInvalidVote
	}

	var deltaWinner, deltaLoser int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id IN ?", []uint{winnerID, loserID}).Order("id")
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var meals []model.Meal
		if err := query.Find(&meals).Error; err != nil {
			return fmt.Errorf("failed to load meals: %w", err)
		}
		if len(meals) != 2 {
			return ErrNotFound
		}
		winner, loser := meals[0], meals[1]
		if winner.ID != winnerID {
			winner, loser = loser, winner
		}

		newWinner, newLoser := Elo(winner.Rating, loser.Rating)
		deltaWinner = newWinner - winner.Rating
		deltaLoser = newLoser - loser.Rating

		if err := tx.Create(&model.Matchup{WinnerID: winnerID, LoserID: loserID}).Error; err != nil {
			return fmt.Errorf("failed to record matchup: %w", err)
		}
		err := tx.Model(&model.Meal{}).Where("id = ?", winnerID).Updates(map[string]interface{}{
			"rating":  newWinner,
			"wins":    gorm.Expr("wins + 1"),
			"matches": gorm.Expr("matches + 1"),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update winner: %w", err)
		}
		err = tx.Model(&model.Meal{}).Where("id = ?", loserID).Updates(map[string]interface{}{
			"rating":  newLoser,
			"losses":  gorm.Expr("losses + 1"),
			"matches": gorm.Expr("matches + 1"),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update loser: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("vote recorded",
		zap.Uint("winner", winnerID), zap.Uint("loser", loserID),
		zap.Int("deltaWinner", deltaWinner), zap.Int("deltaLoser", deltaLoser))

	db := s.db.WithContext(ctx)
	winner, err := getMeal(db, winnerID)
	if err != nil {
		return nil, err
	}
	loser, err := getMeal(db, loserID)
	if err != nil {
		return nil, err
	}
	return &VoteResult{Winner: winner, Loser: loser, DeltaWinner: deltaWinner, DeltaLoser: deltaLoser}, nil
}

// Skip forgets the last pair so it may be offered again.
func (s *RankService) Skip() {
	s.memory.Reset()
}

// Leaderboard lists live meals by rating, highest first.
func (s *RankService) Leaderboard(ctx context.Context) ([]model.Meal, error) {
	db := s.db.WithContext(ctx)
	var meals []model.Meal
	if err := db.Order("rating DESC, id").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if err := attachFirstImages(db, meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// IsNotFound reports whether err means a missing meal or image.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
