package service

import (
	"fmt"
	"math"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

// InductionService scores submitted answer sets against a test's answer key.
// Pure computation, no state.
type InductionService struct{}

func NewInductionService() *InductionService {
	return &InductionService{}
}

// EvaluateScore returns a 0-100 score, rounding half away from zero. The
// answer count must exactly match the question count; no partial submissions.
func (s *InductionService) EvaluateScore(test *models.InductionTest, answers []int) (int, error) {
	if len(answers) != len(test.Questions) {
		return 0, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidInput, len(test.Questions), len(answers))
	}
	correct := 0
	for i, q := range test.Questions {
		if q.CorrectOptionIndex == answers[i] {
			correct++
		}
	}
	total := len(test.Questions)
	if total < 1 {
		total = 1
	}
	return int(math.Round(100 * float64(correct) / float64(total))), nil
}

// IsPass is non-strict: score equal to the threshold passes.
func (s *InductionService) IsPass(score, thresholdPercentage int) bool {
	return score >= thresholdPercentage
}
