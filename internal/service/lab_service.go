package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// LabService manages labs and their induction tests.
type LabService struct {
	labs  repository.Repository[models.Lab]
	tests repository.Repository[models.InductionTest]
}

func NewLabService(labs repository.Repository[models.Lab], tests repository.Repository[models.InductionTest]) *LabService {
	return &LabService{labs: labs, tests: tests}
}

func (s *LabService) CreateLab(ctx context.Context, lab *models.Lab) (*models.Lab, error) {
	if lab.Name == "" {
		return nil, fmt.Errorf("%w: lab name is required", ErrInvalidInput)
	}
	if lab.Kind == "" {
		lab.Kind = models.LabKindGeneral
	}
	if lab.ParentLabID != "" {
		if _, err := s.labs.GetByID(ctx, lab.ParentLabID); err != nil {
			return nil, fmt.Errorf("%w: parent lab %s", ErrNotFound, lab.ParentLabID)
		}
	}
	lab.CreatedAt = int(time.Now().Unix())
	return s.labs.Add(ctx, lab)
}

func (s *LabService) GetLab(ctx context.Context, id string) (*models.Lab, error) {
	lab, err := s.labs.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: lab %s", ErrNotFound, id)
	}
	return lab, err
}

func (s *LabService) ListLabs(ctx context.Context) ([]*models.Lab, error) {
	return s.labs.GetAll(ctx)
}

// UpsertInductionTest replaces the lab's test in place. At most one test
// exists per lab; the workflow looks up "the" test.
func (s *LabService) UpsertInductionTest(ctx context.Context, labID string, questions []models.Question, passThreshold int) (*models.InductionTest, error) {
	if _, err := s.labs.GetByID(ctx, labID); err != nil {
		return nil, fmt.Errorf("%w: lab %s", ErrNotFound, labID)
	}
	for i, q := range questions {
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d has no option at index %d", ErrInvalidInput, i, q.CorrectOptionIndex)
		}
	}
	if passThreshold <= 0 {
		passThreshold = models.DefaultPassThreshold
	}

	existing, err := s.tests.Query(ctx, func(t *models.InductionTest) bool { return t.LabID == labID })
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		test := existing[0]
		test.Questions = questions
		test.PassThresholdPercentage = passThreshold
		if err := s.tests.Update(ctx, test); err != nil {
			return nil, err
		}
		return test, nil
	}
	return s.tests.Add(ctx, &models.InductionTest{
		LabID:                   labID,
		Questions:               questions,
		PassThresholdPercentage: passThreshold,
	})
}

// GetInductionTest returns the lab's test or ErrNotFound when the lab has
// none.
func (s *LabService) GetInductionTest(ctx context.Context, labID string) (*models.InductionTest, error) {
	found, err := s.tests.Query(ctx, func(t *models.InductionTest) bool { return t.LabID == labID })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no induction test for lab %s", ErrNotFound, labID)
	}
	return found[0], nil
}
