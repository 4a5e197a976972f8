package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/events"
	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// AccessService runs the access-request state machine:
// Draft -> {Pending, Rejected} on submission, Pending -> {Approved, Rejected}
// on a manager decision. Approved and Rejected are terminal.
type AccessService struct {
	requests  repository.Repository[models.AccessRequest]
	grants    repository.Repository[models.AccessGrant]
	tests     repository.Repository[models.InductionTest]
	evaluator *InductionService
	publisher events.Publisher
	decisions *keyedMutex
}

func NewAccessService(
	requests repository.Repository[models.AccessRequest],
	grants repository.Repository[models.AccessGrant],
	tests repository.Repository[models.InductionTest],
	evaluator *InductionService,
	publisher events.Publisher,
) *AccessService {
	return &AccessService{
		requests:  requests,
		grants:    grants,
		tests:     tests,
		evaluator: evaluator,
		publisher: publisher,
		decisions: newKeyedMutex(),
	}
}

// SubmitAccessRequest scores the lab's induction test and persists the
// request as Pending on a pass or Rejected on a fail. A lab with no test is
// an automatic pass with score 0: absence of a test does not block access.
func (s *AccessService) SubmitAccessRequest(ctx context.Context, userID, labID, teamID, reason string, answers []int) (*models.AccessRequest, error) {
	if userID == "" || labID == "" {
		return nil, fmt.Errorf("%w: user and lab are required", ErrInvalidInput)
	}

	found, err := s.tests.Query(ctx, func(t *models.InductionTest) bool { return t.LabID == labID })
	if err != nil {
		return nil, fmt.Errorf("error looking up induction test for lab %s: %w", labID, err)
	}

	score := 0
	passed := true
	var threshold int
	if len(found) > 0 {
		test := found[0]
		score, err = s.evaluator.EvaluateScore(test, answers)
		if err != nil {
			return nil, err
		}
		threshold = test.PassThresholdPercentage
		passed = s.evaluator.IsPass(score, threshold)
	}

	request := &models.AccessRequest{
		UserID:      userID,
		LabID:       labID,
		TeamID:      teamID,
		Reason:      reason,
		SubmittedAt: time.Now().UTC(),
		Status:      models.AccessRequestPending,
		Score:       &score,
	}
	if !passed {
		// A failed induction never reaches Pending review.
		request.Status = models.AccessRequestRejected
	}

	saved, err := s.requests.Add(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("error saving access request: %w", err)
	}

	if passed {
		s.publisher.Notify(ctx, userID, "Access Request Submitted",
			fmt.Sprintf("Access request submitted for review. Score: %d%%", score))
	} else {
		s.publisher.Notify(ctx, userID, "Induction Test Failed",
			fmt.Sprintf("Induction test failed. Score: %d%%, Required: %d%%", score, threshold))
		s.publisher.PublishAccessDecided(ctx, saved.ID, userID, labID, string(models.AccessRequestRejected))
	}

	return saved, nil
}

// ApproveAccessRequest finalizes a Pending request and issues the grant. The
// status check and transition run under a per-request lock so at most one
// decision wins.
func (s *AccessService) ApproveAccessRequest(ctx context.Context, requestID, approverID string) (*models.AccessGrant, error) {
	s.decisions.Lock(requestID)
	defer s.decisions.Unlock(requestID)

	request, err := s.requests.GetByID(ctx, requestID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: access request %s", ErrNotFound, requestID)
	}
	if err != nil {
		return nil, err
	}
	if request.Status != models.AccessRequestPending {
		return nil, fmt.Errorf("%w: cannot approve request with status %s", ErrInvalidState, request.Status)
	}

	request.Status = models.AccessRequestApproved
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("error updating access request %s: %w", requestID, err)
	}

	// Two separate writes; a crash in between can leave an approved request
	// without its grant. No cross-entity transaction is modeled.
	grant, err := s.grants.Add(ctx, &models.AccessGrant{
		UserID:    request.UserID,
		LabID:     request.LabID,
		GrantedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("error saving access grant: %w", err)
	}

	s.publisher.Notify(ctx, request.UserID, "Access Request Approved",
		fmt.Sprintf("Your access request to lab %s has been approved.", request.LabID))
	s.publisher.PublishAccessDecided(ctx, request.ID, request.UserID, request.LabID, string(models.AccessRequestApproved))

	return grant, nil
}

// RejectAccessRequest finalizes a Pending request without a grant.
func (s *AccessService) RejectAccessRequest(ctx context.Context, requestID, rejectorID, reason string) error {
	s.decisions.Lock(requestID)
	defer s.decisions.Unlock(requestID)

	request, err := s.requests.GetByID(ctx, requestID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: access request %s", ErrNotFound, requestID)
	}
	if err != nil {
		return err
	}
	if request.Status != models.AccessRequestPending {
		return fmt.Errorf("%w: cannot reject request with status %s", ErrInvalidState, request.Status)
	}

	request.Status = models.AccessRequestRejected
	if err := s.requests.Update(ctx, request); err != nil {
		return fmt.Errorf("error updating access request %s: %w", requestID, err)
	}

	body := fmt.Sprintf("Your access request to lab %s has been rejected.", request.LabID)
	if reason != "" {
		body = fmt.Sprintf("%s Reason: %s", body, reason)
	}
	s.publisher.Notify(ctx, request.UserID, "Access Request Rejected", body)
	s.publisher.PublishAccessDecided(ctx, request.ID, request.UserID, request.LabID, string(models.AccessRequestRejected))

	return nil
}

// HasAccess reports a grant for the exact (user, lab) pair. Lab nesting never
// implies grant inheritance in either direction.
func (s *AccessService) HasAccess(ctx context.Context, userID, labID string) (bool, error) {
	grants, err := s.grants.Query(ctx, func(g *models.AccessGrant) bool {
		return g.UserID == userID && g.LabID == labID
	})
	if err != nil {
		return false, err
	}
	return len(grants) > 0, nil
}

// GetAccessRequests lists requests matching the optional filters, most recent
// first.
func (s *AccessService) GetAccessRequests(ctx context.Context, status *models.AccessRequestStatus, labID string) ([]*models.AccessRequest, error) {
	requests, err := s.requests.Query(ctx, func(r *models.AccessRequest) bool {
		if status != nil && r.Status != *status {
			return false
		}
		if labID != "" && r.LabID != labID {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})
	return requests, nil
}
