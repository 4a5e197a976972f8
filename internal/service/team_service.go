package service

import (
	"context"
	"fmt"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// TeamService manages teams. Teams are attribution only; they take no part in
// authorization or scheduling decisions.
type TeamService struct {
	teams repository.Repository[models.Team]
	users repository.Repository[models.User]
}

func NewTeamService(teams repository.Repository[models.Team], users repository.Repository[models.User]) *TeamService {
	return &TeamService{teams: teams, users: users}
}

func (s *TeamService) CreateTeam(ctx context.Context, team *models.Team) (*models.Team, error) {
	if team.Name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	for _, memberID := range team.MemberIDs {
		if _, err := s.users.GetByID(ctx, memberID); err != nil {
			return nil, fmt.Errorf("%w: team member %s", ErrNotFound, memberID)
		}
	}
	return s.teams.Add(ctx, team)
}

func (s *TeamService) ListTeams(ctx context.Context) ([]*models.Team, error) {
	return s.teams.GetAll(ctx)
}
