package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tribehub/internal/domain"
	"tribehub/internal/repository"
)

type GroupService interface {
	Create(ctx context.Context, creatorID uuid.UUID, input domain.CreateGroupInput) (*domain.Group, error)
	ListAll(ctx context.Context) ([]domain.GroupSummary, error)
	Get(ctx context.Context, groupID uuid.UUID) (*domain.GroupDetail, error)
	Update(ctx context.Context, groupID, userID uuid.UUID, input domain.UpdateGroupInput) (*domain.Group, error)
	Delete(ctx context.Context, groupID, userID uuid.UUID) error
	Join(ctx context.Context, groupID, userID uuid.UUID) (*domain.Group, error)
}

type groupService struct {
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	discussionRepo repository.DiscussionRepository
}

func NewGroupService(
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	discussionRepo repository.DiscussionRepository,
) GroupService {
	return &groupService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		discussionRepo: discussionRepo,
	}
}

func validateGroupInput(name, description string) error {
	if len(name) < 3 || len(name) > 40 {
		return Validationf("name must be between 3 and 40 characters")
	}
	if len(description) < 10 {
		return Validationf("description must be at least 10 characters")
	}
	return nil
}

func (s *groupService) Create(ctx context.Context, creatorID uuid.UUID, input domain.CreateGroupInput) (*domain.Group, error) {
	if err := validateGroupInput(input.Name, input.Description); err != nil {
		return nil, err
	}

	group := &domain.Group{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   creatorID,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflictf("Group already exists")
		}
		return nil, err
	}

	// The creator is implicitly the first member.
	membership := &domain.Membership{GroupID: group.ID, UserID: creatorID}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *groupService) ListAll(ctx context.Context) ([]domain.GroupSummary, error) {
	groups, err := s.groupRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.GroupSummary, 0, len(groups))
	for _, group := range groups {
		creator, err := s.userRepo.GetByID(ctx, group.CreatorID)
		if err != nil {
			return nil, err
		}

		memberNames, err := s.membershipRepo.ListMemberUsernames(ctx, group.ID)
		if err != nil {
			return nil, err
		}

		discussions, err := s.discussionRepo.ListByGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}

		summary := domain.GroupSummary{
			Group:       group,
			MemberNames: memberNames,
			Discussions: discussions,
		}
		if creator != nil {
			summary.CreatorName = creator.Name
			summary.Username = creator.Username
			summary.ProfilePicture = creator.ProfilePicture
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *groupService) Get(ctx context.Context, groupID uuid.UUID) (*domain.GroupDetail, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFoundf("No group with id %s", groupID)
	}

	members, err := s.membershipRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &domain.GroupDetail{
		Group:   *group,
		Members: members,
	}, nil
}

func (s *groupService) Update(ctx context.Context, groupID, userID uuid.UUID, input domain.UpdateGroupInput) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFoundf("Group with id %s does not exist", groupID)
	}

	if err := validateGroupInput(input.Name, input.Description); err != nil {
		return nil, err
	}

	if group.CreatorID != userID {
		return nil, Forbiddenf("you cannot update this group as you are not the creator")
	}

	group.Name = input.Name
	group.Description = input.Description

	if err := s.groupRepo.Update(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflictf("Group already exists")
		}
		return nil, err
	}

	return group, nil
}

func (s *groupService) Delete(ctx context.Context, groupID, userID uuid.UUID) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return NotFoundf("Group with id %s does not exist", groupID)
	}

	if group.CreatorID != userID {
		return Forbiddenf("User with id %s is not the creator of the group %s", userID, group.Name)
	}

	return s.groupRepo.Delete(ctx, groupID)
}

func (s *groupService) Join(ctx context.Context, groupID, userID uuid.UUID) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFoundf("Group with id %s does not exist", groupID)
	}

	membership := &domain.Membership{GroupID: groupID, UserID: userID}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflictf("User is already a member of %s group", group.Name)
		}
		return nil, err
	}

	return group, nil
}
