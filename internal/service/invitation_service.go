package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"

	"tribehub/internal/domain"
	"tribehub/internal/repository"
)

type InvitationService interface {
	Send(ctx context.Context, groupID, senderID uuid.UUID, input domain.SendInviteInput) (*domain.Invitation, error)
	// Resolve settles the receiver's pending invitation for the group.
	// A missing pending invitation is reported, never silently ignored.
	Resolve(ctx context.Context, receiverID uuid.UUID, input domain.ResolveInviteInput) (*domain.Invitation, error)
	ListMine(ctx context.Context, receiverID uuid.UUID) ([]domain.Invitation, error)
}

type invitationService struct {
	invitationRepo repository.InvitationRepository
	groupRepo      repository.GroupRepository
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	notifRepo      repository.NotificationRepository
	emailSvc       EmailService
}

func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	notifRepo repository.NotificationRepository,
	emailSvc EmailService,
) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		groupRepo:      groupRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		notifRepo:      notifRepo,
		emailSvc:       emailSvc,
	}
}

func (s *invitationService) Send(ctx context.Context, groupID, senderID uuid.UUID, input domain.SendInviteInput) (*domain.Invitation, error) {
	if len(input.Username) < 3 || len(input.Username) > 200 {
		return nil, Validationf("username must be between 3 and 200 characters")
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFoundf("Group with id %s is not found", groupID)
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, NotFoundf("User not found")
	}

	if group.CreatorID != senderID {
		creator, err := s.userRepo.GetByID(ctx, group.CreatorID)
		if err != nil {
			return nil, err
		}
		creatorName := group.CreatorID.String()
		if creator != nil {
			creatorName = creator.Name
		}
		return nil, Forbiddenf("User with name %s is not the creator of the group with name %s, only %s can send invitations", sender.Name, group.Name, creatorName)
	}

	receiver, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, NotFoundf("User with username %s does not exist", input.Username)
	}

	isMember, err := s.membershipRepo.Exists(ctx, groupID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, Conflictf("User with name %s is already a member of %s group", receiver.Name, group.Name)
	}

	hasPending, err := s.invitationRepo.HasPending(ctx, groupID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if hasPending {
		return nil, Conflictf("User with name %s has already received an invite to join %s group", receiver.Name, group.Name)
	}

	invitation := &domain.Invitation{
		ID:         uuid.New(),
		GroupID:    groupID,
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Status:     domain.InviteStatusPending,
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflictf("User with name %s has already received an invite to join %s group", receiver.Name, group.Name)
		}
		return nil, err
	}

	data, _ := json.Marshal(map[string]string{
		"invitation_id": invitation.ID.String(),
	})

	notif := &domain.Notification{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		GroupID:    groupID,
		Type:       domain.NotifInvite,
		Message:    "You have an invitation waiting for your action",
		Data:       data,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}

	go func(toEmail, receiverName, senderName, groupName string) {
		if err := s.emailSvc.SendInvitationEmail(context.Background(), toEmail, receiverName, senderName, groupName); err != nil {
			log.Printf("Failed to send invitation email: %v", err)
		}
	}(receiver.Email, receiver.Name, sender.Name, group.Name)

	return invitation, nil
}

func (s *invitationService) Resolve(ctx context.Context, receiverID uuid.UUID, input domain.ResolveInviteInput) (*domain.Invitation, error) {
	if !input.Status.IsResolution() {
		return nil, Validationf("status must be either accepted or declined")
	}

	notif, err := s.notifRepo.GetUnreadByReceiverGroupAndType(ctx, receiverID, input.GroupID, domain.NotifInvite)
	if err != nil {
		return nil, err
	}
	if notif != nil {
		if err := s.notifRepo.MarkAsRead(ctx, notif.ID); err != nil {
			return nil, err
		}
	}

	invitation, err := s.invitationRepo.GetPending(ctx, input.GroupID, receiverID)
	if err != nil {
		return nil, err
	}
	if invitation == nil {
		return nil, NotFoundf("No pending invitation for this group")
	}

	if err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, input.Status); err != nil {
		return nil, err
	}
	invitation.Status = input.Status

	if input.Status == domain.InviteStatusAccepted {
		// Constrained insert keeps acceptance idempotent.
		if err := s.membershipRepo.CreateIfAbsent(ctx, invitation.GroupID, invitation.ReceiverID); err != nil {
			return nil, err
		}
	}

	return invitation, nil
}

func (s *invitationService) ListMine(ctx context.Context, receiverID uuid.UUID) ([]domain.Invitation, error) {
	return s.invitationRepo.ListByReceiver(ctx, receiverID)
}
