package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/repository"
)

// MemberService handles family group and member management.
type MemberService struct {
	memberRepo *repository.MemberRepository
}

// NewMemberService creates a new MemberService with the provided repository dependencies.
func NewMemberService(memberRepo *repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// GetMembers returns all members of a family group.
func (s *MemberService) GetMembers(familyGroupID string) ([]model.Member, error) {
	return s.memberRepo.GetMembers(familyGroupID)
}

// GetMember returns a single member by ID.
func (s *MemberService) GetMember(memberID string) (model.Member, error) {
	return s.memberRepo.GetMember(memberID)
}

// CreateMember adds a member to an existing family group.
func (s *MemberService) CreateMember(ctx context.Context, req request.CreateMemberRequest) (*model.Member, error) {
	if _, err := s.memberRepo.GetFamilyGroup(req.FamilyGroupID); err != nil {
		return nil, err
	}

	member := &model.Member{
		ID:            uuid.New().String(),
		FamilyGroupID: req.FamilyGroupID,
		Name:          req.Name,
		Relation:      req.Relation,
		CreatedAt:     time.Now(),
	}

	if err := s.memberRepo.InsertMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

// UpdateMember applies the provided display fields to a member.
func (s *MemberService) UpdateMember(ctx context.Context, memberID string, req request.UpdateMemberRequest) (*model.Member, error) {
	member, err := s.memberRepo.GetMember(memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Relation != nil {
		member.Relation = *req.Relation
	}

	if err := s.memberRepo.UpdateMember(ctx, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

// DeleteMember removes a member and, through the schema cascade, the
// transactions they own.
func (s *MemberService) DeleteMember(ctx context.Context, memberID string) error {
	return s.memberRepo.DeleteMember(ctx, memberID)
}

// CreateFamilyGroup creates a group together with its founding member,
// mirroring the sign-up flow where the creator becomes the first member.
func (s *MemberService) CreateFamilyGroup(ctx context.Context, req request.CreateFamilyGroupRequest, founderName string) (*model.FamilyGroup, *model.Member, error) {
	group := &model.FamilyGroup{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if err := s.memberRepo.InsertFamilyGroup(ctx, group); err != nil {
		return nil, nil, fmt.Errorf("failed to create family group: %w", err)
	}

	founder := &model.Member{
		ID:            uuid.New().String(),
		FamilyGroupID: group.ID,
		Name:          founderName,
		Relation:      "Self",
		CreatedAt:     time.Now(),
	}

	if err := s.memberRepo.InsertMember(ctx, founder); err != nil {
		return nil, nil, fmt.Errorf("failed to create founding member: %w", err)
	}

	return group, founder, nil
}
