package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/model"
)

// FamilyService issues and redeems family invite tokens. A token is the
// family group ID encrypted with a fernet key; fernet's embedded timestamp
// gives tokens a TTL without any server-side invite state.
type FamilyService struct {
	memberService *MemberService
	keys          []*fernet.Key
	ttl           time.Duration
}

// NewFamilyService creates a FamilyService. The key is a base64 fernet key
// from configuration; an empty key disables the invite endpoints.
func NewFamilyService(memberService *MemberService, key string, ttl time.Duration) (*FamilyService, error) {
	var keys []*fernet.Key
	if key != "" {
		k, err := fernet.DecodeKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode invite token key: %w", err)
		}
		keys = []*fernet.Key{k}
	}

	return &FamilyService{
		memberService: memberService,
		keys:          keys,
		ttl:           ttl,
	}, nil
}

// Enabled reports whether an invite key is configured.
func (s *FamilyService) Enabled() bool {
	return len(s.keys) > 0
}

// IssueInvite returns an invite token for the family group. The group must
// exist; who may issue invites is decided by the caller (API-key protected
// at the router).
func (s *FamilyService) IssueInvite(familyGroupID string) (string, error) {
	if !s.Enabled() {
		return "", apperrors.ErrInvalidInviteToken
	}

	if _, err := s.memberService.memberRepo.GetFamilyGroup(familyGroupID); err != nil {
		return "", err
	}

	token, err := fernet.EncryptAndSign([]byte(familyGroupID), s.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign invite token: %w", err)
	}

	return string(token), nil
}

// Join verifies the invite token and adds the joining member to the family
// group it names.
func (s *FamilyService) Join(ctx context.Context, req request.JoinRequest) (*model.Member, error) {
	if !s.Enabled() {
		return nil, apperrors.ErrInvalidInviteToken
	}

	payload := fernet.VerifyAndDecrypt([]byte(req.Token), s.ttl, s.keys)
	if payload == nil {
		return nil, apperrors.ErrInvalidInviteToken
	}

	return s.memberService.CreateMember(ctx, request.CreateMemberRequest{
		FamilyGroupID: string(payload),
		Name:          req.Name,
		Relation:      req.Relation,
	})
}
