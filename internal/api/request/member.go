package request

// CreateMemberRequest is the payload for adding a family member.
type CreateMemberRequest struct {
	FamilyGroupID string `json:"familyGroupId"`
	Name          string `json:"name"`
	Relation      string `json:"relation"`
}

// UpdateMemberRequest is the payload for editing a member's display fields.
type UpdateMemberRequest struct {
	Name     *string `json:"name,omitempty"`
	Relation *string `json:"relation,omitempty"`
}

// CreateFamilyGroupRequest is the payload for creating a family group
// together with its founding member.
type CreateFamilyGroupRequest struct {
	Name        string `json:"name"`
	FounderName string `json:"founderName"`
}

// InviteRequest is the payload for issuing a family invite token.
type InviteRequest struct {
	FamilyGroupID string `json:"familyGroupId"`
}

// JoinRequest is the payload for joining a family group with an invite
// token: the token plus the joining member's details.
type JoinRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Relation string `json:"relation"`
}
