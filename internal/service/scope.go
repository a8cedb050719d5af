package service

import "github.com/hazyfin/family-finance-backend/internal/model"

// MemberScope selects which member's transactions are visible to a viewer:
// either every member of the family group, or a single member. The sentinel
// "all" string from the API is converted to the tagged form at the boundary
// and never threads through the aggregation code. Whether a caller may ask
// for the all-members view is an access-control decision made upstream.
type MemberScope struct {
	all      bool
	memberID string
}

// AllMembers returns the scope covering every member of the family group.
func AllMembers() MemberScope {
	return MemberScope{all: true}
}

// SingleMember returns the scope covering one member's transactions only.
func SingleMember(memberID string) MemberScope {
	return MemberScope{memberID: memberID}
}

// ParseMemberScope converts the raw query value to a scope. An empty value
// or the literal "all" selects the all-members view.
func ParseMemberScope(raw string) MemberScope {
	if raw == "" || raw == "all" {
		return AllMembers()
	}
	return SingleMember(raw)
}

// All reports whether the scope covers the whole family group.
func (s MemberScope) All() bool {
	return s.all
}

// MemberID returns the selected member ID; empty for the all-members scope.
func (s MemberScope) MemberID() string {
	return s.memberID
}

// Filter returns the subset of transactions visible under the scope.
// The input slice is never mutated.
func (s MemberScope) Filter(transactions []model.Transaction) []model.Transaction {
	if s.all {
		return transactions
	}

	filtered := []model.Transaction{}
	for _, t := range transactions {
		if t.MemberID == s.memberID {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
