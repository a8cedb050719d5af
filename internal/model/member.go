package model

import "time"

// Member is a person inside a family group. Members carry no financial
// state of their own; they are a filter dimension and a display label.
type Member struct {
	ID            string    `json:"id"`
	FamilyGroupID string    `json:"familyGroupId"`
	Name          string    `json:"name"`
	Relation      string    `json:"relation"` // Self, Spouse, Father, Mother, Child, ...
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// FamilyGroup is the sharing boundary under which member transactions are
// jointly visible.
type FamilyGroup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
