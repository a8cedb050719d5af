package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/model"
)

// FamilyGroupBuilder provides a fluent interface for creating test family
// groups.
//
// Example usage:
//
//	// Simple creation with defaults
//	group := testutil.NewFamilyGroup().Build(t, db)
//
//	// Customized group
//	group := testutil.NewFamilyGroup().
//	    WithName("The Sharmas").
//	    Build(t, db)
type FamilyGroupBuilder struct {
	ID   string
	Name string
}

// NewFamilyGroup creates a FamilyGroupBuilder with sensible defaults.
func NewFamilyGroup() *FamilyGroupBuilder {
	return &FamilyGroupBuilder{
		ID:   MakeID(),
		Name: MakeName("Test Family"),
	}
}

// WithID sets a custom ID.
func (b *FamilyGroupBuilder) WithID(id string) *FamilyGroupBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *FamilyGroupBuilder) WithName(name string) *FamilyGroupBuilder {
	b.Name = name
	return b
}

// Build creates the family group in the database and returns it.
func (b *FamilyGroupBuilder) Build(t *testing.T, db *sql.DB) model.FamilyGroup {
	t.Helper()

	query := `INSERT INTO family_group (id, name) VALUES (?, ?)`

	_, err := db.Exec(query, b.ID, b.Name)
	if err != nil {
		t.Fatalf("Failed to create test family group: %v", err)
	}

	return model.FamilyGroup{
		ID:   b.ID,
		Name: b.Name,
	}
}

// MemberBuilder provides a fluent interface for creating test members.
type MemberBuilder struct {
	ID            string
	FamilyGroupID string
	Name          string
	Relation      string
}

// NewMember creates a MemberBuilder bound to the given family group.
func NewMember(familyGroupID string) *MemberBuilder {
	return &MemberBuilder{
		ID:            MakeID(),
		FamilyGroupID: familyGroupID,
		Name:          MakeName("Test Member"),
		Relation:      "Self",
	}
}

// WithID sets a custom ID.
func (b *MemberBuilder) WithID(id string) *MemberBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.Name = name
	return b
}

// WithRelation sets a custom relation.
func (b *MemberBuilder) WithRelation(relation string) *MemberBuilder {
	b.Relation = relation
	return b
}

// Build creates the member in the database and returns it.
func (b *MemberBuilder) Build(t *testing.T, db *sql.DB) model.Member {
	t.Helper()

	query := `INSERT INTO member (id, family_group_id, name, relation) VALUES (?, ?, ?, ?)`

	_, err := db.Exec(query, b.ID, b.FamilyGroupID, b.Name, b.Relation)
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	return model.Member{
		ID:            b.ID,
		FamilyGroupID: b.FamilyGroupID,
		Name:          b.Name,
		Relation:      b.Relation,
	}
}

// TransactionBuilder provides a fluent interface for creating test
// transactions. Defaults describe a stock buy; Amount is kept consistent
// with Quantity * Price unless explicitly overridden.
//
// Example usage:
//
//	tx := testutil.NewTransaction(group.ID, member.ID).
//	    WithAsset("HDFC Bank", model.AssetStock).
//	    WithType(model.TypeBuy).
//	    WithQuantityPrice(10, 1500).
//	    WithDate("2024-03-01").
//	    Build(t, db)
type TransactionBuilder struct {
	ID            string
	FamilyGroupID string
	MemberID      string
	AssetName     string
	AssetType     string
	Type          string
	Date          time.Time
	Quantity      float64
	Price         float64
	SIPID         string
	Category      string
	Platform      string
	Notes         string
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction(familyGroupID, memberID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:            MakeID(),
		FamilyGroupID: familyGroupID,
		MemberID:      memberID,
		AssetName:     "Test Asset",
		AssetType:     model.AssetStock,
		Type:          model.TypeBuy,
		Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Quantity:      10,
		Price:         100,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithAsset sets the asset name and type.
func (b *TransactionBuilder) WithAsset(name, assetType string) *TransactionBuilder {
	b.AssetName = name
	b.AssetType = assetType
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(transactionType string) *TransactionBuilder {
	b.Type = transactionType
	return b
}

// WithQuantityPrice sets the quantity and unit price.
func (b *TransactionBuilder) WithQuantityPrice(quantity, price float64) *TransactionBuilder {
	b.Quantity = quantity
	b.Price = price
	return b
}

// WithDate sets the transaction date from a YYYY-MM-DD string.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("invalid test date: " + date)
	}
	b.Date = parsed
	return b
}

// WithSIPID tags the transaction with a SIP group identifier.
func (b *TransactionBuilder) WithSIPID(sipID string) *TransactionBuilder {
	b.SIPID = sipID
	return b
}

// WithCategory sets the cash-flow category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// WithPlatform sets the platform label.
func (b *TransactionBuilder) WithPlatform(platform string) *TransactionBuilder {
	b.Platform = platform
	return b
}

// WithNotes sets the free-form notes.
func (b *TransactionBuilder) WithNotes(notes string) *TransactionBuilder {
	b.Notes = notes
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	amount := b.Quantity * b.Price

	query := `
		INSERT INTO "transaction" (id, family_group_id, member_id, asset_name, asset_type,
			type, date, quantity, price, amount, sip_id, category, platform, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.FamilyGroupID, b.MemberID, b.AssetName, b.AssetType,
		b.Type, b.Date.Format("2006-01-02"), b.Quantity, b.Price, amount,
		nullable(b.SIPID), nullable(b.Category), nullable(b.Platform), nullable(b.Notes),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:            b.ID,
		FamilyGroupID: b.FamilyGroupID,
		MemberID:      b.MemberID,
		AssetName:     b.AssetName,
		AssetType:     b.AssetType,
		Type:          b.Type,
		Date:          b.Date,
		Quantity:      b.Quantity,
		Price:         b.Price,
		Amount:        amount,
		SIPID:         b.SIPID,
		Category:      b.Category,
		Platform:      b.Platform,
		Notes:         b.Notes,
	}
}

// SIPScheduleBuilder provides a fluent interface for creating test SIP
// schedules.
type SIPScheduleBuilder struct {
	ID            string
	FamilyGroupID string
	MemberID      string
	AssetName     string
	Amount        float64
	DayOfMonth    int
	StartDate     time.Time
	Active        bool
}

// NewSIPSchedule creates a SIPScheduleBuilder with sensible defaults.
func NewSIPSchedule(familyGroupID, memberID string) *SIPScheduleBuilder {
	return &SIPScheduleBuilder{
		ID:            MakeID(),
		FamilyGroupID: familyGroupID,
		MemberID:      memberID,
		AssetName:     "Test Fund",
		Amount:        1000,
		DayOfMonth:    5,
		StartDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
}

// WithAssetName sets the asset name.
func (b *SIPScheduleBuilder) WithAssetName(name string) *SIPScheduleBuilder {
	b.AssetName = name
	return b
}

// WithAmount sets the recurring amount.
func (b *SIPScheduleBuilder) WithAmount(amount float64) *SIPScheduleBuilder {
	b.Amount = amount
	return b
}

// WithDayOfMonth sets the due day.
func (b *SIPScheduleBuilder) WithDayOfMonth(day int) *SIPScheduleBuilder {
	b.DayOfMonth = day
	return b
}

// Inactive marks the schedule as paused.
func (b *SIPScheduleBuilder) Inactive() *SIPScheduleBuilder {
	b.Active = false
	return b
}

// Build creates the schedule in the database and returns it.
func (b *SIPScheduleBuilder) Build(t *testing.T, db *sql.DB) model.SIPSchedule {
	t.Helper()

	query := `
		INSERT INTO sip_schedule (id, family_group_id, member_id, asset_name, amount, day_of_month, start_date, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.FamilyGroupID, b.MemberID, b.AssetName, b.Amount,
		b.DayOfMonth, b.StartDate.Format("2006-01-02"), b.Active,
	)
	if err != nil {
		t.Fatalf("Failed to create test sip schedule: %v", err)
	}

	return model.SIPSchedule{
		ID:            b.ID,
		FamilyGroupID: b.FamilyGroupID,
		MemberID:      b.MemberID,
		AssetName:     b.AssetName,
		Amount:        b.Amount,
		DayOfMonth:    b.DayOfMonth,
		StartDate:     b.StartDate,
		Active:        b.Active,
	}
}

// Convenience functions

// CreateFamilyWithMember creates a family group with one member, the most
// common test fixture.
//
// Example usage:
//
//	group, member := testutil.CreateFamilyWithMember(t, db)
func CreateFamilyWithMember(t *testing.T, db *sql.DB) (model.FamilyGroup, model.Member) {
	t.Helper()

	group := NewFamilyGroup().Build(t, db)
	member := NewMember(group.ID).Build(t, db)
	return group, member
}

// SetPriceOverride stores a manual price quote for an asset.
//
// Example usage:
//
//	testutil.SetPriceOverride(t, db, group.ID, "HDFC Bank", 1625.50)
func SetPriceOverride(t *testing.T, db *sql.DB, familyGroupID, assetName string, price float64) {
	t.Helper()

	query := `INSERT INTO price_override (id, family_group_id, asset_name, price) VALUES (?, ?, ?, ?)`

	if _, err := db.Exec(query, MakeID(), familyGroupID, assetName, price); err != nil {
		t.Fatalf("Failed to set test price override: %v", err)
	}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
