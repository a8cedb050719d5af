package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/testutil"
)

// TestSIPScheduleService_CreateSchedule tests schedule creation.
func TestSIPScheduleService_CreateSchedule(t *testing.T) {
	t.Run("new schedules start active", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSIPScheduleService(t, db)
		group, member := testutil.CreateFamilyWithMember(t, db)

		schedule, err := svc.CreateSchedule(context.Background(), request.CreateSIPScheduleRequest{
			FamilyGroupID: group.ID,
			MemberID:      member.ID,
			AssetName:     "Axis Bluechip",
			Amount:        2000,
			DayOfMonth:    5,
			StartDate:     "2024-01-05",
		})

		if err != nil {
			t.Fatalf("CreateSchedule() returned unexpected error: %v", err)
		}
		if !schedule.Active {
			t.Error("Expected new schedule to be active")
		}
		if schedule.DayOfMonth != 5 {
			t.Errorf("Expected day of month 5, got %d", schedule.DayOfMonth)
		}
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSIPScheduleService(t, db)
		group, member := testutil.CreateFamilyWithMember(t, db)

		_, err := svc.CreateSchedule(context.Background(), request.CreateSIPScheduleRequest{
			FamilyGroupID: group.ID,
			MemberID:      member.ID,
			AssetName:     "Axis Bluechip",
			Amount:        2000,
			DayOfMonth:    5,
			StartDate:     "05-01-2024",
		})

		if err == nil {
			t.Error("Expected error for malformed start date, got nil")
		}
	})
}

// TestSIPScheduleService_SetActive tests pausing and resuming.
//
// WHY: A paused schedule must drop out of the upcoming projection without
// being deleted, so the user keeps its history and can resume it.
func TestSIPScheduleService_SetActive(t *testing.T) {
	t.Run("paused schedule leaves the upcoming projection", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSIPScheduleService(t, db)
		group, member := testutil.CreateFamilyWithMember(t, db)

		schedule := testutil.NewSIPSchedule(group.ID, member.ID).WithDayOfMonth(20).Build(t, db)

		now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		upcoming, err := svc.GetUpcoming(group.ID, now)
		if err != nil {
			t.Fatalf("GetUpcoming() returned unexpected error: %v", err)
		}
		if len(upcoming) != 1 {
			t.Fatalf("Expected 1 upcoming schedule, got %d", len(upcoming))
		}

		if err := svc.SetActive(context.Background(), schedule.ID, false); err != nil {
			t.Fatalf("SetActive() returned unexpected error: %v", err)
		}

		upcoming, err = svc.GetUpcoming(group.ID, now)
		if err != nil {
			t.Fatalf("GetUpcoming() returned unexpected error: %v", err)
		}
		if len(upcoming) != 0 {
			t.Errorf("Expected paused schedule to drop out, got %d", len(upcoming))
		}
	})

	t.Run("unknown schedule returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSIPScheduleService(t, db)

		err := svc.SetActive(context.Background(), testutil.MakeID(), false)

		if !errors.Is(err, apperrors.ErrSIPScheduleNotFound) {
			t.Errorf("Expected ErrSIPScheduleNotFound, got %v", err)
		}
	})
}

// TestSIPScheduleService_DeleteSchedule tests removal.
func TestSIPScheduleService_DeleteSchedule(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSIPScheduleService(t, db)
	group, member := testutil.CreateFamilyWithMember(t, db)

	schedule := testutil.NewSIPSchedule(group.ID, member.ID).Build(t, db)

	if err := svc.DeleteSchedule(context.Background(), schedule.ID); err != nil {
		t.Fatalf("DeleteSchedule() returned unexpected error: %v", err)
	}

	schedules, err := svc.GetSchedules(group.ID)
	if err != nil {
		t.Fatalf("GetSchedules() returned unexpected error: %v", err)
	}
	if len(schedules) != 0 {
		t.Errorf("Expected no schedules after delete, got %d", len(schedules))
	}

	if err := svc.DeleteSchedule(context.Background(), schedule.ID); !errors.Is(err, apperrors.ErrSIPScheduleNotFound) {
		t.Errorf("Expected ErrSIPScheduleNotFound on second delete, got %v", err)
	}
}
