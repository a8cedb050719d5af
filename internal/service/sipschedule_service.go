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

// SIPScheduleService handles recurring-payment declarations. Schedules are
// user-authored and independent of logged SIP transactions: they feed only
// the upcoming-due projection, never holdings math.
type SIPScheduleService struct {
	scheduleRepo *repository.SIPScheduleRepository
}

// NewSIPScheduleService creates a new SIPScheduleService with the provided repository dependencies.
func NewSIPScheduleService(scheduleRepo *repository.SIPScheduleRepository) *SIPScheduleService {
	return &SIPScheduleService{scheduleRepo: scheduleRepo}
}

// GetSchedules returns all SIP schedules of a family group.
func (s *SIPScheduleService) GetSchedules(familyGroupID string) ([]model.SIPSchedule, error) {
	return s.scheduleRepo.GetSchedules(familyGroupID)
}

// GetUpcoming returns the active schedules with their next due dates,
// soonest first.
func (s *SIPScheduleService) GetUpcoming(familyGroupID string, now time.Time) ([]model.UpcomingSIP, error) {
	schedules, err := s.scheduleRepo.GetSchedules(familyGroupID)
	if err != nil {
		return nil, err
	}

	return UpcomingSchedules(schedules, now), nil
}

// CreateSchedule stores a new schedule, active by default.
func (s *SIPScheduleService) CreateSchedule(ctx context.Context, req request.CreateSIPScheduleRequest) (*model.SIPSchedule, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}

	schedule := &model.SIPSchedule{
		ID:            uuid.New().String(),
		FamilyGroupID: req.FamilyGroupID,
		MemberID:      req.MemberID,
		AssetName:     req.AssetName,
		Amount:        req.Amount,
		DayOfMonth:    req.DayOfMonth,
		StartDate:     startDate,
		Active:        true,
		CreatedAt:     time.Now(),
	}

	if err := s.scheduleRepo.InsertSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create sip schedule: %w", err)
	}

	return schedule, nil
}

// SetActive pauses or resumes a schedule.
func (s *SIPScheduleService) SetActive(ctx context.Context, scheduleID string, active bool) error {
	return s.scheduleRepo.SetScheduleActive(ctx, scheduleID, active)
}

// DeleteSchedule removes a schedule by ID.
func (s *SIPScheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	return s.scheduleRepo.DeleteSchedule(ctx, scheduleID)
}
