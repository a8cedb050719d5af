package service

import (
	"slices"
	"strings"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/model"
)

// sipAccumulator carries the running state of one SIP group.
type sipAccumulator struct {
	assetName string
	invested  float64
	units     float64
	lastDate  time.Time
}

// ComputeSIPSummaries groups SIP-type transactions by their SIP ID (asset
// name when none is recorded) and produces one summary per group.
//
// Unlike the holdings fold this needs no chronological ordering: SIP
// contributions are purely additive, there is no sell-side event for a SIP
// group. The latest date is tracked for display; on equal dates the later
// input entry wins. The manual price map supplies the latest NAV, falling
// back to the average NAV when no quote exists. Pure function; output is
// sorted by SIP ID.
func ComputeSIPSummaries(transactions []model.Transaction, prices map[string]float64) []model.SIPSummary {
	groups := make(map[string]*sipAccumulator)
	for _, t := range transactions {
		if t.Type != model.TypeSIP {
			continue
		}

		key := t.SIPGroupKey()
		g, ok := groups[key]
		if !ok {
			g = &sipAccumulator{assetName: t.AssetName, lastDate: t.Date}
			groups[key] = g
		}

		g.invested += t.Amount
		g.units += t.Quantity
		if !t.Date.Before(g.lastDate) {
			g.lastDate = t.Date
		}
	}

	summaries := []model.SIPSummary{}
	for id, g := range groups {
		avgNav := 0.0
		if g.units > 0 {
			avgNav = g.invested / g.units
		}

		latestNav, ok := prices[g.assetName]
		if !ok {
			latestNav = avgNav
		}
		currentValue := g.units * latestNav
		gainLoss := currentValue - g.invested

		gainPercent := 0.0
		if g.invested > 0 {
			gainPercent = gainLoss / g.invested * 100
		}

		summaries = append(summaries, model.SIPSummary{
			SIPID:         id,
			AssetName:     g.assetName,
			TotalInvested: g.invested,
			TotalUnits:    g.units,
			AvgNav:        avgNav,
			LatestNav:     latestNav,
			CurrentValue:  currentValue,
			GainLoss:      gainLoss,
			GainPercent:   gainPercent,
			LastDate:      g.lastDate,
		})
	}

	slices.SortFunc(summaries, func(a, b model.SIPSummary) int {
		return strings.Compare(a.SIPID, b.SIPID)
	})

	return summaries
}

// UpcomingSchedules projects the next due date for every active schedule:
// the first occurrence of the schedule's day-of-month on or after the
// reference date, rolling into the next month when this month's occurrence
// has already passed. Results are sorted by next date ascending.
//
// The reference date is an explicit input so the projection stays
// deterministic and testable; callers pass time.Now().
func UpcomingSchedules(schedules []model.SIPSchedule, now time.Time) []model.UpcomingSIP {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	upcoming := []model.UpcomingSIP{}
	for _, s := range schedules {
		if !s.Active {
			continue
		}

		next := time.Date(today.Year(), today.Month(), s.DayOfMonth, 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = time.Date(today.Year(), today.Month()+1, s.DayOfMonth, 0, 0, 0, 0, time.UTC)
		}

		upcoming = append(upcoming, model.UpcomingSIP{SIPSchedule: s, NextDate: next})
	}

	slices.SortStableFunc(upcoming, func(a, b model.UpcomingSIP) int {
		return a.NextDate.Compare(b.NextDate)
	})

	return upcoming
}
