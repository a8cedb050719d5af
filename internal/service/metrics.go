package service

import (
	"slices"
	"strings"

	"github.com/hazyfin/family-finance-backend/internal/model"
)

// ComputeMetrics combines the holdings output with the raw (type-unfiltered)
// transaction list into one dashboard record.
//
// Holdings contribute the investment totals and the allocation-by-asset-type
// chart data. The transaction walk contributes income and expense totals, a
// per-category breakdown (with "Other Income"/"Other Expense" fallbacks for
// uncategorised rows), and the monthly income/expense/investment series.
// Pure function; breakdown is sorted by category, allocation by asset type,
// monthly flows chronologically.
func ComputeMetrics(holdings []model.Holding, transactions []model.Transaction) model.DashboardMetrics {
	var totalInvested, totalCurrentValue float64
	allocation := make(map[string]float64)
	for _, h := range holdings {
		totalInvested += h.TotalInvested
		totalCurrentValue += h.CurrentValue
		allocation[h.AssetType] += h.CurrentValue
	}

	totalGainLoss := totalCurrentValue - totalInvested
	overallGainPercent := 0.0
	if totalInvested > 0 {
		overallGainPercent = totalGainLoss / totalInvested * 100
	}

	assetAllocation := make([]model.AssetAllocation, 0, len(allocation))
	for name, value := range allocation {
		assetAllocation = append(assetAllocation, model.AssetAllocation{Name: name, Value: value})
	}
	slices.SortFunc(assetAllocation, func(a, b model.AssetAllocation) int {
		return strings.Compare(a.Name, b.Name)
	})

	var totalIncome, totalExpenses float64
	categories := make(map[string]*model.CategorySummary)
	months := make(map[string]*model.MonthlyFlow)

	for _, t := range transactions {
		month := t.Date.Format("2006-01")
		flow, ok := months[month]
		if !ok {
			flow = &model.MonthlyFlow{Month: month}
			months[month] = flow
		}

		switch {
		case t.Type == model.TypeIncome:
			totalIncome += t.Amount
			flow.Income += t.Amount
			addCategory(categories, t.CategoryLabel(), model.TypeIncome, t.Amount)
		case t.Type == model.TypeExpense:
			totalExpenses += t.Amount
			flow.Expense += t.Amount
			addCategory(categories, t.CategoryLabel(), model.TypeExpense, t.Amount)
		case t.IsInflow():
			flow.Investment += t.Amount
		}
	}

	categoryBreakdown := make([]model.CategorySummary, 0, len(categories))
	for _, c := range categories {
		categoryBreakdown = append(categoryBreakdown, *c)
	}
	slices.SortFunc(categoryBreakdown, func(a, b model.CategorySummary) int {
		return strings.Compare(a.Category, b.Category)
	})

	monthlyFlows := make([]model.MonthlyFlow, 0, len(months))
	for _, f := range months {
		monthlyFlows = append(monthlyFlows, *f)
	}
	slices.SortFunc(monthlyFlows, func(a, b model.MonthlyFlow) int {
		return strings.Compare(a.Month, b.Month)
	})

	return model.DashboardMetrics{
		TotalInvested:      totalInvested,
		TotalCurrentValue:  totalCurrentValue,
		TotalGainLoss:      totalGainLoss,
		OverallGainPercent: overallGainPercent,
		AssetAllocation:    assetAllocation,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		CategoryBreakdown:  categoryBreakdown,
		MonthlyFlows:       monthlyFlows,
	}
}

// addCategory accumulates one cash-flow amount under its category label.
// A category name is assumed not to collide across Income and Expense.
func addCategory(categories map[string]*model.CategorySummary, label, flowType string, amount float64) {
	c, ok := categories[label]
	if !ok {
		c = &model.CategorySummary{Category: label, Type: flowType}
		categories[label] = c
	}
	c.Amount += amount
}
