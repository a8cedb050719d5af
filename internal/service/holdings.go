package service

import (
	"slices"
	"strings"

	"github.com/hazyfin/family-finance-backend/internal/model"
)

// holdingEpsilon is the smallest quantity treated as a live position.
// Fully sold (or over-sold) assets fall at or below it and are dropped
// from the holdings output.
const holdingEpsilon = 1e-4

// positionAccumulator carries the running state of one asset during the
// chronological fold.
type positionAccumulator struct {
	quantity  float64
	invested  float64
	assetType string
}

// ComputeHoldings folds a transaction list into current per-asset positions
// using the weighted-average cost method.
//
// The fold is chronological: transactions are stable-sorted by date so that
// ties keep their input (insertion) order, which matters because the average
// cost at the moment of a sale depends on everything before it. Buy, SIP and
// Deposit events add quantity and cost; Sell and Withdraw remove quantity
// and cost proportional to the running average (no profit is realized by a
// sale at any price). Income and Expense never reach this fold.
//
// Selling more than is held drives the accumulator negative. That state is
// permitted rather than rejected; such positions simply never appear in the
// output because of the epsilon filter.
//
// The manual price map supplies current prices; an asset without an entry is
// valued at its average cost, i.e. zero unrealized gain until a price is
// quoted. Pure function: no shared state, deterministic for a given input,
// safe to re-run concurrently. Output is sorted by asset name.
func ComputeHoldings(transactions []model.Transaction, prices map[string]float64) []model.Holding {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	slices.SortStableFunc(sorted, func(a, b model.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	positions := make(map[string]*positionAccumulator)
	for _, t := range sorted {
		if t.IsCashFlow() {
			continue
		}

		pos, ok := positions[t.AssetName]
		if !ok {
			pos = &positionAccumulator{assetType: t.AssetType}
			positions[t.AssetName] = pos
		}

		switch {
		case t.IsInflow():
			pos.quantity += t.Quantity
			pos.invested += t.Amount
		case t.IsOutflow():
			avgPrice := 0.0
			if pos.quantity > 0 {
				avgPrice = pos.invested / pos.quantity
			}
			pos.quantity -= t.Quantity
			pos.invested -= t.Quantity * avgPrice
		}
	}

	holdings := []model.Holding{}
	for name, pos := range positions {
		if pos.quantity <= holdingEpsilon {
			continue
		}

		avgPrice := pos.invested / pos.quantity

		currentPrice, ok := prices[name]
		if !ok {
			currentPrice = avgPrice
		}
		currentValue := pos.quantity * currentPrice
		gainLoss := currentValue - pos.invested

		gainLossPercent := 0.0
		if pos.invested > 0 {
			gainLossPercent = gainLoss / pos.invested * 100
		}

		holdings = append(holdings, model.Holding{
			AssetName:       name,
			AssetType:       pos.assetType,
			Quantity:        pos.quantity,
			TotalInvested:   pos.invested,
			AvgPrice:        avgPrice,
			CurrentPrice:    currentPrice,
			CurrentValue:    currentValue,
			GainLoss:        gainLoss,
			GainLossPercent: gainLossPercent,
		})
	}

	slices.SortFunc(holdings, func(a, b model.Holding) int {
		return strings.Compare(a.AssetName, b.AssetName)
	})

	return holdings
}
