package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/service"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("invalid test date: " + s)
	}
	return d
}

func tx(assetName, assetType, txType, day string, quantity, price float64) model.Transaction {
	return model.Transaction{
		AssetName: assetName,
		AssetType: assetType,
		Type:      txType,
		Date:      date(day),
		Quantity:  quantity,
		Price:     price,
		Amount:    quantity * price,
	}
}

// TestComputeHoldings_WeightedAverageCost tests the core average-cost fold.
//
// WHY: Average cost is the foundation every derived number builds on. Two
// buys at different prices must blend into one weighted average, and a sale
// must remove cost at that average so the remaining position's average is
// unchanged regardless of the sale price.
func TestComputeHoldings_WeightedAverageCost(t *testing.T) {
	t.Run("two buys blend into weighted average", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("HDFC Bank", model.AssetStock, model.TypeBuy, "2024-01-10", 10, 100),
			tx("HDFC Bank", model.AssetStock, model.TypeBuy, "2024-02-10", 10, 120),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		h := holdings[0]
		if !almostEqual(h.Quantity, 20) {
			t.Errorf("Expected quantity 20, got %v", h.Quantity)
		}
		if !almostEqual(h.TotalInvested, 2200) {
			t.Errorf("Expected invested 2200, got %v", h.TotalInvested)
		}
		if !almostEqual(h.AvgPrice, 110) {
			t.Errorf("Expected avg price 110, got %v", h.AvgPrice)
		}
	})

	t.Run("sell removes cost at average regardless of sale price", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("HDFC Bank", model.AssetStock, model.TypeBuy, "2024-01-10", 10, 100),
			tx("HDFC Bank", model.AssetStock, model.TypeBuy, "2024-02-10", 10, 120),
			tx("HDFC Bank", model.AssetStock, model.TypeSell, "2024-03-10", 5, 150),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		h := holdings[0]
		if !almostEqual(h.Quantity, 15) {
			t.Errorf("Expected quantity 15, got %v", h.Quantity)
		}
		if !almostEqual(h.TotalInvested, 1650) {
			t.Errorf("Expected invested 1650, got %v", h.TotalInvested)
		}
		if !almostEqual(h.AvgPrice, 110) {
			t.Errorf("Expected avg price 110 after sale, got %v", h.AvgPrice)
		}
		// No price override: valued at average cost, so no unrealized gain.
		if !almostEqual(h.GainLoss, 0) {
			t.Errorf("Expected zero gain without price override, got %v", h.GainLoss)
		}
	})

	t.Run("fully sold position disappears", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("Wipro", model.AssetStock, model.TypeBuy, "2024-01-10", 10, 400),
			tx("Wipro", model.AssetStock, model.TypeSell, "2024-02-10", 10, 450),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 0 {
			t.Errorf("Expected no holdings after full sale, got %d", len(holdings))
		}
	})

	t.Run("over-sold position disappears instead of erroring", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("Wipro", model.AssetStock, model.TypeBuy, "2024-01-10", 10, 400),
			tx("Wipro", model.AssetStock, model.TypeSell, "2024-02-10", 15, 450),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 0 {
			t.Errorf("Expected no holdings after over-sale, got %d", len(holdings))
		}
	})

	t.Run("sale ordering is by date not input order", func(t *testing.T) {
		// The sale arrives first in the slice but is dated after the
		// second buy, so it must see the blended average of both buys.
		transactions := []model.Transaction{
			tx("HDFC Bank", model.AssetStock, model.TypeSell, "2024-03-10", 5, 150),
			tx("HDFC Bank", model.AssetStock, model.TypeBuy, "2024-02-10", 10, 120),
			tx("HDFC Bank", model.AssetStock, model.TypeBuy, "2024-01-10", 10, 100),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		if !almostEqual(holdings[0].TotalInvested, 1650) {
			t.Errorf("Expected invested 1650, got %v", holdings[0].TotalInvested)
		}
	})
}

// TestComputeHoldings_CurrentPrice tests current-price resolution.
//
// WHY: An asset's value comes from the manual quote when one exists and
// from the average cost otherwise. The two paths produce meaningfully
// different gain numbers and both have to be exact.
func TestComputeHoldings_CurrentPrice(t *testing.T) {
	t.Run("price override produces unrealized gain", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("HDFC Bank", model.AssetStock, model.TypeBuy, "2024-01-10", 10, 100),
		}
		prices := map[string]float64{"HDFC Bank": 130}

		holdings := service.ComputeHoldings(transactions, prices)

		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		h := holdings[0]
		if !almostEqual(h.CurrentPrice, 130) {
			t.Errorf("Expected current price 130, got %v", h.CurrentPrice)
		}
		if !almostEqual(h.CurrentValue, 1300) {
			t.Errorf("Expected current value 1300, got %v", h.CurrentValue)
		}
		if !almostEqual(h.GainLoss, 300) {
			t.Errorf("Expected gain 300, got %v", h.GainLoss)
		}
		if !almostEqual(h.GainLossPercent, 30) {
			t.Errorf("Expected gain percent 30, got %v", h.GainLossPercent)
		}
	})

	t.Run("missing override falls back to average cost", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("Axis Fund", model.AssetMutualFund, model.TypeSIP, "2024-01-05", 50, 20),
		}

		holdings := service.ComputeHoldings(transactions, map[string]float64{})

		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		h := holdings[0]
		if !almostEqual(h.CurrentPrice, 20) {
			t.Errorf("Expected current price to fall back to avg 20, got %v", h.CurrentPrice)
		}
		if !almostEqual(h.GainLoss, 0) {
			t.Errorf("Expected zero gain on fallback, got %v", h.GainLoss)
		}
	})
}

// TestComputeHoldings_Shape tests structural properties of the output.
//
// WHY: The output feeds straight into API responses, so it must be
// deterministic (sorted, stable across repeat calls), exclude cash flow,
// and never mutate its input.
func TestComputeHoldings_Shape(t *testing.T) {
	t.Run("cash flow transactions never form positions", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("Salary", model.AssetCash, model.TypeIncome, "2024-01-01", 1, 50000),
			tx("Rent", model.AssetCash, model.TypeExpense, "2024-01-02", 1, 20000),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 0 {
			t.Errorf("Expected no holdings from cash flow, got %d", len(holdings))
		}
	})

	t.Run("output is sorted by asset name", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("Wipro", model.AssetStock, model.TypeBuy, "2024-01-10", 5, 400),
			tx("Axis Fund", model.AssetMutualFund, model.TypeSIP, "2024-01-10", 50, 20),
			tx("Gold Coin", model.AssetGold, model.TypeBuy, "2024-01-10", 2, 6000),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 3 {
			t.Fatalf("Expected 3 holdings, got %d", len(holdings))
		}
		for i := 1; i < len(holdings); i++ {
			if holdings[i-1].AssetName > holdings[i].AssetName {
				t.Errorf("Holdings not sorted: %q before %q", holdings[i-1].AssetName, holdings[i].AssetName)
			}
		}
	})

	t.Run("repeat calls produce identical output", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("Wipro", model.AssetStock, model.TypeBuy, "2024-01-10", 5, 400),
			tx("Axis Fund", model.AssetMutualFund, model.TypeSIP, "2024-01-10", 50, 20),
			tx("Wipro", model.AssetStock, model.TypeSell, "2024-02-10", 2, 420),
		}
		prices := map[string]float64{"Wipro": 415}

		first := service.ComputeHoldings(transactions, prices)
		second := service.ComputeHoldings(transactions, prices)

		if len(first) != len(second) {
			t.Fatalf("Repeat call changed result length: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("Repeat call changed holding %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("Wipro", model.AssetStock, model.TypeSell, "2024-02-10", 2, 420),
			tx("Wipro", model.AssetStock, model.TypeBuy, "2024-01-10", 5, 400),
		}

		service.ComputeHoldings(transactions, nil)

		if !transactions[0].Date.After(transactions[1].Date) {
			t.Error("ComputeHoldings mutated the input slice order")
		}
	})

	t.Run("deposit and withdraw behave like buy and sell", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("SBI FD", model.AssetFD, model.TypeDeposit, "2024-01-10", 1, 100000),
			tx("SBI FD", model.AssetFD, model.TypeWithdraw, "2024-06-10", 0.5, 100000),
		}

		holdings := service.ComputeHoldings(transactions, nil)

		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		if !almostEqual(holdings[0].Quantity, 0.5) {
			t.Errorf("Expected quantity 0.5, got %v", holdings[0].Quantity)
		}
		if !almostEqual(holdings[0].TotalInvested, 50000) {
			t.Errorf("Expected invested 50000, got %v", holdings[0].TotalInvested)
		}
	})
}
