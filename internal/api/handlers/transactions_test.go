package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/testutil"
)

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("returns group transactions as JSON", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		group, member := testutil.CreateFamilyWithMember(t, db)

		testutil.NewTransaction(group.ID, member.ID).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction",
			map[string]string{"familyGroupId": group.ID})
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var transactions []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&transactions)

		if len(transactions) != 1 {
			t.Errorf("Expected 1 transaction, got %d", len(transactions))
		}
	})

	t.Run("member query parameter restricts results", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		group, member := testutil.CreateFamilyWithMember(t, db)
		spouse := testutil.NewMember(group.ID).WithRelation("Spouse").Build(t, db)

		testutil.NewTransaction(group.ID, member.ID).Build(t, db)
		testutil.NewTransaction(group.ID, spouse.ID).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction",
			map[string]string{"familyGroupId": group.ID, "member": spouse.ID})
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		var transactions []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&transactions)

		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}
		if transactions[0].MemberID != spouse.ID {
			t.Errorf("Expected spouse's transaction, got member %q", transactions[0].MemberID)
		}
	})

	t.Run("missing familyGroupId returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("non-uuid familyGroupId returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction",
			map[string]string{"familyGroupId": "not-a-uuid"})
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("creates transaction and derives amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		group, member := testutil.CreateFamilyWithMember(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction",
			request.CreateTransactionRequest{
				FamilyGroupID: group.ID,
				MemberID:      member.ID,
				AssetName:     "HDFC Bank",
				AssetType:     model.AssetStock,
				Type:          model.TypeBuy,
				Date:          "2024-01-10",
				Quantity:      10,
				Price:         1500,
			})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&created)

		if created.Amount != 15000 {
			t.Errorf("Expected derived amount 15000, got %v", created.Amount)
		}
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		group, member := testutil.CreateFamilyWithMember(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction",
			request.CreateTransactionRequest{
				FamilyGroupID: group.ID,
				MemberID:      member.ID,
				AssetName:     "HDFC Bank",
				AssetType:     model.AssetStock,
				Type:          "Gift",
				Date:          "2024-01-10",
				Quantity:      10,
				Price:         1500,
			})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects malformed JSON body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader("{"))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/x",
			map[string]string{"uuid": testutil.MakeID()})
		w := httptest.NewRecorder()

		handler.GetTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("returns stored transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		group, member := testutil.CreateFamilyWithMember(t, db)

		created := testutil.NewTransaction(group.ID, member.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/x",
			map[string]string{"uuid": created.ID})
		w := httptest.NewRecorder()

		handler.GetTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if got.ID != created.ID {
			t.Errorf("Expected transaction %q, got %q", created.ID, got.ID)
		}
	})
}

func TestTransactionHandler_ExportTransactions(t *testing.T) {
	t.Run("streams CSV attachment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		group, member := testutil.CreateFamilyWithMember(t, db)

		testutil.NewTransaction(group.ID, member.ID).
			WithAsset("HDFC Bank", model.AssetStock).
			Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction/export",
			map[string]string{"familyGroupId": group.ID})
		w := httptest.NewRecorder()

		handler.ExportTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Expected text/csv content type, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
			t.Errorf("Expected attachment disposition, got %q", cd)
		}

		lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Errorf("Expected header plus 1 row, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[0], "Date,Type,Asset Name") {
			t.Errorf("Unexpected header row: %q", lines[0])
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		group, member := testutil.CreateFamilyWithMember(t, db)

		created := testutil.NewTransaction(group.ID, member.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/x",
			map[string]string{"uuid": created.ID})
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/x",
			map[string]string{"uuid": testutil.MakeID()})
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
