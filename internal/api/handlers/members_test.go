package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/testutil"
)

func TestMemberHandler_ListMembers(t *testing.T) {
	t.Run("returns group members as JSON", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))
		group, _ := testutil.CreateFamilyWithMember(t, db)
		testutil.NewMember(group.ID).WithRelation("Spouse").Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/member",
			map[string]string{"familyGroupId": group.ID})
		w := httptest.NewRecorder()

		handler.ListMembers(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var members []model.Member
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&members)

		if len(members) != 2 {
			t.Errorf("Expected 2 members, got %d", len(members))
		}
	})

	t.Run("missing familyGroupId returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/member", nil)
		w := httptest.NewRecorder()

		handler.ListMembers(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestMemberHandler_GetMember(t *testing.T) {
	t.Run("returns a member by id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))
		_, member := testutil.CreateFamilyWithMember(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/member/"+member.ID,
			map[string]string{"uuid": member.ID})
		w := httptest.NewRecorder()

		handler.GetMember(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Member
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if got.ID != member.ID {
			t.Errorf("Expected member %q, got %q", member.ID, got.ID)
		}
	})

	t.Run("unknown member returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))

		unknown := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/member/"+unknown,
			map[string]string{"uuid": unknown})
		w := httptest.NewRecorder()

		handler.GetMember(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestMemberHandler_CreateMember(t *testing.T) {
	t.Run("creates a member in an existing group", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))
		group := testutil.NewFamilyGroup().Build(t, db)

		payload := request.CreateMemberRequest{
			FamilyGroupID: group.ID,
			Name:          "Priya",
			Relation:      "Spouse",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/member", payload)
		w := httptest.NewRecorder()

		handler.CreateMember(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Member
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if got.Name != "Priya" || got.Relation != "Spouse" {
			t.Errorf("Expected Priya/Spouse, got %q/%q", got.Name, got.Relation)
		}
	})

	t.Run("unknown family group returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))

		payload := request.CreateMemberRequest{
			FamilyGroupID: testutil.MakeID(),
			Name:          "Priya",
			Relation:      "Spouse",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/member", payload)
		w := httptest.NewRecorder()

		handler.CreateMember(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("blank name returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))
		group := testutil.NewFamilyGroup().Build(t, db)

		payload := request.CreateMemberRequest{
			FamilyGroupID: group.ID,
			Name:          "   ",
			Relation:      "Spouse",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/member", payload)
		w := httptest.NewRecorder()

		handler.CreateMember(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestMemberHandler_UpdateMember(t *testing.T) {
	t.Run("updates the provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))
		_, member := testutil.CreateFamilyWithMember(t, db)

		newName := "Renamed"
		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/member/"+member.ID,
			request.UpdateMemberRequest{Name: &newName},
			map[string]string{"uuid": member.ID})
		w := httptest.NewRecorder()

		handler.UpdateMember(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Member
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if got.Name != "Renamed" {
			t.Errorf("Expected name Renamed, got %q", got.Name)
		}
		if got.Relation != member.Relation {
			t.Errorf("Expected relation unchanged (%q), got %q", member.Relation, got.Relation)
		}
	})

	t.Run("unknown member returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))

		unknown := testutil.MakeID()
		newName := "Renamed"
		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/member/"+unknown,
			request.UpdateMemberRequest{Name: &newName},
			map[string]string{"uuid": unknown})
		w := httptest.NewRecorder()

		handler.UpdateMember(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestMemberHandler_DeleteMember(t *testing.T) {
	t.Run("deletes an existing member", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))
		_, member := testutil.CreateFamilyWithMember(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/member/"+member.ID,
			map[string]string{"uuid": member.ID})
		w := httptest.NewRecorder()

		handler.DeleteMember(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown member returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewMemberHandler(testutil.NewTestMemberService(t, db))

		unknown := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/member/"+unknown,
			map[string]string{"uuid": unknown})
		w := httptest.NewRecorder()

		handler.DeleteMember(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
