package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/flybz/discoverair/internal/imaging"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/store"
)

func newAircraftFixture(t *testing.T) (*AircraftHandler, *scsFixture, *store.Queries) {
	t.Helper()
	db := testDB(t)
	sm := testSessionManager(t)
	processor := imaging.NewProcessor(t.TempDir())
	h := NewAircraftHandler(db, testRenderer(t, sm), processor)
	return h, newSCSFixture(sm), store.New(db)
}

func multipartForm(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("writing field %s: %v", key, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/admin/aircraft", body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func createFixtureAircraft(t *testing.T, queries *store.Queries, name, tail string, active bool) model.Aircraft {
	t.Helper()
	now := time.Now()
	a, err := queries.CreateAircraft(context.Background(), store.CreateAircraftParams{
		Name:       name,
		TailNumber: tail,
		Price:      199,
		IsActive:   active,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("creating aircraft: %v", err)
	}
	return a
}

func TestAircraftList(t *testing.T) {
	h, fx, queries := newAircraftFixture(t)
	createFixtureAircraft(t, queries, "Cessna 172", "N738CP", true)
	createFixtureAircraft(t, queries, "Piper Cherokee", "N8116J", false)

	r := fx.request(t, httptest.NewRequest(http.MethodGet, "/admin/aircraft", nil))
	w := httptest.NewRecorder()
	h.List(w, r)

	assertStatus(t, w.Code, http.StatusOK)
	// Inactive aircraft stay visible in the admin list.
	assertContains(t, w.Body.String(), "Cessna 172")
	assertContains(t, w.Body.String(), "Piper Cherokee")
}

func TestAircraftCreate(t *testing.T) {
	t.Run("valid form creates aircraft", func(t *testing.T) {
		h, fx, queries := newAircraftFixture(t)

		r := fx.request(t, multipartForm(t, map[string]string{
			"name":        "Diamond DA40",
			"model":       "DA40",
			"tail_number": "N128DS",
			"price":       "249",
			"capacity":    "3 passenger seats",
			"is_active":   "on",
		}))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assertStatus(t, w.Code, http.StatusSeeOther)

		fleet, err := queries.ListAircraft(context.Background())
		if err != nil {
			t.Fatalf("listing: %v", err)
		}
		if len(fleet) != 1 {
			t.Fatalf("fleet size = %d; want 1", len(fleet))
		}
		got := fleet[0]
		if got.Name != "Diamond DA40" || got.TailNumber != "N128DS" || got.Price != 249 {
			t.Errorf("created aircraft = %+v", got)
		}
		if got.DisplayOrder != 1 {
			t.Errorf("display order = %d; want 1", got.DisplayOrder)
		}
	})

	t.Run("missing required fields re-render form", func(t *testing.T) {
		h, fx, queries := newAircraftFixture(t)

		r := fx.request(t, multipartForm(t, map[string]string{
			"name":  "",
			"price": "abc",
		}))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assertStatus(t, w.Code, http.StatusOK)
		assertContains(t, w.Body.String(), "Name is required")
		assertContains(t, w.Body.String(), "Tail number is required")
		assertContains(t, w.Body.String(), "Price must be a non-negative number")

		count, err := queries.CountAircraft(context.Background())
		if err != nil {
			t.Fatalf("counting: %v", err)
		}
		if count != 0 {
			t.Errorf("aircraft count = %d; want 0", count)
		}
	})

	t.Run("description is sanitized", func(t *testing.T) {
		h, fx, queries := newAircraftFixture(t)

		r := fx.request(t, multipartForm(t, map[string]string{
			"name":        "Cessna 172",
			"tail_number": "N738CP",
			"price":       "199",
			"description": `<p>Great trainer</p><script>alert("x")</script>`,
		}))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assertStatus(t, w.Code, http.StatusSeeOther)

		fleet, err := queries.ListAircraft(context.Background())
		if err != nil || len(fleet) != 1 {
			t.Fatalf("listing: %v (%d rows)", err, len(fleet))
		}
		desc := fleet[0].Description
		if !bytes.Contains([]byte(desc), []byte("Great trainer")) {
			t.Errorf("description lost safe markup: %q", desc)
		}
		if bytes.Contains([]byte(desc), []byte("<script>")) {
			t.Errorf("description kept script tag: %q", desc)
		}
	})
}

func TestAircraftToggle(t *testing.T) {
	h, fx, queries := newAircraftFixture(t)
	a := createFixtureAircraft(t, queries, "Cessna 172", "N738CP", true)

	r := requestWithURLParams(
		fx.request(t, httptest.NewRequest(http.MethodPost, "/admin/aircraft/"+strconv.FormatInt(a.ID, 10)+"/toggle", nil)),
		map[string]string{"id": strconv.FormatInt(a.ID, 10)},
	)
	w := httptest.NewRecorder()
	h.Toggle(w, r)

	assertStatus(t, w.Code, http.StatusSeeOther)

	got, err := queries.GetAircraftByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetAircraftByID: %v", err)
	}
	if got.IsActive {
		t.Error("aircraft still active after toggle")
	}
}

func TestAircraftDelete(t *testing.T) {
	h, fx, queries := newAircraftFixture(t)
	a := createFixtureAircraft(t, queries, "Cessna 172", "N738CP", true)

	r := requestWithURLParams(
		fx.request(t, httptest.NewRequest(http.MethodPost, "/admin/aircraft/1/delete", nil)),
		map[string]string{"id": strconv.FormatInt(a.ID, 10)},
	)
	w := httptest.NewRecorder()
	h.Delete(w, r)

	assertStatus(t, w.Code, http.StatusSeeOther)

	count, err := queries.CountAircraft(context.Background())
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 0 {
		t.Errorf("aircraft count = %d; want 0", count)
	}
}
