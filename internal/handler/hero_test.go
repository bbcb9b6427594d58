package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/store"
)

func newHeroFixture(t *testing.T) (*HeroHandler, *scsFixture, *store.Queries) {
	t.Helper()
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewHeroHandler(db, testRenderer(t, sm))
	return h, newSCSFixture(sm), store.New(db)
}

func createFixtureHero(t *testing.T, queries *store.Queries, title string) model.HeroContent {
	t.Helper()
	now := time.Now()
	hero, err := queries.CreateHero(context.Background(), store.CreateHeroParams{
		Title:      title,
		ButtonText: "Book Now",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("creating hero: %v", err)
	}
	return hero
}

func TestHeroCreate(t *testing.T) {
	t.Run("create and activate", func(t *testing.T) {
		h, fx, queries := newHeroFixture(t)

		form := url.Values{
			"title":       {"Discover Aviation!"},
			"subtitle":    {"Fly the coastline"},
			"button_text": {"Choose Your Aircraft"},
			"activate":    {"on"},
		}
		r := fx.request(t, postForm(t, "/admin/hero", form))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assertStatus(t, w.Code, http.StatusSeeOther)

		active, err := queries.GetActiveHero(context.Background())
		if err != nil {
			t.Fatalf("GetActiveHero: %v", err)
		}
		if active.Title != "Discover Aviation!" {
			t.Errorf("active title = %q", active.Title)
		}
	})

	t.Run("missing title re-renders", func(t *testing.T) {
		h, fx, _ := newHeroFixture(t)

		r := fx.request(t, postForm(t, "/admin/hero", url.Values{"title": {""}, "button_text": {"Go"}}))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assertStatus(t, w.Code, http.StatusOK)
		assertContains(t, w.Body.String(), "Title is required")
	})
}

func TestHeroActivateKeepsSingleActive(t *testing.T) {
	h, fx, queries := newHeroFixture(t)
	first := createFixtureHero(t, queries, "First")
	second := createFixtureHero(t, queries, "Second")

	activate := func(id int64) {
		t.Helper()
		idStr := strconv.FormatInt(id, 10)
		r := requestWithURLParams(
			fx.request(t, httptest.NewRequest(http.MethodPost, "/admin/hero/"+idStr+"/activate", nil)),
			map[string]string{"id": idStr},
		)
		w := httptest.NewRecorder()
		h.Activate(w, r)
		assertStatus(t, w.Code, http.StatusSeeOther)
	}

	activate(first.ID)
	activate(second.ID)

	revisions, err := queries.ListHeroContent(context.Background())
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	activeCount := 0
	for _, rev := range revisions {
		if rev.IsActive {
			activeCount++
			if rev.ID != second.ID {
				t.Errorf("active revision = %d; want %d", rev.ID, second.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("active revisions = %d; want 1", activeCount)
	}
}

func TestHeroDeleteActiveBlocked(t *testing.T) {
	h, fx, queries := newHeroFixture(t)
	hero := createFixtureHero(t, queries, "Live Banner")
	if err := store.ActivateHero(context.Background(), h.db, hero.ID); err != nil {
		t.Fatalf("activating: %v", err)
	}

	idStr := strconv.FormatInt(hero.ID, 10)
	r := requestWithURLParams(
		fx.request(t, httptest.NewRequest(http.MethodPost, "/admin/hero/"+idStr+"/delete", nil)),
		map[string]string{"id": idStr},
	)
	w := httptest.NewRecorder()
	h.Delete(w, r)

	assertStatus(t, w.Code, http.StatusSeeOther)

	if _, err := queries.GetHeroByID(context.Background(), hero.ID); err != nil {
		t.Errorf("active hero was deleted: %v", err)
	}
}

func TestHeroUpdatePreservesActiveFlag(t *testing.T) {
	h, fx, queries := newHeroFixture(t)
	hero := createFixtureHero(t, queries, "Original")
	if err := store.ActivateHero(context.Background(), h.db, hero.ID); err != nil {
		t.Fatalf("activating: %v", err)
	}

	idStr := strconv.FormatInt(hero.ID, 10)
	form := url.Values{"title": {"Updated"}, "button_text": {"Book Now"}}
	r := requestWithURLParams(
		fx.request(t, postForm(t, "/admin/hero/"+idStr, form)),
		map[string]string{"id": idStr},
	)
	w := httptest.NewRecorder()
	h.Update(w, r)

	assertStatus(t, w.Code, http.StatusSeeOther)

	got, err := queries.GetHeroByID(context.Background(), hero.ID)
	if err != nil {
		t.Fatalf("GetHeroByID: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("title = %q; want Updated", got.Title)
	}
	if !got.IsActive {
		t.Error("update cleared the active flag")
	}
}
