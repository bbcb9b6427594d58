// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/flybz/discoverair/internal/store"
	"github.com/flybz/discoverair/internal/testutil"
)

func createHero(t *testing.T, q *store.Queries, title string) int64 {
	t.Helper()
	now := time.Now()
	h, err := q.CreateHero(context.Background(), store.CreateHeroParams{
		Title:      title,
		Subtitle:   "sub",
		ButtonText: "Book Now",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("CreateHero(%s): %v", title, err)
	}
	return h.ID
}

func TestActivateHero_SingleActiveInvariant(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	q := store.New(db)

	first := createHero(t, q, "Summer Special")
	second := createHero(t, q, "Fall Special")

	if err := store.ActivateHero(ctx, db, first); err != nil {
		t.Fatalf("ActivateHero(first): %v", err)
	}
	active, err := q.GetActiveHero(ctx)
	if err != nil {
		t.Fatalf("GetActiveHero: %v", err)
	}
	if active.ID != first {
		t.Fatalf("active hero = %d, want %d", active.ID, first)
	}

	// Activating another record deactivates all others.
	if err := store.ActivateHero(ctx, db, second); err != nil {
		t.Fatalf("ActivateHero(second): %v", err)
	}

	all, err := q.ListHeroContent(ctx)
	if err != nil {
		t.Fatalf("ListHeroContent: %v", err)
	}
	activeCount := 0
	for _, h := range all {
		if h.IsActive {
			activeCount++
			if h.ID != second {
				t.Errorf("unexpected active hero %d", h.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("active hero count = %d, want 1", activeCount)
	}
}

func TestActivateHero_UnknownID(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	q := store.New(db)

	existing := createHero(t, q, "Current")
	if err := store.ActivateHero(ctx, db, existing); err != nil {
		t.Fatalf("ActivateHero: %v", err)
	}

	// Activating a missing id fails and must not deactivate the
	// current record (the transaction rolls back).
	if err := store.ActivateHero(ctx, db, 9999); err != sql.ErrNoRows {
		t.Fatalf("ActivateHero(9999) err = %v, want sql.ErrNoRows", err)
	}

	active, err := q.GetActiveHero(ctx)
	if err != nil {
		t.Fatalf("GetActiveHero after failed activation: %v", err)
	}
	if active.ID != existing {
		t.Errorf("active hero = %d, want %d", active.ID, existing)
	}
}

func TestUpdateHero_LeavesActiveFlag(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	q := store.New(db)

	id := createHero(t, q, "Original")
	if err := store.ActivateHero(ctx, db, id); err != nil {
		t.Fatalf("ActivateHero: %v", err)
	}

	err := q.UpdateHero(ctx, store.UpdateHeroParams{
		ID:         id,
		Title:      "Edited",
		Subtitle:   "new sub",
		ButtonText: "Fly Today",
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateHero: %v", err)
	}

	got, err := q.GetHeroByID(ctx, id)
	if err != nil {
		t.Fatalf("GetHeroByID: %v", err)
	}
	if got.Title != "Edited" {
		t.Errorf("title = %q", got.Title)
	}
	if !got.IsActive {
		t.Error("content edit cleared the active flag")
	}
}
