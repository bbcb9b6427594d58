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

func createAircraft(t *testing.T, q *store.Queries, name, tail string, order int64, active bool) int64 {
	t.Helper()
	now := time.Now()
	a, err := q.CreateAircraft(context.Background(), store.CreateAircraftParams{
		Name:         name,
		Model:        "test model",
		TailNumber:   tail,
		Price:        199,
		Capacity:     "3 passenger seats",
		IsActive:     active,
		DisplayOrder: order,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateAircraft(%s): %v", name, err)
	}
	return a.ID
}

func TestAircraftCRUD(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	q := store.New(db)

	id := createAircraft(t, q, "Cessna 172", "N738CP", 1, true)

	got, err := q.GetAircraftByID(ctx, id)
	if err != nil {
		t.Fatalf("GetAircraftByID: %v", err)
	}
	if got.Name != "Cessna 172" || got.TailNumber != "N738CP" {
		t.Errorf("got %+v", got)
	}

	err = q.UpdateAircraft(ctx, store.UpdateAircraftParams{
		ID: id, Name: "Cessna 172S", Model: got.Model, TailNumber: got.TailNumber,
		Price: 219, Capacity: got.Capacity, Avionics: "G1000",
		Description: got.Description, ImageURL: got.ImageURL,
		IsActive: true, DisplayOrder: got.DisplayOrder, UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateAircraft: %v", err)
	}
	got, err = q.GetAircraftByID(ctx, id)
	if err != nil {
		t.Fatalf("GetAircraftByID after update: %v", err)
	}
	if got.Name != "Cessna 172S" || got.Price != 219 {
		t.Errorf("update not applied: %+v", got)
	}

	if err := q.DeleteAircraft(ctx, id); err != nil {
		t.Fatalf("DeleteAircraft: %v", err)
	}
	if _, err := q.GetAircraftByID(ctx, id); err != sql.ErrNoRows {
		t.Errorf("GetAircraftByID after delete: err = %v, want sql.ErrNoRows", err)
	}
}

func TestListActiveAircraft_ToggleAndOrder(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	q := store.New(db)

	cessna := createAircraft(t, q, "Cessna 172", "N738CP", 2, true)
	piper := createAircraft(t, q, "Piper Cherokee", "N8116J", 1, true)
	createAircraft(t, q, "Hangar Queen", "N000HQ", 3, false)

	fleet, err := q.ListActiveAircraft(ctx)
	if err != nil {
		t.Fatalf("ListActiveAircraft: %v", err)
	}
	if len(fleet) != 2 {
		t.Fatalf("active fleet size = %d, want 2", len(fleet))
	}
	// display_order ascending
	if fleet[0].ID != piper || fleet[1].ID != cessna {
		t.Errorf("active fleet order = [%d %d], want [%d %d]", fleet[0].ID, fleet[1].ID, piper, cessna)
	}

	// Deactivating excludes from the public list.
	err = q.SetAircraftActive(ctx, store.SetAircraftActiveParams{ID: cessna, IsActive: false, UpdatedAt: time.Now()})
	if err != nil {
		t.Fatalf("SetAircraftActive: %v", err)
	}
	fleet, err = q.ListActiveAircraft(ctx)
	if err != nil {
		t.Fatalf("ListActiveAircraft: %v", err)
	}
	if len(fleet) != 1 || fleet[0].ID != piper {
		t.Fatalf("after deactivate: %+v", fleet)
	}

	// Reactivating restores it, back in display order.
	err = q.SetAircraftActive(ctx, store.SetAircraftActiveParams{ID: cessna, IsActive: true, UpdatedAt: time.Now()})
	if err != nil {
		t.Fatalf("SetAircraftActive: %v", err)
	}
	fleet, err = q.ListActiveAircraft(ctx)
	if err != nil {
		t.Fatalf("ListActiveAircraft: %v", err)
	}
	if len(fleet) != 2 || fleet[0].ID != piper || fleet[1].ID != cessna {
		t.Fatalf("after reactivate: %+v", fleet)
	}

	// The full admin listing still sees the inactive row.
	all, err := q.ListAircraft(ctx)
	if err != nil {
		t.Fatalf("ListAircraft: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("admin listing size = %d, want 3", len(all))
	}
}

func TestMaxAircraftDisplayOrder(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	q := store.New(db)

	max, err := q.MaxAircraftDisplayOrder(ctx)
	if err != nil {
		t.Fatalf("MaxAircraftDisplayOrder: %v", err)
	}
	if max != 0 {
		t.Errorf("empty table max = %d, want 0", max)
	}

	createAircraft(t, q, "Cessna 172", "N738CP", 5, true)
	max, err = q.MaxAircraftDisplayOrder(ctx)
	if err != nil {
		t.Fatalf("MaxAircraftDisplayOrder: %v", err)
	}
	if max != 5 {
		t.Errorf("max = %d, want 5", max)
	}
}
