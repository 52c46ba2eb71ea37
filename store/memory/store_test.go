package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/kofasentinel/atlas/store/memory"
	"github.com/kofasentinel/atlas/types"
)

func TestInsertionOrderPreserved(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.InsertProfile(ctx, types.Profile{ProfileID: id, Identifier: id}); err != nil {
			t.Fatalf("InsertProfile %s: %v", id, err)
		}
	}

	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("ListProfiles: %v", err)
	}
	for i, want := range []string{"a", "b", "c"} {
		if profiles[i].ProfileID != want {
			t.Fatalf("insertion order lost: %+v", profiles)
		}
	}
}

func TestDeleteProfile_CascadesLogs(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	if err := s.InsertProfile(ctx, types.Profile{ProfileID: "p1", Identifier: "08123456789"}); err != nil {
		t.Fatalf("InsertProfile: %v", err)
	}
	if err := s.InsertAccessLog(ctx, types.AccessLog{LogID: "l1", ProfileID: "p1", Status: types.StatusInside}); err != nil {
		t.Fatalf("InsertAccessLog: %v", err)
	}
	if err := s.InsertAccessLog(ctx, types.AccessLog{LogID: "l2", ProfileID: "other", Status: types.StatusInside}); err != nil {
		t.Fatalf("InsertAccessLog: %v", err)
	}

	if err := s.DeleteProfile(ctx, "p1"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}

	if _, ok, _ := s.GetProfile(ctx, "p1"); ok {
		t.Error("profile still present after delete")
	}
	logs, err := s.ListAccessLogs(ctx)
	if err != nil {
		t.Fatalf("ListAccessLogs: %v", err)
	}
	if len(logs) != 1 || logs[0].LogID != "l2" {
		t.Fatalf("cascade wrong, remaining logs: %+v", logs)
	}
}

func TestListCopiesOut(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	if err := s.InsertProfile(ctx, types.Profile{ProfileID: "p1", Name: "John Doe", Identifier: "08123456789"}); err != nil {
		t.Fatalf("InsertProfile: %v", err)
	}

	first, _ := s.ListProfiles(ctx)
	first[0].Name = "mutated"

	second, _ := s.ListProfiles(ctx)
	if second[0].Name != "John Doe" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestUpdateAccessLog(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	entry := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if err := s.InsertAccessLog(ctx, types.AccessLog{LogID: "l1", ProfileID: "p1", EntryTime: entry, Status: types.StatusInside}); err != nil {
		t.Fatalf("InsertAccessLog: %v", err)
	}

	exit := entry.Add(time.Hour)
	if err := s.UpdateAccessLog(ctx, types.AccessLog{LogID: "l1", ProfileID: "p1", EntryTime: entry, ExitTime: &exit, Status: types.StatusExited}); err != nil {
		t.Fatalf("UpdateAccessLog: %v", err)
	}

	got, ok, err := s.GetAccessLog(ctx, "l1")
	if err != nil || !ok {
		t.Fatalf("GetAccessLog: ok=%v err=%v", ok, err)
	}
	if got.Status != types.StatusExited || got.ExitTime == nil || !got.ExitTime.Equal(exit) {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestBlacklistEventsFilteredByProfile(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	events := []types.BlacklistEvent{
		{EventID: "e1", ProfileID: "p1", Blacklisted: true, Reason: "first"},
		{EventID: "e2", ProfileID: "p2", Blacklisted: true},
		{EventID: "e3", ProfileID: "p1", Blacklisted: false, Reason: "second"},
	}
	for _, ev := range events {
		if err := s.InsertBlacklistEvent(ctx, ev); err != nil {
			t.Fatalf("InsertBlacklistEvent: %v", err)
		}
	}

	got, err := s.ListBlacklistEvents(ctx, "p1")
	if err != nil {
		t.Fatalf("ListBlacklistEvents: %v", err)
	}
	if len(got) != 2 || got[0].EventID != "e1" || got[1].EventID != "e3" {
		t.Fatalf("wrong trail: %+v", got)
	}
}
