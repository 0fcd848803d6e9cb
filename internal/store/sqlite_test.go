package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"cpusched/internal/requests"
	"cpusched/internal/responses"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRun(createdAt time.Time) *Run {
	quantum := 2
	return &Run{
		Algorithm:   "rr",
		TimeQuantum: 2,
		Request: requests.ScheduleRequests{
			Jobs: []requests.Job{
				{ProcessId: "P1", ArrivalTime: 0, BurstTime: 4},
				{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3},
			},
			TimeQuantum: &quantum,
		},
		Response: responses.ScheduleResponse{
			Algorithm: "rr",
			TotalTime: 7,
			Timeline: []responses.SegmentResponse{
				{ProcessId: "P1", Start: 0, End: 2},
				{ProcessId: "P2", Start: 2, End: 4},
				{ProcessId: "P1", Start: 4, End: 6},
				{ProcessId: "P2", Start: 6, End: 7},
			},
		},
		CreatedAt: createdAt,
	}
}

func TestCreateAndGetRun(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	run := sampleRun(time.Time{})
	if err := st.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if run.ID == "" || run.CreatedAt.IsZero() {
		t.Fatalf("id/created_at not assigned: %+v", run)
	}

	got, err := st.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got == nil {
		t.Fatal("GetRun returned nil")
	}
	if got.Algorithm != "rr" || got.TimeQuantum != 2 {
		t.Errorf("algorithm/quantum = %s/%d", got.Algorithm, got.TimeQuantum)
	}
	if len(got.Request.Jobs) != 2 || got.Request.TimeQuantum == nil || *got.Request.TimeQuantum != 2 {
		t.Errorf("request = %+v", got.Request)
	}
	if got.Response.TotalTime != 7 || len(got.Response.Timeline) != 4 {
		t.Errorf("response = %+v", got.Response)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, run.CreatedAt)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	st := testStore(t)
	got, err := st.GetRun(context.Background(), "run_missing")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestListRuns(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		run := sampleRun(base.Add(time.Duration(i) * time.Minute))
		run.ID = fmt.Sprintf("run_%d", i)
		if err := st.CreateRun(ctx, run); err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
	}

	runs, total, err := st.ListRuns(ctx, 2, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(runs) != 2 || runs[0].ID != "run_4" || runs[1].ID != "run_3" {
		t.Errorf("first page = %v", runIDs(runs))
	}

	runs, _, err = st.ListRuns(ctx, 0, 4)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run_0" {
		t.Errorf("last page = %v", runIDs(runs))
	}
}

func TestCreateRun_DuplicateID(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	run := sampleRun(time.Now())
	run.ID = "run_same"
	if err := st.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := st.CreateRun(ctx, run); err == nil {
		t.Error("expected error for duplicate id")
	}
}

func runIDs(runs []*Run) []string {
	ids := make([]string, len(runs))
	for i, r := range runs {
		ids[i] = r.ID
	}
	return ids
}

func TestGetRun_CorruptCreatedAt(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	run := sampleRun(time.Time{})
	if err := st.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if _, err := st.db.ExecContext(ctx, `UPDATE runs SET created_at = 'yesterday' WHERE id = ?`, run.ID); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	if got, err := st.GetRun(ctx, run.ID); err == nil {
		t.Errorf("GetRun = %+v, want error", got)
	}
	if _, _, err := st.ListRuns(ctx, 10, 0); err == nil {
		t.Error("ListRuns: expected error")
	}
}
