package db

import (
	"testing"
	"time"

	"github.com/mkaganek/tick/internal/models"
	"github.com/mkaganek/tick/internal/timer"
)

func newTestDB(t *testing.T) {
	t.Helper()
	if err := Initialize(":memory:"); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() {
		Close()
		DB = nil
	})
}

var base = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestActiveTimerRoundTrip(t *testing.T) {
	newTestDB(t)

	tags, err := FindOrCreateTags([]string{"deep", "writing"})
	if err != nil {
		t.Fatal(err)
	}
	row := models.ActiveTimer{
		ID:          "t-1",
		UserID:      "u",
		Description: "Write report",
		StartTime:   base,
		IsRunning:   true,
	}
	if err := InsertActiveTimer(row, TagIDs(tags)); err != nil {
		t.Fatal(err)
	}

	rows, rowTags, err := ListActiveTimers("u")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Description != "Write report" || !rows[0].IsRunning {
		t.Errorf("unexpected row: %+v", rows[0])
	}
	if len(rowTags["t-1"]) != 2 {
		t.Errorf("expected 2 tag associations, got %v", rowTags["t-1"])
	}

	// Rows belong to their user only.
	other, _, err := ListActiveTimers("someone-else")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Errorf("row leaked across users: %v", other)
	}
}

func TestUpdateTimerProgress(t *testing.T) {
	newTestDB(t)
	InsertActiveTimer(models.ActiveTimer{ID: "t-1", UserID: "u", Description: "x", StartTime: base, IsRunning: true}, nil)

	if err := UpdateTimerProgress("t-1", 30000, false, 5000); err != nil {
		t.Fatal(err)
	}

	rows, _, _ := ListActiveTimers("u")
	if rows[0].ElapsedMS != 30000 || rows[0].IsRunning || rows[0].PausedMS != 5000 {
		t.Errorf("progress not written: %+v", rows[0])
	}
}

func TestUpdateActiveTimerWritesZeroValues(t *testing.T) {
	newTestDB(t)
	project, _ := FindOrCreateProject("u", "acme")
	InsertActiveTimer(models.ActiveTimer{
		ID: "t-1", UserID: "u", Description: "x", StartTime: base,
		IsRunning: true, ProjectID: &project.ID,
	}, nil)

	// Clearing the project must persist the NULL, not skip the zero value.
	if err := UpdateActiveTimer(models.ActiveTimer{
		ID: "t-1", Description: "x", ProjectID: nil, IsRunning: false,
	}); err != nil {
		t.Fatal(err)
	}

	rows, _, _ := ListActiveTimers("u")
	if rows[0].ProjectID != nil {
		t.Errorf("project not cleared: %v", *rows[0].ProjectID)
	}
	if rows[0].IsRunning {
		t.Error("running flag not cleared")
	}
}

func TestDeleteActiveTimerRemovesTagRows(t *testing.T) {
	newTestDB(t)
	tags, _ := FindOrCreateTags([]string{"a"})
	InsertActiveTimer(models.ActiveTimer{ID: "t-1", UserID: "u", Description: "x", StartTime: base}, TagIDs(tags))

	if err := DeleteActiveTimer("t-1"); err != nil {
		t.Fatal(err)
	}

	var count int64
	DB.Model(&models.ActiveTimerTag{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no tag associations left, got %d", count)
	}
}

func TestAddTimerTagIdempotent(t *testing.T) {
	newTestDB(t)
	InsertActiveTimer(models.ActiveTimer{ID: "t-1", UserID: "u", Description: "x", StartTime: base}, nil)

	if err := AddTimerTag("t-1", 7); err != nil {
		t.Fatal(err)
	}
	if err := AddTimerTag("t-1", 7); err != nil {
		t.Fatalf("duplicate association should be a no-op: %v", err)
	}

	var count int64
	DB.Model(&models.ActiveTimerTag{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 association, got %d", count)
	}
}

func TestCompletionSinkWritesActivity(t *testing.T) {
	newTestDB(t)
	tags, _ := FindOrCreateTags([]string{"deep"})
	project, _ := FindOrCreateProject("u", "acme")

	sink := ActivityRecorder{UserID: "u"}
	err := sink.Complete(timer.Snapshot{
		ID:        "t-1",
		Name:      "Write report",
		Duration:  45 * time.Second,
		StartedAt: base,
		EndedAt:   base.Add(45 * time.Second),
		ProjectID: &project.ID,
		TagIDs:    TagIDs(tags),
	})
	if err != nil {
		t.Fatal(err)
	}

	activities, err := ListActivities("u", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	a := activities[0]
	if a.DurationMS != 45000 {
		t.Errorf("expected 45000ms, got %d", a.DurationMS)
	}
	if !a.EndedAt.Equal(base.Add(45 * time.Second)) {
		t.Errorf("unexpected end: %v", a.EndedAt)
	}
	if len(a.Tags) != 1 || a.Tags[0].Name != "deep" {
		t.Errorf("tags not written: %v", a.Tags)
	}
	if a.Project == nil || a.Project.Name != "acme" {
		t.Errorf("project not preloaded: %v", a.Project)
	}
}

func TestSumDurations(t *testing.T) {
	newTestDB(t)
	sink := ActivityRecorder{UserID: "u"}
	sink.Complete(timer.Snapshot{Name: "a", Duration: 30 * time.Second, StartedAt: base, EndedAt: base.Add(30 * time.Second)})
	sink.Complete(timer.Snapshot{Name: "b", Duration: 15 * time.Second, StartedAt: base.Add(time.Hour), EndedAt: base.Add(time.Hour + 15*time.Second)})

	total, err := SumDurations("u", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if total != 45000 {
		t.Errorf("expected 45000, got %d", total)
	}

	// Range bound excludes the second activity.
	to := base.Add(30 * time.Minute)
	total, err = SumDurations("u", nil, &to)
	if err != nil {
		t.Fatal(err)
	}
	if total != 30000 {
		t.Errorf("expected 30000 in range, got %d", total)
	}

	// Empty range sums to zero, not an error.
	from := base.Add(240 * time.Hour)
	total, err = SumDurations("u", &from, nil)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("expected 0, got %d", total)
	}
}

func TestFindOrCreateProjectReusesRow(t *testing.T) {
	newTestDB(t)
	p1, err := FindOrCreateProject("u", "acme")
	if err != nil {
		t.Fatal(err)
	}
	p2, err := FindOrCreateProject("u", "acme")
	if err != nil {
		t.Fatal(err)
	}
	if p1.ID != p2.ID {
		t.Errorf("duplicate project created: %d vs %d", p1.ID, p2.ID)
	}

	// Same name under another user is a separate project.
	p3, err := FindOrCreateProject("v", "acme")
	if err != nil {
		t.Fatal(err)
	}
	if p3.ID == p1.ID {
		t.Error("projects shared across users")
	}
}

func TestArchiveProject(t *testing.T) {
	newTestDB(t)
	FindOrCreateProject("u", "old")
	FindOrCreateProject("u", "current")

	if _, err := ArchiveProject("u", "old"); err != nil {
		t.Fatal(err)
	}

	active, _ := ListProjects("u", false)
	if len(active) != 1 || active[0].Name != "current" {
		t.Errorf("unexpected active projects: %v", active)
	}
	all, _ := ListProjects("u", true)
	if len(all) != 2 {
		t.Errorf("expected 2 projects total, got %d", len(all))
	}
}

func TestGatewayImplementsStore(t *testing.T) {
	newTestDB(t)
	gw := Gateway{}

	if err := gw.InsertTimer(models.ActiveTimer{ID: "t-1", UserID: "u", Description: "x", StartTime: base, IsRunning: true}, nil); err != nil {
		t.Fatal(err)
	}
	if err := gw.UpdateProgress("t-1", 1000, true, 0); err != nil {
		t.Fatal(err)
	}
	rows, _, err := gw.ListActive("u")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ElapsedMS != 1000 {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if err := gw.DeleteTimer("t-1"); err != nil {
		t.Fatal(err)
	}
}
