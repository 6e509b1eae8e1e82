package services

import (
	"context"
	"errors"
	"projecthub/api/types"
	"projecthub/models"
	"testing"
)

func TestTask_CreateDefaults(t *testing.T) {
	f := newProjectFixture(t)
	task := mustTask(t, f.tasks, types.TaskCreateRequest{Title: "Write docs"})

	if task.Status != models.TaskTodo || task.Priority != models.PriorityMedium {
		t.Fatalf("unexpected defaults: status=%q priority=%q", task.Status, task.Priority)
	}
	if task.Assignee != nil || task.Project != nil || task.DueDate != nil {
		t.Fatalf("optional relations should be nil: %+v", task)
	}
}

func TestTask_CreateRejectsDanglingReferences(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	_, err := f.tasks.Create(ctx, &types.TaskCreateRequest{Title: "x", AssigneeID: ptr(uint(42))})
	if !errors.Is(err, ErrContactMissing) {
		t.Fatalf("expected ErrContactMissing, got %v", err)
	}
	_, err = f.tasks.Create(ctx, &types.TaskCreateRequest{Title: "x", ProjectID: ptr(uint(42))})
	if !errors.Is(err, ErrProjectMissing) {
		t.Fatalf("expected ErrProjectMissing, got %v", err)
	}
	if n := countRows(t, f.db, &models.Task{}); n != 0 {
		t.Fatalf("expected no tasks, got %d", n)
	}
}

func TestTask_ListOrdersByPriorityRank(t *testing.T) {
	f := newProjectFixture(t)
	for _, p := range []models.TaskPriority{models.PriorityLow, models.PriorityHigh, models.PriorityMedium} {
		mustTask(t, f.tasks, types.TaskCreateRequest{Title: string(p), Priority: p, DueDate: date("2024-05-01")})
	}

	tasks, err := f.tasks.List(context.Background(), TaskFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []models.TaskPriority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, p := range want {
		if tasks[i].Priority != p {
			t.Fatalf("position %d: want %s, got %s", i, p, tasks[i].Priority)
		}
	}
}

func TestTask_ListFilters(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	project := mustProject(t, f.projects, "Filtered")
	alice := mustContact(t, f.contacts, "Alice", "alice@example.com")

	mustTask(t, f.tasks, types.TaskCreateRequest{Title: "mine", AssigneeID: &alice.ID, ProjectID: &project.ID, Status: models.TaskReview})
	mustTask(t, f.tasks, types.TaskCreateRequest{Title: "orphan", Priority: models.PriorityUrgent})

	cases := []struct {
		name   string
		filter TaskFilter
		want   int
	}{
		{"all", TaskFilter{}, 2},
		{"status", TaskFilter{Status: models.TaskReview}, 1},
		{"priority", TaskFilter{Priority: models.PriorityUrgent}, 1},
		{"assignee", TaskFilter{AssigneeID: alice.ID}, 1},
		{"project", TaskFilter{ProjectID: project.ID}, 1},
		{"no match", TaskFilter{Status: models.TaskDone}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tasks, err := f.tasks.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(tasks) != tc.want {
				t.Fatalf("want %d tasks, got %d", tc.want, len(tasks))
			}
		})
	}

	byAssignee, err := f.tasks.FindByAssignee(ctx, alice.ID)
	if err != nil || len(byAssignee) != 1 {
		t.Fatalf("FindByAssignee: got %d, %v", len(byAssignee), err)
	}
	if a := byAssignee[0].Assignee; a == nil || a.Email != "alice@example.com" {
		t.Fatalf("assignee not loaded: %+v", a)
	}
	if p := byAssignee[0].Project; p == nil || p.Name != "Filtered" {
		t.Fatalf("project not loaded: %+v", p)
	}

	byProject, err := f.tasks.FindByProject(ctx, project.ID)
	if err != nil || len(byProject) != 1 || byProject[0].Title != "mine" {
		t.Fatalf("FindByProject: got %+v, %v", byProject, err)
	}
}

func TestTask_UpdateClearsNullableFields(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	bob := mustContact(t, f.contacts, "Bob", "bob@example.com")
	task := mustTask(t, f.tasks, types.TaskCreateRequest{Title: "dated", DueDate: date("2024-01-15"), AssigneeID: &bob.ID})

	updated, err := f.tasks.Update(ctx, task.ID, &types.TaskUpdateRequest{
		Title:      ptr("renamed"),
		DueDate:    types.Nullable[types.Date]{Set: true},
		AssigneeID: types.Nullable[uint]{Set: true},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "renamed" || updated.DueDate != nil || updated.AssigneeID != nil || updated.Assignee != nil {
		t.Fatalf("unexpected task after update: %+v", updated)
	}
}

func TestTask_UpdateLeavesAbsentFields(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	task := mustTask(t, f.tasks, types.TaskCreateRequest{Title: "keep", DueDate: date("2024-01-15"), Priority: models.PriorityHigh})

	updated, err := f.tasks.Update(ctx, task.ID, &types.TaskUpdateRequest{Status: ptr(models.TaskInProgress)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DueDate == nil || updated.Priority != models.PriorityHigh || updated.Status != models.TaskInProgress {
		t.Fatalf("unexpected task after update: %+v", updated)
	}

	_, err = f.tasks.Update(ctx, task.ID, &types.TaskUpdateRequest{
		ProjectID: types.Nullable[uint]{Set: true, Valid: true, Value: 77},
	})
	if !errors.Is(err, ErrProjectMissing) {
		t.Fatalf("expected ErrProjectMissing, got %v", err)
	}
}

func TestTask_UpdateStatus(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	task := mustTask(t, f.tasks, types.TaskCreateRequest{Title: "ship"})

	updated, err := f.tasks.UpdateStatus(ctx, task.ID, models.TaskDone)
	if err != nil || updated == nil || updated.Status != models.TaskDone {
		t.Fatalf("UpdateStatus: got %+v, %v", updated, err)
	}

	missing, err := f.tasks.UpdateStatus(ctx, 999, models.TaskDone)
	if err != nil || missing != nil {
		t.Fatalf("UpdateStatus unknown: got %v, %v", missing, err)
	}
}

func TestTask_GetByIDAndRemove(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	project, err := f.projects.Create(ctx, &types.ProjectCreateRequest{Name: "Docs", Description: ptr("all the docs")})
	if err != nil {
		t.Fatalf("Create project: %v", err)
	}
	task := mustTask(t, f.tasks, types.TaskCreateRequest{Title: "read", ProjectID: &project.ID})

	got, err := f.tasks.GetByID(ctx, task.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got %v, %v", got, err)
	}
	if got.Project == nil || got.Project.Description == nil || *got.Project.Description != "all the docs" {
		t.Fatalf("project description not loaded: %+v", got.Project)
	}

	removed, err := f.tasks.Remove(ctx, task.ID)
	if err != nil || !removed {
		t.Fatalf("Remove: got %v, %v", removed, err)
	}
	removed, err = f.tasks.Remove(ctx, task.ID)
	if err != nil || removed {
		t.Fatalf("second Remove: got %v, %v", removed, err)
	}
	if got, _ := f.tasks.GetByID(ctx, task.ID); got != nil {
		t.Fatalf("task still present")
	}
}
