package tasksrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/sdk/logger"
)

type recordingStorer struct {
	calls   int
	created tasksrepo.CreateTask
	updated tasksrepo.UpdateTask
	filter  tasksrepo.QueryFilter
	err     error
}

func (s *recordingStorer) Create(_ context.Context, ownerID int64, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	s.calls++
	s.created = input
	return tasksrepo.Task{ID: 1, UserID: ownerID, Title: input.Title, Priority: input.Priority, Status: input.Status}, s.err
}

func (s *recordingStorer) Update(_ context.Context, ownerID, taskID int64, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	s.calls++
	s.updated = input
	return tasksrepo.Task{ID: taskID, UserID: ownerID}, s.err
}

func (s *recordingStorer) Delete(_ context.Context, _, _ int64) error {
	s.calls++
	return s.err
}

func (s *recordingStorer) Query(_ context.Context, _ int64, filter tasksrepo.QueryFilter) ([]tasksrepo.Task, error) {
	s.calls++
	s.filter = filter
	return []tasksrepo.Task{}, s.err
}

func (s *recordingStorer) Search(_ context.Context, _ int64, _ string) ([]tasksrepo.Task, error) {
	s.calls++
	return []tasksrepo.Task{}, s.err
}

func ptr[T any](v T) *T { return &v }

func TestRepository_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input tasksrepo.CreateTask
		ok    bool
	}{
		{name: "valid", input: tasksrepo.CreateTask{Title: "buy milk", Priority: tasksrepo.PriorityLow}, ok: true},
		{name: "valid with status", input: tasksrepo.CreateTask{Title: "buy milk", Priority: tasksrepo.PriorityHigh, Status: ptr(tasksrepo.StatusInProgress)}, ok: true},
		{name: "missing title", input: tasksrepo.CreateTask{Priority: tasksrepo.PriorityLow}},
		{name: "blank title", input: tasksrepo.CreateTask{Title: "   ", Priority: tasksrepo.PriorityLow}},
		{name: "missing priority", input: tasksrepo.CreateTask{Title: "buy milk"}},
		{name: "unknown priority", input: tasksrepo.CreateTask{Title: "buy milk", Priority: "urgent"}},
		{name: "unknown status", input: tasksrepo.CreateTask{Title: "buy milk", Priority: tasksrepo.PriorityLow, Status: ptr(tasksrepo.Status("done"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storer := &recordingStorer{}
			repo := tasksrepo.NewRepository(logger.NewDiscard(), storer)

			_, err := repo.Create(context.Background(), 1, tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("Create() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tasksrepo.ErrValidation) {
				t.Fatalf("Create() error = %v, want ErrValidation", err)
			}
			if storer.calls != 0 {
				t.Fatal("storer called for invalid input")
			}
		})
	}
}

func TestRepository_Update_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input tasksrepo.UpdateTask
		ok    bool
	}{
		{name: "single field", input: tasksrepo.UpdateTask{Status: ptr(tasksrepo.StatusCompleted)}, ok: true},
		{name: "empty", input: tasksrepo.UpdateTask{}},
		{name: "blank title", input: tasksrepo.UpdateTask{Title: ptr("")}},
		{name: "unknown priority", input: tasksrepo.UpdateTask{Priority: ptr(tasksrepo.Priority("urgent"))}},
		{name: "unknown status", input: tasksrepo.UpdateTask{Status: ptr(tasksrepo.Status("done"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storer := &recordingStorer{}
			repo := tasksrepo.NewRepository(logger.NewDiscard(), storer)

			_, err := repo.Update(context.Background(), 1, 9, tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("Update() error = %v", err)
				}
				if storer.updated.Title != nil {
					t.Fatal("title forwarded although not supplied")
				}
				return
			}
			if !errors.Is(err, tasksrepo.ErrValidation) {
				t.Fatalf("Update() error = %v, want ErrValidation", err)
			}
			if storer.calls != 0 {
				t.Fatal("storer called for invalid input")
			}
		})
	}
}

func TestRepository_NotFoundPropagates(t *testing.T) {
	storer := &recordingStorer{err: tasksrepo.ErrNotFound}
	repo := tasksrepo.NewRepository(logger.NewDiscard(), storer)
	ctx := context.Background()

	if _, err := repo.Update(ctx, 1, 9, tasksrepo.UpdateTask{Title: ptr("x")}); !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, 1, 9); !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_ListIsUnfilteredFilter(t *testing.T) {
	storer := &recordingStorer{}
	repo := tasksrepo.NewRepository(logger.NewDiscard(), storer)

	if _, err := repo.List(context.Background(), 1); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if storer.filter != (tasksrepo.QueryFilter{}) {
		t.Fatalf("List used filter %+v", storer.filter)
	}
}

func TestRepository_Search_RequiresKeyword(t *testing.T) {
	storer := &recordingStorer{}
	repo := tasksrepo.NewRepository(logger.NewDiscard(), storer)

	for _, kw := range []string{"", "  "} {
		if _, err := repo.Search(context.Background(), 1, kw); !errors.Is(err, tasksrepo.ErrValidation) {
			t.Errorf("Search(%q) error = %v, want ErrValidation", kw, err)
		}
	}
	if storer.calls != 0 {
		t.Fatal("storer called for blank keyword")
	}
}

func TestParseStatusAndPriority(t *testing.T) {
	if _, err := tasksrepo.ParseStatus("in-progress"); err != nil {
		t.Errorf("ParseStatus(in-progress) error = %v", err)
	}
	if _, err := tasksrepo.ParseStatus("In-Progress"); !errors.Is(err, tasksrepo.ErrValidation) {
		t.Errorf("ParseStatus is case sensitive, got %v", err)
	}
	if _, err := tasksrepo.ParsePriority("medium"); err != nil {
		t.Errorf("ParsePriority(medium) error = %v", err)
	}
	if _, err := tasksrepo.ParsePriority(""); !errors.Is(err, tasksrepo.ErrValidation) {
		t.Errorf("ParsePriority(\"\") error = %v, want ErrValidation", err)
	}
}
