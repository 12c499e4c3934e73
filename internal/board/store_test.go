package board

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func collect(s *Store, status Status) []Task {
	return slices.Collect(s.ListByStatus(status))
}

func TestStore_Create(t *testing.T) {
	s := NewStore()

	for i, text := range []string{"A", "B", "C"} {
		before := s.Len()
		id, ok := s.Create(text)
		if !ok {
			t.Fatalf("expected Create(%q) to succeed", text)
		}
		if id != i {
			t.Errorf("expected id %d, got %d", i, id)
		}
		if s.Len() != before+1 {
			t.Errorf("expected len %d, got %d", before+1, s.Len())
		}
		task, found := s.Get(id)
		if !found {
			t.Fatalf("expected task %d to exist", id)
		}
		if task.Status != Todo {
			t.Errorf("expected new task to be Todo, got %v", task.Status)
		}
		if task.Text != text {
			t.Errorf("expected text %q, got %q", text, task.Text)
		}
	}
}

func TestStore_Create_IDsIncreaseAfterDelete(t *testing.T) {
	s := NewStore()
	s.Create("A")
	id1, _ := s.Create("B")
	s.Delete(id1)

	id2, ok := s.Create("C")
	if !ok {
		t.Fatal("expected Create to succeed")
	}
	if id2 <= id1 {
		t.Errorf("expected id greater than %d, got %d", id1, id2)
	}
}

func TestStore_Create_EmptyText(t *testing.T) {
	tests := []string{"", " ", "\t", "  \n "}

	for _, text := range tests {
		t.Run(strings.ReplaceAll(text, "\n", `\n`), func(t *testing.T) {
			s := NewStore()
			s.Create("keep")

			if _, ok := s.Create(text); ok {
				t.Errorf("expected Create(%q) to be ignored", text)
			}
			if s.Len() != 1 {
				t.Errorf("expected len 1, got %d", s.Len())
			}
			if s.NextID() != 1 {
				t.Errorf("expected next id to stay 1, got %d", s.NextID())
			}
		})
	}
}

func TestStore_Create_KeepsTextAsTyped(t *testing.T) {
	s := NewStore()
	id, _ := s.Create("  padded  ")
	task, _ := s.Get(id)
	if task.Text != "  padded  " {
		t.Errorf("expected text to be stored unchanged, got %q", task.Text)
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	s.Create("A")
	s.Create("B")
	s.Create("C")
	s.Create("D")

	if !s.Delete(1) {
		t.Fatal("expected Delete(1) to succeed")
	}

	got := s.Tasks()
	want := []string{"A", "C", "D"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i, text := range want {
		if got[i].Text != text {
			t.Errorf("tasks[%d] = %q, want %q", i, got[i].Text, text)
		}
	}
}

func TestStore_Delete_Missing(t *testing.T) {
	s := NewStore()
	s.Create("A")

	if s.Delete(5) {
		t.Error("expected Delete of missing id to report false")
	}
	if s.Len() != 1 {
		t.Errorf("expected len 1, got %d", s.Len())
	}
}

func TestStore_SetStatus(t *testing.T) {
	t.Run("legal path through in progress", func(t *testing.T) {
		s := NewStore()
		id, _ := s.Create("A")

		if !s.SetStatus(id, InProgress) {
			t.Fatal("expected Todo -> InProgress to succeed")
		}
		if !s.SetStatus(id, Done) {
			t.Fatal("expected InProgress -> Done to succeed")
		}
		task, _ := s.Get(id)
		if task.Status != Done {
			t.Errorf("expected Done, got %v", task.Status)
		}
	})

	t.Run("skipping a column is rejected", func(t *testing.T) {
		s := NewStore()
		id, _ := s.Create("A")

		if s.SetStatus(id, Done) {
			t.Error("expected Todo -> Done to be rejected")
		}
		task, _ := s.Get(id)
		if task.Status != Todo {
			t.Errorf("expected status to stay Todo, got %v", task.Status)
		}

		s.SetStatus(id, InProgress)
		s.SetStatus(id, Done)
		if s.SetStatus(id, Todo) {
			t.Error("expected Done -> Todo to be rejected")
		}
		task, _ = s.Get(id)
		if task.Status != Done {
			t.Errorf("expected status to stay Done, got %v", task.Status)
		}
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.Create("A")
		if s.SetStatus(99, InProgress) {
			t.Error("expected SetStatus on missing id to report false")
		}
	})

	t.Run("does not reorder tasks", func(t *testing.T) {
		s := NewStore()
		s.Create("A")
		s.Create("B")
		s.Create("C")
		s.SetStatus(0, InProgress)

		tasks := s.Tasks()
		for i, text := range []string{"A", "B", "C"} {
			if tasks[i].Text != text {
				t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Text, text)
			}
		}
	})
}

func TestStore_ListByStatus(t *testing.T) {
	s := NewStore()
	s.Create("A")
	s.Create("B")
	s.Create("C")
	s.Create("D")
	s.SetStatus(1, InProgress)
	s.SetStatus(3, InProgress)

	todo := collect(s, Todo)
	if len(todo) != 2 || todo[0].Text != "A" || todo[1].Text != "C" {
		t.Errorf("unexpected Todo column: %+v", todo)
	}

	inProgress := collect(s, InProgress)
	if len(inProgress) != 2 || inProgress[0].Text != "B" || inProgress[1].Text != "D" {
		t.Errorf("unexpected InProgress column: %+v", inProgress)
	}

	if done := collect(s, Done); len(done) != 0 {
		t.Errorf("expected empty Done column, got %+v", done)
	}
}

func TestStore_ListByStatus_Restartable(t *testing.T) {
	s := NewStore()
	s.Create("A")
	s.Create("B")

	seq := s.ListByStatus(Todo)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("expected both passes to yield 2 tasks, got %d and %d", len(first), len(second))
	}
}

func TestStore_ListByStatus_EarlyStop(t *testing.T) {
	s := NewStore()
	s.Create("A")
	s.Create("B")
	s.Create("C")

	var seen []string
	for task := range s.ListByStatus(Todo) {
		seen = append(seen, task.Text)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected to stop after 2 tasks, got %v", seen)
	}
}

func TestStore_Counts(t *testing.T) {
	s := NewStore()
	s.Create("A")
	s.Create("B")
	s.Create("C")
	s.SetStatus(0, InProgress)
	s.SetStatus(0, Done)
	s.SetStatus(1, InProgress)

	counts := s.Counts()
	if counts[Todo] != 1 || counts[InProgress] != 1 || counts[Done] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestStore_Tasks_ReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Create("A")

	tasks := s.Tasks()
	tasks[0].Text = "changed"

	task, _ := s.Get(0)
	if task.Text != "A" {
		t.Errorf("expected store to be unaffected, got %q", task.Text)
	}
}

func TestStore_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	s := NewStore(WithLogger(log))
	s.Create("")
	if buf.Len() != 0 {
		t.Errorf("expected empty input not to be logged, got: %s", buf.String())
	}

	s.SetStatus(3, Done)
	if !strings.Contains(buf.String(), "task not found") {
		t.Errorf("expected stale id to be logged, got: %s", buf.String())
	}
}
