package store

import (
	"errors"
	"math"
	"testing"

	"github.com/riordanpawley/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idsOf(tasks []domain.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

// newTestStore seeds a store with four tasks (ids 1..4)
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	seed := []struct {
		desc     string
		priority domain.Priority
		due      string
	}{
		{"Buy milk", domain.PriorityMedium, "2024-05-01"},
		{"Call dentist", domain.PriorityHigh, "2024-04-20"},
		{"Water plants", domain.PriorityLow, "2024-05-01"},
		{"Pay rent", domain.PriorityHigh, "2024-05-01"},
	}
	for _, task := range seed {
		_, err := s.Add(task.desc, task.priority, task.due)
		require.NoError(t, err)
	}
	return s
}

func TestStore_Add(t *testing.T) {
	s := New()

	id, err := s.Add("Buy milk", domain.PriorityMedium, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	task, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, domain.Task{
		ID:          1,
		Description: "Buy milk",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityMedium,
		DueDate:     "2024-05-01",
	}, task)
	assert.Equal(t, 2, s.NextID())
}

func TestStore_Add_IDsStrictlyIncrease(t *testing.T) {
	s := New()
	prev := 0
	for i := 0; i < 50; i++ {
		id, err := s.Add("task", domain.PriorityLow, "")
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}

	// removals never recycle ids
	require.True(t, s.Remove(prev))
	id, err := s.Add("after remove", domain.PriorityLow, "")
	require.NoError(t, err)
	assert.Equal(t, prev+1, id)
}

func TestStore_Add_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		description string
		priority    domain.Priority
		field       string
	}{
		{"empty description", "", domain.PriorityMedium, "description"},
		{"blank description", "   \t", domain.PriorityMedium, "description"},
		{"unknown priority", "Buy milk", domain.Priority(0), "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			before := s.List()
			nextBefore := s.NextID()

			id, err := s.Add(tt.description, tt.priority, "2024-01-01")

			require.Error(t, err)
			assert.Zero(t, id)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			var inputErr *domain.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)

			assert.Equal(t, before, s.List(), "failed add must not change state")
			assert.Equal(t, nextBefore, s.NextID())
		})
	}
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.Remove(2))
	assert.Equal(t, []int{1, 3, 4}, idsOf(s.List()))
	assert.Equal(t, 5, s.NextID(), "remove must not touch the counter")

	assert.False(t, s.Remove(2), "second remove of the same id")
}

func TestStore_NotFoundLeavesStateUnchanged(t *testing.T) {
	s := newTestStore(t)
	before := s.List()

	assert.False(t, s.Remove(99))
	assert.False(t, s.SetStatus(99, domain.StatusDone))
	_, ok := s.Get(99)
	assert.False(t, ok)

	assert.Equal(t, before, s.List())
}

func TestStore_SetStatus(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.SetStatus(3, domain.StatusInProgress))
	task, _ := s.Get(3)
	assert.Equal(t, domain.StatusInProgress, task.Status)

	assert.False(t, s.SetStatus(3, domain.Status(42)), "invalid status is rejected")
	task, _ = s.Get(3)
	assert.Equal(t, domain.StatusInProgress, task.Status)
}

func TestStore_List(t *testing.T) {
	t.Run("empty store returns empty slice", func(t *testing.T) {
		list := New().List()
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("insertion order", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, idsOf(newTestStore(t).List()))
	})

	t.Run("returns a copy", func(t *testing.T) {
		s := newTestStore(t)
		list := s.List()
		list[0].Description = "mutated"
		list[0].Status = domain.StatusDone

		task, _ := s.Get(1)
		assert.Equal(t, "Buy milk", task.Description)
		assert.Equal(t, domain.StatusTodo, task.Status)
	})
}

func TestStore_SortByPriorityDescending(t *testing.T) {
	s := newTestStore(t)

	s.SortByPriorityDescending()

	// High ties (2, 4) keep insertion order
	assert.Equal(t, []int{2, 4, 1, 3}, idsOf(s.List()))
}

func TestStore_SortByDueDateAscending(t *testing.T) {
	s := newTestStore(t)

	s.SortByDueDateAscending()

	assert.Equal(t, []int{2, 1, 3, 4}, idsOf(s.List()))
}

func TestStore_SortsAreStable(t *testing.T) {
	s := newTestStore(t)

	s.SortByPriorityDescending()
	s.SortByDueDateAscending()

	// tasks due 2024-05-01 (4 High, 1 Medium, 3 Low) stay priority-descending
	assert.Equal(t, []int{2, 4, 1, 3}, idsOf(s.List()))
}

func TestStore_FindByKeyword(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, []int{1, 2, 3, 4}, idsOf(s.FindByKeyword("")))
	assert.Equal(t, []int{1}, idsOf(s.FindByKeyword("milk")))
	assert.Empty(t, s.FindByKeyword("Milk"), "search is case-sensitive")
	assert.Equal(t, []int{2, 3, 4}, idsOf(s.FindByKeyword("a")))

	none := s.FindByKeyword("xyz")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_FilterByStatus(t *testing.T) {
	s := newTestStore(t)
	s.SetStatus(1, domain.StatusDone)
	s.SetStatus(4, domain.StatusDone)
	s.SetStatus(2, domain.StatusInProgress)

	assert.Equal(t, []int{1, 4}, idsOf(s.FilterByStatus(domain.StatusDone)))
	assert.Equal(t, []int{2}, idsOf(s.FilterByStatus(domain.StatusInProgress)))
	assert.Equal(t, []int{3}, idsOf(s.FilterByStatus(domain.StatusTodo)))
	assert.Empty(t, s.FilterByStatus(domain.Status(0)))
}

func TestStore_Query(t *testing.T) {
	s := newTestStore(t)
	s.SetStatus(4, domain.StatusDone)

	got := s.Query(domain.Filter{Status: domain.StatusTodo, Keyword: "a"})

	assert.Equal(t, []int{2, 3}, idsOf(got))
}

func TestStore_Replace(t *testing.T) {
	t.Run("advances counter past loaded ids", func(t *testing.T) {
		s := New()
		s.Replace([]domain.Task{
			{ID: 7, Description: "a", Status: domain.StatusTodo, Priority: domain.PriorityLow},
			{ID: 3, Description: "b", Status: domain.StatusDone, Priority: domain.PriorityHigh},
		}, 1)

		assert.Equal(t, []int{7, 3}, idsOf(s.List()))
		assert.Equal(t, 8, s.NextID())

		id, err := s.Add("c", domain.PriorityMedium, "")
		require.NoError(t, err)
		assert.Equal(t, 8, id)
	})

	t.Run("counter never moves backwards", func(t *testing.T) {
		s := newTestStore(t) // next id 5
		s.Replace([]domain.Task{{ID: 1, Description: "a", Status: domain.StatusTodo, Priority: domain.PriorityLow}}, 2)

		assert.Equal(t, 5, s.NextID())
		assert.Equal(t, 1, s.Len())
	})

	t.Run("explicit next id wins when larger", func(t *testing.T) {
		s := New()
		s.Replace(nil, 12)

		assert.Equal(t, 12, s.NextID())
		assert.Empty(t, s.List())
	})

	t.Run("largest id pins the counter instead of wrapping", func(t *testing.T) {
		s := New()
		s.Replace([]domain.Task{{ID: math.MaxInt, Description: "a", Status: domain.StatusTodo, Priority: domain.PriorityLow}}, 1)

		assert.Equal(t, math.MaxInt, s.NextID())

		_, err := s.Add("b", domain.PriorityLow, "")
		assert.Error(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("copies the input", func(t *testing.T) {
		s := New()
		in := []domain.Task{{ID: 1, Description: "a", Status: domain.StatusTodo, Priority: domain.PriorityLow}}
		s.Replace(in, 2)
		in[0].Description = "mutated"

		task, _ := s.Get(1)
		assert.Equal(t, "a", task.Description)
	})
}
