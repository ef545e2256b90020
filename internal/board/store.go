package board

// Store is the ordered task collection for one session.
// The zero value is an empty store ready to use.
type Store struct {
	tasks []Task
}

// NewStore creates a store holding tasks in the given order.
func NewStore(tasks ...Task) *Store {
	s := &Store{}
	s.tasks = append(s.tasks, tasks...)
	return s
}

// LoadAll replaces the whole collection.
// Loaded tasks are never recent.
func (s *Store) LoadAll(tasks []Task) {
	loaded := make([]Task, len(tasks))
	for i, t := range tasks {
		t.IsRecent = false
		loaded[i] = t
	}
	s.tasks = loaded
}

// InsertAtHead prepends a task. The caller must make sure its ID is not
// already present.
func (s *Store) InsertAtHead(task Task) {
	s.tasks = append([]Task{task}, s.tasks...)
}

// Update sets the editable fields of the task with the given ID and clears
// its recent flag. Returns false if no such task exists.
func (s *Store) Update(id int, title, description string, completed bool) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Title = title
	s.tasks[i].Description = description
	s.tasks[i].Completed = completed
	s.tasks[i].IsRecent = false
	return true
}

// Remove deletes the task with the given ID. Returns false if absent.
func (s *Store) Remove(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return true
}

// RemoveWhere deletes every task matching pred and returns how many were
// removed. Relative order of the survivors is kept.
func (s *Store) RemoveWhere(pred func(Task) bool) int {
	kept := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !pred(t) {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	return removed
}

// List returns a copy of the collection in board order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given ID.
func (s *Store) Get(id int) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Has reports whether a task with the given ID exists.
func (s *Store) Has(id int) bool {
	return s.indexOf(id) >= 0
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// MaxID returns the largest task ID, or 0 for an empty store.
func (s *Store) MaxID() int {
	highest := 0
	for _, t := range s.tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
