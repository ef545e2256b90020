package board

import "strings"

// Session is the whole board state for one run: the store, the active
// filter and search query, the task form and the card-area status.
// It is not safe for concurrent use; callers serialize access the way the
// terminal UI's update loop does.
type Session struct {
	Store  *Store
	Filter Filter
	Query  string
	Form   Form

	// Notice is a one-line message shown outside the card area, such as the
	// result of a create whose form has since been closed.
	Notice string

	status  string
	loading bool
	formSeq int
}

// NewSession returns an empty session with the default filter.
func NewSession() *Session {
	return &Session{Store: &Store{}, Filter: FilterAll}
}

// Loading reports whether an initial fetch is in flight.
func (s *Session) Loading() bool {
	return s.loading
}

// BeginLoad marks a fetch as started. The card area shows the loading line
// until the fetch completes or another action repaints the list.
func (s *Session) BeginLoad() {
	s.loading = true
	s.status = MsgLoading
}

// LoadSucceeded replaces the store with freshly fetched tasks.
// Tasks created earlier in the session are discarded.
func (s *Session) LoadSucceeded(tasks []Task) {
	s.loading = false
	s.status = ""
	s.Store.LoadAll(tasks)
}

// LoadFailed shows message in the card area and keeps the store as it was.
func (s *Session) LoadFailed(message string) {
	s.loading = false
	if message == "" {
		message = MsgLoadFailed
	}
	s.status = message
}

// SetFilter changes the active filter.
func (s *Session) SetFilter(f Filter) {
	s.Filter = f
	s.status = ""
}

// SetQuery changes the search query.
func (s *Session) SetQuery(q string) {
	s.Query = q
	s.status = ""
}

// ResetFilters restores the default filter and clears the search query.
func (s *Session) ResetFilters() {
	s.Filter = FilterAll
	s.Query = ""
	s.status = ""
}

// OpenCreate opens an empty form in create mode.
func (s *Session) OpenCreate() {
	s.formSeq++
	s.Form = Form{Mode: FormCreate, Seq: s.formSeq}
}

// OpenEdit opens the form prefilled with the task's fields.
// Returns false, leaving the form untouched, if the task does not exist.
func (s *Session) OpenEdit(id int) bool {
	t, ok := s.Store.Get(id)
	if !ok {
		return false
	}
	s.formSeq++
	s.Form = Form{
		Mode:        FormEdit,
		TaskID:      id,
		Seq:         s.formSeq,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
	return true
}

// CloseForm closes the form, on cancel or dismiss.
func (s *Session) CloseForm() {
	s.Form = Form{}
}

// Submit validates the form values and applies them.
// In edit mode the task is updated and the form closes. In create mode the
// form stays open and the returned request must be sent to the remote API;
// its outcome is reported through CreateSucceeded or CreateFailed.
// A validation error sets the inline title message and changes nothing else.
func (s *Session) Submit(title, description string, completed bool) (SubmitResult, error) {
	if !s.Form.Open() {
		return SubmitResult{}, ErrFormClosed
	}
	s.Form.Title = title
	s.Form.Description = description
	s.Form.Completed = completed

	title, err := ValidateTitle(title)
	if err != nil {
		s.Form.TitleError = TitleMessage(err)
		return SubmitResult{}, err
	}
	s.Form.TitleError = ""
	description = strings.TrimSpace(description)

	if s.Form.Mode == FormEdit {
		s.Store.Update(s.Form.TaskID, title, description, completed)
		s.status = ""
		s.CloseForm()
		return SubmitResult{Edited: true}, nil
	}

	s.Form.Feedback = MsgSaving
	s.Form.Saving++
	return SubmitResult{Create: &CreateRequest{
		Title:       title,
		Description: description,
		Completed:   completed,
		FormSeq:     s.Form.Seq,
	}}, nil
}

// CreateSucceeded merges a created task into the store at the head and
// returns the stored task. The local description is kept and the task is
// marked recent. If the server-assigned ID is already taken, the next free
// ID is used instead.
func (s *Session) CreateSucceeded(req CreateRequest, created Task) Task {
	created.Description = req.Description
	created.IsRecent = true
	if created.ID == 0 || s.Store.Has(created.ID) {
		created.ID = s.Store.MaxID() + 1
	}
	s.Store.InsertAtHead(created)
	s.status = ""

	if s.ownsRequest(req) {
		s.CloseForm()
	}
	s.Notice = MsgCreated
	return created
}

// CreateFailed reports a failed create. The message goes inline on the form
// if the submitting form is still open, otherwise into Notice.
func (s *Session) CreateFailed(req CreateRequest, message string) {
	if message == "" {
		message = MsgCreateFailed
	}
	if s.ownsRequest(req) {
		s.Form.Saving--
		s.Form.Feedback = message
		return
	}
	s.Notice = message
}

func (s *Session) ownsRequest(req CreateRequest) bool {
	return s.Form.Mode == FormCreate && s.Form.Seq == req.FormSeq
}

// RemoveTask deletes a task. Returns false if absent.
func (s *Session) RemoveTask(id int) bool {
	s.status = ""
	return s.Store.Remove(id)
}

// ToggleCompleted flips a task's completed flag. Like any edit it clears
// the recent flag. Returns false if absent.
func (s *Session) ToggleCompleted(id int) bool {
	t, ok := s.Store.Get(id)
	if !ok {
		return false
	}
	s.status = ""
	return s.Store.Update(id, t.Title, t.Description, !t.Completed)
}

// ClearCompleted removes every completed task and returns how many went.
func (s *Session) ClearCompleted() int {
	s.status = ""
	return s.Store.RemoveWhere(func(t Task) bool { return t.Completed })
}

// Visible returns the projected tasks for the current filter and query.
func (s *Session) Visible() []Task {
	return Project(s.Store.List(), s.Filter, s.Query)
}

// Frame is everything a renderer needs to draw the board.
type Frame struct {
	List    ListView
	Summary Summary
	Filter  Filter
	Query   string
	Form    Form
	Notice  string
	Loading bool
}

// Frame renders the current state.
func (s *Session) Frame() Frame {
	list := RenderList(s.Visible())
	if s.status != "" {
		list = RenderStatus(s.status)
	}
	return Frame{
		List:    list,
		Summary: RenderSummary(s.Store.List()),
		Filter:  s.Filter,
		Query:   s.Query,
		Form:    s.Form,
		Notice:  s.Notice,
		Loading: s.loading,
	}
}
