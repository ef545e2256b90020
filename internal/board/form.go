package board

import (
	"errors"
	"strings"
)

// MinTitleLength is the minimum trimmed title length accepted by the form.
const MinTitleLength = 3

var (
	// ErrTitleRequired is returned when the trimmed title is empty.
	ErrTitleRequired = errors.New("title is required")

	// ErrTitleTooShort is returned when the trimmed title is shorter than MinTitleLength.
	ErrTitleTooShort = errors.New("title must have at least 3 characters")

	// ErrFormClosed is returned when submitting while no form is open.
	ErrFormClosed = errors.New("no task form is open")
)

// ValidateTitle trims the title and checks its length.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	n := len([]rune(title))
	switch {
	case n == 0:
		return "", ErrTitleRequired
	case n < MinTitleLength:
		return "", ErrTitleTooShort
	}
	return title, nil
}

// TitleMessage returns the inline field message for a title validation error.
func TitleMessage(err error) string {
	switch {
	case errors.Is(err, ErrTitleRequired):
		return MsgTitleRequired
	case errors.Is(err, ErrTitleTooShort):
		return MsgTitleTooShort
	case err != nil:
		return err.Error()
	}
	return ""
}

// FormMode is the state of the task form.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

func (m FormMode) String() string {
	switch m {
	case FormCreate:
		return "create"
	case FormEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Form is the create/edit form. Only one form session exists at a time;
// Seq identifies it so late network results can tell whether the form that
// started them is still the one on screen.
type Form struct {
	Mode   FormMode
	TaskID int // edit target, zero in create mode
	Seq    int

	Title       string
	Description string
	Completed   bool

	TitleError string
	Feedback   string

	// Saving counts create requests started from this form that have not
	// returned yet.
	Saving int
}

// Open reports whether the form is visible.
func (f Form) Open() bool {
	return f.Mode != FormClosed
}

// Heading is the form title shown to the user.
func (f Form) Heading() string {
	if f.Mode == FormEdit {
		return "Edit task"
	}
	return "Add new task"
}

// CreateRequest describes a create submission waiting on the remote API.
type CreateRequest struct {
	Title       string
	Description string
	Completed   bool

	// FormSeq is the Seq of the form that submitted the request.
	FormSeq int
}

// SubmitResult tells the caller what a successful submission did.
// Create is set when a remote create must be started; otherwise the
// submission was an edit and has already been applied.
type SubmitResult struct {
	Create *CreateRequest
	Edited bool
}
