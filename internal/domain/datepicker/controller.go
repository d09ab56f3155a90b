package datepicker

import (
	"sync"
	"time"

	"travelgo/internal/domain/shared/daterange"
)

// Clock supplies "today" for past-day checks and calendar rendering.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Form is the owner of a committed period. Period is read on every open,
// ApplyPeriod receives the change notification after apply.
type Form interface {
	Period() Range
	ApplyPeriod(Range)
}

// Snapshot is a read-only view of the picker.
type Snapshot struct {
	State   State  `json:"state"`
	Form    string `json:"form,omitempty"`
	Draft   Range  `json:"draft"`
	Focused string `json:"focused,omitempty"`
}

// Controller is the single picker modal shared by every registered form.
type Controller struct {
	mu     sync.Mutex
	clock  Clock
	forms  map[string]Form
	order  []string
	active string
	state  State
	draft  Range
	focus  focusTrap
}

func NewController(clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{
		clock: clock,
		forms: make(map[string]Form),
		state: StateClosed,
	}
}

// Register binds a form to the picker. A second registration of the same id is ignored.
func (c *Controller) Register(id string, form Form) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.forms[id]; exists || form == nil {
		return false
	}
	c.forms[id] = form
	c.order = append(c.order, id)
	return true
}

// Forms lists registered form ids in registration order.
func (c *Controller) Forms() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}

// Committed returns the period currently bound to the form.
func (c *Controller) Committed(id string) (Range, error) {
	c.mu.Lock()
	form, ok := c.forms[id]
	c.mu.Unlock()
	if !ok {
		return Range{}, ErrNotRegistered
	}
	return form.Period(), nil
}

// Open resets the draft from the form's committed period and traps focus.
// Opening while another form is active discards that form's draft.
func (c *Controller) Open(id, focused string, focusables []string) error {
	c.mu.Lock()
	form, ok := c.forms[id]
	c.mu.Unlock()
	if !ok {
		return ErrNotRegistered
	}
	committed := form.Period()

	c.mu.Lock()
	defer c.mu.Unlock()
	restore := focused
	if c.state.IsOpen() {
		restore = c.focus.restore
	}
	c.active = id
	c.draft = committed
	c.state = stateFor(c.draft)
	c.focus.activate(focusables, restore)
	return nil
}

// Click handles a day-cell selection.
func (c *Controller) Click(value string) error {
	day, err := daterange.Parse(value)
	if err != nil {
		return ErrInvalidDate
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.IsOpen() {
		return ErrClosed
	}
	if day.Before(c.today()) {
		return ErrPastDate
	}

	date := day.String()
	start, startErr := daterange.Parse(c.draft.Start)
	switch {
	case startErr != nil || c.draft.End != "":
		c.draft = Range{Start: date}
	case day.Before(start):
		c.draft.Start = date
	default:
		c.draft.End = date
	}
	c.state = stateFor(c.draft)
	return nil
}

// EditInputs sets the draft from the manual inputs. An end before the start is dropped.
func (c *Controller) EditInputs(start, end string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.IsOpen() {
		return ErrClosed
	}
	c.draft = Range{Start: start, End: end}
	if start != "" && end != "" && end < start {
		c.draft.End = ""
	}
	c.state = stateFor(c.draft)
	return nil
}

// Apply commits the draft to the active form and closes the picker.
// It returns the element that should receive focus.
func (c *Controller) Apply() (string, error) {
	c.mu.Lock()
	if !c.state.IsOpen() {
		c.mu.Unlock()
		return "", ErrClosed
	}
	form := c.forms[c.active]
	applied := c.draft
	restore := c.closeLocked()
	c.mu.Unlock()

	if form != nil {
		form.ApplyPeriod(applied)
	}
	return restore, nil
}

// Cancel closes without touching the committed period. Closing a closed picker is a no-op.
func (c *Controller) Cancel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.IsOpen() {
		return ""
	}
	return c.closeLocked()
}

// Key handles keyboard input while open: Escape closes, Tab cycles focus inside the modal.
func (c *Controller) Key(key string, shift bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.IsOpen() {
		return "", ErrClosed
	}
	switch key {
	case "Escape":
		return c.closeLocked(), nil
	case "Tab":
		return c.focus.tab(shift), nil
	default:
		return c.focus.current, nil
	}
}

// Focus moves focus to an element inside the modal, as a pointer click on it would.
func (c *Controller) Focus(element string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.IsOpen() {
		return ErrClosed
	}
	if !c.focus.focus(element) {
		return ErrNotFocusable
	}
	return nil
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:   c.state,
		Form:    c.active,
		Draft:   c.draft,
		Focused: c.focus.current,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Draft() Range {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Months renders the current and the next month around the draft.
func (c *Controller) Months(lang string) []Month {
	c.mu.Lock()
	draft := c.draft
	today := c.today()
	c.mu.Unlock()

	first := time.Date(today.Time().Year(), today.Time().Month(), 1, 0, 0, 0, 0, time.UTC)
	return []Month{
		BuildMonth(first, today, draft, lang),
		BuildMonth(first.AddDate(0, 1, 0), today, draft, lang),
	}
}

func (c *Controller) closeLocked() string {
	c.state = StateClosed
	c.active = ""
	c.draft = Range{}
	return c.focus.release()
}

func (c *Controller) today() daterange.Day {
	return daterange.FromTime(c.clock.Now())
}
