package datepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type stubForm struct {
	period  Range
	applied []Range
}

func (f *stubForm) Period() Range { return f.period }

func (f *stubForm) ApplyPeriod(r Range) {
	f.period = r
	f.applied = append(f.applied, r)
}

var focusables = []string{"close", "start-input", "end-input", "cancel", "apply"}

func newTestController(t *testing.T) (*Controller, *stubForm) {
	t.Helper()
	c := NewController(fixedClock(time.Date(2024, time.July, 1, 9, 30, 0, 0, time.UTC)))
	form := &stubForm{}
	require.True(t, c.Register("filters", form))
	return c, form
}

func TestClickSequenceNeverInverts(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.Open("filters", "trigger", focusables))
	assert.Equal(t, StateOpenEmpty, c.State())

	require.NoError(t, c.Click("2024-07-10"))
	assert.Equal(t, StateOpenStartSet, c.State())
	assert.Equal(t, Range{Start: "2024-07-10"}, c.Draft())

	require.NoError(t, c.Click("2024-07-05"))
	assert.Equal(t, StateOpenStartSet, c.State())
	assert.Equal(t, Range{Start: "2024-07-05"}, c.Draft())

	require.NoError(t, c.Click("2024-07-12"))
	assert.Equal(t, StateOpenComplete, c.State())
	assert.Equal(t, Range{Start: "2024-07-05", End: "2024-07-12"}, c.Draft())

	require.NoError(t, c.Click("2024-07-20"))
	assert.Equal(t, StateOpenStartSet, c.State())
	assert.Equal(t, Range{Start: "2024-07-20"}, c.Draft())
}

func TestClickOnStartDayCompletesSingleDayRange(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.Open("filters", "trigger", focusables))
	require.NoError(t, c.Click("2024-07-10"))
	require.NoError(t, c.Click("2024-07-10"))
	assert.Equal(t, Range{Start: "2024-07-10", End: "2024-07-10"}, c.Draft())
	assert.Equal(t, StateOpenComplete, c.State())
}

func TestCancelKeepsCommittedRange(t *testing.T) {
	c, form := newTestController(t)
	form.period = Range{Start: "2024-08-01", End: "2024-08-05"}

	require.NoError(t, c.Open("filters", "trigger", focusables))
	assert.Equal(t, StateOpenComplete, c.State())
	require.NoError(t, c.Click("2024-07-10"))
	require.NoError(t, c.Click("2024-07-12"))
	assert.Equal(t, "trigger", c.Cancel())
	assert.Equal(t, StateClosed, c.State())

	require.NoError(t, c.Open("filters", "trigger", focusables))
	assert.Equal(t, Range{Start: "2024-08-01", End: "2024-08-05"}, c.Draft())
	assert.Empty(t, form.applied)
}

func TestApplyNotifiesOwningForm(t *testing.T) {
	c, form := newTestController(t)
	other := &stubForm{}
	require.True(t, c.Register("search", other))

	require.NoError(t, c.Open("search", "search-trigger", focusables))
	require.NoError(t, c.Click("2024-07-03"))
	require.NoError(t, c.Click("2024-07-09"))
	restore, err := c.Apply()
	require.NoError(t, err)

	assert.Equal(t, "search-trigger", restore)
	assert.Equal(t, StateClosed, c.State())
	assert.Equal(t, []Range{{Start: "2024-07-03", End: "2024-07-09"}}, other.applied)
	assert.Empty(t, form.applied)

	committed, err := c.Committed("search")
	require.NoError(t, err)
	assert.Equal(t, Range{Start: "2024-07-03", End: "2024-07-09"}, committed)
}

func TestDuplicateRegistrationIgnored(t *testing.T) {
	c, form := newTestController(t)
	assert.False(t, c.Register("filters", &stubForm{}))
	assert.Equal(t, []string{"filters"}, c.Forms())

	form.period = Range{Start: "2024-07-02"}
	require.NoError(t, c.Open("filters", "", focusables))
	assert.Equal(t, Range{Start: "2024-07-02"}, c.Draft())
}

func TestPastAndInvalidClicksRejected(t *testing.T) {
	c, _ := newTestController(t)
	assert.ErrorIs(t, c.Click("2024-07-10"), ErrClosed)

	require.NoError(t, c.Open("filters", "", focusables))
	assert.ErrorIs(t, c.Click("2024-06-30"), ErrPastDate)
	assert.ErrorIs(t, c.Click("not-a-date"), ErrInvalidDate)
	require.NoError(t, c.Click("2024-07-01"))
	assert.Equal(t, Range{Start: "2024-07-01"}, c.Draft())
}

func TestOpenUnknownForm(t *testing.T) {
	c, _ := newTestController(t)
	assert.ErrorIs(t, c.Open("missing", "", nil), ErrNotRegistered)
	_, err := c.Committed("missing")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestEditInputsDropsEndBeforeStart(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.Open("filters", "", focusables))

	require.NoError(t, c.EditInputs("2024-07-10", "2024-07-04"))
	assert.Equal(t, Range{Start: "2024-07-10"}, c.Draft())
	assert.Equal(t, StateOpenStartSet, c.State())

	require.NoError(t, c.EditInputs("2024-07-10", "2024-07-14"))
	assert.Equal(t, StateOpenComplete, c.State())

	require.NoError(t, c.EditInputs("", "2024-07-14"))
	assert.Equal(t, StateOpenEmpty, c.State())
}

func TestFocusTrapWraps(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.Open("filters", "trigger", focusables))
	assert.Equal(t, "close", c.Snapshot().Focused)

	focused, err := c.Key("Tab", true)
	require.NoError(t, err)
	assert.Equal(t, "apply", focused)

	focused, err = c.Key("Tab", false)
	require.NoError(t, err)
	assert.Equal(t, "close", focused)

	focused, err = c.Key("Tab", false)
	require.NoError(t, err)
	assert.Equal(t, "start-input", focused)

	require.NoError(t, c.Focus("cancel"))
	assert.ErrorIs(t, c.Focus("outside"), ErrNotFocusable)
	focused, err = c.Key("Tab", true)
	require.NoError(t, err)
	assert.Equal(t, "end-input", focused)

	focused, err = c.Key("Escape", false)
	require.NoError(t, err)
	assert.Equal(t, "trigger", focused)
	assert.Equal(t, StateClosed, c.State())

	_, err = c.Key("Tab", false)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, c.Focus("close"), ErrClosed)
}

func TestReopenOnOtherFormKeepsFirstFocusTarget(t *testing.T) {
	c, _ := newTestController(t)
	require.True(t, c.Register("search", &stubForm{}))
	require.NoError(t, c.Open("filters", "filters-trigger", focusables))
	require.NoError(t, c.Click("2024-07-10"))
	require.NoError(t, c.Open("search", "close", focusables))

	snap := c.Snapshot()
	assert.Equal(t, "search", snap.Form)
	assert.Equal(t, Range{}, snap.Draft)
	assert.Equal(t, "filters-trigger", c.Cancel())
}

func TestApplyWhenClosed(t *testing.T) {
	c, _ := newTestController(t)
	_, err := c.Apply()
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, "", c.Cancel())
}
