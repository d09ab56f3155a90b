package search

import (
	"strings"
	"sync"
	"time"

	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/shared/events"
	"travelgo/internal/domain/tours"
)

// Values mirrors the controls of the search form.
type Values struct {
	Destination string `json:"destination"`
	Start       string `json:"start"`
	End         string `json:"end"`
	People      string `json:"people"`
}

// Form holds the search form controls and notifies subscribers on submit.
type Form struct {
	id  string
	now func() time.Time

	mu       sync.Mutex
	values   Values
	recorder events.EventRecorder

	submitted events.Listeners[SubmittedEvent]
}

func NewForm(id string, now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	return &Form{id: id, now: now}
}

func (f *Form) ID() string { return f.id }

func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) SetValues(v Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
}

func (f *Form) Period() datepicker.Range {
	f.mu.Lock()
	defer f.mu.Unlock()
	return datepicker.Range{Start: f.values.Start, End: f.values.End}
}

func (f *Form) ApplyPeriod(r datepicker.Range) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Start = r.Start
	f.values.End = r.End
}

// OnSubmit subscribes to submissions and returns an unsubscribe function.
func (f *Form) OnSubmit(fn func(SubmittedEvent)) func() {
	return f.submitted.Subscribe(fn)
}

// Submit derives the detail from the current controls, records the event and
// delivers it to subscribers. The days bucket comes from the selected period.
func (f *Form) Submit() Detail {
	f.mu.Lock()
	v := f.values
	detail := NewDetail(
		strings.TrimSpace(v.Destination),
		tours.DaysRangeFor(v.Start, v.End),
		strings.TrimSpace(v.People),
		v.Start,
		v.End,
	)
	event := SubmittedEvent{FormID: f.id, Detail: detail, At: f.now().UTC()}
	f.recorder.Record(event)
	f.mu.Unlock()

	f.submitted.Emit(event)
	return detail
}

// DrainEvents returns recorded events not yet handed to the outbox.
func (f *Form) DrainEvents() []events.DomainEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recorder.Drain()
}
