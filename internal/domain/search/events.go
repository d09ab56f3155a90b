package search

import "time"

type SubmittedEvent struct {
	FormID string    `json:"formId"`
	Detail Detail    `json:"detail"`
	At     time.Time `json:"at"`
}

func (e SubmittedEvent) EventName() string     { return "search.submitted" }
func (e SubmittedEvent) AggregateID() string   { return e.FormID }
func (e SubmittedEvent) OccurredAt() time.Time { return e.At }
