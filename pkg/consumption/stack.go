package consumption

import "github.com/hmoraes/supplytrack/pkg/domain/entities"

// Stack maintains a last-in first-out view of recently added records,
// so the most recent registrations can be inspected and undone.
//
// The zero value is an empty stack ready for use.
type Stack struct {
	records []*entities.ConsumptionRecord
}

// NewStack creates an empty recent-query stack
func NewStack() *Stack {
	return &Stack{}
}

// Push places a record on top of the stack. It always succeeds.
func (s *Stack) Push(record *entities.ConsumptionRecord) {
	s.records = append(s.records, record)
}

// PeekTop returns the most recently pushed record without removing it.
// An empty stack is a normal outcome, reported as (nil, false).
func (s *Stack) PeekTop() (*entities.ConsumptionRecord, bool) {
	if len(s.records) == 0 {
		return nil, false
	}
	return s.records[len(s.records)-1], true
}

// PopUndo removes and returns the most recently pushed record, undoing
// the latest addition. An empty stack reports (nil, false).
func (s *Stack) PopUndo() (*entities.ConsumptionRecord, bool) {
	if len(s.records) == 0 {
		return nil, false
	}
	top := s.records[len(s.records)-1]
	s.records[len(s.records)-1] = nil
	s.records = s.records[:len(s.records)-1]
	return top, true
}

// Len reports the number of records on the stack
func (s *Stack) Len() int {
	return len(s.records)
}
