// Package consumption implements the queue, stack, search and sort
// primitives used to register and inspect supply consumption records.
package consumption

import "github.com/hmoraes/supplytrack/pkg/domain/entities"

// Queue maintains consumption registrations in strict first-in
// first-out chronological processing order.
//
// The zero value is an empty queue ready for use.
type Queue struct {
	records []*entities.ConsumptionRecord
	head    int
}

// NewQueue creates an empty consumption queue
func NewQueue() *Queue {
	return &Queue{}
}

// Register appends a record at the tail of the queue. It always
// succeeds and has no side effect beyond the queue's own state.
func (q *Queue) Register(record *entities.ConsumptionRecord) {
	q.records = append(q.records, record)
}

// ProcessNext removes and returns the record at the head of the queue.
// An empty queue is a normal outcome, reported as (nil, false).
//
// Removal is O(1) amortized: the head advances over the backing slice
// and the drained prefix is reclaimed once it dominates the storage.
func (q *Queue) ProcessNext() (*entities.ConsumptionRecord, bool) {
	if q.head >= len(q.records) {
		return nil, false
	}
	record := q.records[q.head]
	q.records[q.head] = nil
	q.head++

	if q.head > 32 && q.head*2 >= len(q.records) {
		q.records = append(q.records[:0], q.records[q.head:]...)
		q.head = 0
	}
	return record, true
}

// Len reports the number of records waiting to be processed
func (q *Queue) Len() int {
	return len(q.records) - q.head
}
