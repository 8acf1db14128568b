package service

import "sync"

// studentLocker serializes mutating operations per student so schedule
// generation, redistribution, and progress logging on the same student never
// interleave. Different students proceed independently.
type studentLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newStudentLocker() *studentLocker {
	return &studentLocker{locks: make(map[string]*sync.Mutex)}
}

// sharedStudentLocker is handed to every service constructor. The guarantee
// only holds if all services lock through the same instance: a redistribute
// in the coordinator must block a concurrent log-progress on the same
// student, not just another redistribute.
var sharedStudentLocker = newStudentLocker()

func (l *studentLocker) lock(studentID string) func() {
	l.mu.Lock()
	m, ok := l.locks[studentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[studentID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
