package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutatingServicesShareOneLocker(t *testing.T) {
	env := newServiceEnv(t)

	phases := NewPhaseService(env.students, env.phases, env.uow).(*phaseService)
	schedules := NewScheduleService(env.students, env.phases, env.tasks, env.uow).(*scheduleService)
	coordinator := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow).(*coordinatorService)
	progress := NewProgressService(env.phases, env.tasks, env.entries, env.uow).(*progressService)

	assert.Same(t, phases.locker, schedules.locker)
	assert.Same(t, schedules.locker, coordinator.locker)
	assert.Same(t, coordinator.locker, progress.locker)
}

func TestStudentLockBlocksAcrossServices(t *testing.T) {
	env := newServiceEnv(t)

	coordinator := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow).(*coordinatorService)
	progress := NewProgressService(env.phases, env.tasks, env.entries, env.uow).(*progressService)

	unlock := coordinator.locker.lock("student-1")

	acquired := make(chan struct{})
	go func() {
		release := progress.locker.lock("student-1")
		release()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second service acquired the student lock while the first still held it")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("student lock was never released to the second service")
	}
}

func TestStudentLocker_IndependentStudents(t *testing.T) {
	locker := newStudentLocker()

	unlock := locker.lock("student-1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		release := locker.lock("student-2")
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different student must not block")
	}
}

func TestStudentLocker_SequentialReuse(t *testing.T) {
	locker := newStudentLocker()

	unlock := locker.lock("student-1")
	unlock()
	unlock = locker.lock("student-1")
	unlock()

	require.Len(t, locker.locks, 1, "one mutex per student, reused across acquisitions")
}
