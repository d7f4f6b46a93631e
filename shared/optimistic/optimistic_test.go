package optimistic_test

import (
	"testing"

	"github.com/ah01567/Bookini/shared/optimistic"

	"github.com/stretchr/testify/assert"
)

func TestTracker_CommitKeepsNextValue(t *testing.T) {
	tracker := optimistic.Begin("paused", "active")

	assert.Equal(t, optimistic.StatePending, tracker.State())
	assert.Equal(t, "active", tracker.Value())

	tracker.Commit()

	assert.Equal(t, optimistic.StateCommitted, tracker.State())
	assert.Equal(t, "active", tracker.Value())
}

func TestTracker_RollbackRestoresPreviousValue(t *testing.T) {
	tracker := optimistic.Begin("paused", "active")

	tracker.Rollback()

	assert.Equal(t, optimistic.StateRolledBack, tracker.State())
	assert.Equal(t, "paused", tracker.Value())
}

func TestTracker_TerminalStatesAreFinal(t *testing.T) {
	tracker := optimistic.Begin(1, 2)
	tracker.Commit()
	tracker.Rollback()

	assert.Equal(t, optimistic.StateCommitted, tracker.State())
	assert.Equal(t, 2, tracker.Value())

	tracker = optimistic.Begin(1, 2)
	tracker.Rollback()
	tracker.Commit()

	assert.Equal(t, optimistic.StateRolledBack, tracker.State())
	assert.Equal(t, 1, tracker.Value())
}
