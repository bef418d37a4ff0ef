package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusNoted, StatusInProgress, StatusResolved, StatusRejected} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("closed"))
	assert.False(t, ValidStatus(""))
}

func TestMarkNoted(t *testing.T) {
	c := Complaint{Status: StatusPending}
	c.MarkNoted()
	assert.Equal(t, StatusNoted, c.Status)
}

func TestApplyTriage(t *testing.T) {
	adminID := uuid.New()

	t.Run("non-resolving transition leaves resolution fields alone", func(t *testing.T) {
		c := Complaint{Status: StatusNoted}
		c.ApplyTriage(StatusInProgress, adminID, "crew dispatched")

		assert.Equal(t, StatusInProgress, c.Status)
		assert.Equal(t, "crew dispatched", c.AdminNotes)
		assert.Nil(t, c.ResolvedAt)
		assert.Nil(t, c.ResolvedByID)
	})

	t.Run("resolution stamps admin and time", func(t *testing.T) {
		c := Complaint{Status: StatusInProgress}
		c.ApplyTriage(StatusResolved, adminID, "fixed")

		assert.Equal(t, StatusResolved, c.Status)
		require.NotNil(t, c.ResolvedAt)
		assert.WithinDuration(t, time.Now(), *c.ResolvedAt, time.Second)
		require.NotNil(t, c.ResolvedByID)
		assert.Equal(t, adminID, *c.ResolvedByID)
	})
}

func TestApplyOwnerStatus(t *testing.T) {
	c := Complaint{Status: StatusInProgress}
	c.ApplyOwnerStatus(StatusResolved)

	assert.Equal(t, StatusResolved, c.Status)
	require.NotNil(t, c.ResolvedAt)
	// Owners never appear as the resolver.
	assert.Nil(t, c.ResolvedByID)

	c2 := Complaint{Status: StatusResolved}
	c2.ApplyOwnerStatus(StatusPending)
	assert.Equal(t, StatusPending, c2.Status)
	assert.Nil(t, c2.ResolvedAt)
}
