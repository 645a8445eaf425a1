package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerValidation(t *testing.T) {
	s := NewScheduler(time.UTC)

	_, err := s.ScheduleInterval(0, func() {})
	assert.Error(t, err)

	_, err = s.ScheduleInterval(30*time.Second, func() {})
	require.NoError(t, err)

	_, err = s.ScheduleDailyHour(24, func() {})
	assert.Error(t, err)

	_, err = s.ScheduleDailyHour(8, func() {})
	require.NoError(t, err)
}
