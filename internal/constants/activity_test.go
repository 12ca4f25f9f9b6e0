package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseActivityStatus(t *testing.T) {
	for _, s := range ActivityStatuses() {
		got, ok := ParseActivityStatus(string(s))
		assert.True(t, ok, s)
		assert.Equal(t, s, got)
	}

	_, ok := ParseActivityStatus("Done")
	assert.False(t, ok)

	_, ok = ParseActivityStatus("completed")
	assert.False(t, ok, "status values are case sensitive")

	_, ok = ParseActivityStatus(FilterAll)
	assert.False(t, ok)
}

func TestParseActivityType(t *testing.T) {
	got, ok := ParseActivityType(" AttendMeeting ")
	assert.True(t, ok)
	assert.Equal(t, TypeAttendMeeting, got)

	_, ok = ParseActivityType("Meeting")
	assert.False(t, ok)
}
