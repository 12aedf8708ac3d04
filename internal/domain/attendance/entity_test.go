package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCountable(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusPresent.Countable())
	assert.True(t, StatusLate.Countable())
	assert.False(t, StatusAbsent.Countable())
	assert.False(t, StatusUnmarked.Countable())
}

func TestSetAttendanceRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := SetAttendanceRequest{Records: []RecordRequest{
		{ClassID: "c1", StudentID: "HS-01", Date: "2026-03-02", Status: "PRESENT"},
		{ClassID: "c1", StudentID: "HS-02", Date: "2026-03-02", Status: "ABSENT"},
	}}
	assert.NoError(t, valid.Validate())

	empty := SetAttendanceRequest{}
	assert.Error(t, empty.Validate())

	badStatus := SetAttendanceRequest{Records: []RecordRequest{
		{ClassID: "c1", StudentID: "HS-01", Date: "2026-03-02", Status: "HERE"},
	}}
	assert.Error(t, badStatus.Validate())

	badDate := SetAttendanceRequest{Records: []RecordRequest{
		{ClassID: "c1", StudentID: "HS-01", Date: "02-03-2026", Status: "PRESENT"},
	}}
	assert.Error(t, badDate.Validate())
}
