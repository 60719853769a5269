package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreateBooking(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		draft, err := DecodeCreateBooking([]byte(`{"booking_type":"single","court_id":"c1","booking_name":"Ali","phone":"+966500000000","start_date_time":"2025-11-24T14:00:00","duration_minutes":90}`))
		require.NoError(t, err)

		single, ok := draft.(*CreateSingleBooking)
		require.True(t, ok)
		assert.Equal(t, "SINGLE", single.BookingType)
		assert.Equal(t, "c1", single.CourtID)
		assert.Equal(t, 90, single.DurationMinutes)
	})

	t.Run("coach", func(t *testing.T) {
		draft, err := DecodeCreateBooking([]byte(`{"booking_type":"COACH","court_id":"c1","coach_id":"k1","booking_name":"Lesson","phone":"+966500000000","start_date_time":"2025-11-24T14:00:00","end_date_time":"2025-11-24T15:00:00"}`))
		require.NoError(t, err)

		coach, ok := draft.(*CreateCoachBooking)
		require.True(t, ok)
		assert.Equal(t, "k1", coach.CoachID)
		assert.Equal(t, "2025-11-24T15:00:00", coach.EndDateTime)
	})

	t.Run("fixed", func(t *testing.T) {
		draft, err := DecodeCreateBooking([]byte(`{"booking_type":"FIXED","court_id":"c1","booking_name":"League","phone":"+966500000000","start_date_time":"2025-11-24T14:00:00","duration_minutes":60,"repeated_days_of_week":["MONDAY","WEDNESDAY"],"recurrence_end_date":"2025-12-05"}`))
		require.NoError(t, err)

		fixed, ok := draft.(*CreateFixedBooking)
		require.True(t, ok)
		assert.Equal(t, []string{"MONDAY", "WEDNESDAY"}, fixed.RepeatedDaysOfWeek)
		assert.Equal(t, "FIXED", fixed.Kind())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := DecodeCreateBooking([]byte(`{"booking_type":"TOURNAMENT"}`))
		assert.ErrorIs(t, err, ErrUnknownBookingType)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeCreateBooking([]byte(`{"booking_type":`))
		assert.Error(t, err)
	})
}
