package request

import (
	"encoding/json"
	"time"
)

const dateOnlyFormat = "2006-01-02"

// DateOnly is a calendar date in JSON bodies. Gin's time_format tag only
// applies to form and query binding, so JSON needs its own unmarshalling.
// Accepts "2006-01-02" and full RFC 3339 timestamps.
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: t}
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateOnlyFormat, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateOnlyFormat))
}

type CreateReservationRequest struct {
	RoomID    string    `json:"roomId" binding:"required"`
	Date      DateOnly  `json:"date" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// UpdateReservationRequest is a partial overwrite; nil fields keep the
// stored value.
type UpdateReservationRequest struct {
	RoomID    *string    `json:"roomId,omitempty"`
	Date      *DateOnly  `json:"date,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}
