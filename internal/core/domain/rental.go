package domain

import "time"

// swagger:model domain.Rental
type Rental struct {
	ID        int64     `json:"id"`
	CarID     int64     `json:"carId" validate:"required,min=1"`
	UserID    int64     `json:"userId"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// Overlaps reports whether the closed date windows of r and [start, end] intersect.
func (r *Rental) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !start.After(r.EndDate)
}

// TruncateDay drops the clock part of t. The calendar date is read in t's own
// offset and returned as midnight UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
