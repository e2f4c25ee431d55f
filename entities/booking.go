package entities

import "time"

type Booking struct {
	BookingID   uint      `gorm:"column:booking_id;primaryKey;autoIncrement" json:"booking_id"`
	MomentStart time.Time `gorm:"column:moment_start;type:timestamp;not null" json:"moment_start"`
	MomentEnd   time.Time `gorm:"column:moment_end;type:timestamp;not null" json:"moment_end"`
}

func (Booking) TableName() string {
	return TableBookings
}

// Locker is a pickup locker. BookingID is nil while the locker is unassigned.
type Locker struct {
	LockerID  uint  `gorm:"column:locker_id;primaryKey;autoIncrement" json:"locker_id"`
	BookingID *uint `gorm:"column:booking_id;index" json:"booking_id"`
}

func (Locker) TableName() string {
	return TableLockers
}
