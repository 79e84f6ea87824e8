package model

import (
	"fmt"
	"time"
)

// ReservationStatus 訂位狀態類型
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PE"
	ReservationStatusConfirmed ReservationStatus = "CO"
	ReservationStatusCanceled  ReservationStatus = "CA"
)

// IsValid 驗證狀態是否有效
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCanceled:
		return true
	}
	return false
}

func (s ReservationStatus) Label() string {
	switch s {
	case ReservationStatusPending:
		return "Pending"
	case ReservationStatusConfirmed:
		return "Confirmed"
	case ReservationStatusCanceled:
		return "Canceled"
	}
	return string(s)
}

// Reservation 使用者對座位與加購項目的訂位；TotalPrice 由呼叫端計算
type Reservation struct {
	ID          int               `json:"id" db:"id"`
	UserID      int               `json:"user_id" db:"user_id" binding:"required,gt=0,int32"`
	SeatID      int               `json:"seat_id" db:"seat_id" binding:"required,gt=0,int32"`
	ReceptionID int               `json:"reception_id" db:"reception_id" binding:"required,gt=0,int32"`
	Buy         time.Time         `json:"buy" db:"buy" binding:"required"`
	Status      ReservationStatus `json:"status" db:"status" binding:"required,oneof=PE CO CA"`
	TotalPrice  float64           `json:"total_price" db:"total_price" binding:"money"`

	User      *User      `json:"-" db:"-" binding:"-"`
	Seat      *Seat      `json:"-" db:"-" binding:"-"`
	Reception *Reception `json:"-" db:"-" binding:"-"`
}

func NewReservation() *Reservation {
	return &Reservation{Status: ReservationStatusPending}
}

func (r *Reservation) GetID() int {
	return r.ID
}

func (r *Reservation) String() string {
	user, seat, reception := "", "", ""
	if r.User != nil {
		user = r.User.String()
	}
	if r.Seat != nil {
		seat = r.Seat.String()
	}
	if r.Reception != nil {
		reception = string(r.Reception.Type)
	}
	return fmt.Sprintf("Reservation: %s -> %s with %s", user, seat, reception)
}
