package model

import "fmt"

// SeatType 座位類型
type SeatType string

const (
	SeatTypeBusTrain    SeatType = "BU"
	SeatTypeSingle      SeatType = "SI"
	SeatTypeCompartment SeatType = "CO"
)

// IsValid 驗證類型是否有效
func (t SeatType) IsValid() bool {
	switch t {
	case SeatTypeBusTrain, SeatTypeSingle, SeatTypeCompartment:
		return true
	}
	return false
}

func (t SeatType) Label() string {
	switch t {
	case SeatTypeBusTrain:
		return "Bus_train"
	case SeatTypeSingle:
		return "Single"
	case SeatTypeCompartment:
		return "Compartment"
	}
	return string(t)
}

// Seat 業者提供的可購買座位
type Seat struct {
	ID          int      `json:"id" db:"id"`
	CompanyID   int      `json:"company_id" db:"company_id" binding:"required,gt=0,int32"`
	SeatNumber  int      `json:"seat_number" db:"seat_number" binding:"int32"`
	Type        SeatType `json:"type" db:"type" binding:"required,oneof=BU SI CO"`
	Price       float64  `json:"price" db:"price" binding:"money"`
	IsAvailable bool     `json:"is_available" db:"is_available"`

	Company *Company `json:"-" db:"-" binding:"-"`
}

func NewSeat() *Seat {
	return &Seat{Type: SeatTypeSingle, IsAvailable: true}
}

func (s *Seat) GetID() int {
	return s.ID
}

func (s *Seat) String() string {
	company := ""
	if s.Company != nil {
		company = s.Company.String()
	}
	return fmt.Sprintf("%d'th %s seat in %s company", s.SeatNumber, s.Type, company)
}
