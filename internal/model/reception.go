package model

import "fmt"

// ReceptionType 座位附加餐點類型
type ReceptionType string

const (
	ReceptionTypeDrink   ReceptionType = "DR"
	ReceptionTypeFood    ReceptionType = "FO"
	ReceptionTypeDessert ReceptionType = "DE"
)

func (t ReceptionType) IsValid() bool {
	switch t {
	case ReceptionTypeDrink, ReceptionTypeFood, ReceptionTypeDessert:
		return true
	}
	return false
}

func (t ReceptionType) Label() string {
	switch t {
	case ReceptionTypeDrink:
		return "Drink"
	case ReceptionTypeFood:
		return "Food"
	case ReceptionTypeDessert:
		return "Dessert"
	}
	return string(t)
}

// Reception 掛在座位底下的加購項目
type Reception struct {
	ID          int           `json:"id" db:"id"`
	SeatID      int           `json:"seat_id" db:"seat_id" binding:"required,gt=0,int32"`
	Type        ReceptionType `json:"type" db:"type" binding:"required,oneof=DR FO DE"`
	Price       float64       `json:"price" db:"price" binding:"money"`
	IsAvailable bool          `json:"is_available" db:"is_available"`

	Seat *Seat `json:"-" db:"-" binding:"-"`
}

func NewReception() *Reception {
	return &Reception{Type: ReceptionTypeDrink, IsAvailable: true}
}

func (r *Reception) GetID() int {
	return r.ID
}

func (r *Reception) String() string {
	seat := ""
	if r.Seat != nil {
		seat = r.Seat.String()
	}
	return fmt.Sprintf("%s for %s", r.Type, seat)
}
