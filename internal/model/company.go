package model

import "time"

// Company 提供座位的業者；座位數量不會與實際 Seat 紀錄同步
type Company struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name" binding:"required,max=255"`
	Description    *string   `json:"description" db:"description"`
	TotalSeats     *int      `json:"total_seats" db:"total_seats" binding:"omitempty,int32"`
	AvailableSeats *int      `json:"available_seats" db:"available_seats" binding:"omitempty,int32"`
	CreateAt       time.Time `json:"create_at" db:"create_at"`
}

func NewCompany() *Company {
	return &Company{}
}

func (c *Company) GetID() int {
	return c.ID
}

func (c *Company) String() string {
	return c.Name
}
