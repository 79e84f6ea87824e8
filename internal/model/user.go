package model

import (
	"fmt"
	"strings"
	"time"
)

// UnusablePasswordPrefix 開頭的密碼永遠無法通過驗證
const UnusablePasswordPrefix = "!"

// User 以 email 登入的使用者
type User struct {
	ID          int        `json:"id" db:"id"`
	Email       string     `json:"email" db:"email" binding:"required,email,max=255"`
	FirstName   string     `json:"f_name" db:"f_name" binding:"max=255"`
	LastName    string     `json:"l_name" db:"l_name" binding:"max=255"`
	PhoneNumber string     `json:"phone_number" db:"phone_number" binding:"max=15"`
	BirthDate   *Date      `json:"birth_date" db:"birth_date" binding:"-"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	IsStaff     bool       `json:"is_staff" db:"is_staff"`
	IsSuperuser bool       `json:"is_superuser" db:"is_superuser"`
	Password    string     `json:"password" db:"password" binding:"max=72"`
	LastLogin   *time.Time `json:"last_login" db:"last_login"`
}

// UserFields create_user 可額外指定的欄位，nil 代表使用預設值
type UserFields struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	BirthDate   *Date
	IsActive    *bool
	IsStaff     *bool
	IsSuperuser *bool
}

// NewUser 回傳帶有欄位預設值的使用者
func NewUser() *User {
	return &User{IsActive: true}
}

func (u *User) GetID() int {
	return u.ID
}

func (u *User) String() string {
	return fmt.Sprintf("%s %s: %s ", u.FirstName, u.LastName, u.Email)
}

// Apply 將額外欄位套用到使用者上
func (f UserFields) Apply(u *User) {
	u.FirstName = f.FirstName
	u.LastName = f.LastName
	u.PhoneNumber = f.PhoneNumber
	u.BirthDate = f.BirthDate
	if f.IsActive != nil {
		u.IsActive = *f.IsActive
	}
	if f.IsStaff != nil {
		u.IsStaff = *f.IsStaff
	}
	if f.IsSuperuser != nil {
		u.IsSuperuser = *f.IsSuperuser
	}
}

// HasUsablePassword 密碼是否可用於登入
func (u *User) HasUsablePassword() bool {
	return u.Password != "" && !strings.HasPrefix(u.Password, UnusablePasswordPrefix)
}

// CanAccessAdmin 只有啟用中的 staff 能進入管理後台
func (u *User) CanAccessAdmin() bool {
	return u.IsActive && u.IsStaff
}
