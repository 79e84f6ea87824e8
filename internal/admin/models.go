package admin

import (
	"go-gin-seat-booking/internal/model"
)

const (
	ModelUser        = "user"
	ModelCompany     = "company"
	ModelSeat        = "seat"
	ModelReception   = "reception"
	ModelReservation = "reservation"
)

// UserModelAdmin 使用者的後台版面：依 id 排序，分為登入、個人資料、權限、日期四組
var UserModelAdmin = ModelAdmin{
	Ordering:    []string{"id"},
	ListDisplay: []string{"email", "f_name", "l_name"},
	Fieldsets: []Fieldset{
		{Name: "Login Information", Fields: []string{"email", "password"}},
		{Name: "Personal Information", Fields: []string{"f_name", "l_name", "phone_number"}},
		{Name: "Permission", Fields: []string{"is_staff", "is_active", "is_superuser"}},
		{Name: "Dates", Fields: []string{"birth_date", "last_login"}},
	},
}

// Stores 註冊到後台的五個 model 的持久層
type Stores struct {
	Users        Store[*model.User]
	Companies    Store[*model.Company]
	Seats        Store[*model.Seat]
	Receptions   Store[*model.Reception]
	Reservations Store[*model.Reservation]
}

// RegisterModels 註冊所有 model；除了使用者之外都使用預設版面
func RegisterModels(site *Site, stores Stores) error {
	if err := Register(site, ModelUser, stores.Users, model.NewUser, &UserModelAdmin); err != nil {
		return err
	}
	if err := Register(site, ModelCompany, stores.Companies, model.NewCompany, nil); err != nil {
		return err
	}
	if err := Register(site, ModelSeat, stores.Seats, model.NewSeat, nil); err != nil {
		return err
	}
	if err := Register(site, ModelReception, stores.Receptions, model.NewReception, nil); err != nil {
		return err
	}
	return Register(site, ModelReservation, stores.Reservations, model.NewReservation, nil)
}
