package dto

import "userhub/internal/domain"

// UserHouse é a representação de transferência de domain.UserHouse.
type UserHouse struct {
	ID          *int64  `json:"id" example:"1"`
	UserName    *string `json:"userName" validate:"required,house_user_name" example:"John_1"`
	UserPhone   *string `json:"userPhone" validate:"required,phone" example:"+380978657654"`
	Country     *string `json:"country" validate:"required,supported_country" example:"Portugal"`
	Town        *string `json:"town" validate:"required,town" example:"Lisbon"`
	Address     *string `json:"address" validate:"required,address" example:"Augusta"`
	HouseNumber *int    `json:"houseNumber" validate:"required,gte=0,lte=2147483647" example:"12"`
	FlatNumber  *int    `json:"flatNumber" validate:"required,gte=0,lte=2147483647" example:"4"`
}

func FromUserHouse(h domain.UserHouse) UserHouse {
	return UserHouse{
		ID:          ptr(h.ID),
		UserName:    ptr(h.UserName),
		UserPhone:   ptr(h.UserPhone),
		Country:     ptr(h.Country),
		Town:        ptr(h.Town),
		Address:     ptr(h.Address),
		HouseNumber: ptr(h.HouseNumber),
		FlatNumber:  ptr(h.FlatNumber),
	}
}

func FromUserHouses(houses []domain.UserHouse) []UserHouse {
	return mapAll(houses, FromUserHouse)
}

func (h UserHouse) ToEntity() domain.UserHouse {
	return domain.UserHouse{
		UserName:    deref(h.UserName),
		UserPhone:   deref(h.UserPhone),
		Country:     deref(h.Country),
		Town:        deref(h.Town),
		Address:     deref(h.Address),
		HouseNumber: deref(h.HouseNumber),
		FlatNumber:  deref(h.FlatNumber),
	}
}
