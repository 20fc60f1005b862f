package dto

import "userhub/internal/domain"

// UserCar é a representação de transferência de domain.UserCar.
type UserCar struct {
	ID             *int64  `json:"id" example:"1"`
	UserName       *string `json:"userName" validate:"required,alnum_id" example:"John"`
	UserEmail      *string `json:"userEmail" validate:"required,email_address" example:"john@gmail.com"`
	BrandCar       *string `json:"brandCar" validate:"required,brand" example:"Toyota"`
	GraduationYear *int    `json:"graduationYear" validate:"required,year" example:"2017"`
	Model          *string `json:"model" validate:"required,model" example:"Corolla"`
	CarVinCode     *string `json:"carVinCode" validate:"required,alnum_id" example:"JTDBR32E720123456"`
}

func FromUserCar(c domain.UserCar) UserCar {
	return UserCar{
		ID:             ptr(c.ID),
		UserName:       ptr(c.UserName),
		UserEmail:      ptr(c.UserEmail),
		BrandCar:       ptr(c.BrandCar),
		GraduationYear: ptr(c.GraduationYear),
		Model:          ptr(c.Model),
		CarVinCode:     ptr(c.CarVinCode),
	}
}

func FromUserCars(cars []domain.UserCar) []UserCar {
	return mapAll(cars, FromUserCar)
}

func (c UserCar) ToEntity() domain.UserCar {
	return domain.UserCar{
		UserName:       deref(c.UserName),
		UserEmail:      deref(c.UserEmail),
		BrandCar:       deref(c.BrandCar),
		GraduationYear: deref(c.GraduationYear),
		Model:          deref(c.Model),
		CarVinCode:     deref(c.CarVinCode),
	}
}
