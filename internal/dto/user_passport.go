package dto

import "userhub/internal/domain"

// UserPassport é a representação de transferência de domain.UserPassport.
// dateOfExpire é opcional; quando presente segue dd/mm/yyyy.
type UserPassport struct {
	ID             *int64  `json:"id" example:"1"`
	Name           *string `json:"name" validate:"required,person_name" example:"John"`
	Surname        *string `json:"surname" validate:"required,person_name" example:"Smith"`
	Sex            *string `json:"sex" validate:"required,oneof=Male Female" example:"Male"`
	DateOfBirth    *string `json:"dateOfBirth" validate:"required,date" example:"15/01/1985"`
	Nationality    *string `json:"nationality" validate:"required,nationality" example:"American"`
	DateOfIssue    *string `json:"dateOfIssue" validate:"required,date" example:"12/01/2022"`
	DateOfExpire   *string `json:"dateOfExpire" validate:"omitempty,date" example:"12/01/2032"`
	PassportNumber *int    `json:"passportNumber" validate:"required,passport_number" example:"123456789"`
}

func FromUserPassport(p domain.UserPassport) UserPassport {
	return UserPassport{
		ID:             ptr(p.ID),
		Name:           ptr(p.Name),
		Surname:        ptr(p.Surname),
		Sex:            ptr(p.Sex),
		DateOfBirth:    ptr(p.DateOfBirth),
		Nationality:    ptr(p.Nationality),
		DateOfIssue:    ptr(p.DateOfIssue),
		DateOfExpire:   p.DateOfExpire,
		PassportNumber: ptr(p.PassportNumber),
	}
}

func FromUserPassports(passports []domain.UserPassport) []UserPassport {
	return mapAll(passports, FromUserPassport)
}

func (p UserPassport) ToEntity() domain.UserPassport {
	return domain.UserPassport{
		Name:           deref(p.Name),
		Surname:        deref(p.Surname),
		Sex:            deref(p.Sex),
		DateOfBirth:    deref(p.DateOfBirth),
		Nationality:    deref(p.Nationality),
		DateOfIssue:    deref(p.DateOfIssue),
		DateOfExpire:   p.DateOfExpire,
		PassportNumber: deref(p.PassportNumber),
	}
}
