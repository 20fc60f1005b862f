package dto

import "userhub/internal/domain"

// User é a representação de transferência de domain.User.
type User struct {
	ID    *int64  `json:"id" example:"1"`
	Name  *string `json:"name" validate:"required,person_name" example:"John"`
	Age   *int    `json:"age" validate:"required,gt=0,lt=120" example:"30"`
	Email *string `json:"email" validate:"required,email_address" example:"john@gmail.com"`
	Phone *string `json:"phone" validate:"required,phone" example:"+380978657654"`
}

// UserFilter espelha os parâmetros de query de /users/filter. Todos opcionais.
type UserFilter struct {
	Name  *string `json:"name" validate:"omitempty,person_name"`
	Age   *int    `json:"age" validate:"omitempty,gt=0,lt=120"`
	Email *string `json:"email" validate:"omitempty,email_address"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
}

// CountResponse é o corpo de /users/count.
type CountResponse struct {
	Count int64 `json:"count" example:"3"`
}

func FromUser(u domain.User) User {
	return User{
		ID:    ptr(u.ID),
		Name:  ptr(u.Name),
		Age:   ptr(u.Age),
		Email: ptr(u.Email),
		Phone: ptr(u.Phone),
	}
}

func FromUsers(users []domain.User) []User {
	return mapAll(users, FromUser)
}

// ToEntity converte para a entidade. O id nunca vem do cliente.
func (u User) ToEntity() domain.User {
	return domain.User{
		Name:  deref(u.Name),
		Age:   deref(u.Age),
		Email: deref(u.Email),
		Phone: deref(u.Phone),
	}
}

func (f UserFilter) ToEntity() domain.UserFilter {
	return domain.UserFilter{
		Name:  f.Name,
		Age:   f.Age,
		Email: f.Email,
		Phone: f.Phone,
	}
}
