package domain

// User representa a entidade do usuário persistida na tabela users.
// email e phone são únicos (garantidos pelo PostgreSQL).
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UserFilter agrupa os critérios opcionais de /users/filter.
// Um usuário é retornado se casar com QUALQUER critério presente (semântica OR);
// critérios ausentes (nil) nunca casam.
type UserFilter struct {
	Name  *string
	Age   *int
	Email *string
	Phone *string
}

// IsEmpty indica se nenhum critério foi informado.
func (f UserFilter) IsEmpty() bool {
	return f.Name == nil && f.Age == nil && f.Email == nil && f.Phone == nil
}
