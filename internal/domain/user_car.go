package domain

// UserCar representa o carro de um usuário (tabela user_car).
// CarVinCode é a chave natural; UserEmail também é único.
type UserCar struct {
	ID             int64  `json:"id"`
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail"`
	BrandCar       string `json:"brandCar"`
	GraduationYear int    `json:"graduationYear"`
	Model          string `json:"model"`
	CarVinCode     string `json:"carVinCode"`
}
