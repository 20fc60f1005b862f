package domain

// UserHouse representa o endereço residencial de um usuário (tabela user_house).
// O par (HouseNumber, FlatNumber) é a chave natural composta.
type UserHouse struct {
	ID          int64  `json:"id"`
	UserName    string `json:"userName"`
	UserPhone   string `json:"userPhone"`
	Country     string `json:"country"`
	Town        string `json:"town"`
	Address     string `json:"address"`
	HouseNumber int    `json:"houseNumber"`
	FlatNumber  int    `json:"flatNumber"`
}
