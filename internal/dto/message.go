package dto

// Message é o corpo de sucesso dos endpoints de remoção.
type Message struct {
	Message string `json:"message" example:"User with id 1 was successfully deleted"`
}
