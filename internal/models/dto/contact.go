package dto

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
}

type ContactStatusRequest struct {
	Status string `json:"status"`
}
