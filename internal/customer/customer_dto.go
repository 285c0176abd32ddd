package customer

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

func mapToResponse(c Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Mobile:  c.Mobile,
		Address: c.Address,
		Email:   c.Email,
	}
}

func mapToListResponse(customers []Customer) []CustomerResponse {
	resp := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		resp[i] = mapToResponse(c)
	}
	return resp
}
