package handlers

// QuantityRequest is the body of the increment and decrement endpoints.
type QuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=1,max=100" example:"10"`
}

type SizeResponse struct {
	Name  string `json:"name" example:"BIG"`
	Label string `json:"label" example:"2L"`
}

type StatusResponse struct {
	Status string `json:"status" example:"live"`
}

type ValidationErrorsResponse struct {
	Errors []ValidationError `json:"errors"`
}

type ErrorBody struct {
	Code    string `json:"code" example:"not_found"`
	Message string `json:"message" example:"soda with name \"Mineiro\" not found"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
