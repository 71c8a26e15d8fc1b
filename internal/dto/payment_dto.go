package dto

type SubmitPaymentRequest struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PlanType   string `json:"plan_type"`
	Screenshot string `json:"screenshot"`
}

type SubmitPaymentResponse struct {
	Success   bool   `json:"success"`
	RequestID uint   `json:"request_id"`
	Message   string `json:"message"`
}

type GrantAccessRequest struct {
	Email    string `json:"email"`
	PlanType string `json:"plan_type"`
}
