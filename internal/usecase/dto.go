package usecase

type SubmitEnquiryInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Institution string `json:"institution"`
	Message     string `json:"message"`
	Role        string `json:"role"`
}

type SubmitEnquiryOutput struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}
