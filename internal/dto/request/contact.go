package request

// ContactRequest is a contact-page message submission.
type ContactRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phone_number" validate:"required,min=10"`
	Subject        string `json:"subject" validate:"required"`
	Message        string `json:"message" validate:"required"`
	RecaptchaToken string `json:"recaptchaToken"`
}
