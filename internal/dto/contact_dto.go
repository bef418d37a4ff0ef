package dto

import "strings"

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *ContactRequest) Validate() []FieldError {
	var errs []FieldError
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)

	if len(r.Name) < 2 || len(r.Name) > 50 {
		errs = append(errs, FieldError{"name", "Name must be between 2 and 50 characters"})
	}
	if !ValidEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Please provide a valid email"})
	}
	if len(r.Subject) < 5 || len(r.Subject) > 100 {
		errs = append(errs, FieldError{"subject", "Subject must be between 5 and 100 characters"})
	}
	if len(r.Message) < 10 || len(r.Message) > 1000 {
		errs = append(errs, FieldError{"message", "Message must be between 10 and 1000 characters"})
	}
	return errs
}
