package domain

import "context"

// ContactsTable is the backend table submissions are inserted into.
const ContactsTable = "contacts"

// UnknownRecordID is reported when the backend accepts a row without echoing its id.
const UnknownRecordID = "unknown"

// ContactForm is the raw contact form body as received from the client.
type ContactForm struct {
	Name    string `json:"name" validate:"required,not_blank" example:"Ada"`
	Surname string `json:"surname" validate:"required,not_blank" example:"Lovelace"`
	Email   string `json:"email" validate:"required,email,email_local" example:"ada@example.com"`
	Message string `json:"message" validate:"required,not_blank" example:"Hello"`
}

// ContactSubmission is a validated contact form. It is passed by value and
// never modified after construction.
type ContactSubmission struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactReceipt is the outcome of a stored submission.
type ContactReceipt struct {
	ID         string
	Submission ContactSubmission
}

// ContactEcho is the part of a submission returned to the client.
type ContactEcho struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// Echo returns the fields sent back to the client; the message is not echoed.
func (s ContactSubmission) Echo() ContactEcho {
	return ContactEcho{
		Name:    s.Name,
		Surname: s.Surname,
		Email:   s.Email,
	}
}

// ContactRepository is the storage gateway for submissions.
type ContactRepository interface {
	// Insert stores one submission and returns the backend-assigned id,
	// or "" when the backend did not report one.
	Insert(ctx context.Context, submission ContactSubmission) (string, error)
}

// ContactUsecase defines the contact form operations
type ContactUsecase interface {
	// Submit validates the form and stores it.
	Submit(ctx context.Context, form *ContactForm) (*ContactReceipt, error)
}
