package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eloqagency/website/internal/components"
	"github.com/eloqagency/website/internal/contact"
	"github.com/eloqagency/website/pkg/apperror"
)

type contactRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactResponse struct {
	Status string `json:"status"`
}

// SubmitContact relays the footer form and redirects back with the outcome
// in ?contact=.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	err := h.contact.Submit(r.Context(), contact.Message{
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	})

	status := components.ContactSent
	switch {
	case contact.IsValidation(err):
		status = components.ContactInvalid
	case err != nil:
		status = components.ContactError
	}

	http.Redirect(w, r, "/?contact="+status+"#contact", http.StatusSeeOther)
}

// ContactAPI is the JSON counterpart of SubmitContact.
func (h *Handler) ContactAPI(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewBadRequest("request body must be JSON with email and message fields"))
		return
	}

	err := h.contact.Submit(r.Context(), contact.Message{Email: req.Email, Message: req.Message})
	switch {
	case contact.IsValidation(err):
		apperror.WriteJSON(w, h.log, validationError(err))
		return
	case err != nil:
		apperror.WriteJSON(w, h.log, apperror.NewInternal("message could not be delivered", err))
		return
	}

	writeJSON(w, http.StatusAccepted, contactResponse{Status: components.ContactSent})
}

func validationError(err error) *apperror.Error {
	details := map[string]any{}
	switch {
	case errors.Is(err, contact.ErrInvalidEmail):
		details["email"] = "must be a valid address"
	case errors.Is(err, contact.ErrEmptyMessage):
		details["message"] = "is required"
	case errors.Is(err, contact.ErrMessageTooLong):
		details["message"] = "is too long"
	}
	return apperror.NewValidation("invalid contact message", details)
}
