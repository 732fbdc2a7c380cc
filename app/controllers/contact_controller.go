// Package controllers wires HTTP requests to services: decode, validate,
// call, respond. No business logic lives here.
package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webnexa/api/app/services"
	"github.com/webnexa/api/pkg/bind"
	"github.com/webnexa/api/pkg/response"
)

type ContactController struct {
	service *services.InquiryService
}

func NewContactController(service *services.InquiryService) *ContactController {
	return &ContactController{service: service}
}

// Only presence is enforced on the public form: the admin inbox is the
// place to judge content, not the submit endpoint.
type submitInquiryRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message" validate:"required"`
}

// Submit handles the public contact form.
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitInquiryRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	inquiry, err := c.service.Submit(r.Context(), services.SubmitInquiryInput{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Service: body.Service,
		Message: body.Message,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, "Inquiry submitted successfully", inquiry)
}

// List returns every inquiry for the admin inbox, newest first.
func (c *ContactController) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := c.service.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, inquiries)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an inquiry to a new triage status. Updating an id that
// no longer exists still succeeds, with a null record in the payload.
func (c *ContactController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body updateStatusRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	inquiry, err := c.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		response.FromError(w, err)
		return
	}

	if inquiry == nil {
		response.SuccessMessage(w, "Inquiry updated", nil)
		return
	}
	response.SuccessMessage(w, "Inquiry updated", inquiry)
}

// Delete removes an inquiry. Safe to call twice.
func (c *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}
	response.SuccessMessage(w, "Inquiry deleted", nil)
}
