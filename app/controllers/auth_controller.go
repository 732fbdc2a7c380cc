package controllers

import (
	"net/http"

	"github.com/webnexa/api/app/services"
	"github.com/webnexa/api/pkg/bind"
	"github.com/webnexa/api/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// Register creates the admin account.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	// The account itself stays out of the response body.
	if _, err := c.service.Register(r.Context(), body.Username, body.Password); err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, "Admin registered successfully", nil)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, admin, err := c.service.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessMessage(w, "Login successful", map[string]interface{}{
		"token": token,
		"admin": admin,
	})
}
