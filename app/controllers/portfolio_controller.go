package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/webnexa/api/app/services"
	"github.com/webnexa/api/pkg/response"
)

// maxLogoBytes caps logo uploads at 5 MB.
const maxLogoBytes = 5 << 20

type PortfolioController struct {
	service *services.PortfolioService
}

func NewPortfolioController(service *services.PortfolioService) *PortfolioController {
	return &PortfolioController{service: service}
}

// List returns the public client showcase.
func (c *PortfolioController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.service.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, entries)
}

// Create stores a new portfolio entry. The body is a free-form JSON object;
// whatever fields the admin posts are what the public listing serves back.
func (c *PortfolioController) Create(w http.ResponseWriter, r *http.Request) {
	var doc map[string]interface{}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := c.service.Create(r.Context(), doc)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, "Client added successfully", entry)
}

// UploadLogo accepts a multipart "logo" file and returns its public URL.
func (c *PortfolioController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes)
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "The logo file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Could not read the logo file")
		return
	}

	url, err := c.service.UploadLogo(r.Context(), header.Filename, content)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, "Logo uploaded", map[string]string{"url": url})
}
