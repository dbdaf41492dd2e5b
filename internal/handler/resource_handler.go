package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"schooladmin/internal/service"
)

const maxUploadSize = 10 << 20 // 10MB

// ResourceHandler serves the list/create/update/get/login routes shared by
// students, teachers, principals and superusers. Only the multipart form
// binding and the login vocabulary differ between the four, so those come in
// as per-entity configuration.
type ResourceHandler[T any] struct {
	svc     *service.Resource[T]
	uploads *service.UploadService

	label    string // "Student", "Teacher", ... for error messages
	loginKey string // request field carrying the secondary login id
	invalid  string // invalid-credentials message

	bind   func(r *http.Request, img string) T
	fields func(r *http.Request) map[string]any
}

// Register mounts the five routes under base, plus the entity's login path.
func (h *ResourceHandler[T]) Register(r *mux.Router, base, loginPath string) {
	r.HandleFunc(base, h.List).Methods("GET")
	r.HandleFunc(base, h.Create).Methods("POST")
	r.HandleFunc(base+"/{id}", h.Get).Methods("GET")
	r.HandleFunc(base+"/{id}", h.Update).Methods("PUT")
	r.HandleFunc(loginPath, h.Login).Methods("POST")
}

func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching "+h.label+" records")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, h.label+" not found")
		return
	}
	record, err := h.svc.Get(id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.label+" not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching "+h.label+" details")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	img, ok := h.saveUpload(w, r)
	if !ok {
		return
	}

	record := h.bind(r, img)
	if err := h.svc.Create(&record); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create "+h.label)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, h.label+" not found")
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	fields := h.fields(r)
	if img, ok := h.saveUpload(w, r); !ok {
		return
	} else if img != "" {
		// only replace the stored image path when a new file arrived
		fields["img"] = img
	}

	record, err := h.svc.Update(id, fields)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.label+" not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update "+h.label)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *ResourceHandler[T]) Login(w http.ResponseWriter, r *http.Request) {
	var creds map[string]string
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.svc.Login(creds["name"], creds[h.loginKey])
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusBadRequest, h.invalid)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred during the login process")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// saveUpload stores the optional img file. The empty path with ok=true means
// no file was attached; ok=false means the write failed and a response has
// already been sent.
func (h *ResourceHandler[T]) saveUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("img")
	if err != nil {
		// http.ErrMissingFile and friends: treat as "no file attached"
		return "", true
	}
	defer file.Close()

	path, err := h.uploads.Save(file, header)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return "", false
	}
	return path, true
}
