package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"schooladmin/internal/model"
	"schooladmin/internal/service"
)

type ParentHandler struct {
	svc *service.ParentService
}

func NewParentHandler(svc *service.ParentService) *ParentHandler {
	return &ParentHandler{svc: svc}
}

func (h *ParentHandler) Register(r *mux.Router) {
	r.HandleFunc("/parent-signup", h.Signup).Methods("POST")
	r.HandleFunc("/parent-login", h.Login).Methods("POST")
	r.HandleFunc("/parents", h.List).Methods("GET")
	r.HandleFunc("/parent/{id}", h.Get).Methods("GET")
}

func (h *ParentHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var parent model.Parent
	if err := json.NewDecoder(r.Body).Decode(&parent); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	parent.ID = 0

	err := h.svc.Signup(&parent)
	if errors.Is(err, service.ErrDuplicateParent) {
		writeError(w, http.StatusBadRequest, "Parent with this student roll number already exists.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, parent)
}

func (h *ParentHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Name        string `json:"name"`
		StudentRoll string `json:"Studntroll"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.svc.Login(creds.Name, creds.StudentRoll)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Invalid name or student roll number")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint{"id": id})
}

func (h *ParentHandler) List(w http.ResponseWriter, r *http.Request) {
	parents, err := h.svc.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, parents)
}

func (h *ParentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Parent not found")
		return
	}
	parent, err := h.svc.Get(id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Parent not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, parent)
}
