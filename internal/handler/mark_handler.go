package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"schooladmin/internal/service"
)

type MarkHandler struct {
	svc *service.MarkService
}

func NewMarkHandler(svc *service.MarkService) *MarkHandler {
	return &MarkHandler{svc: svc}
}

func (h *MarkHandler) Register(r *mux.Router) {
	r.HandleFunc("/save-marks", h.SaveMarks).Methods("POST")
	r.HandleFunc("/marks/{rollno}", h.GetByRoll).Methods("GET")
}

func (h *MarkHandler) SaveMarks(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Marks []service.MarkEntry `json:"marks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.SaveBatch(req.Marks); err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while saving marks")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Marks saved successfully"})
}

func (h *MarkHandler) GetByRoll(w http.ResponseWriter, r *http.Request) {
	mark, err := h.svc.GetByRoll(mux.Vars(r)["rollno"])
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Marks not found for this roll number")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching marks")
		return
	}
	writeJSON(w, http.StatusOK, mark)
}
