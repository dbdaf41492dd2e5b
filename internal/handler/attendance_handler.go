package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"schooladmin/internal/service"
)

type AttendanceHandler struct {
	svc *service.AttendanceService
}

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) Register(r *mux.Router) {
	r.HandleFunc("/save-attendance", h.SaveAttendance).Methods("POST")
	r.HandleFunc("/attendance/{rollno}", h.GetByRoll).Methods("GET")
}

func (h *AttendanceHandler) SaveAttendance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date              string                     `json:"date"`
		AttendanceRecords []service.AttendanceRecord `json:"attendanceRecords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.svc.SaveBatch(req.Date, req.AttendanceRecords)
	if errors.Is(err, service.ErrBadDate) {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to save attendance"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Attendance saved successfully!",
		"savedRecords": saved,
	})
}

func (h *AttendanceHandler) GetByRoll(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetByRoll(mux.Vars(r)["rollno"])
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No attendance records found for this roll number")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching attendance records")
		return
	}
	writeJSON(w, http.StatusOK, records)
}
