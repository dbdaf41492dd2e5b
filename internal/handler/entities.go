package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"schooladmin/internal/model"
	"schooladmin/internal/service"
)

// StudentHandler adds the roll-number projection route on top of the shared
// resource routes.
type StudentHandler struct {
	*ResourceHandler[model.Student]
	svc *service.StudentService
}

func NewStudentHandler(svc *service.StudentService, uploads *service.UploadService) *StudentHandler {
	base := &ResourceHandler[model.Student]{
		svc:      svc.Resource,
		uploads:  uploads,
		label:    "Student",
		loginKey: "rollno",
		invalid:  "Invalid name or roll number",
		bind: func(r *http.Request, img string) model.Student {
			return model.Student{
				Name:    r.FormValue("name"),
				RollNo:  r.FormValue("rollno"),
				Phone:   r.FormValue("phone"),
				Address: r.FormValue("address"),
				Img:     img,
			}
		},
		fields: func(r *http.Request) map[string]any {
			return map[string]any{
				"name":    r.FormValue("name"),
				"rollno":  r.FormValue("rollno"),
				"phone":   r.FormValue("phone"),
				"address": r.FormValue("address"),
			}
		},
	}
	return &StudentHandler{ResourceHandler: base, svc: svc}
}

func (h *StudentHandler) Register(r *mux.Router) {
	h.ResourceHandler.Register(r, "/students", "/login")
	r.HandleFunc("/student-rolls", h.Rolls).Methods("GET")
}

func (h *StudentHandler) Rolls(w http.ResponseWriter, r *http.Request) {
	rolls, err := h.svc.Rolls()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching student roll numbers")
		return
	}
	writeJSON(w, http.StatusOK, rolls)
}

func NewTeacherHandler(svc *service.Resource[model.Teacher], uploads *service.UploadService) *ResourceHandler[model.Teacher] {
	return &ResourceHandler[model.Teacher]{
		svc:      svc,
		uploads:  uploads,
		label:    "Teacher",
		loginKey: "empid",
		invalid:  "Invalid name or employee ID",
		bind: func(r *http.Request, img string) model.Teacher {
			return model.Teacher{
				Name:      r.FormValue("name"),
				EmpID:     r.FormValue("empid"),
				ClsAssign: r.FormValue("cls_assign"),
				Phone:     r.FormValue("phone"),
				Img:       img,
			}
		},
		fields: func(r *http.Request) map[string]any {
			return map[string]any{
				"name":       r.FormValue("name"),
				"empid":      r.FormValue("empid"),
				"cls_assign": r.FormValue("cls_assign"),
				"phone":      r.FormValue("phone"),
			}
		},
	}
}

func NewPrincipalHandler(svc *service.Resource[model.Principal], uploads *service.UploadService) *ResourceHandler[model.Principal] {
	return &ResourceHandler[model.Principal]{
		svc:      svc,
		uploads:  uploads,
		label:    "Principal",
		loginKey: "empid",
		invalid:  "Invalid name or employee ID",
		bind: func(r *http.Request, img string) model.Principal {
			return model.Principal{
				Name:  r.FormValue("name"),
				EmpID: r.FormValue("empid"),
				Phone: r.FormValue("phone"),
				Img:   img,
			}
		},
		fields: func(r *http.Request) map[string]any {
			return map[string]any{
				"name":  r.FormValue("name"),
				"empid": r.FormValue("empid"),
				"phone": r.FormValue("phone"),
			}
		},
	}
}

func NewSuperuserHandler(svc *service.Resource[model.Superuser], uploads *service.UploadService) *ResourceHandler[model.Superuser] {
	return &ResourceHandler[model.Superuser]{
		svc:      svc,
		uploads:  uploads,
		label:    "Superuser",
		loginKey: "empid",
		invalid:  "Invalid name or employee ID",
		bind: func(r *http.Request, img string) model.Superuser {
			return model.Superuser{
				Name:  r.FormValue("name"),
				EmpID: r.FormValue("empid"),
				Phone: r.FormValue("phone"),
				Img:   img,
			}
		},
		fields: func(r *http.Request) map[string]any {
			return map[string]any{
				"name":  r.FormValue("name"),
				"empid": r.FormValue("empid"),
				"phone": r.FormValue("phone"),
			}
		},
	}
}
