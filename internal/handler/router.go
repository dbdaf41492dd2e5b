package handler

import (
	"github.com/gorilla/mux"

	"schooladmin/internal/model"
	"schooladmin/internal/service"
)

// Deps carries the services the API layer serves.
type Deps struct {
	Students   *service.StudentService
	Teachers   *service.Resource[model.Teacher]
	Principals *service.Resource[model.Principal]
	Superusers *service.Resource[model.Superuser]
	Parents    *service.ParentService
	Marks      *service.MarkService
	Attendance *service.AttendanceService
	Uploads    *service.UploadService
}

// NewRouter builds the full REST route table. Static file serving is mounted
// by the caller so tests can exercise the API without a public directory.
func NewRouter(d Deps) *mux.Router {
	r := mux.NewRouter()

	NewStudentHandler(d.Students, d.Uploads).Register(r)
	NewTeacherHandler(d.Teachers, d.Uploads).Register(r, "/teachers", "/teacher-login")
	NewPrincipalHandler(d.Principals, d.Uploads).Register(r, "/principals", "/principal-login")
	NewSuperuserHandler(d.Superusers, d.Uploads).Register(r, "/superusers", "/superuser-login")
	NewParentHandler(d.Parents).Register(r)
	NewMarkHandler(d.Marks).Register(r)
	NewAttendanceHandler(d.Attendance).Register(r)

	return r
}
