package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"

	"schooladmin/internal/auth"
	"schooladmin/internal/config"
	"schooladmin/internal/database"
	"schooladmin/internal/handler"
	"schooladmin/internal/model"
	"schooladmin/internal/service"
)

func main() {
	db := database.InitDB()
	verifier := auth.FromMode(config.AuthMode)

	uploads := service.NewUploadService(config.UploadDir)

	r := handler.NewRouter(handler.Deps{
		Students:   service.NewStudentService(db, verifier),
		Teachers:   service.NewResource(db, verifier, func(t *model.Teacher) string { return t.EmpID }),
		Principals: service.NewResource(db, verifier, func(p *model.Principal) string { return p.EmpID }),
		Superusers: service.NewResource(db, verifier, func(s *model.Superuser) string { return s.EmpID }),
		Parents:    service.NewParentService(db, verifier),
		Marks:      service.NewMarkService(db),
		Attendance: service.NewAttendanceService(db),
		Uploads:    uploads,
	})

	// Stored images and the frontend are plain static files. API routes are
	// registered first, so these prefixes only catch what is left over.
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadDir))))
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(config.PublicDir)))

	if err := os.MkdirAll(config.UploadDir, 0755); err != nil {
		log.Fatal("Failed to create uploads directory:", err)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{config.CORSOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Println("Server running on port " + config.Port)
	log.Fatal(http.ListenAndServe(":"+config.Port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
