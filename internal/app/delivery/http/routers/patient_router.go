package routers

import (
	"medintake-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.ListPatients)
	router.Get("/file/{file_id}", patientController.FetchAttachment)
	router.Get("/{patient_id}", patientController.GetPatient)
	router.Put("/{patient_id}", patientController.UpdatePatient)
	router.Delete("/{patient_id}", patientController.DeletePatient)
}
