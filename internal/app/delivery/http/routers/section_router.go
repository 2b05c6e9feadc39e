package routers

import (
	"medintake-service/internal/app/services/sections"

	"github.com/go-chi/chi/v5"
)

// POST and PUT are equivalent on every section route: both are full
// sub-document replaces.

func attachContactInfoRoutes(router chi.Router, sectionController *sections.SectionController) {
	router.Post("/{patient_id}", sectionController.UpsertContactInfo)
	router.Put("/{patient_id}", sectionController.UpsertContactInfo)
	router.Get("/{patient_id}", sectionController.GetContactInfo)
	router.Delete("/{patient_id}", sectionController.DeleteContactInfo)
}

func attachInsuranceRoutes(router chi.Router, sectionController *sections.SectionController) {
	router.Post("/{patient_id}", sectionController.UpsertInsurance)
	router.Put("/{patient_id}", sectionController.UpsertInsurance)
	router.Get("/{patient_id}", sectionController.GetInsurance)
	router.Delete("/{patient_id}", sectionController.DeleteInsurance)
}

func attachAllergyRoutes(router chi.Router, sectionController *sections.SectionController) {
	router.Post("/{patient_id}", sectionController.UpsertAllergies)
	router.Put("/{patient_id}", sectionController.UpsertAllergies)
	router.Get("/{patient_id}", sectionController.GetAllergies)
	router.Delete("/{patient_id}", sectionController.DeleteAllergies)
}

func attachFamilyHistoryRoutes(router chi.Router, sectionController *sections.SectionController) {
	router.Post("/{patient_id}", sectionController.UpsertFamilyHistory)
	router.Put("/{patient_id}", sectionController.UpsertFamilyHistory)
	router.Get("/{patient_id}", sectionController.GetFamilyHistory)
	router.Delete("/{patient_id}", sectionController.DeleteFamilyHistory)
}
