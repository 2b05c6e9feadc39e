package routers

import (
	"medintake-service/internal/app/services/visits"

	"github.com/go-chi/chi/v5"
)

func attachVisitRoutes(router chi.Router, visitController *visits.VisitController) {
	router.Post("/", visitController.CreateVisit)
	router.Get("/", visitController.ListVisits)
	router.Get("/{visit_id}", visitController.GetVisit)
	router.Put("/{visit_id}", visitController.UpdateVisit)
	router.Delete("/{visit_id}", visitController.DeleteVisit)
}
