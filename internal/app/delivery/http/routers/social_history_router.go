package routers

import (
	"medintake-service/internal/app/services/socialhistory"

	"github.com/go-chi/chi/v5"
)

func attachSocialHistoryRoutes(router chi.Router, socialHistoryController *socialhistory.SocialHistoryController) {
	router.Post("/{patient_id}/{topic}", socialHistoryController.UpsertTopic)
	router.Put("/{patient_id}/{topic}", socialHistoryController.UpsertTopic)
	router.Get("/{patient_id}/{topic}", socialHistoryController.GetTopic)
	router.Delete("/{patient_id}/{topic}", socialHistoryController.DeleteTopic)
}
