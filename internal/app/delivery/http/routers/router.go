package routers

import (
	"fmt"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/delivery/http/middlewares"
	"medintake-service/internal/app/services/appointments"
	"medintake-service/internal/app/services/patients"
	"medintake-service/internal/app/services/sections"
	"medintake-service/internal/app/services/socialhistory"
	"medintake-service/internal/app/services/visits"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	sectionController *sections.SectionController,
	socialHistoryController *socialhistory.SocialHistoryController,
	visitController *visits.VisitController,
	appointmentController *appointments.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/patient-demographics", func(r chi.Router) {
			attachPatientRoutes(r, patientController)
		})

		r.Route("/contact-info", func(r chi.Router) {
			attachContactInfoRoutes(r, sectionController)
		})

		r.Route("/insurance", func(r chi.Router) {
			attachInsuranceRoutes(r, sectionController)
		})

		r.Route("/allergies", func(r chi.Router) {
			attachAllergyRoutes(r, sectionController)
		})

		r.Route("/family-history", func(r chi.Router) {
			attachFamilyHistoryRoutes(r, sectionController)
		})

		r.Route("/social-history", func(r chi.Router) {
			attachSocialHistoryRoutes(r, socialHistoryController)
		})

		r.Route("/visits", func(r chi.Router) {
			attachVisitRoutes(r, visitController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})
	})
}
