package routers

import (
	"medintake-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.ListAppointments)
	router.Get("/{appointment_id}", appointmentController.GetAppointment)
	router.Put("/{appointment_id}", appointmentController.UpdateAppointment)
	router.Delete("/{appointment_id}", appointmentController.DeleteAppointment)
}
