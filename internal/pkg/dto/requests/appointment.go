package requests

type CreateAppointmentRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Age             int    `json:"age" validate:"required,gt=0,lte=150"`
	ContactNumber   string `json:"contact_number" validate:"required,phone_digits"`
	Date            string `json:"date" validate:"required,date_mmddyyyy"`
	Time            string `json:"time" validate:"required,time_hhmm"`
	AppointmentType string `json:"appointment_type,omitempty" validate:"omitempty,oneof='New Consultation' Follow-Up 'Routine Checkup' Procedure Teleconsultation"`
	Reason          string `json:"reason,omitempty"`
	Urgency         string `json:"urgency,omitempty" validate:"omitempty,oneof=Routine Urgent Emergency"`
	Doctor          string `json:"doctor,omitempty"`
	Comments        string `json:"comments,omitempty"`
}

type UpdateAppointmentRequest struct {
	FirstName       string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName        string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Age             int    `json:"age,omitempty" validate:"omitempty,gt=0,lte=150"`
	ContactNumber   string `json:"contact_number,omitempty" validate:"omitempty,phone_digits"`
	Date            string `json:"date,omitempty" validate:"omitempty,date_mmddyyyy"`
	Time            string `json:"time,omitempty" validate:"omitempty,time_hhmm"`
	AppointmentType string `json:"appointment_type,omitempty" validate:"omitempty,oneof='New Consultation' Follow-Up 'Routine Checkup' Procedure Teleconsultation"`
	Reason          string `json:"reason,omitempty"`
	Urgency         string `json:"urgency,omitempty" validate:"omitempty,oneof=Routine Urgent Emergency"`
	Doctor          string `json:"doctor,omitempty"`
	Comments        string `json:"comments,omitempty"`
}

// ListAppointmentsQuery carries the list-endpoint filters parsed from the URL.
type ListAppointmentsQuery struct {
	FromDate string `validate:"omitempty,date_mmddyyyy"`
	ToDate   string `validate:"omitempty,date_mmddyyyy"`
	Name     string
	Doctor   string
	Type     string `validate:"omitempty,oneof='New Consultation' Follow-Up 'Routine Checkup' Procedure Teleconsultation"`
	Urgency  string `validate:"omitempty,oneof=Routine Urgent Emergency"`
	Page     int
	PageSize int
}
