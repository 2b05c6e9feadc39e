package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is an independent booking record. Patient details are captured
// as values at booking time, not looked up from the patient aggregate.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName       string             `bson:"first_name" json:"first_name"`
	LastName        string             `bson:"last_name" json:"last_name"`
	Age             int                `bson:"age" json:"age"`
	ContactNumber   string             `bson:"contact_number" json:"contact_number"`
	Date            string             `bson:"date" json:"date"`
	Time            string             `bson:"time" json:"time"`
	AppointmentType string             `bson:"appointment_type,omitempty" json:"appointment_type,omitempty"`
	Reason          string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Urgency         string             `bson:"urgency,omitempty" json:"urgency,omitempty"`
	Doctor          string             `bson:"doctor,omitempty" json:"doctor,omitempty"`
	Comments        string             `bson:"comments,omitempty" json:"comments,omitempty"`
	// ScheduledOn mirrors Date as a real timestamp so date-range filters can
	// run in the database; Date stays the MM-DD-YYYY wire format.
	ScheduledOn time.Time `bson:"scheduled_on" json:"-"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
