package models

type ReservationStatus string

// A reservation starts pending; confirmed and cancelled are terminal.
// Nothing drives the transitions out of pending yet.
const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	Base          `bson:",inline"`
	DoctorID      string            `bson:"doctorId" json:"doctorId"`
	DoctorName    string            `bson:"doctorName" json:"doctorName"`
	PatientName   string            `bson:"patientName" json:"patientName"`
	Phone         string            `bson:"phone" json:"phone"`
	PreferredDate string            `bson:"preferredDate" json:"preferredDate"`
	PreferredTime string            `bson:"preferredTime,omitempty" json:"preferredTime,omitempty"`
	Note          string            `bson:"note,omitempty" json:"note,omitempty"`
	Status        ReservationStatus `bson:"status" json:"status"`
}

func (r Reservation) WithMeta(b Base) Reservation {
	r.Base = b
	return r
}

type ReservationFilter struct {
	DoctorID string
}
