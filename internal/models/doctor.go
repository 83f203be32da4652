package models

type Doctor struct {
	Base        `bson:",inline"`
	Name        string   `bson:"name" json:"name"`
	Specialty   string   `bson:"specialty" json:"specialty"`
	Phone       string   `bson:"phone" json:"phone"`
	Address     string   `bson:"address" json:"address"`
	Province    string   `bson:"province" json:"province"`
	City        string   `bson:"city" json:"city"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	MapURL      string   `bson:"mapUrl,omitempty" json:"mapUrl,omitempty"`
	Latitude    *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Photo       string   `bson:"photo,omitempty" json:"photo,omitempty"`
}

func (d Doctor) WithMeta(b Base) Doctor {
	d.Base = b
	return d
}

// DoctorPatch lists the fields an update may change; nil fields are kept.
type DoctorPatch struct {
	Name        *string
	Specialty   *string
	Phone       *string
	Address     *string
	Province    *string
	City        *string
	Description *string
	MapURL      *string
	Latitude    *float64
	Longitude   *float64
	Photo       *string
}

func (p DoctorPatch) Apply(d *Doctor) {
	setString(&d.Name, p.Name)
	setString(&d.Specialty, p.Specialty)
	setString(&d.Phone, p.Phone)
	setString(&d.Address, p.Address)
	setString(&d.Province, p.Province)
	setString(&d.City, p.City)
	setString(&d.Description, p.Description)
	setString(&d.MapURL, p.MapURL)
	setString(&d.Photo, p.Photo)
	if p.Latitude != nil {
		d.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		d.Longitude = p.Longitude
	}
}

type DoctorFilter struct {
	Province string
	City     string
}
