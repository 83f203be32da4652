package models

type Slide struct {
	Base        `bson:",inline"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Accent      string `bson:"accent" json:"accent"`
	Image       string `bson:"image" json:"image"`
	CTALabel    string `bson:"ctaLabel" json:"ctaLabel"`
	CTALink     string `bson:"ctaLink" json:"ctaLink"`
	Order       int    `bson:"order" json:"order"`
}

func (s Slide) WithMeta(b Base) Slide {
	s.Base = b
	return s
}

type SlidePatch struct {
	Title       *string
	Description *string
	Accent      *string
	Image       *string
	CTALabel    *string
	CTALink     *string
	Order       *int
}

func (p SlidePatch) Apply(s *Slide) {
	setString(&s.Title, p.Title)
	setString(&s.Description, p.Description)
	setString(&s.Accent, p.Accent)
	setString(&s.Image, p.Image)
	setString(&s.CTALabel, p.CTALabel)
	setString(&s.CTALink, p.CTALink)
	if p.Order != nil {
		s.Order = *p.Order
	}
}
