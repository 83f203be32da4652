package models

import "time"

// Base carries the identity and timestamps shared by every stored record.
type Base struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (b Base) Meta() Base {
	return b
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
