package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Announcement is a school-wide notice. Dates are advisory "YYYY-MM-DD"
// strings; expired announcements are still returned by listings.
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Message        string             `bson:"message" json:"message"`
	ExpirationDate string             `bson:"expiration_date" json:"expiration_date"`
	StartDate      string             `bson:"start_date,omitempty" json:"start_date,omitempty"`
}
