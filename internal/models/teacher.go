package models

// Teacher is an authentication record keyed by username. Its existence is the
// whole credential check.
type Teacher struct {
	Username    string `bson:"_id" json:"username"`
	DisplayName string `bson:"display_name,omitempty" json:"display_name,omitempty"`
	Role        string `bson:"role,omitempty" json:"role,omitempty"`
}
