package models

// ScheduleDetails describes when an activity meets. Times are zero-padded
// 24-hour "HH:MM" strings, matching the seeded documents.
type ScheduleDetails struct {
	Days      []string `bson:"days" json:"days"`
	StartTime string   `bson:"start_time" json:"start_time"`
	EndTime   string   `bson:"end_time" json:"end_time"`
}

// Activity represents an extracurricular activity document. The name doubles
// as the document id; listings key activities by name, so the name is not
// repeated inside the JSON body.
type Activity struct {
	Name            string           `bson:"_id" json:"-"`
	Description     string           `bson:"description,omitempty" json:"description,omitempty"`
	Schedule        string           `bson:"schedule,omitempty" json:"schedule,omitempty"`
	ScheduleDetails *ScheduleDetails `bson:"schedule_details,omitempty" json:"schedule_details,omitempty"`
	MaxParticipants int              `bson:"max_participants,omitempty" json:"max_participants,omitempty"`
	Participants    []string         `bson:"participants" json:"participants"`
}
