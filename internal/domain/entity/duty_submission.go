package entity

import "time"

// Duty submission outcomes
const (
	SubmissionCompleted = "COMPLETED"
	SubmissionRejected  = "REJECTED"
	SubmissionFailed    = "FAILED"
)

// DutySubmission records one create-duty request and how it ended
type DutySubmission struct {
	ID            string    `bson:"_id,omitempty"`
	PersonName    string    `bson:"personName"`
	Rank          string    `bson:"rank"`
	DutyTitle     string    `bson:"dutyTitle"`
	DutyStartDate time.Time `bson:"dutyStartDate"`
	Status        string    `bson:"status"`
	ErrorKind     string    `bson:"errorKind,omitempty"`
	ErrorDetail   string    `bson:"errorDetail,omitempty"`
	DutyID        *uint     `bson:"dutyId,omitempty"`
	ReceivedAt    time.Time `bson:"receivedAt"`
	ProcessedAt   time.Time `bson:"processedAt"`
}
