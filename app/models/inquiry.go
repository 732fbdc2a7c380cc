// Package models defines the documents persisted by the store.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry statuses. Every inquiry starts as StatusNew; admins move it
// forward as they follow up.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusCompleted = "completed"
)

// InquiryStatuses lists the allowed values for Inquiry.Status.
var InquiryStatuses = []string{StatusNew, StatusContacted, StatusCompleted}

// Inquiry is a contact-form submission awaiting admin follow-up.
type Inquiry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"              json:"name"`
	Email       string             `bson:"email"             json:"email"`
	Phone       string             `bson:"phone,omitempty"   json:"phone,omitempty"`
	Service     string             `bson:"service,omitempty" json:"service,omitempty"`
	Message     string             `bson:"message"           json:"message"`
	Status      string             `bson:"status"            json:"status"`
	SubmittedAt time.Time          `bson:"submittedAt"       json:"submittedAt"`
}

// ValidStatus reports whether s is one of the enumerated inquiry statuses.
func ValidStatus(s string) bool {
	for _, v := range InquiryStatuses {
		if s == v {
			return true
		}
	}
	return false
}
