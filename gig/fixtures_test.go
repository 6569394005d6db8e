package gig

import (
	"time"

	"github.com/google/uuid"

	"github.com/biggrade/biggrade-api/schema"
)

var (
	t0 = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	student = &schema.User{Email: "amy@school.edu", FullName: "Amy", UserType: schema.UserTypeStudent}
	peer    = &schema.User{Email: "ben@school.edu", FullName: "Ben", UserType: schema.UserTypeStudent}
	tutor   = &schema.User{Email: "tara@tutors.io", FullName: "Tara", UserType: schema.UserTypeTutor}
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func openRequest(helpFrom, compensation string) *schema.HelpRequest {
	return &schema.HelpRequest{
		ID:               uuid.New(),
		AuthorEmail:      student.Email,
		AuthorName:       student.FullName,
		Subject:          "math",
		HelpFrom:         helpFrom,
		CompensationType: compensation,
		Status:           schema.HELP_OPEN,
	}
}

func liveRequest(responder *schema.User, compensation string) *schema.HelpRequest {
	req := openRequest(schema.HelpFromAnyone, compensation)
	req.Status = schema.HELP_IN_SESSION
	req.ResponderEmail = strPtr(responder.Email)
	req.ResponderName = strPtr(responder.FullName)
	req.MeetingLink = "https://meet.example.com/abc"
	req.LinkConfirmed = true
	req.SessionStartTime = timePtr(t0)
	return req
}

func completedRequest(responder *schema.User, minutes int) *schema.HelpRequest {
	req := liveRequest(responder, schema.CompensationFree)
	req.Status = schema.HELP_COMPLETED
	req.SessionEndTime = timePtr(t0.Add(time.Duration(minutes) * time.Minute))
	req.SessionDurationMinutes = minutes
	return req
}
