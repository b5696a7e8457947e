package model

import "time"

// Period buckets used to filter a day's lessons for display.
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodAll       = "all"
)

// NoLessonsMessage is the sentinel message returned for a classroom with an
// empty timetable. It is data, not an error: the HTTP caller still receives
// a well-formed list.
const NoLessonsMessage = "No lessons available"

// Lesson is one scheduled class occurrence. Immutable once built by the
// normalizer; display fields are never empty (they default to "N/A" or a
// synthetic room name).
type Lesson struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	LessonName    string    `json:"lesson_name"`
	Instructor    string    `json:"instructor"`
	ClassroomName string    `json:"classroom_name"`
}

// NoLessonsNotice is the single-element payload returned when a classroom
// has zero lessons on the requested date.
type NoLessonsNotice struct {
	ClassroomName string `json:"classroom_name"`
	Message       string `json:"message"`
}

// LessonRequest is the payload for the classroom lessons endpoint.
type LessonRequest struct {
	Classroom string `json:"classroom" binding:"required"`
	Building  string `json:"building" binding:"required"`
	Date      string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Period    string `json:"period" binding:"omitempty,oneof=morning afternoon all"`
}
