package service

import (
	"strings"
	"time"

	"github.com/aulaview/aulaview-backend/internal/model"
	"github.com/aulaview/aulaview-backend/internal/upstream"
)

const missingField = "N/A"

// normalizeBatch converts raw lesson records into Lessons, dropping records
// whose timestamps are missing or unparseable. One bad record never fails
// the batch.
func (s *LessonService) normalizeBatch(raws []upstream.RawLesson, classroomID string) []model.Lesson {
	lessons := make([]model.Lesson, 0, len(raws))
	for _, raw := range raws {
		lesson, ok := s.normalizeLesson(raw, classroomID)
		if !ok {
			continue
		}
		lessons = append(lessons, lesson)
	}
	return lessons
}

// normalizeLesson builds one canonical Lesson. Only the two timestamps are
// required; every other field degrades to a default. classroomID is the
// requested classroom, used for the room name fallback when the record
// carries no room entry of its own.
func (s *LessonService) normalizeLesson(raw upstream.RawLesson, classroomID string) (model.Lesson, bool) {
	start, err := parseTimestamp(raw.DataInizio)
	if err != nil {
		s.log.Debug().Str("value", raw.DataInizio).Msg("dropping lesson with bad start timestamp")
		return model.Lesson{}, false
	}
	end, err := parseTimestamp(raw.DataFine)
	if err != nil {
		s.log.Debug().Str("value", raw.DataFine).Msg("dropping lesson with bad end timestamp")
		return model.Lesson{}, false
	}

	return model.Lesson{
		StartTime:     start,
		EndTime:       end,
		LessonName:    lessonName(raw.Evento),
		Instructor:    instructorName(raw.Docenti),
		ClassroomName: s.roomName(raw.Aule, classroomID),
	}, true
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

func lessonName(event *upstream.RawEvent) string {
	if event == nil || len(event.DettagliDidattici) == 0 {
		return missingField
	}
	if name := strings.TrimSpace(event.DettagliDidattici[0].Nome); name != "" {
		return name
	}
	return missingField
}

// instructorName joins the trimmed first and last name of the first listed
// instructor.
func instructorName(teachers []upstream.RawTeacher) string {
	if len(teachers) == 0 {
		return missingField
	}
	first := strings.TrimSpace(teachers[0].Nome)
	last := strings.TrimSpace(teachers[0].Cognome)
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return missingField
	}
	return name
}

// roomName resolves in order: the record's own room description, the
// directory's id→name map, a synthetic "Room <id>" placeholder. Never empty.
func (s *LessonService) roomName(rooms []upstream.RawRoom, classroomID string) string {
	roomID := classroomID
	if len(rooms) > 0 {
		if desc := strings.TrimSpace(rooms[0].Descrizione); desc != "" {
			return desc
		}
		if rooms[0].ID != "" {
			roomID = rooms[0].ID
		}
	}
	return s.dir.DisplayName(roomID)
}
