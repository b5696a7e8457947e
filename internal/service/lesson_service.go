package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aulaview/aulaview-backend/internal/cache"
	"github.com/aulaview/aulaview-backend/internal/config"
	"github.com/aulaview/aulaview-backend/internal/directory"
	"github.com/aulaview/aulaview-backend/internal/model"
	"github.com/aulaview/aulaview-backend/internal/upstream"
)

// Domain Errors
var (
	ErrUnknownFloor = errors.New("unknown building or floor")
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// Fetcher retrieves the raw lesson records of one classroom for one day.
// Satisfied by *upstream.Client.
type Fetcher interface {
	FetchDay(ctx context.Context, classroomID, buildingID, date string) ([]upstream.RawLesson, error)
}

// ClassroomDay is the outcome of a classroom lookup: the filtered, sorted
// lessons plus the resolved display name. An empty Lessons slice means the
// caller should render the no-lessons sentinel with ClassroomName.
type ClassroomDay struct {
	ClassroomName string
	Lessons       []model.Lesson
}

// Empty reports whether the classroom has no lessons for the request.
func (d ClassroomDay) Empty() bool { return len(d.Lessons) == 0 }

// LessonService is the fetch–cache–aggregation engine. It holds no
// request-scoped state; the injected cache store is the only shared mutable
// resource.
type LessonService struct {
	fetcher         Fetcher
	store           cache.Store
	dir             *directory.Directory
	ttl             time.Duration
	boundaryMinutes int
	log             zerolog.Logger
}

// NewLessonService creates a LessonService.
func NewLessonService(
	fetcher Fetcher,
	store cache.Store,
	dir *directory.Directory,
	cfg *config.Config,
	log zerolog.Logger,
) *LessonService {
	return &LessonService{
		fetcher:         fetcher,
		store:           store,
		dir:             dir,
		ttl:             cfg.CacheTTL,
		boundaryMinutes: cfg.PeriodBoundaryMinutes,
		log:             log.With().Str("component", "lesson_service").Logger(),
	}
}

// FetchClassroomLessons returns the lessons of one classroom for a date,
// filtered by period and sorted by start time. An empty date means the
// server-local calendar date of today. Upstream failures are logged and
// reported as an empty day, never as an error; the failed day is not cached
// so the next request retries.
func (s *LessonService) FetchClassroomLessons(ctx context.Context, classroomID, buildingID, date, period string) (ClassroomDay, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return ClassroomDay{}, err
	}

	key := config.CacheKey.ClassroomDayKey(classroomID, date)
	dayLessons, hit := s.store.Get(ctx, key)
	if !hit {
		raws, err := s.fetcher.FetchDay(ctx, classroomID, buildingID, date)
		if err != nil {
			s.logFetchFailure(err, classroomID, date)
			return ClassroomDay{ClassroomName: s.dir.DisplayName(classroomID)}, nil
		}
		dayLessons = s.normalizeBatch(raws, classroomID)
		s.store.Put(ctx, key, dayLessons, s.ttl)
	}

	lessons := s.filterByPeriod(dayLessons, period)
	if len(lessons) == 0 {
		return ClassroomDay{ClassroomName: s.dir.DisplayName(classroomID)}, nil
	}

	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].StartTime.Before(lessons[j].StartTime)
	})
	return ClassroomDay{ClassroomName: s.dir.DisplayName(classroomID), Lessons: lessons}, nil
}

// FetchFloorLessons merges the lessons of every classroom on a building
// floor, sorted by start time with classroom name as tie-break. Classrooms
// without lessons are skipped; a fully empty floor yields an empty list,
// not a sentinel. Unknown building/floor is ErrUnknownFloor.
func (s *LessonService) FetchFloorLessons(ctx context.Context, building string, floor int, date string) ([]model.Lesson, error) {
	refs, ok := s.dir.Lookup(strings.ToUpper(building), floor)
	if !ok {
		return nil, fmt.Errorf("%w: %s floor %d", ErrUnknownFloor, building, floor)
	}

	merged := make([]model.Lesson, 0)
	for _, ref := range refs {
		day, err := s.FetchClassroomLessons(ctx, ref.ClassroomID, ref.BuildingID, date, model.PeriodAll)
		if err != nil {
			return nil, err
		}
		if day.Empty() {
			continue
		}
		merged = append(merged, day.Lessons...)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].StartTime.Equal(merged[j].StartTime) {
			return merged[i].ClassroomName < merged[j].ClassroomName
		}
		return merged[i].StartTime.Before(merged[j].StartTime)
	})
	return merged, nil
}

// resolveDate defaults an empty date to today (server-local) and validates
// the YYYY-MM-DD shape otherwise.
func (s *LessonService) resolveDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return date, nil
}

// filterByPeriod partitions on the configured boundary. The time of day is
// taken in the lesson's own timezone offset. A lesson starting exactly on
// the boundary is an afternoon lesson.
func (s *LessonService) filterByPeriod(lessons []model.Lesson, period string) []model.Lesson {
	if period == "" || period == model.PeriodAll {
		return append([]model.Lesson(nil), lessons...)
	}

	kept := make([]model.Lesson, 0, len(lessons))
	for _, l := range lessons {
		h, m, _ := l.StartTime.Clock()
		morning := h*60+m < s.boundaryMinutes
		if (period == model.PeriodMorning && morning) || (period == model.PeriodAfternoon && !morning) {
			kept = append(kept, l)
		}
	}
	return kept
}

func (s *LessonService) logFetchFailure(err error, classroomID, date string) {
	evt := s.log.Warn().Err(err).Str("classroom_id", classroomID).Str("date", date)
	var ue *upstream.Error
	if errors.As(err, &ue) {
		evt = evt.Str("kind", string(ue.Kind))
	}
	evt.Msg("upstream fetch failed, reporting empty day")
}
