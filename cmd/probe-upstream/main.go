// probe-upstream fetches one classroom's raw day from the scheduling API and
// prints what the engine would make of it. Debugging aid for new classroom
// IDs and upstream format drift.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/aulaview/aulaview-backend/internal/cache"
	"github.com/aulaview/aulaview-backend/internal/config"
	"github.com/aulaview/aulaview-backend/internal/directory"
	"github.com/aulaview/aulaview-backend/internal/logger"
	"github.com/aulaview/aulaview-backend/internal/service"
	"github.com/aulaview/aulaview-backend/internal/upstream"
)

func main() {
	classroom := flag.String("classroom", "", "classroom ID (required)")
	building := flag.String("building", "", "building ID (required)")
	date := flag.String("date", "", "date as YYYY-MM-DD (default: today)")
	period := flag.String("period", "all", "period filter: morning, afternoon, all")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if *classroom == "" || *building == "" {
		log.Fatal().Msg("both -classroom and -building are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fetcher, err := upstream.New(cfg.LessonAPIBaseURL, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid LESSON_API_BASE_URL")
	}

	// Memory store so a probe never touches the shared cache.
	lessonService := service.NewLessonService(fetcher, cache.NewMemory(cfg.CacheTTL), directory.Campus(), cfg, log)

	day, err := lessonService.FetchClassroomLessons(ctx, *classroom, *building, *date, *period)
	if err != nil {
		log.Fatal().Err(err).Msg("Fetch failed")
	}

	if day.Empty() {
		fmt.Printf("%s: no lessons\n", day.ClassroomName)
		return
	}

	fmt.Printf("%s: %d lesson(s)\n", day.ClassroomName, len(day.Lessons))
	for _, l := range day.Lessons {
		fmt.Printf("  %s – %s  %-40s  %s\n",
			l.StartTime.Format("15:04"),
			l.EndTime.Format("15:04"),
			l.LessonName,
			l.Instructor,
		)
	}
}
