package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aulaview/aulaview-backend/internal/directory"
	"github.com/aulaview/aulaview-backend/internal/model"
	"github.com/aulaview/aulaview-backend/internal/response"
	"github.com/aulaview/aulaview-backend/internal/service"
	"github.com/aulaview/aulaview-backend/internal/validator"
)

type LessonHandler struct {
	lessonService *service.LessonService
	dir           *directory.Directory
}

func NewLessonHandler(lessonService *service.LessonService, dir *directory.Directory) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, dir: dir}
}

// GetLessons godoc
// POST /api/v1/lessons
func (h *LessonHandler) GetLessons(c *gin.Context) {
	var req model.LessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	day, err := h.lessonService.FetchClassroomLessons(c.Request.Context(), req.Classroom, req.Building, req.Date, req.Period)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if day.Empty() {
		response.Success(c, http.StatusOK, []model.NoLessonsNotice{
			{ClassroomName: day.ClassroomName, Message: model.NoLessonsMessage},
		})
		return
	}
	response.Success(c, http.StatusOK, day.Lessons)
}

// GetFloor godoc
// GET /api/v1/floor/:building/:floor?date=YYYY-MM-DD
func (h *LessonHandler) GetFloor(c *gin.Context) {
	floor, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidFloor)
		return
	}

	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
			return
		}
	}

	lessons, err := h.lessonService.FetchFloorLessons(c.Request.Context(), c.Param("building"), floor, date)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFloor) {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownFloor)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if lessons == nil {
		lessons = []model.Lesson{}
	}
	response.Success(c, http.StatusOK, lessons)
}

// GetBuildings godoc
// GET /api/v1/buildings
func (h *LessonHandler) GetBuildings(c *gin.Context) {
	type buildingInfo struct {
		Key    string `json:"key"`
		Floors []int  `json:"floors"`
	}

	keys := h.dir.Buildings()
	buildings := make([]buildingInfo, 0, len(keys))
	for _, key := range keys {
		buildings = append(buildings, buildingInfo{Key: key, Floors: h.dir.Floors(key)})
	}
	response.Success(c, http.StatusOK, gin.H{"buildings": buildings})
}
