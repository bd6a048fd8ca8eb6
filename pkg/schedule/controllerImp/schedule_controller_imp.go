package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "pestplan/pkg/schedule/repository"
)

type SchedCtrl struct{ repo repo.ScheduleRepository }

func New(repo repo.ScheduleRepository) *SchedCtrl { return &SchedCtrl{repo} }

func (h *SchedCtrl) List(c echo.Context) error {
	rid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListByRecommendation(uint(rid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "fail", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "success", "treatment_schedules": out})
}

func (h *SchedCtrl) Patch(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("task_id"))
	var body struct {
		Completed *bool `json:"completed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "fail", "error": "bad json"})
	}
	done := true
	if body.Completed != nil {
		done = *body.Completed
	}
	if err := h.repo.PatchCompleted(uint(tid), done); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "fail", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
