package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "pestplan/pkg/recommend/repository"
	"pestplan/pkg/recommend/service"
	"pestplan/pkg/recommend/types"
)

type RecCtrl struct {
	svc  service.RecommendService
	recs repo.RecommendRepository
}

func New(svc service.RecommendService, recs repo.RecommendRepository) *RecCtrl {
	return &RecCtrl{svc: svc, recs: recs}
}

func (h *RecCtrl) Recommend(c echo.Context) error {
	res, err := h.svc.Recommend(c.Request().Context(), c.Request().Body)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"status": "fail", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":              "success",
		"pesticides":          res.Pesticides,
		"treatment_schedules": res.Schedules,
	})
}

func (h *RecCtrl) History(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}
	out, err := h.recs.List(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "fail", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "success", "recommendations": out})
}

// statusFor maps the failure kind to an HTTP status. Only client input
// problems are 400; config, provider and unexpected errors are all 500.
func statusFor(err error) int {
	var f *types.Failure
	if errors.As(err, &f) && f.Kind == types.FailInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
