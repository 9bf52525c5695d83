package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"incotermFinder/domain"
	"incotermFinder/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type IncotermService interface {
	GetAllIncoterms(ctx context.Context, mode string) ([]domain.Incoterm, error)
	GetIncotermByCode(ctx context.Context, code string) (domain.Incoterm, error)
	CompareIncoterms(ctx context.Context, codes []string) (domain.Comparison, error)
}

type IncotermHandler struct {
	incotermService IncotermService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewIncotermHandler(incotermService IncotermService, timeout time.Duration) *IncotermHandler {
	return &IncotermHandler{
		incotermService: incotermService,
		validator:       validator.New(),
		timeout:         timeout,
	}
}

type ListIncotermsQuery struct {
	Mode string `query:"mode" validate:"omitempty,oneof=sea any"`
}

type CompareIncotermsQuery struct {
	Items string `query:"items" validate:"required"`
}

// GET /api/v1/incoterms?mode=sea
func (h *IncotermHandler) GetAllIncoterms(c echo.Context) error {
	var q ListIncotermsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	incoterms, err := h.incotermService.GetAllIncoterms(ctx, q.Mode)
	if err != nil {
		logger.Error("Failed to find all incoterms", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(incoterms))
}

// GET /api/v1/incoterms/:code
func (h *IncotermHandler) GetIncotermByCode(c echo.Context) error {
	code := c.Param("code")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	incoterm, err := h.incotermService.GetIncotermByCode(ctx, code)
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(incoterm))
}

// GET /api/v1/incoterms/compare?items=FOB,FCA
func (h *IncotermHandler) CompareIncoterms(c echo.Context) error {
	var q CompareIncotermsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	comparison, err := h.incotermService.CompareIncoterms(ctx, strings.Split(q.Items, ","))
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(comparison))
}
