package rest

import (
	"context"
	"net/http"
	"time"

	"incotermFinder/business/recommendation"
	"incotermFinder/domain"
	"incotermFinder/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate              *validator.Validate
		recommendationService RecommendationService
		timeout               time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, answers domain.WizardAnswer) ([]domain.Recommendation, error)
		GetQuestions(ctx context.Context) ([]domain.WizardQuestion, error)
	}

	// Missing fields are left to the engine so they surface as incomplete input.
	RecommendRequest struct {
		Transport      string `json:"transport" validate:"omitempty,oneof=sea air land multi neutral"`
		ShippingParty  string `json:"shipping_party" validate:"omitempty,oneof=seller buyer neutral"`
		Customs        string `json:"customs" validate:"omitempty,oneof=seller buyer neutral"`
		Insurance      string `json:"insurance" validate:"omitempty,oneof=required optional neutral"`
		RiskPreference string `json:"risk_preference" validate:"omitempty,oneof=early middle late"`
	}

	RecommendResponse struct {
		Answers         domain.WizardAnswer     `json:"answers"`
		Recommendations []domain.Recommendation `json:"recommendations"`
		ShareQuery      string                  `json:"share_query"`
	}
)

func NewRecommendationHandler(svc RecommendationService, timeout time.Duration) *RecommendationHandler {
	return &RecommendationHandler{
		validate:              validator.New(),
		recommendationService: svc,
		timeout:               timeout,
	}
}

// GET /api/v1/wizard/questions
func (h *RecommendationHandler) GetQuestions(c echo.Context) error {
	questions, err := h.recommendationService.GetQuestions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(questions))
}

// GET /api/v1/recommendations?t=sea&s=buyer&c=seller&i=optional&r=early
func (h *RecommendationHandler) RecommendFromQuery(c echo.Context) error {
	answers := recommendation.ParseParams(c.QueryParams())
	return h.recommend(c, answers)
}

// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.recommend(c, domain.WizardAnswer{
		Transport:      req.Transport,
		ShippingParty:  req.ShippingParty,
		Customs:        req.Customs,
		Insurance:      req.Insurance,
		RiskPreference: req.RiskPreference,
	})
}

func (h *RecommendationHandler) recommend(c echo.Context, answers domain.WizardAnswer) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendationService.Recommend(ctx, answers)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to recommend incoterms", "trace_id", c.Get("trace_id"), "error", err)
		}
		return c.JSON(status, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendResponse{
		Answers:         answers,
		Recommendations: recs,
		ShareQuery:      recommendation.EncodeParams(answers),
	}))
}
