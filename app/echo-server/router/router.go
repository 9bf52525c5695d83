package router

import (
	"incotermFinder/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupIncotermRoutes(api *echo.Group, handler *rest.IncotermHandler) {
	incoterms := api.Group("/incoterms")

	incoterms.GET("", handler.GetAllIncoterms)
	incoterms.GET("/compare", handler.CompareIncoterms)
	incoterms.GET("/:code", handler.GetIncotermByCode)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	api.GET("/wizard/questions", handler.GetQuestions)

	reco := api.Group("/recommendations")
	reco.GET("", handler.RecommendFromQuery)
	reco.POST("", handler.Recommend)
}
