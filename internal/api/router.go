package api

import (
	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/gin-gonic/gin"
)

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h *RoomHandler, issuer *TokenIssuer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	router.GET(constants.RouteVersion, Version)
	router.GET(constants.RouteHealth, Health)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteHelp, h.Help)
		apiRoutes.GET(constants.RouteSkills, h.ListSkills)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(AuthRequired(issuer))

		protected.POST(constants.RouteRoomStart, h.Start)
		protected.POST(constants.RouteRoomReset, h.Reset)
		protected.GET(constants.RouteRoom, h.GetRoom)
		protected.DELETE(constants.RouteRoom, h.DeleteRoom)
		protected.GET(constants.RouteRoomSeed, h.GetSeed)
		protected.PUT(constants.RouteRoomSeed, h.SetSeed)
		protected.POST(constants.RouteRoomFight, h.SubmitAction)
		protected.GET(constants.RouteRoomFeed, h.Feed)
	}
	return router
}
