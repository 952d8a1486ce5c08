package routes

import (
	"trekhub/livefeed"
	"trekhub/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, hub *livefeed.Hub) {
	AddAuthRoutes(router, rateLimiter)
	AddMemberRoutes(router, rateLimiter)
	AddBookingRoutes(router, rateLimiter)
	AddInterviewRoutes(router, rateLimiter)
	AddProductionRoutes(router, rateLimiter)
	AddPackingRoutes(router, rateLimiter)
	AddLogisticsRoutes(router, rateLimiter)
	AddWaypointRoutes(router, rateLimiter)
	AddUserDataRoutes(router, rateLimiter)
	AddAdminRoutes(router, rateLimiter)
	AddDashboardRoutes(router, rateLimiter)
	AddReportRoutes(router, rateLimiter)
	AddLiveFeedRoutes(router, hub)
}
