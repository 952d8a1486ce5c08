package routes

import (
	"trekhub/admin"
	"trekhub/auth"
	"trekhub/bookings"
	"trekhub/dashboard"
	"trekhub/interviews"
	"trekhub/livefeed"
	"trekhub/logistics"
	"trekhub/members"
	"trekhub/middleware"
	"trekhub/packing"
	"trekhub/production"
	"trekhub/ratelim"
	"trekhub/reports"
	"trekhub/userdata"
	"trekhub/waypoints"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/request-code", rateLimiter.Limit(auth.RequestCode))
	router.POST("/api/auth/verify-code", rateLimiter.Limit(auth.VerifyCode))
	router.GET("/api/auth/session", rateLimiter.Limit(auth.Session))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddMemberRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/members", rateLimiter.Limit(middleware.Authenticate(members.CreateMember)))
	router.POST("/api/members/bulk", rateLimiter.Limit(middleware.AdminOnly(members.BulkImportMembers)))
	router.GET("/api/members", middleware.Authenticate(members.GetMembers))
	router.GET("/api/members/prioritized", middleware.Authenticate(members.GetMembersPrioritized))
	router.GET("/api/members/member/:id", middleware.Authenticate(members.GetMember))
	router.PUT("/api/members/member/:id", rateLimiter.Limit(middleware.Authenticate(members.UpdateMember)))
}

func AddBookingRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/bookings", rateLimiter.Limit(middleware.Authenticate(bookings.CreateBooking)))
	router.GET("/api/bookings/member/:memberid", middleware.Authenticate(bookings.GetBookingsForMember))
	router.PUT("/api/bookings/:id", rateLimiter.Limit(middleware.Authenticate(bookings.UpdateBooking)))
	router.DELETE("/api/bookings/:id", rateLimiter.Limit(middleware.Authenticate(bookings.DeleteBooking)))
}

func AddInterviewRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/interviews/schedules", rateLimiter.Limit(middleware.Authenticate(interviews.CreateSchedule)))
	router.GET("/api/interviews/schedules", middleware.Authenticate(interviews.GetSchedules))
	router.GET("/api/interviews/schedules/:id", middleware.Authenticate(interviews.GetSchedule))
	router.PUT("/api/interviews/schedules/:id", rateLimiter.Limit(middleware.Authenticate(interviews.UpdateSchedule)))
	router.POST("/api/interviews/schedules/:id/confirm", middleware.Authenticate(interviews.ConfirmSchedule))
	router.POST("/api/interviews/schedules/:id/start", middleware.Authenticate(interviews.StartSchedule))
	router.POST("/api/interviews/schedules/:id/complete", middleware.Authenticate(interviews.CompleteSchedule))
	router.POST("/api/interviews/schedules/:id/fail", middleware.Authenticate(interviews.FailSchedule))
	router.POST("/api/interviews/schedules/:id/reschedule", middleware.Authenticate(interviews.RescheduleSchedule))

	router.POST("/api/interviews/templates", rateLimiter.Limit(middleware.Authenticate(interviews.CreateTemplate)))
	router.GET("/api/interviews/templates", middleware.Authenticate(interviews.GetTemplates))
	router.GET("/api/interviews/templates/:id", middleware.Authenticate(interviews.GetTemplate))
	router.PUT("/api/interviews/templates/:id", rateLimiter.Limit(middleware.Authenticate(interviews.UpdateTemplate)))

	router.POST("/api/interviews/subjects", rateLimiter.Limit(middleware.Authenticate(interviews.CreateSubject)))
	router.GET("/api/interviews/subjects", middleware.Authenticate(interviews.GetSubjects))

	router.POST("/api/interviews/plans", rateLimiter.Limit(middleware.Authenticate(interviews.CreateDailyPlan)))
	router.GET("/api/interviews/plans/:date", middleware.Authenticate(interviews.GetDailyPlan))
	router.PUT("/api/interviews/plans/:id", rateLimiter.Limit(middleware.Authenticate(interviews.UpdateDailyPlan)))

	router.GET("/api/interviews/coverage", middleware.Authenticate(interviews.GetCoverage))
}

func AddProductionRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/equipment", rateLimiter.Limit(middleware.Authenticate(production.CreateEquipment)))
	router.GET("/api/equipment", middleware.Authenticate(production.GetEquipment))
	router.PUT("/api/equipment/:id", rateLimiter.Limit(middleware.Authenticate(production.UpdateEquipment)))
	router.DELETE("/api/equipment/:id", rateLimiter.Limit(middleware.Authenticate(production.DeleteEquipment)))

	router.POST("/api/shots", rateLimiter.Limit(middleware.Authenticate(production.CreateShot)))
	router.GET("/api/shots", middleware.Authenticate(production.GetShots))
	router.PUT("/api/shots/:id", rateLimiter.Limit(middleware.Authenticate(production.UpdateShot)))

	router.POST("/api/story-arcs", rateLimiter.Limit(middleware.Authenticate(production.CreateStoryArc)))
	router.GET("/api/story-arcs", middleware.Authenticate(production.GetStoryArcs))
	router.PUT("/api/story-arcs/:id", rateLimiter.Limit(middleware.Authenticate(production.UpdateStoryArc)))
}

func AddPackingRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/packing/items", rateLimiter.Limit(middleware.Authenticate(packing.CreateItem)))
	router.GET("/api/packing/items", middleware.Authenticate(packing.GetItems))
	router.PUT("/api/packing/progress/:itemid", rateLimiter.Limit(middleware.Authenticate(packing.SetProgress)))
	router.GET("/api/packing/summary", middleware.Authenticate(packing.GetSummary))
}

func AddLogisticsRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/accommodations", rateLimiter.Limit(middleware.Authenticate(logistics.CreateAccommodation)))
	router.GET("/api/accommodations", middleware.Authenticate(logistics.GetAccommodations))
	router.PUT("/api/accommodations/:id", rateLimiter.Limit(middleware.Authenticate(logistics.UpdateAccommodation)))

	router.POST("/api/emergency-contacts", rateLimiter.Limit(middleware.Authenticate(logistics.CreateEmergencyContact)))
	router.GET("/api/emergency-contacts", middleware.Authenticate(logistics.GetEmergencyContacts))
	router.DELETE("/api/emergency-contacts/:id", rateLimiter.Limit(middleware.Authenticate(logistics.DeleteEmergencyContact)))

	router.POST("/api/weather", rateLimiter.Limit(middleware.Authenticate(logistics.CreateWeatherUpdate)))
	router.GET("/api/weather", middleware.Authenticate(logistics.GetWeatherUpdates))
}

func AddWaypointRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/waypoints", rateLimiter.Limit(middleware.Authenticate(waypoints.CreateWaypoint)))
	router.GET("/api/waypoints", middleware.Authenticate(waypoints.GetWaypoints))
	router.DELETE("/api/waypoints/:id", rateLimiter.Limit(middleware.Authenticate(waypoints.DeleteWaypoint)))
	router.GET("/api/waypoints/gpx", middleware.Authenticate(waypoints.ExportGPX))
}

func AddUserDataRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/userdata/:section", middleware.Authenticate(userdata.GetProgress))
	router.PUT("/api/userdata/:section", rateLimiter.Limit(middleware.Authenticate(userdata.SetProgress)))
}

func AddAdminRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/admin/allowed-emails", rateLimiter.Limit(middleware.AdminOnly(admin.AddAllowedEmail)))
	router.GET("/api/admin/allowed-emails", middleware.AdminOnly(admin.GetAllowedEmails))
	router.DELETE("/api/admin/allowed-emails/:email", rateLimiter.Limit(middleware.AdminOnly(admin.RevokeAllowedEmail)))
	router.POST("/api/admin/danger-zone/clear", rateLimiter.Limit(middleware.AdminOnly(admin.DangerZoneClear)))
}

func AddDashboardRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/dashboard/summary", middleware.Authenticate(dashboard.GetSummary))
	router.GET("/api/dashboard/coverage", middleware.Authenticate(dashboard.GetCoverage))
}

func AddReportRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/reports/emergency-card/:memberid", middleware.Authenticate(reports.EmergencyCard))
	router.GET("/api/reports/packing-list", middleware.Authenticate(reports.PackingList))
}

func AddLiveFeedRoutes(router *httprouter.Router, hub *livefeed.Hub) {
	router.GET("/ws/updates/:room", middleware.Authenticate(livefeed.SubscribeHandler(hub)))
}
