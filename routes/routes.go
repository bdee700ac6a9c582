package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/controllers"
	"github.com/Yarik8706/smart-school-diary-hackathon/middleware"
	"github.com/Yarik8706/smart-school-diary-hackathon/services"
)

func RegisterRoutes(r *gin.Engine, client *services.OpenRouterClient) {
	authController := controllers.AuthController{}
	subjectController := controllers.SubjectController{}
	scheduleController := controllers.ScheduleController{}
	materialsService := services.NewMaterialsService(client)
	homeworkController := controllers.NewHomeworkController(
		services.NewPlannerService(client),
		materialsService,
	)
	materialsController := controllers.NewMaterialsController(materialsService)
	reminderController := controllers.ReminderController{}
	moodController := controllers.MoodController{}
	analyticsController := controllers.AnalyticsController{}
	dashboardController := controllers.DashboardController{}

	public := r.Group("/api/v1")
	{
		public.POST("/auth/guest", authController.GuestLogin)
	}

	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/subjects", subjectController.ListSubjects)
		private.POST("/subjects", subjectController.CreateSubject)
		private.PUT("/subjects/:id", subjectController.UpdateSubject)
		private.DELETE("/subjects/:id", subjectController.DeleteSubject)

		private.GET("/schedule", scheduleController.ListSlots)
		// Not /schedule/form: the GET tree already has the :id wildcard there.
		private.GET("/schedule-form", scheduleController.SlotForm)
		private.POST("/schedule", scheduleController.CreateSlot)
		private.GET("/schedule/:id", scheduleController.GetSlot)
		private.PUT("/schedule/:id", scheduleController.UpdateSlot)
		private.DELETE("/schedule/:id", scheduleController.DeleteSlot)

		private.GET("/homework", homeworkController.ListHomework)
		private.POST("/homework", homeworkController.CreateHomework)
		private.GET("/homework/:id", homeworkController.GetHomework)
		private.PUT("/homework/:id", homeworkController.UpdateHomework)
		private.DELETE("/homework/:id", homeworkController.DeleteHomework)
		private.PATCH("/homework/:id/complete", homeworkController.CompleteHomework)
		private.POST("/homework/:id/generate-steps", homeworkController.GenerateSteps)
		private.GET("/homework/:id/materials", homeworkController.Materials)
		// Not nested under /homework/:id because gin cannot mix a static
		// "steps" segment with the :id wildcard.
		private.PATCH("/steps/:id/toggle", homeworkController.ToggleStep)

		private.GET("/materials/search", materialsController.SearchMaterials)

		private.GET("/reminders", reminderController.ListReminders)
		private.GET("/reminders/pending", reminderController.ListPendingReminders)
		private.POST("/reminders", reminderController.CreateReminder)
		private.PUT("/reminders/:id", reminderController.UpdateReminder)
		private.DELETE("/reminders/:id", reminderController.DeleteReminder)
		private.PATCH("/reminders/:id/mark-sent", reminderController.MarkSent)

		private.POST("/mood", moodController.CreateEntry)
		private.GET("/mood", moodController.ListEntries)
		private.GET("/mood/stats", moodController.Stats)

		private.GET("/analytics/load", analyticsController.WeekLoad)
		private.GET("/analytics/load/today", analyticsController.TodayLoad)
		private.GET("/analytics/warnings", analyticsController.Warnings)

		private.GET("/dashboard/summary", dashboardController.Summary)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
