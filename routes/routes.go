package routes

import (
	"github.com/ChristelOko/BarometreHED-sub001/controllers"
	"github.com/ChristelOko/BarometreHED-sub001/middleware"
	"github.com/ChristelOko/BarometreHED-sub001/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, catalog *services.Catalog, aminata *services.AminataService, memory *services.MemoryService, guidance *services.GuidanceService) {
	authController := controllers.AuthController{}
	userController := controllers.UserController{}
	reminderController := controllers.ReminderController{}
	feelingController := controllers.NewFeelingController(catalog)
	scanController := controllers.NewScanController(catalog, guidance, memory)
	dashboardController := controllers.NewDashboardController(memory)
	chatController := controllers.NewChatController(aminata, memory)

	// Routes publiques (sans authentification)
	public := r.Group("/api/v1")
	{
		public.POST("/auth/guest", authController.GuestSession)
	}

	// Routes authentifiées
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/feelings", feelingController.GetFeelings)
		private.POST("/scans", scanController.SubmitScan)
		private.GET("/scans", scanController.GetScans)
		private.GET("/dashboard", dashboardController.GetDashboard)
		private.POST("/chat", chatController.SendMessage)
		private.GET("/chat/summary", chatController.GetMemorySummary)
		private.GET("/reminders", reminderController.GetReminders)
		private.POST("/reminders", reminderController.CreateReminder)
		private.DELETE("/reminders/:id", reminderController.DeleteReminder)
		private.GET("/user", userController.GetUser)
	}

	// Routes internes (dispatcher de notifications)
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.GET("/reminders/due", reminderController.DueReminders)
	}

	// Route de test
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
