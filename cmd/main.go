package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/config"
	"github.com/williamjames2004/sjcaisymposium/internal/handlers"
	"github.com/williamjames2004/sjcaisymposium/internal/repository"
	"github.com/williamjames2004/sjcaisymposium/internal/services"
	"github.com/williamjames2004/sjcaisymposium/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Repositories
	leaderRepo := repository.NewLeaderRepository(db.DB)
	participantRepo := repository.NewParticipantRepository(db.DB)
	collegeRepo := repository.NewCollegeRepository(db.DB)
	adminRepo := repository.NewAdminRepository(db.DB)

	// Services
	authService := services.NewAuthService(leaderRepo, adminRepo, collegeRepo, cfg.JWTSecret, cfg.JWTExpiration)
	registrationService := services.NewRegistrationService(participantRepo, leaderRepo)
	teamService := services.NewTeamService(participantRepo)
	collegeService := services.NewCollegeService(collegeRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, teamService)
	teamHandler := handlers.NewTeamHandler(teamService)
	collegeHandler := handlers.NewCollegeHandler(collegeService)

	router := gin.Default()
	router.Use(handlers.CORSMiddleware())

	api := router.Group("/api")
	{
		// Public
		api.POST("/regleader", authHandler.RegisterLeader)
		api.POST("/loginleader", authHandler.LoginLeader)
		api.POST("/adminreg", authHandler.RegisterAdmin)
		api.POST("/adminlogin", authHandler.LoginAdmin)
		api.GET("/getcollege", collegeHandler.ListColleges)

		// Leader routes
		leader := api.Group("", handlers.AuthMiddleware(authService))
		{
			leader.POST("/registerteam", registrationHandler.RegisterTeam)
			leader.POST("/getcandidates", registrationHandler.GetCandidates)
			leader.GET("/stats/:leaderId", registrationHandler.Stats)
		}

		// Admin routes; destructive ones are super admin only
		admin := api.Group("", handlers.AdminMiddleware(authService))
		{
			admin.POST("/vieweventregs", teamHandler.ViewEventRegistrations)
			admin.POST("/addcollege", collegeHandler.AddColleges)

			super := admin.Group("", handlers.SuperAdminMiddleware())
			{
				super.POST("/deleteteammember", teamHandler.DeleteMember)
				super.DELETE("/deleteteam/:leaderId", teamHandler.DeleteTeam)
				super.DELETE("/deleteteam/:leaderId/:event", teamHandler.DetachEvent)
			}
		}
	}

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server running on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
