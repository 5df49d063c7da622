// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"opportune-web/internal/controller"
	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
	"opportune-web/internal/utilities"
	"opportune-web/internal/view"
)

// RegisterRoutes will register each page and action route to the bound
// Server instance.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	tmpl, err := view.Templates()
	if err != nil {
		log.Fatalf("Failed to parse templates: %s", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := view.Static()
	if err != nil {
		log.Fatalf("Failed to load static assets: %s", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(middleware.SafeHeader())

	ct := controller.New(s.API, s.Sessions, s.Saved)

	// Public pages. OptionalSession personalizes the header without
	// forcing a login.
	public := r.Group("")
	public.Use(middleware.OptionalSession(s.Sessions))
	{
		public.GET("/", ct.HomePage)
		public.GET("/jobs", ct.JobsPage)
		public.GET("/jobs/:id", ct.JobDetailPage)
		public.POST("/jobs/:id/save", ct.SaveToggleHandler)

		public.GET("/login", ct.LoginPage)
		public.GET("/register", ct.RegisterPage)
		public.POST("/login", middleware.EnvRateLimitMiddleware(), ct.LoginHandler)
		public.POST("/register", middleware.EnvRateLimitMiddleware(), ct.RegisterHandler)
		public.POST("/logout", ct.LogoutHandler)

		public.GET("/request-access", ct.RequestAccessPage)
		public.POST("/request-access", ct.RequestAccessHandler)
	}

	// Invite acceptance is public and rendered without the shared header.
	r.GET("/invite/:token", ct.InvitePage)
	r.POST("/invite/:token/accept", ct.AcceptInviteHandler)

	// JSON helpers consumed by page scripts.
	apiGroup := r.Group("/api")
	apiGroup.Use(corsMiddleware(), middleware.OptionalSession(s.Sessions))
	{
		apiGroup.GET("/suggestions", ct.SuggestionsJSON)
		apiGroup.POST("/jobs/:id/save", ct.SaveToggleJSON)
	}

	// Pages that need a login.
	needAuth := r.Group("")
	needAuth.Use(middleware.RequireSession(s.Sessions))
	{
		needAuth.GET("/profile", ct.ProfilePage)
		needAuth.POST("/profile", ct.UpdateProfileHandler)
		needAuth.POST("/profile/password", ct.ChangePasswordHandler)
		needAuth.POST("/profile/email-preferences", ct.EmailPreferencesHandler)

		needAuth.GET("/applications/:applicationId", ct.ApplicationDetailPage)

		userRoute := needAuth.Group("")
		{
			userRoute.Use(middleware.CheckRole(model.RoleUser))
			userRoute.GET("/applications", ct.ApplicationsPage)
			userRoute.POST("/jobs/:id/apply", ct.ApplyHandler)
			userRoute.POST("/applications/:applicationId/withdraw", ct.WithdrawHandler)

			userRoute.GET("/files", ct.FilesPage)
			userRoute.POST("/files/upload", middleware.SizeLimit(utilities.MaxResumeSize), ct.UploadHandler)
			userRoute.POST("/files/:id/delete", ct.DeleteFileHandler)
		}

		hrRoute := needAuth.Group("")
		{
			hrRoute.Use(middleware.CheckRole(model.RoleHR))
			hrRoute.GET("/hr-dashboard", ct.HRDashboardPage)
			hrRoute.POST("/hr-dashboard/jobs", ct.CreateJobHandler)
			hrRoute.POST("/hr-dashboard/jobs/:id", ct.UpdateJobHandler)
			hrRoute.POST("/hr-dashboard/jobs/:id/delete", ct.DeleteJobHandler)
			hrRoute.POST("/applications/:applicationId/status", ct.StatusUpdateHandler)
			hrRoute.GET("/candidates", ct.CandidateSearchPage)
		}

		adminRoute := needAuth.Group("/admin")
		{
			adminRoute.Use(middleware.CheckRole(model.RoleAdmin))
			adminRoute.GET("", ct.AdminPage)
			adminRoute.POST("/users/:id/enabled", ct.SetUserEnabledHandler)
			adminRoute.POST("/users/:id/delete", ct.DeleteUserHandler)
			adminRoute.POST("/invites", ct.CreateInviteHandler)
			adminRoute.POST("/invites/:id/revoke", ct.RevokeInviteHandler)
			adminRoute.POST("/requests/:id/approve", ct.ApproveRequestHandler)
			adminRoute.POST("/requests/:id/deny", ct.DenyRequestHandler)
			adminRoute.POST("/requests/:id/delete", ct.DeleteRequestHandler)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	if allowOriginsStr == "" {
		allowOriginsStr = "http://localhost:3000"
	}
	allowOrigins := strings.Split(allowOriginsStr, ",")

	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	})
}
