package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kindred/internal/api/controllers"
	mem "kindred/pkg/memcache"
	"kindred/pkg/middleware"
	"kindred/pkg/utils"
)

// Controllers is everything the router mounts.
type Controllers struct {
	Account      *controllers.AccountController
	Admin        *controllers.AdminController
	Friends      *controllers.FriendsController
	Chat         *controllers.ChatController
	Emotion      *controllers.EmotionController
	Mood         *controllers.MoodController
	Feedback     *controllers.FeedbackController
	Conversation *controllers.ConversationController
	Speech       *controllers.SpeechController
	Realtime     *controllers.RealtimeController
	Dashboard    *controllers.DashboardController
}

type RouterDeps struct {
	Log          *zap.Logger
	Tokens       *utils.TokenIssuer
	Denylist     mem.TokenDenylist
	AdminChecker middleware.AdminChecker
	CORSOrigins  string
}

func NewRouter(deps RouterDeps, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSMiddleware(splitOrigins(deps.CORSOrigins)))

	RegisterRoutes(r, deps, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps, ctrl Controllers) {
	auth := middleware.JWTAuthMiddleware(deps.Tokens, deps.Denylist)
	adminOnly := middleware.AdminOnly(deps.AdminChecker)

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", ctrl.Account.Register)
	authGroup.POST("/login", ctrl.Account.Login)
	authGroup.GET("/verify", auth, ctrl.Account.Verify)
	authGroup.POST("/verify", auth, ctrl.Account.Verify)
	authGroup.POST("/logout", auth, ctrl.Account.Logout)

	userGroup := r.Group("/user", auth)
	userGroup.GET("/me", ctrl.Account.Me)
	userGroup.PUT("/preferences", ctrl.Account.UpdatePreferences)

	adminGroup := r.Group("/admin", auth, adminOnly)
	adminGroup.PUT("/approve-user", ctrl.Admin.ApproveUser)
	adminGroup.GET("/waitlist", ctrl.Admin.Waitlist)
	adminGroup.GET("/users", ctrl.Admin.ListUsers)
	adminGroup.GET("/feedback", ctrl.Admin.ListFeedback)
	adminGroup.PUT("/feedback/:id", ctrl.Admin.UpdateFeedback)
	adminGroup.GET("/dashboard", ctrl.Dashboard.GetDashboard)

	friendsGroup := r.Group("/friends", auth)
	friendsGroup.POST("/send-request", ctrl.Friends.SendRequest)
	friendsGroup.PUT("/respond-request", ctrl.Friends.RespondRequest)
	friendsGroup.GET("/list", ctrl.Friends.List)

	chatGroup := r.Group("/chat", auth)
	chatGroup.POST("/send-message", ctrl.Chat.SendMessage)
	chatGroup.GET("/get-messages", ctrl.Chat.GetMessages)
	chatGroup.GET("/unread-counts", ctrl.Chat.UnreadCounts)

	emotionsGroup := r.Group("/emotions", auth)
	emotionsGroup.POST("/send-alert", ctrl.Emotion.SendAlert)
	emotionsGroup.GET("/alerts", ctrl.Emotion.ListAlerts)
	emotionsGroup.PUT("/alerts/:id/read", ctrl.Emotion.MarkRead)

	moodGroup := r.Group("/mood", auth)
	moodGroup.POST("/checkin", ctrl.Mood.CheckIn)
	moodGroup.GET("/today", ctrl.Mood.Today)
	moodGroup.GET("/entries", ctrl.Mood.Entries)
	moodGroup.GET("/history", ctrl.Mood.History)

	r.POST("/feedback", auth, ctrl.Feedback.AddFeedback)
	r.GET("/feedback", auth, ctrl.Feedback.ListFeedback)
	r.POST("/complaints", auth, ctrl.Feedback.AddComplaint)
	r.GET("/complaints", auth, ctrl.Feedback.ListComplaints)
	r.POST("/contact", ctrl.Feedback.Contact)
	r.GET("/faq", ctrl.Feedback.FAQ)

	r.POST("/conversation", ctrl.Conversation.Converse)
	r.POST("/speech", auth, ctrl.Speech.Speak)
	r.GET("/ws", ctrl.Realtime.Connect)
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
