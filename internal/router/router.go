package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	ForgotPassword(c *ginext.Context)
	ResetPassword(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListEventsWithStatus(c *ginext.Context)
	UserEvents(c *ginext.Context)
	ListUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)

	AddParticipant(c *ginext.Context)
	RemoveParticipant(c *ginext.Context)
	ListParticipants(c *ginext.Context)
	AvailableUsers(c *ginext.Context)
	SetPaid(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	CancelParticipation(c *ginext.Context)
	PaymentSuccess(c *ginext.Context)

	StartEvent(c *ginext.Context)
	NextRound(c *ginext.Context)
	RecordCatch(c *ginext.Context)
	FinishEvent(c *ginext.Context)
	Standings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW, adminMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/forgot-password", h.ForgotPassword)
		api.POST("/reset-password", h.ResetPassword)

		// Public event catalogue
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
	}

	authed := api.Group("", authMW)
	{
		authed.POST("/logout", h.Logout)

		authed.GET("/me", h.Me)
		authed.PUT("/me", h.UpdateProfile)

		authed.GET("/user/events", h.UserEvents)
		authed.GET("/user/events-status", h.ListEventsWithStatus)

		authed.POST("/events/:id/register", h.RegisterForEvent)
		authed.POST("/events/:id/cancel", h.CancelParticipation)
		authed.POST("/events/:id/payment-success", h.PaymentSuccess)
	}

	admin := api.Group("", authMW, adminMW)
	{
		admin.POST("/events", h.CreateEvent)
		admin.PUT("/events/:id", h.UpdateEvent)
		admin.DELETE("/events/:id", h.DeleteEvent)

		admin.GET("/admin/users", h.ListUsers)
		admin.DELETE("/admin/users/:id", h.DeleteUser)

		admin.GET("/events/:id/participants", h.ListParticipants)
		admin.GET("/events/:id/available-users", h.AvailableUsers)
		admin.POST("/events/:id/participants", h.AddParticipant)
		admin.DELETE("/events/:id/participants/:userId", h.RemoveParticipant)
		admin.POST("/events/:id/paid", h.SetPaid)

		admin.POST("/events/:id/start", h.StartEvent)
		admin.POST("/events/:id/nextround", h.NextRound)
		admin.POST("/events/:id/catch", h.RecordCatch)
		admin.POST("/events/:id/finish", h.FinishEvent)
		admin.GET("/events/:id/stats", h.Standings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
