// Package server exposes the messaging core as a JSON API.
package server

import (
	"log/slog"
	"net/http"

	"uniportal/lifecycle"
	"uniportal/services"
	"uniportal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	controller *lifecycle.Controller
	store      *store.MessageStore
	messages   services.IMessageService
	searches   services.ISavedSearchService
	log        *slog.Logger
}

func NewServer(
	controller *lifecycle.Controller,
	store *store.MessageStore,
	messages services.IMessageService,
	searches services.ISavedSearchService,
	log *slog.Logger,
) *Server {
	return &Server{
		controller: controller,
		store:      store,
		messages:   messages,
		searches:   searches,
		log:        log,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessions := r.Group("/sessions")
	sessions.POST("", s.openSession)
	sessions.GET("/:id", s.sessionState)
	sessions.POST("/:id/save", s.saveSession)
	sessions.POST("/:id/autosave", s.autoSaveSession)
	sessions.POST("/:id/send", s.sendSession)
	sessions.DELETE("/:id", s.discardSession)

	drafts := r.Group("/drafts")
	drafts.GET("", s.listDrafts)
	drafts.GET("/export", s.exportDrafts)
	drafts.POST("/import", s.importDrafts)
	drafts.POST("/delete", s.deleteDrafts)
	drafts.GET("/:id", s.getDraft)
	drafts.PATCH("/:id", s.editDraft)
	drafts.POST("/:id/send", s.sendDraft)
	drafts.DELETE("/:id", s.deleteDraft)

	r.GET("/sent", s.listSent)

	inbox := r.Group("/inbox")
	inbox.GET("", s.listInbox)
	inbox.POST("", s.receive)
	inbox.POST("/eml", s.receiveEML)
	inbox.POST("/:id/read", s.markRead)

	r.GET("/search", s.searchRaw)
	r.POST("/search", s.search)

	saved := r.Group("/saved-searches")
	saved.GET("", s.listSavedSearches)
	saved.POST("", s.saveSearch)
	saved.GET("/:id", s.getSavedSearch)
	saved.POST("/:id/run", s.runSavedSearch)
	saved.DELETE("/:id", s.deleteSavedSearch)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Debug("Request served",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status())
	}
}
