package server

import (
	"fmt"
	"net/http"

	"uniportal/domain"
	"uniportal/domain/search"
	"uniportal/errors"
	"uniportal/infrastructure/mail"
	"uniportal/lifecycle"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type openSessionRequest struct {
	DraftID *uuid.UUID `json:"draftId"`
}

type deleteDraftsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type searchRequest struct {
	Query   string         `json:"query"`
	Filters search.Filters `json:"filters"`
	Sort    string         `json:"sort"`
}

type saveSearchRequest struct {
	Name        string         `json:"name"`
	Query       string         `json:"query"`
	Filters     search.Filters `json:"filters"`
	ResultCount int            `json:"resultCount"`
}

func (s *Server) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bind decodes the JSON body. A malformed body is a validation failure.
func (s *Server) bind(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		s.fail(c, fmt.Errorf("%w: %w", errors.ErrValidation, err))
		return false
	}
	return true
}

func (s *Server) uuidParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.fail(c, fmt.Errorf("%w: invalid id %q", errors.ErrValidation, c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) openSession(c *gin.Context) {
	var req openSessionRequest
	if c.Request.ContentLength > 0 && !s.bind(c, &req) {
		return
	}
	if req.DraftID == nil {
		c.JSON(http.StatusCreated, gin.H{"sessionId": s.controller.Compose()})
		return
	}
	sid, err := s.controller.Open(c.Request.Context(), *req.DraftID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionId": sid})
}

func (s *Server) sessionState(c *gin.Context) {
	state, draftID, err := s.controller.SessionState(lifecycle.SessionID(c.Param("id")))
	if err != nil {
		s.fail(c, err)
		return
	}
	response := gin.H{"state": state}
	if draftID != uuid.Nil {
		response["draftId"] = draftID
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) saveSession(c *gin.Context) {
	var payload domain.DraftPayload
	if !s.bind(c, &payload) {
		return
	}
	draft, err := s.controller.Save(c.Request.Context(), lifecycle.SessionID(c.Param("id")), payload)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) autoSaveSession(c *gin.Context) {
	var payload domain.DraftPayload
	if !s.bind(c, &payload) {
		return
	}
	if err := s.controller.ScheduleAutoSave(lifecycle.SessionID(c.Param("id")), payload); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (s *Server) sendSession(c *gin.Context) {
	var payload domain.DraftPayload
	if !s.bind(c, &payload) {
		return
	}
	sent, err := s.controller.SaveAndSend(c.Request.Context(), lifecycle.SessionID(c.Param("id")), payload)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sent)
}

func (s *Server) discardSession(c *gin.Context) {
	s.controller.Discard(lifecycle.SessionID(c.Param("id")))
	c.Status(http.StatusNoContent)
}

func (s *Server) listDrafts(c *gin.Context) {
	drafts, err := s.store.ListDrafts(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(drafts))
}

func (s *Server) getDraft(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	draft, err := s.store.GetDraft(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) editDraft(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	var patch domain.DraftPatch
	if !s.bind(c, &patch) {
		return
	}
	draft, err := s.controller.Edit(c.Request.Context(), id, patch, c.Query("autosave") == "true")
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) sendDraft(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	sent, err := s.controller.Send(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sent)
}

func (s *Server) deleteDraft(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	if err := s.controller.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteDrafts(c *gin.Context) {
	var req deleteDraftsRequest
	if !s.bind(c, &req) {
		return
	}
	deleted, err := s.controller.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (s *Server) exportDrafts(c *gin.Context) {
	c.Header("Content-Type", "application/json")
	c.Header("Content-Disposition", `attachment; filename="drafts.json"`)
	c.Status(http.StatusOK)
	if _, err := s.store.ExportDrafts(c.Request.Context(), c.Writer); err != nil {
		s.log.Error("Draft export failed", "error", err)
	}
}

func (s *Server) importDrafts(c *gin.Context) {
	imported, err := s.store.ImportDrafts(c.Request.Context(), c.Request.Body)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func (s *Server) listSent(c *gin.Context) {
	sent, err := s.store.ListSent(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(sent))
}

func (s *Server) listInbox(c *gin.Context) {
	received, err := s.store.ListReceived(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(received))
}

func (s *Server) receive(c *gin.Context) {
	var payload domain.ReceivedPayload
	if !s.bind(c, &payload) {
		return
	}
	received, err := s.store.Receive(c.Request.Context(), payload)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, received)
}

// receiveEML accepts a raw RFC 5322 message, ?kind= sets the sender kind.
func (s *Server) receiveEML(c *gin.Context) {
	kind := domain.RecipientKind(c.DefaultQuery("kind", string(domain.KindLecturer)))
	payload, err := mail.ParseEML(c.Request.Body, kind)
	if err != nil {
		s.fail(c, err)
		return
	}
	received, err := s.store.Receive(c.Request.Context(), payload)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, received)
}

func (s *Server) markRead(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	received, err := s.store.MarkRead(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, received)
}

// searchRaw takes the same command line as the CLI, e.g. ?q=exam --unread
func (s *Server) searchRaw(c *gin.Context) {
	results, err := s.messages.SearchRaw(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(results))
}

func (s *Server) search(c *gin.Context) {
	var req searchRequest
	if !s.bind(c, &req) {
		return
	}
	sort, err := search.ParseSort(req.Sort)
	if err != nil {
		s.fail(c, err)
		return
	}
	results, err := s.messages.Search(c.Request.Context(), req.Query, req.Filters, sort)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(results))
}

func (s *Server) listSavedSearches(c *gin.Context) {
	saved, err := s.searches.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(saved))
}

func (s *Server) saveSearch(c *gin.Context) {
	var req saveSearchRequest
	if !s.bind(c, &req) {
		return
	}
	saved, err := s.searches.Save(c.Request.Context(), req.Name, req.Query, req.Filters, req.ResultCount)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) getSavedSearch(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	saved, err := s.searches.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) runSavedSearch(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	results, saved, err := s.searches.Run(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedSearch": saved, "results": nonNil(results)})
}

func (s *Server) deleteSavedSearch(c *gin.Context) {
	id, ok := s.uuidParam(c)
	if !ok {
		return
	}
	if err := s.searches.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
