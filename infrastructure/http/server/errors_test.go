package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uniportal/domain/search"
	"uniportal/errors"
	"uniportal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Error_Categories_Map_To_Status_Codes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		description string
		err         error
		status      int
	}{
		{"Should answer 400 on validation", errors.ErrEmptySearchName, http.StatusBadRequest},
		{"Should answer 409 on duplicate name", errors.ErrDuplicateSearchName, http.StatusConflict},
		{"Should answer 404 on missing record", errors.ErrSavedSearchNotFound, http.StatusNotFound},
		{"Should answer 409 on invalid transition", errors.ErrInvalidTransition, http.StatusConflict},
		{"Should answer 500 on storage failure", fmt.Errorf("%w: disk", errors.ErrPersistence), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			messages := mocks.NewMockIMessageService(ctrl)
			searches := mocks.NewMockISavedSearchService(ctrl)
			router := NewServer(nil, nil, messages, searches, slog.New(slog.NewTextHandler(io.Discard, nil))).Router()
			id := uuid.New()

			searches.EXPECT().Run(gomock.Any(), id).Return(nil, search.SavedSearch{}, tt.err)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/saved-searches/"+id.String()+"/run", nil))

			req.Equal(tt.status, recorder.Code)
			req.Contains(recorder.Body.String(), `"error"`)
		})
	}
}

func Test_Search_Body_Is_Passed_Through(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := require.New(t)
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockIMessageService(ctrl)
	router := NewServer(nil, nil, messages, mocks.NewMockISavedSearchService(ctrl), slog.New(slog.NewTextHandler(io.Discard, nil))).Router()

	messages.EXPECT().
		Search(gomock.Any(), "exam", gomock.Any(), search.SortSenderAZ).
		DoAndReturn(func(_ context.Context, _ string, filters search.Filters, _ search.Sort) ([]search.Result, error) {
			req.True(filters.UnreadOnly)
			req.Equal("CS101", *filters.Course)
			return nil, nil
		})

	recorder := httptest.NewRecorder()
	body := `{"query":"exam","filters":{"course":"CS101","unreadOnly":true},"sort":"sender-az"}`
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body)))

	req.Equal(http.StatusOK, recorder.Code)
	req.Equal("[]", recorder.Body.String())
}
