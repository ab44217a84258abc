package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localchat/internal/mocks"
	"localchat/internal/models"
	"localchat/internal/repositories"
	"localchat/internal/ws"
)

func setupMessagesRouter(messages *mocks.MessageRepositoryMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewMessagesHandler(messages, ws.NewHub())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("username", "alice")
		c.Next()
	})
	r.GET("/messages/:peer", handler.List)
	r.POST("/messages/:peer", handler.Post)
	r.PATCH("/messages/:peer/:id", handler.Edit)
	r.DELETE("/messages/:peer", handler.Delete)
	r.GET("/messages/:peer/:id/share", handler.Share)
	return r
}

func TestListMessages(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("ListConversation", mock.Anything, "alice", "bob").
		Return([]models.Message{{ID: 1, Content: "hi", Sender: "alice", Receiver: "bob"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/messages/bob", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messages.AssertExpectations(t)
}

func TestListMessagesAppliesSearchFilter(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("ListConversation", mock.Anything, "alice", "bob").
		Return([]models.Message{
			{ID: 1, Content: "hello there", Type: models.MessageTypeText},
			{ID: 2, Content: "bye", Type: models.MessageTypeText},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/messages/bob?q=HELLO", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Messages, 1)
	require.EqualValues(t, 1, resp.Messages[0].ID)
	messages.AssertExpectations(t)
}

func TestPostTextMessage(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("AddMessage", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.Content == "hi" && m.Sender == "alice" && m.Receiver == "bob" &&
			m.Type == models.MessageTypeText && m.Timestamp > 0 && m.Caption == nil
	})).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/messages/bob",
		bytes.NewBufferString(`{"content":"hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	messages.AssertExpectations(t)
}

func TestPostImageMessageWithCaption(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("AddMessage", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.Type == models.MessageTypeImage && m.Caption != nil && *m.Caption == "sunset"
	})).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/messages/bob",
		bytes.NewBufferString(`{"content":"/storage/img.jpg","type":"IMAGE","caption":"sunset"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	messages.AssertExpectations(t)
}

func TestPostMessageInvalidType(t *testing.T) {
	router := setupMessagesRouter(new(mocks.MessageRepositoryMock))

	req := httptest.NewRequest(http.MethodPost, "/messages/bob",
		bytes.NewBufferString(`{"content":"hi","type":"VIDEO"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditTextMessageRewritesContent(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("GetMessage", mock.Anything, int64(7)).
		Return(&models.Message{ID: 7, Sender: "alice", Receiver: "bob", Type: models.MessageTypeText, Content: "old"}, nil).Once()
	messages.On("UpdateContentByID", mock.Anything, int64(7), "new text").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/messages/bob/7",
		bytes.NewBufferString(`{"text":"new text"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messages.AssertExpectations(t)
}

func TestEditImageMessageRewritesCaption(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("GetMessage", mock.Anything, int64(8)).
		Return(&models.Message{ID: 8, Sender: "bob", Receiver: "alice", Type: models.MessageTypeImage}, nil).Once()
	messages.On("UpdateCaptionByID", mock.Anything, int64(8), "new caption").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/messages/bob/8",
		bytes.NewBufferString(`{"text":"new caption"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messages.AssertExpectations(t)
}

func TestEditMessageOutsideConversationIsNotFound(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("GetMessage", mock.Anything, int64(9)).
		Return(&models.Message{ID: 9, Sender: "carol", Receiver: "dave", Type: models.MessageTypeText}, nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/messages/bob/9",
		bytes.NewBufferString(`{"text":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	messages.AssertExpectations(t)
}

func TestEditMissingMessage(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("GetMessage", mock.Anything, int64(404)).
		Return(nil, repositories.ErrMessageNotFound).Once()

	req := httptest.NewRequest(http.MethodPatch, "/messages/bob/404",
		bytes.NewBufferString(`{"text":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	messages.AssertExpectations(t)
}

func TestDeleteMessages(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("DeleteMessagesByID", mock.Anything, []int64{1, 2}).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/messages/bob",
		bytes.NewBufferString(`{"ids":[1,2]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messages.AssertExpectations(t)
}

func TestDeleteMessagesEmptySet(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("DeleteMessagesByID", mock.Anything, []int64(nil)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/messages/bob",
		bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messages.AssertExpectations(t)
}

func TestShareMessage(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("GetMessage", mock.Anything, int64(3)).
		Return(&models.Message{ID: 3, Sender: "alice", Receiver: "bob", Type: models.MessageTypeText, Content: "hi"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/messages/bob/3/share", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Share struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"share"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "text", resp.Share.Kind)
	require.Equal(t, "hi", resp.Share.Text)
	messages.AssertExpectations(t)
}

func TestListMessagesRepoError(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	router := setupMessagesRouter(messages)

	messages.On("ListConversation", mock.Anything, "alice", "bob").
		Return(nil, assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/messages/bob", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	messages.AssertExpectations(t)
}
