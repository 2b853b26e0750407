package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"story-server/internal/handler"
	"story-server/internal/models"
	"story-server/internal/service/mocks"
)

type handlerMocks struct {
	games *mocks.GameService
	story *mocks.StoryService
}

func newTestRouter() (*gin.Engine, handlerMocks) {
	gin.SetMode(gin.TestMode)
	m := handlerMocks{
		games: new(mocks.GameService),
		story: new(mocks.StoryService),
	}
	h := handler.NewHandler(m.games, m.story, zap.NewNop())
	router := gin.New()
	h.RegisterRoutes(router)
	return router, m
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateGameEndpoint(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		router, m := newTestRouter()
		userID := uuid.New()
		save := &models.GameSave{ID: uuid.New(), UserID: userID, Name: "slot 1", Health: 100}

		m.games.On("CreateGame", mock.Anything, userID, "slot 1", "Hero").Return(save, nil)

		w := performRequest(router, http.MethodPost, "/api/games", handler.CreateGameRequest{
			UserID:        userID,
			SaveName:      "slot 1",
			CharacterName: "Hero",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var got models.GameSave
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, save.ID, got.ID)
		m.games.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		router, m := newTestRouter()

		w := performRequest(router, http.MethodPost, "/api/games", gin.H{"saveName": "slot 1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.ErrCodeValidation, decodeError(t, w).Code)
		m.games.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMakeChoiceEndpoint(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()
		view := &models.FullNodeView{ID: 20, Title: "next"}

		m.story.On("MakeChoice", mock.Anything, saveID, int64(100)).Return(view, nil)

		w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/choice",
			handler.MakeChoiceRequest{ChoiceID: 100})
		assert.Equal(t, http.StatusOK, w.Code)

		var got models.FullNodeView
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(20), got.ID)
	})

	t.Run("Invalid choice is a 400, not a 404", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()

		m.story.On("MakeChoice", mock.Anything, saveID, int64(200)).Return(nil, models.ErrInvalidChoice)

		w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/choice",
			handler.MakeChoiceRequest{ChoiceID: 200})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.ErrCodeInvalidChoice, decodeError(t, w).Code)
	})

	t.Run("Unknown choice is a 404", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()

		m.story.On("MakeChoice", mock.Anything, saveID, int64(999)).Return(nil, models.ErrNotFound)

		w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/choice",
			handler.MakeChoiceRequest{ChoiceID: 999})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, models.ErrCodeNotFound, decodeError(t, w).Code)
	})

	t.Run("Malformed save id", func(t *testing.T) {
		router, m := newTestRouter()

		w := performRequest(router, http.MethodPost, "/api/games/not-a-uuid/choice",
			handler.MakeChoiceRequest{ChoiceID: 100})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.ErrCodeValidation, decodeError(t, w).Code)
		m.story.AssertNotCalled(t, "MakeChoice", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGoBackEndpoint(t *testing.T) {
	t.Run("No history is a flagged 404", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()

		m.story.On("GoBack", mock.Anything, saveID).Return(nil, nil)

		w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/back", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, models.ErrCodeNoHistory, decodeError(t, w).Code)
	})

	t.Run("OK", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()

		m.story.On("GoBack", mock.Anything, saveID).Return(&models.FullNodeView{ID: 10}, nil)

		w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/back", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGoForwardEndpoint(t *testing.T) {
	router, m := newTestRouter()
	saveID := uuid.New()

	m.story.On("GoForward", mock.Anything, saveID).Return(nil, nil)

	w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/forward", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrCodeNoChoices, decodeError(t, w).Code)
}

func TestDialogueEndpoints(t *testing.T) {
	t.Run("Next returns the consumed line", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()

		m.story.On("GetNextDialogue", mock.Anything, saveID).
			Return(&models.DialogueView{ID: 1, Text: "hello"}, nil)

		w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/dialogue/next", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got models.DialogueView
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "hello", got.Text)
	})

	t.Run("Exhausted cursor is a flagged 404", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()

		m.story.On("GetNextDialogue", mock.Anything, saveID).Return(nil, nil)

		w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/dialogue/next", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, models.ErrCodeDialogueExhausted, decodeError(t, w).Code)
	})

	t.Run("Done flag", func(t *testing.T) {
		router, m := newTestRouter()
		saveID := uuid.New()

		m.story.On("IsDialogueComplete", mock.Anything, saveID).Return(true, nil)

		w := performRequest(router, http.MethodGet, "/api/games/"+saveID.String()+"/dialogue/done", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got handler.DialogueCompleteResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Complete)
	})
}

func TestModifyHealthEndpoint(t *testing.T) {
	router, m := newTestRouter()
	saveID := uuid.New()

	m.games.On("ModifyHealth", mock.Anything, saveID, -30).Return(10, nil)

	w := performRequest(router, http.MethodPost, "/api/games/"+saveID.String()+"/health",
		handler.ModifyHealthRequest{Delta: -30})
	assert.Equal(t, http.StatusOK, w.Code)

	var got handler.HealthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 10, got.Health)
}

func TestVisitedEndpoints(t *testing.T) {
	router, m := newTestRouter()
	saveID := uuid.New()

	m.story.On("GetVisitedNodes", mock.Anything, saveID).Return([]int64{3, 7}, nil)
	m.story.On("HasVisitedNode", mock.Anything, saveID, int64(7)).Return(true, nil)

	w := performRequest(router, http.MethodGet, "/api/games/"+saveID.String()+"/visited", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var visited []int64
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &visited))
	assert.Equal(t, []int64{3, 7}, visited)

	w = performRequest(router, http.MethodGet, "/api/games/"+saveID.String()+"/visited/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var has handler.VisitedResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &has))
	assert.True(t, has.Visited)
}

func TestDeleteGameSaveEndpoint(t *testing.T) {
	router, m := newTestRouter()
	saveID := uuid.New()

	m.games.On("DeleteGameSave", mock.Anything, saveID).Return(nil)

	w := performRequest(router, http.MethodDelete, "/api/games/"+saveID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	m.games.AssertExpectations(t)
}

func TestListGameSavesEndpoint(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		router, m := newTestRouter()
		userID := uuid.New()
		summaries := []models.GameSaveSummary{
			{ID: uuid.New(), Name: "slot 1", CurrentNodeTitle: "Prologue", Health: 100},
		}

		m.games.On("GetUserGameSaves", mock.Anything, userID).Return(summaries, nil)

		w := performRequest(router, http.MethodGet, "/api/games?userId="+userID.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.GameSaveSummary
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "slot 1", got[0].Name)
	})

	t.Run("Missing userId", func(t *testing.T) {
		router, m := newTestRouter()

		w := performRequest(router, http.MethodGet, "/api/games", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.games.AssertNotCalled(t, "GetUserGameSaves", mock.Anything, mock.Anything)
	})
}
