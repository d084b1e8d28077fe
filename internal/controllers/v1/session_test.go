package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/spendbook/backend/internal/controllers/v1"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/money"
	"github.com/spendbook/backend/internal/router"
	"github.com/spendbook/backend/internal/session"
	"github.com/spendbook/backend/internal/state"
)

// memoryRemote is an in-memory session.Remote for tests.
type memoryRemote struct {
	mu     sync.Mutex
	states map[string]models.AppState
}

func (r *memoryRemote) Load(_ context.Context, userID string) models.AppState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.states[userID]; ok {
		return s
	}
	return models.Initial("2024-06")
}

func (r *memoryRemote) Save(_ context.Context, userID string, s models.AppState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[userID] = s
}

// syncedEngine builds an engine with remote sync configured.
func (suite *TestSuiteStandard) syncedEngine(remote *memoryRemote) (*gin.Engine, *session.Session) {
	clock := &state.FixedClock{FixedNow: testNow}
	reducer := state.NewReducer(&state.SequenceSource{}, clock)
	store := state.NewStore(models.Initial("2024-06"), reducer, nil)
	sess := session.New(store, remote, 10*time.Millisecond)

	formatter, err := money.NewFormatter("en", "USD")
	suite.Require().NoError(err)

	co := v1.NewController(store, sess, formatter, "en", clock)

	r, err := router.Config()
	suite.Require().NoError(err)
	router.AttachRoutes(co, nil, r.Group(""))
	return r, sess
}

func (suite *TestSuiteStandard) TestSessionsUnavailableWithoutSync() {
	// The default test engine runs without a session.
	recorder := suite.request(http.MethodPost, "/v1/sessions", "")
	suite.assertHTTPStatus(recorder, http.StatusServiceUnavailable)

	recorder = suite.request(http.MethodDelete, "/v1/sessions", "")
	suite.assertHTTPStatus(recorder, http.StatusServiceUnavailable)
}

func (suite *TestSuiteStandard) TestCreateSession() {
	remoteState := models.Initial("2024-06")
	remoteState.Savings.Categories = []models.SavingsCategory{{ID: "r-1", Name: "Vacation"}}
	remote := &memoryRemote{states: map[string]models.AppState{"alice": remoteState}}

	r, sess := suite.syncedEngine(remote)
	defer sess.Close()

	req, err := http.NewRequest(http.MethodPost, "/v1/sessions", nil)
	suite.Require().NoError(err)
	req.Header.Set("X-User-ID", "alice")

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var response v1.SessionResponse
	suite.decode(recorder, &response)
	suite.Assert().Equal("alice", response.Data.UserID)
	suite.Assert().Equal("alice", sess.UserID())

	// The remote snapshot replaced the local state.
	savingsReq, err := http.NewRequest(http.MethodGet, "/v1/savings", nil)
	suite.Require().NoError(err)
	savingsRec := httptest.NewRecorder()
	r.ServeHTTP(savingsRec, savingsReq)

	var savings v1.SavingsResponse
	suite.decode(savingsRec, &savings)
	suite.Require().Len(savings.Data.Categories, 1)
	suite.Assert().Equal("Vacation", savings.Data.Categories[0].Name)
}

func (suite *TestSuiteStandard) TestCreateSessionWithoutUserID() {
	remote := &memoryRemote{states: map[string]models.AppState{}}
	r, sess := suite.syncedEngine(remote)
	defer sess.Close()

	req, err := http.NewRequest(http.MethodPost, "/v1/sessions", nil)
	suite.Require().NoError(err)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestDeleteSession() {
	remote := &memoryRemote{states: map[string]models.AppState{}}
	r, sess := suite.syncedEngine(remote)
	defer sess.Close()

	req, err := http.NewRequest(http.MethodPost, "/v1/sessions", nil)
	suite.Require().NoError(err)
	req.Header.Set("X-User-ID", "alice")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	req, err = http.NewRequest(http.MethodDelete, "/v1/sessions", nil)
	suite.Require().NoError(err)
	recorder = httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Empty(sess.UserID())
}
