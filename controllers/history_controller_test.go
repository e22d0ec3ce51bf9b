package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/Tsoggam/blitz/models"
)

func (s *APISuite) addHistory(body map[string]interface{}) {
	w := s.request(http.MethodPost, "/api/history/add", body)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(true, s.decodeObject(w)["success"])
}

func (s *APISuite) TestAppendThenRecentReturnsEntry() {
	s.addHistory(map[string]interface{}{"result": "alice wins 40", "winners": "alice"})

	w := s.request(http.MethodGet, "/api/history", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	history := s.decodeList(w)

	s.Require().Len(history, 1)
	s.Equal("alice wins 40", history[0]["result"])
	s.Equal("alice", history[0]["winners"])
	s.NotEmpty(history[0]["timestamp"])
}

func (s *APISuite) TestHistoryNewestFirstAndLimited() {
	for i := 0; i < 12; i++ {
		s.addHistory(map[string]interface{}{"result": fmt.Sprintf("game %d", i)})
	}

	w := s.request(http.MethodGet, "/api/history", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	history := s.decodeList(w)

	s.Require().Len(history, 10)
	s.Equal("game 11", history[0]["result"])
	s.Equal("game 2", history[9]["result"])
}

func (s *APISuite) TestAddHistoryWinnersOptional() {
	s.addHistory(map[string]interface{}{"result": "draw"})

	var entry models.GameHistory
	s.Require().NoError(s.db.Order("id DESC").First(&entry).Error)
	s.Equal("draw", entry.Result)
	s.Nil(entry.Winners)
}

func (s *APISuite) TestAddHistoryMissingResultFails() {
	w := s.request(http.MethodPost, "/api/history/add", map[string]interface{}{"winners": "bob"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.decodeObject(w)["error"], "result")

	var count int64
	s.Require().NoError(s.db.Model(&models.GameHistory{}).Count(&count).Error)
	s.EqualValues(0, count)
}
