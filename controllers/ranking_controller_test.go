package controllers_test

import (
	"fmt"
	"net/http"
	"time"
)

func (s *APISuite) TestRankingOrderAndLimit() {
	for i := 0; i < 12; i++ {
		s.seedPlayer(fmt.Sprintf("player%02d", i), int64(i*10), time.Now())
	}

	w := s.request(http.MethodGet, "/api/ranking", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	ranking := s.decodeList(w)

	s.Len(ranking, 10)
	for i := 1; i < len(ranking); i++ {
		prev := ranking[i-1]["chips"].(float64)
		cur := ranking[i]["chips"].(float64)
		s.GreaterOrEqual(prev, cur)
	}
	s.Equal("player11", ranking[0]["name"])
	s.EqualValues(110, ranking[0]["chips"])
}

func (s *APISuite) TestRankingTiesBrokenByUsername() {
	s.seedPlayer("zara", 50, time.Now())
	s.seedPlayer("adam", 50, time.Now())
	s.seedPlayer("mike", 80, time.Now())

	w := s.request(http.MethodGet, "/api/ranking", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	ranking := s.decodeList(w)

	s.Require().Len(ranking, 3)
	s.Equal("mike", ranking[0]["name"])
	s.Equal("adam", ranking[1]["name"])
	s.Equal("zara", ranking[2]["name"])
}

func (s *APISuite) TestRankingDoesNotReplenishStaleBalances() {
	stale := time.Now().Add(-48 * time.Hour)
	s.seedPlayer("rip", 3, stale)

	w := s.request(http.MethodGet, "/api/ranking", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	ranking := s.decodeList(w)

	s.Require().Len(ranking, 1)
	s.EqualValues(3, ranking[0]["chips"])

	// the stored row is untouched: ranking is a pure read
	p := s.loadPlayer("rip")
	s.EqualValues(3, p.Chips)
	s.WithinDuration(stale, p.LastClaim, time.Second)
}

func (s *APISuite) TestRankingEmpty() {
	w := s.request(http.MethodGet, "/api/ranking", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Empty(s.decodeList(w))
}
