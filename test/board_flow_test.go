package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/wodboard/wodboard/internal/attendance"
	"github.com/wodboard/wodboard/internal/scores"
	"github.com/wodboard/wodboard/internal/standings"
	"github.com/wodboard/wodboard/internal/wod"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mondayTwoWeeksBack returns the Monday of the week two weeks before now.
// That week is always completed, so its standings are cacheable.
func mondayTwoWeeksBack() time.Time {
	d := time.Now().UTC().AddDate(0, 0, -14)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	d = d.AddDate(0, 0, -(weekday - 1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *IntegrationTestSuite) doJSONReq(
	ctx context.Context,
	method, url, token string,
	payload any,
) *http.Response {
	t := s.T()
	t.Helper()

	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-WODBOARD-TOKEN", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResp[T any](s *IntegrationTestSuite, resp *http.Response) T {
	t := s.T()
	t.Helper()
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded T
	require.NoError(t, json.Unmarshal(respBytes, &decoded), string(respBytes))
	return decoded
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func (s *IntegrationTestSuite) TestBoardFlow() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := doLogin(ctx, t)
	require.NotEmpty(t, token)

	monday := mondayTwoWeeksBack()
	mondayStr := monday.Format(time.DateOnly)

	// coach publishes the WOD
	resp := s.doJSONReq(ctx, "POST", serverEndpoint+"/wods", token, wod.Workout{
		Date:            monday,
		DescriptionText: "5 rounds for time:\n20 wall balls\n15 box jumps\n10 power cleans",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	addedWod := decodeResp[wod.AddWorkoutResponse](s, resp)
	assert.Equal(t, wod.DisciplineTime, addedWod.Discipline)
	assert.True(t, addedWod.ID > 0)

	// athletes submit their results
	for _, score := range []scores.Score{
		{AthleteID: strPtr("alice"), Date: monday, IsRx: true, ElapsedSeconds: intPtr(300)},
		{AthleteID: strPtr("bob"), Date: monday, ElapsedSeconds: intPtr(300)},
		{AthleteID: strPtr("carol"), Date: monday, ElapsedSeconds: intPtr(420)},
		{Date: monday, GuestPartnerNames: []string{"visiting-pete"}, ElapsedSeconds: intPtr(500)},
	} {
		resp = s.doJSONReq(ctx, "POST", serverEndpoint+"/scores", token, score)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		added := decodeResp[scores.Score](s, resp)
		assert.True(t, added.ID > 0)
	}

	var scoresCount int
	require.NoError(t, s.DB.
		QueryRow(`SELECT COUNT(*) FROM score WHERE date = $1`, monday).
		Scan(&scoresCount))
	assert.Equal(t, 4, scoresCount)

	// the day board is a public read, no token needed
	resp = s.doJSONReq(ctx, "GET", serverEndpoint+"/board/"+mondayStr, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	board := decodeResp[standings.DayBoard](s, resp)
	assert.Equal(t, standings.BoardStatusOK, board.Status)
	assert.Equal(t, wod.DisciplineTime, board.Discipline)
	require.Len(t, board.Bands, 2)
	assert.Equal(t, 1, board.Bands[0].Position)
	assert.ElementsMatch(t, []string{"alice", "bob"}, board.Bands[0].AthleteIDs)
	assert.Equal(t, 3, board.Bands[1].Position)
	assert.Equal(t, []string{"carol"}, board.Bands[1].AthleteIDs)
	require.Len(t, board.Guests, 1)
	assert.Equal(t, []string{"visiting-pete"}, board.Guests[0].GuestPartnerNames)

	// week standings, also public; the week is completed so both tied
	// gold winners get 3 points, alice gets the Rx bonus on top
	assertWeekStandings := func() {
		resp = s.doJSONReq(ctx, "GET", serverEndpoint+"/standings/week/"+mondayStr, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		weekStandings := decodeResp[standings.Standings](s, resp)
		assert.Equal(t, standings.PeriodWeek, weekStandings.PeriodType)
		assert.Equal(t, mondayStr, weekStandings.From)
		assert.True(t, weekStandings.Completed)
		require.Len(t, weekStandings.Rows, 3)
		assert.Equal(t, "alice", weekStandings.Rows[0].AthleteID)
		assert.Equal(t, 3.5, weekStandings.Rows[0].TotalPoints)
		assert.Equal(t, 1, weekStandings.Rows[0].Gold)
		assert.Equal(t, "bob", weekStandings.Rows[1].AthleteID)
		assert.Equal(t, 3.0, weekStandings.Rows[1].TotalPoints)
		assert.Equal(t, "carol", weekStandings.Rows[2].AthleteID)
		assert.Equal(t, 1.0, weekStandings.Rows[2].TotalPoints)
		assert.Equal(t, 1, weekStandings.Rows[2].Bronze)
	}
	assertWeekStandings()
	// second read comes from the redis cache, same result
	assertWeekStandings()

	// attendance, deduplicated per athlete and date
	resp = s.doJSONReq(ctx, "POST", serverEndpoint+"/attendance", token, attendance.Record{
		AthleteID: "alice",
		Date:      monday,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = s.doJSONReq(ctx, "POST", serverEndpoint+"/attendance", token, attendance.Record{
		AthleteID: "alice",
		Date:      monday,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = s.doJSONReq(ctx, "GET", serverEndpoint+"/attendance/alice", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	attended := decodeResp[attendance.AttendedDatesResponse](s, resp)
	assert.Equal(t, "alice", attended.AthleteID)
	assert.Contains(t, attended.Dates, mondayStr)

	// alice's profile: one gold medal, a rank 1 trend point, a weekly podium win
	resp = s.doJSONReq(ctx, "GET", serverEndpoint+"/athletes/alice/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profileBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var stats struct {
		AthleteID string `json:"athleteId"`
		Medals    struct {
			Gold   int `json:"gold"`
			Silver int `json:"silver"`
			Bronze int `json:"bronze"`
		} `json:"medals"`
		PlacementTrend []struct {
			Rank int `json:"rank"`
		} `json:"placementTrend"`
		AvgPlacementLifetime *float64 `json:"avgPlacementLifetime"`
		WeeklyPodiums        struct {
			First  int `json:"first"`
			Second int `json:"second"`
			Third  int `json:"third"`
		} `json:"weeklyPodiums"`
		AttendanceStreak int `json:"attendanceStreak"`
	}
	require.NoError(t, json.Unmarshal(profileBytes, &stats))
	assert.Equal(t, "alice", stats.AthleteID)
	assert.Equal(t, 1, stats.Medals.Gold)
	require.Len(t, stats.PlacementTrend, 1)
	assert.Equal(t, 1, stats.PlacementTrend[0].Rank)
	require.NotNil(t, stats.AvgPlacementLifetime)
	assert.Equal(t, 1.0, *stats.AvgPlacementLifetime)
	assert.Equal(t, 1, stats.WeeklyPodiums.First)
	// the last visit was two weeks back, no active streak
	assert.Equal(t, 0, stats.AttendanceStreak)
}

func (s *IntegrationTestSuite) TestProtectedRoutesRequireAuth() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{method: "POST", path: "/wods"},
		{method: "POST", path: "/scores"},
		{method: "POST", path: "/attendance"},
		{method: "GET", path: "/athletes/alice/profile"},
	} {
		req, err := http.NewRequestWithContext(ctx, tc.method, serverEndpoint+tc.path, nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, tc.path)
		require.NoError(t, resp.Body.Close())
	}

	// the mobile app authenticates with its shared secret instead of a login token
	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+"/athletes/alice/profile", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "WODBoard/1.2.0")
	req.Header.Set("X-WODBOARD-TOKEN", testMobileAppSecret)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
