package smite

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-smite-api/internal/mock"
	"github.com/MKhiriev/go-smite-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEndpoints_Table(t *testing.T) {
	eps := Endpoints()

	assert.Len(t, eps, 27)
	assert.True(t, sort.SliceIsSorted(eps, func(i, j int) bool { return eps[i].Method < eps[j].Method }))

	ep, ok := LookupEndpoint("  GetGodLeaderboard ")
	require.True(t, ok)
	assert.Equal(t, "getgodleaderboard <text> <ranked-queue>", ep.Usage())

	_, ok = LookupEndpoint("getmodedetails")
	assert.False(t, ok)
}

func TestCall_RankedQueueRequired(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{
			name: "god leaderboard",
			call: func(c *Client) error {
				_, err := c.GetGodLeaderboard(context.Background(), "1737", models.Arena)
				return err
			},
		},
		{
			name: "league leaderboard",
			call: func(c *Client) error {
				_, err := c.GetLeagueLeaderboard(context.Background(), models.Arena, models.LeagueTier(27), "1")
				return err
			},
		},
		{
			name: "by name",
			call: func(c *Client) error {
				_, err := c.Call(context.Background(), MethodGetGodLeaderboard, "1737", "Joust")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newMockClient(t)
			tr.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

			err := tt.call(c)

			assert.ErrorIs(t, err, ErrRankedQueueRequired)
		})
	}
}

func TestCall_RankedQueueProceeds(t *testing.T) {
	c, tr := newMockClient(t)
	c.setSessionID("S1")

	var got string
	tr.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rawURL string) (string, error) {
		got = rawURL
		return "[]", nil
	})

	body, err := c.GetGodLeaderboard(context.Background(), "1737", models.ConquestRanked)

	require.NoError(t, err)
	assert.Equal(t, "[]", body)
	assert.True(t, strings.HasSuffix(got, "/S1/"+testTS+"/1737/451"), got)
}

func TestGetLeagueSeasons_AnyQueue(t *testing.T) {
	c, tr := newMockClient(t)
	tr.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rawURL string) (string, error) {
			assert.True(t, strings.HasSuffix(rawURL, "/"+testTS+"/426"), rawURL)
			return "[]", nil
		})

	_, err := c.GetLeagueSeasons(context.Background(), models.Conquest)

	require.NoError(t, err)
}

func TestCall_Validation(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		args    []string
		wantErr error
	}{
		{name: "unknown method", method: "getnothing", wantErr: ErrUnknownMethod},
		{name: "missing argument", method: MethodGetPlayer, wantErr: ErrInvalidArgument},
		{name: "extra argument", method: MethodGetMOTDs, args: []string{"x"}, wantErr: ErrInvalidArgument},
		{name: "blank text", method: MethodGetPlayer, args: []string{"  "}, wantErr: ErrInvalidArgument},
		{name: "unknown queue", method: MethodGetQueueStats, args: []string{"Zeus", "9999"}, wantErr: ErrInvalidArgument},
		{name: "unknown language", method: MethodGetGods, args: []string{"Klingon"}, wantErr: ErrInvalidArgument},
		{name: "unknown tier", method: MethodGetLeagueLeaderboard, args: []string{"451", "99", "1"}, wantErr: ErrInvalidArgument},
		{name: "blank id in list", method: MethodGetMatchDetailsBatch, args: []string{"1,,2"}, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newMockClient(t)
			tr.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

			_, err := c.Call(context.Background(), tt.method, tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCall_NormalizesArguments(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		args       []string
		wantSuffix string
	}{
		{name: "language by name", method: MethodGetGods, args: []string{"English"}, wantSuffix: "/1"},
		{name: "queue by name", method: MethodGetQueueStats, args: []string{"Zeus", "Arena"}, wantSuffix: "/Zeus/435"},
		{name: "match id list trimmed", method: MethodGetMatchDetailsBatch, args: []string{" 1, 2 ,3"}, wantSuffix: "/1,2,3"},
		{name: "league leaderboard", method: MethodGetLeagueLeaderboard, args: []string{"ConquestRanked", "27", "3"}, wantSuffix: "/451/27/3"},
		{name: "match ids by queue", method: MethodGetMatchIDsByQueue, args: []string{"426", "20260217", "-1"}, wantSuffix: "/426/20260217/-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newMockClient(t)
			tr.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, rawURL string) (string, error) {
					assert.True(t, strings.HasSuffix(rawURL, tt.wantSuffix), rawURL)
					return "{}", nil
				})

			_, err := c.Call(context.Background(), tt.method, tt.args...)

			require.NoError(t, err)
		})
	}
}

func TestCall_TextArgumentSentAsGiven(t *testing.T) {
	c, tr := newMockClient(t)
	c.setSessionID("S1")

	want, err := c.BuildRequestURL(MethodGetPlayer, "  Zeus  ")
	require.NoError(t, err)

	tr.EXPECT().Get(gomock.Any(), want.String()).Return("[]", nil)

	_, err = c.GetPlayer(context.Background(), "  Zeus  ")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(want.String(), "/%20%20Zeus%20%20"), want.String())
}

func TestCall_TransportErrorWrapped(t *testing.T) {
	c, tr := newMockClient(t)
	tr.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("503 Service Unavailable"))

	_, err := c.GetPlayer(context.Background(), "Zeus")

	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), MethodGetPlayer)
}

func TestCall_CacheableEndpoint(t *testing.T) {
	c, tr := newMockClient(t, WithCache(8, time.Minute))
	tr.EXPECT().Get(gomock.Any(), gomock.Any()).Return(`[{"Name":"Zeus"}]`, nil).Times(1)

	first, err := c.GetGods(context.Background(), models.English)
	require.NoError(t, err)
	second, err := c.GetGods(context.Background(), models.English)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCall_NonCacheableEndpointAlwaysDispatches(t *testing.T) {
	c, tr := newMockClient(t, WithCache(8, time.Minute))
	tr.EXPECT().Get(gomock.Any(), gomock.Any()).Return(`{}`, nil).Times(2)

	for range 2 {
		_, err := c.GetPlayer(context.Background(), "Zeus")
		require.NoError(t, err)
	}
}

func TestGetMatchDetailsBatch_Empty(t *testing.T) {
	c, tr := newMockClient(t)
	tr.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

	_, err := c.GetMatchDetailsBatch(context.Background())

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetPlayer_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	c, err := New("D", "K", models.PlatformPC, models.FormatJSON, WithTransport(tr))
	require.NoError(t, err)

	var playerURL string
	gomock.InOrder(
		tr.EXPECT().Get(gomock.Any(), gomock.Any()).Return(`{"session_id":"S1"}`, nil),
		tr.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rawURL string) (string, error) {
			playerURL = rawURL
			return `[{"Name":"Zeus"}]`, nil
		}),
	)

	require.NoError(t, c.CreateSession(context.Background()))
	assert.Equal(t, "S1", c.SessionID())

	body, err := c.GetPlayer(context.Background(), "Zeus")
	require.NoError(t, err)

	assert.Equal(t, `[{"Name":"Zeus"}]`, body)
	assert.Regexp(t,
		regexp.MustCompile(`^http://api\.smitegame\.com/smiteapi\.svc/getplayerjson/D/[0-9a-f]{32}/S1/\d{14}/Zeus$`),
		playerURL)
}
