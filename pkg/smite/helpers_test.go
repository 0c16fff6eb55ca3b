package smite

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-smite-api/internal/mock"
	"github.com/MKhiriev/go-smite-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testDevID   = "1004"
	testAuthKey = "23DF3C7E9BD14D84BF892AD206B6755C"
	testTS      = "20260217153000"
)

var testNow = time.Date(2026, time.February, 17, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// newMockClient returns a PC/json client whose transport is a gomock mock.
func newMockClient(t *testing.T, opts ...Option) (*Client, *mock.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	opts = append([]Option{WithTransport(tr), WithClock(fixedClock)}, opts...)
	c, err := New(testDevID, testAuthKey, models.PlatformPC, models.FormatJSON, opts...)
	require.NoError(t, err)

	return c, tr
}

// newStubServer starts an httptest server with r mounted under /smiteapi.svc
// and a client pointed at it.
func newStubServer(t *testing.T, format models.ResponseFormat, r chi.Router) *Client {
	t.Helper()
	root := chi.NewRouter()
	root.Mount("/smiteapi.svc", r)

	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)

	c, err := New(testDevID, testAuthKey, models.PlatformPC, format,
		WithBaseURL(srv.URL+"/smiteapi.svc"),
		WithClock(fixedClock),
		WithTimeout(2*time.Second),
	)
	require.NoError(t, err)

	return c
}
