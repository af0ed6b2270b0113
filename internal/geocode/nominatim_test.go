package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

// nominatimStub returns a test server which replies to searches for the
// names in the map and returns an empty result for anything else. It
// records the last query and User-Agent seen.
func nominatimStub(t *testing.T, places map[string]string,
	lastQuery, lastUA *string,
) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			*lastQuery = q.Get("q")
			*lastUA = r.Header.Get("User-Agent")

			if q.Get("format") != "json" {
				http.Error(w, "bad format", http.StatusBadRequest)
				return
			}

			w.Header().Set("Content-Type", "application/json")

			body, ok := places[q.Get("q")]
			if !ok {
				fmt.Fprint(w, "[]")
				return
			}

			fmt.Fprint(w, body)
		}))
}

func TestNominatimGeocode(t *testing.T) {
	var lastQuery, lastUA string

	srv := nominatimStub(t, map[string]string{
		"Tokyo": `[{"lat":"35.6768601","lon":"139.7638947",` +
			`"display_name":"Tokyo, Japan"}]`,
		"New York": `[{"lat":"40.7127281","lon":"-74.0060152",` +
			`"display_name":"City of New York, United States"}]`,
		"Badlat":   `[{"lat":"north","lon":"0"}]`,
		"Badlon":   `[{"lat":"0","lon":"west"}]`,
		"Badjson":  `{"lat":`,
		"Twoplace": `[{"lat":"1.5","lon":"2.5"},{"lat":"3","lon":"4"}]`,
	}, &lastQuery, &lastUA)
	defer srv.Close()

	n, err := NewNominatim(BaseURL(srv.URL), UserAgent("tzdiff-test"))
	if err != nil {
		t.Fatal("unexpected error creating the Nominatim geocoder: ", err)
	}

	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		name     string
		expPoint Point
		expNoMat bool
	}{
		{
			ID:       testhelper.MkID("Tokyo"),
			name:     "Tokyo",
			expPoint: Point{Lat: 35.6768601, Lng: 139.7638947},
		},
		{
			ID:       testhelper.MkID("name with a space"),
			name:     "New York",
			expPoint: Point{Lat: 40.7127281, Lng: -74.0060152},
		},
		{
			ID:       testhelper.MkID("first of many"),
			name:     "Twoplace",
			expPoint: Point{Lat: 1.5, Lng: 2.5},
		},
		{
			ID:       testhelper.MkID("no match"),
			ExpErr:   testhelper.MkExpErr("no matching place was found"),
			name:     "Nowhere12345xyz",
			expNoMat: true,
		},
		{
			ID:     testhelper.MkID("bad latitude"),
			ExpErr: testhelper.MkExpErr(`geocoding "Badlat": bad latitude`),
			name:   "Badlat",
		},
		{
			ID:     testhelper.MkID("bad longitude"),
			ExpErr: testhelper.MkExpErr(`geocoding "Badlon": bad longitude`),
			name:   "Badlon",
		},
		{
			ID:     testhelper.MkID("bad JSON"),
			ExpErr: testhelper.MkExpErr(`geocoding "Badjson"`),
			name:   "Badjson",
		},
	}

	for _, tc := range testCases {
		p, err := n.Geocode(context.Background(), tc.name)
		if testhelper.CheckExpErr(t, err, tc) && err == nil {
			if p != tc.expPoint {
				t.Log(tc.IDStr())
				t.Errorf("\t: expected point: %s, got: %s", tc.expPoint, p)
			}
		}

		if errors.Is(err, ErrNoMatch) != tc.expNoMat {
			t.Log(tc.IDStr())
			t.Errorf("\t: unexpected no-match status: %v", err)
		}

		if errors.Is(err, ErrTimedOut) {
			t.Log(tc.IDStr())
			t.Errorf("\t: unexpected timeout: %v", err)
		}

		testhelper.DiffString(t, tc.IDStr(), "query", lastQuery, tc.name)
		testhelper.DiffString(t, tc.IDStr(), "User-Agent", lastUA, "tzdiff-test")
	}
}

func TestNominatimTimeout(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
	defer srv.Close()
	defer close(release)

	n, err := NewNominatim(BaseURL(srv.URL), Timeout(20*time.Millisecond))
	if err != nil {
		t.Fatal("unexpected error creating the Nominatim geocoder: ", err)
	}

	_, err = n.Geocode(context.Background(), "Tokyo")
	if !errors.Is(err, ErrTimedOut) {
		t.Errorf("expected a timeout error, got: %v", err)
	}
}

func TestNominatimBadStatus(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		status      int
		expTimedOut bool
	}{
		{
			ID:     testhelper.MkID("server error"),
			ExpErr: testhelper.MkExpErr("unexpected response: 500"),
			status: http.StatusInternalServerError,
		},
		{
			ID:     testhelper.MkID("forbidden"),
			ExpErr: testhelper.MkExpErr("unexpected response: 403"),
			status: http.StatusForbidden,
		},
		{
			ID:          testhelper.MkID("gateway timeout"),
			ExpErr:      testhelper.MkExpErr("timed out", "504"),
			status:      http.StatusGatewayTimeout,
			expTimedOut: true,
		},
	}

	for _, tc := range testCases {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))

		n, err := NewNominatim(BaseURL(srv.URL))
		if err != nil {
			srv.Close()
			t.Fatal(tc.IDStr(),
				": unexpected error creating the Nominatim geocoder: ", err)
		}

		_, err = n.Geocode(context.Background(), "Tokyo")
		testhelper.CheckExpErr(t, err, tc)

		if errors.Is(err, ErrTimedOut) != tc.expTimedOut {
			t.Log(tc.IDStr())
			t.Errorf("\t: timed out error: expected %t, got: %v",
				tc.expTimedOut, err)
		}

		srv.Close()
	}
}

func TestNewNominatimBadOpts(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		opts []NominatimOpt
	}{
		{
			ID:   testhelper.MkID("defaults"),
			opts: nil,
		},
		{
			ID:     testhelper.MkID("bad scheme"),
			ExpErr: testhelper.MkExpErr("the scheme must be http or https"),
			opts:   []NominatimOpt{BaseURL("ftp://example.com/search")},
		},
		{
			ID:     testhelper.MkID("empty user agent"),
			ExpErr: testhelper.MkExpErr("the User-Agent must not be empty"),
			opts:   []NominatimOpt{UserAgent("")},
		},
		{
			ID:     testhelper.MkID("zero timeout"),
			ExpErr: testhelper.MkExpErr("the request timeout (0s) must be positive"),
			opts:   []NominatimOpt{Timeout(0)},
		},
	}

	for _, tc := range testCases {
		_, err := NewNominatim(tc.opts...)
		testhelper.CheckExpErr(t, err, tc)
	}
}
