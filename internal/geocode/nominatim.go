package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nickwells/verbose.mod/verbose"
)

const (
	// DfltNominatimURL is the address of the public Nominatim search service
	DfltNominatimURL = "https://nominatim.openstreetmap.org/search"
	// DfltUserAgent is the User-Agent sent with each request. Nominatim
	// rejects requests without one.
	DfltUserAgent = "tzdiff"
	// DfltTimeout is the time allowed for a single request
	DfltTimeout = 10 * time.Second
)

// Nominatim is a Geocoder which queries a Nominatim search service
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NominatimOpt is the type of an option func used to configure a Nominatim
// Geocoder
type NominatimOpt func(n *Nominatim) error

// BaseURL returns an option func which sets the search address
func BaseURL(u string) NominatimOpt {
	return func(n *Nominatim) error {
		pu, err := url.Parse(u)
		if err != nil {
			return fmt.Errorf("bad geocoder URL %q: %w", u, err)
		}

		if pu.Scheme != "http" && pu.Scheme != "https" {
			return fmt.Errorf("bad geocoder URL %q: the scheme must be"+
				" http or https", u)
		}

		n.baseURL = u

		return nil
	}
}

// UserAgent returns an option func which sets the User-Agent header
func UserAgent(ua string) NominatimOpt {
	return func(n *Nominatim) error {
		if ua == "" {
			return errors.New("the User-Agent must not be empty")
		}

		n.userAgent = ua

		return nil
	}
}

// Timeout returns an option func which sets the time allowed for each
// request
func Timeout(d time.Duration) NominatimOpt {
	return func(n *Nominatim) error {
		if d <= 0 {
			return fmt.Errorf("the request timeout (%s) must be positive", d)
		}

		n.client.Timeout = d

		return nil
	}
}

// NewNominatim returns a Nominatim Geocoder configured with the defaults and
// then with the supplied options
func NewNominatim(opts ...NominatimOpt) (*Nominatim, error) {
	n := &Nominatim{
		baseURL:   DfltNominatimURL,
		userAgent: DfltUserAgent,
		client:    &http.Client{Timeout: DfltTimeout},
	}

	for _, o := range opts {
		if err := o(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// nominatimPlace holds the parts of a Nominatim search result that we use.
// Note that Nominatim returns the coordinates as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// searchURL returns the URL to query for the given name
func (n *Nominatim) searchURL(name string) (string, error) {
	u, err := url.Parse(n.baseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("q", name)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Geocode queries the Nominatim service for the named place and returns
// the coordinates of the best match.
func (n *Nominatim) Geocode(ctx context.Context, name string) (Point, error) {
	su, err := n.searchURL(name)
	if err != nil {
		return Point{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, su, nil)
	if err != nil {
		return Point{}, err
	}

	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	verbose.Println("geocode: GET ", su)

	resp, err := n.client.Do(req)
	if err != nil {
		return Point{}, requestErr(name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return Point{}, fmt.Errorf("%w: %q: %s", ErrTimedOut, name, resp.Status)
	default:
		return Point{}, fmt.Errorf("geocoding %q: unexpected response: %s",
			name, resp.Status)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return Point{}, requestErr(name, err)
	}

	if len(places) == 0 {
		return Point{}, ErrNoMatch
	}

	return places[0].point(name)
}

// point converts the place into a Point
func (np nominatimPlace) point(name string) (Point, error) {
	lat, err := strconv.ParseFloat(np.Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("geocoding %q: bad latitude: %w", name, err)
	}

	lng, err := strconv.ParseFloat(np.Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("geocoding %q: bad longitude: %w", name, err)
	}

	verbose.Println("geocode: ", name, " => ", np.DisplayName)

	return Point{Lat: lat, Lng: lng}, nil
}

// requestErr wraps the error, marking it as a timeout if it was caused by
// one
func requestErr(name string, err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %q: %w", ErrTimedOut, name, err)
	}

	return fmt.Errorf("geocoding %q: %w", name, err)
}

// isTimeout reports whether the error is the result of a deadline expiring
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var ne net.Error

	return errors.As(err, &ne) && ne.Timeout()
}
