package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/platform/obs"
)

// RoutesMatrixProvider implements MatrixProvider against the Google Routes
// computeRouteMatrix endpoint, requesting traffic-aware drive distances.
//
// The provider is safe for concurrent use. Cells the API response omits are
// left at domain.UnknownDistance; deciding what to do with them belongs to
// the distance engine, not this client.
type RoutesMatrixProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	log     zerolog.Logger
}

func NewRoutesMatrixProvider(apiKey, baseURL string, timeout time.Duration, log zerolog.Logger) *RoutesMatrixProvider {
	if baseURL == "" {
		baseURL = "https://routes.googleapis.com"
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &RoutesMatrixProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: baseURL,
		log:     log,
	}
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type matrixWaypoint struct {
	LatLng latLng `json:"latLng"`
}

type matrixRequest struct {
	Origins           []matrixWaypoint `json:"origins"`
	Destinations      []matrixWaypoint `json:"destinations"`
	TravelMode        string           `json:"travelMode"`
	RoutingPreference string           `json:"routingPreference"`
}

// matrixElement is one entry of the flat response list. DistanceMeters is a
// pointer so an omitted field is distinguishable from a genuine zero.
type matrixElement struct {
	OriginIndex      int      `json:"originIndex"`
	DestinationIndex int      `json:"destinationIndex"`
	DistanceMeters   *float64 `json:"distanceMeters"`
	Duration         string   `json:"duration"`
}

// ComputeMatrix requests the full origin x destination travel matrix and
// converts meters to kilometers.
func (p *RoutesMatrixProvider) ComputeMatrix(
	ctx context.Context,
	origins, destinations []domain.Coordinate,
) (_ domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, p.log, "routes.ComputeMatrix")(&err)

	if len(origins) == 0 || len(destinations) == 0 {
		return nil, errors.New("compute matrix: origins and destinations must be non-empty")
	}
	if p.apiKey == "" {
		return nil, errors.New("compute matrix: routing api key is not configured")
	}

	body := matrixRequest{
		Origins:           waypoints(origins),
		Destinations:      waypoints(destinations),
		TravelMode:        "DRIVE",
		RoutingPreference: "TRAFFIC_AWARE",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal matrix request: %w", err)
	}

	endpoint := p.baseURL + "/distanceMatrix/v2:computeRouteMatrix"
	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		return p.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var elements []matrixElement
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	m := domain.NewDistanceMatrix(len(origins), len(destinations), domain.UnknownDistance)
	for _, el := range elements {
		if el.OriginIndex < 0 || el.OriginIndex >= len(origins) {
			return nil, fmt.Errorf("matrix response: origin index %d out of range", el.OriginIndex)
		}
		if el.DestinationIndex < 0 || el.DestinationIndex >= len(destinations) {
			return nil, fmt.Errorf("matrix response: destination index %d out of range", el.DestinationIndex)
		}
		if el.DistanceMeters == nil {
			continue
		}
		m[el.OriginIndex][el.DestinationIndex] = *el.DistanceMeters / 1000
	}

	return m, nil
}

func waypoints(coords []domain.Coordinate) []matrixWaypoint {
	out := make([]matrixWaypoint, 0, len(coords))
	for _, c := range coords {
		out = append(out, matrixWaypoint{LatLng: latLng{Latitude: c.Lat, Longitude: c.Lng}})
	}
	return out
}
