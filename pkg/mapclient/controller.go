package mapclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"moi/internal/models"
	"moi/pkg/logger"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Controller drives one map session: it holds the lookup tables, the origin
// marker and the current result markers.
//
// Lifecycle: New, Start, AttachMap, then any number of Handle*/SearchAndDisplay
// calls, then Close.
type Controller struct {
	gateway    Gateway
	notifier   Notifier
	geocoder   Geocoder
	production bool
	sample     []byte
	origin     Location
	zoom       int

	mu      sync.Mutex
	m       Map
	lookups *Lookups
	marker  Marker
	results []Marker
	closed  bool
}

// Option customizes a Controller
type Option func(*Controller)

// WithProduction makes searches go to the gateway instead of the bundled sample
func WithProduction(production bool) Option {
	return func(c *Controller) {
		c.production = production
	}
}

// WithSample replaces the bundled sample response
func WithSample(body []byte) Option {
	return func(c *Controller) {
		c.sample = body
	}
}

// WithGeocoder sets the reverse geocoder used for geolocation and pins
func WithGeocoder(g Geocoder) Option {
	return func(c *Controller) {
		c.geocoder = g
	}
}

// WithDefaultView sets the initial map center and zoom
func WithDefaultView(lat, lng float64, zoom int) Option {
	return func(c *Controller) {
		c.origin = Location{Lat: lat, Lng: lng}
		c.zoom = zoom
	}
}

// Render describes one completed search rendering
type Render struct {
	Origin  orb.Point
	Markers []Marker
	Bounds  orb.Bound
}

// New creates a controller. notifier may be nil, in which case notices are only logged.
func New(gateway Gateway, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		gateway:  gateway,
		notifier: notifier,
		sample:   sampleResponse,
		origin:   Location{Lat: DefaultLat, Lng: DefaultLng},
		zoom:     DefaultZoom,
		lookups:  NewLookups(nil, nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start fetches the industry and category lookups concurrently, once.
// A failed fetch leaves that table empty and is returned after both finish;
// the controller stays usable either way.
func (c *Controller) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var (
		g          errgroup.Group
		industries []models.Industry
		categories []models.MerchantCategory
	)

	g.Go(func() error {
		list, err := c.gateway.MerchantIndustries(ctx)
		if err != nil {
			log.Warn("Failed to fetch merchant industries", zap.Error(err))
			return fmt.Errorf("merchant industries: %w", err)
		}
		industries = list
		return nil
	})
	g.Go(func() error {
		list, err := c.gateway.MerchantCategories(ctx)
		if err != nil {
			log.Warn("Failed to fetch merchant category codes", zap.Error(err))
			return fmt.Errorf("merchant category codes: %w", err)
		}
		categories = list
		return nil
	})
	err := g.Wait()

	lookups := NewLookups(industries, categories)
	nInd, nCat := lookups.Len()
	log.Info("Lookups loaded", zap.Int("industries", nInd), zap.Int("categories", nCat))

	c.mu.Lock()
	c.lookups = lookups
	c.mu.Unlock()

	return err
}

// Lookups returns the lookup tables in use
func (c *Controller) Lookups() *Lookups {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookups
}

// AttachMap binds the rendering surface and shows the default view.
func (c *Controller) AttachMap(m Map) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m = m
	m.SetCenter(c.origin.Point())
	m.SetZoom(c.zoom)
}

// HandleGeolocation centers on the device position, reverse geocodes it for
// the country code and searches there.
func (c *Controller) HandleGeolocation(ctx context.Context, pos LatLng) (*Render, error) {
	c.mu.Lock()
	if c.m != nil && !c.closed {
		c.m.SetCenter(pos.Point())
	}
	c.mu.Unlock()

	loc, err := c.resolveCoordinates(ctx, pos)
	if err != nil {
		return nil, err
	}
	return c.SearchAndDisplay(ctx, loc)
}

// HandlePin searches around a pin dropped directly on the map.
func (c *Controller) HandlePin(ctx context.Context, pos LatLng) (*Render, error) {
	loc, err := c.resolveCoordinates(ctx, pos)
	if err != nil {
		return nil, err
	}
	return c.SearchAndDisplay(ctx, loc)
}

// HandlePlaceSelection searches around an autocomplete selection.
func (c *Controller) HandlePlaceSelection(ctx context.Context, sel PlaceSelection) (*Render, error) {
	loc, err := LocationFromSelection(sel)
	if err != nil {
		c.notify(ctx, fmt.Sprintf(noticeNoDetails, sel.Name))
		return nil, err
	}
	if loc.CountryCode == "" {
		logger.FromContext(ctx).Warn("Selection has no country component", zap.String("name", sel.Name))
	}
	return c.SearchAndDisplay(ctx, loc)
}

func (c *Controller) resolveCoordinates(ctx context.Context, pos LatLng) (Location, error) {
	log := logger.FromContext(ctx)

	if c.geocoder == nil {
		log.Warn("No geocoder configured, searching without country code")
		return Location{Lat: pos.Lat, Lng: pos.Lng}, nil
	}

	results, err := c.geocoder.ReverseGeocode(ctx, pos)
	if err != nil {
		var statusErr *GeocodeStatusError
		if errors.As(err, &statusErr) {
			c.notify(ctx, fmt.Sprintf(noticeGeocodeFail, statusErr.Status))
		}
		log.Warn("Reverse geocoding failed", zap.Error(err))
		return Location{}, fmt.Errorf("%w: %v", ErrGeocode, err)
	}

	loc, err := LocationFromGeocode(pos, results)
	if err != nil {
		c.notify(ctx, NoticeNoGeocode)
		return Location{}, err
	}
	if loc.CountryCode == "" {
		log.Warn("Geocoding result has no country component",
			zap.Float64("lat", pos.Lat), zap.Float64("lng", pos.Lng))
	}
	return loc, nil
}

// SearchAndDisplay replaces the origin marker, queries merchants around loc and
// renders them. An empty result is reported through the notifier and returned
// as ErrNoResults.
func (c *Controller) SearchAndDisplay(ctx context.Context, loc Location) (*Render, error) {
	log := logger.FromContext(logger.WithOperation(ctx, "searchAndDisplay"))
	origin := loc.Point()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if c.m == nil {
		c.mu.Unlock()
		return nil, ErrNoMap
	}
	c.m.SetCenter(origin)
	if c.marker != nil {
		c.marker.SetVisible(false)
	}
	c.marker = c.m.NewMarker(origin, "")
	c.mu.Unlock()

	log.Info("Searching merchants",
		zap.Float64("lat", loc.Lat),
		zap.Float64("lng", loc.Lng),
		zap.String("country_code", loc.CountryCode))

	env, err := c.query(ctx, loc)
	if err != nil {
		log.Error("Merchant query failed", zap.Error(err))
		return nil, err
	}

	places := env.Places()
	if len(places) == 0 {
		c.notify(ctx, NoticeNoResults)
		return nil, ErrNoResults
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}

	for _, old := range c.results {
		old.OnClick(nil)
		old.SetVisible(false)
	}
	c.results = c.results[:0]

	m := c.m
	bounds := orb.Bound{Min: origin, Max: origin}
	for i, place := range places {
		pos, err := placePoint(place)
		if err != nil {
			log.Warn("Skipping merchant with invalid coordinates",
				zap.String("merchant", place.MerchantName), zap.Error(err))
			continue
		}

		marker := m.NewMarker(pos, markerLabel(place.MerchantName))
		details := Details(place, c.lookups)
		marker.OnClick(func() {
			m.ShowPopup(marker, details)
		})

		c.results = append(c.results, marker)
		bounds = bounds.Extend(pos)
		log.Debug("Merchant placed", zap.Int("index", i), zap.Float64("lat", pos.Lat()), zap.Float64("lng", pos.Lon()))
	}

	m.SetCenter(origin)
	m.FitBounds(bounds)
	m.SetZoom(m.Zoom() - 1)

	log.Info("Merchants rendered", logger.CountField(len(c.results)))

	markers := make([]Marker, len(c.results))
	copy(markers, c.results)
	return &Render{Origin: origin, Markers: markers, Bounds: bounds}, nil
}

// query fetches results from the gateway in production and from the sample otherwise.
func (c *Controller) query(ctx context.Context, loc Location) (*models.MerchantPOIEnvelope, error) {
	if !c.production {
		return ParseSearchResponse(c.sample)
	}
	return c.gateway.SearchNearby(ctx, loc)
}

// Close detaches every click handler and hides the origin marker.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for _, marker := range c.results {
		marker.OnClick(nil)
	}
	if c.marker != nil {
		c.marker.SetVisible(false)
	}
}

func (c *Controller) notify(ctx context.Context, message string) {
	logger.FromContext(ctx).Info("User notice", zap.String("message", message))
	if c.notifier != nil {
		c.notifier.Notify(message)
	}
}

func placePoint(p models.MerchantRecord) (orb.Point, error) {
	lat, err := strconv.ParseFloat(p.Latitude, 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("latitude %q: %w", p.Latitude, err)
	}
	lng, err := strconv.ParseFloat(p.Longitude, 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("longitude %q: %w", p.Longitude, err)
	}
	return orb.Point{lng, lat}, nil
}
