// Package cascade - зависимые фильтры регион -> город.
package cascade

import (
	"context"
	"slices"
	"sync"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// RegionLoader загружает регионы страны
type RegionLoader func(ctx context.Context, countryID int) ([]models.Region, error)

// CityLoader загружает города региона страны
type CityLoader func(ctx context.Context, countryID int, regionID string) ([]models.City, error)

// Cascade хранит выбранные регион и город. Смена региона сбрасывает город в "all"
// и загружает города нового региона; применяется только ответ на последний выбор.
type Cascade struct {
	countryID  int
	loadRegion RegionLoader
	loadCities CityLoader
	logger     *logrus.Logger

	mu            sync.Mutex
	gen           uint64
	regions       []models.Region
	cities        []models.City
	region        string
	city          string
	citiesLoading bool
}

func New(countryID int, loadRegions RegionLoader, loadCities CityLoader, logger *logrus.Logger) *Cascade {
	return &Cascade{
		countryID:  countryID,
		loadRegion: loadRegions,
		loadCities: loadCities,
		logger:     logger,
		region:     models.FilterAll,
		city:       models.FilterAll,
	}
}

// LoadRegions загружает список регионов. При ошибке фильтр остается пустым,
// ошибка логируется и возвращается, чтобы владелец страницы мог повторить загрузку.
func (c *Cascade) LoadRegions(ctx context.Context) error {
	if c.countryID == 0 {
		return nil
	}
	regions, err := c.loadRegion(ctx, c.countryID)
	if err != nil {
		c.logger.WithError(err).WithField("country", c.countryID).Warn("Failed to fetch regions for filters")
		c.SetRegions(nil)
		return err
	}
	c.SetRegions(regions)
	return nil
}

// SetRegions подставляет уже загруженный список регионов (общий для нескольких каскадов)
func (c *Cascade) SetRegions(regions []models.Region) {
	c.mu.Lock()
	c.regions = slices.Clone(regions)
	c.mu.Unlock()
}

// Regions возвращает копию загруженного списка регионов
func (c *Cascade) Regions() []models.Region {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.regions)
}

// SelectRegion выбирает регион, сбрасывает город и загружает города региона.
// Для "all" список городов очищается без запроса.
func (c *Cascade) SelectRegion(ctx context.Context, region string) {
	if region == "" {
		region = models.FilterAll
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.region = region
	c.city = models.FilterAll
	if region == models.FilterAll || c.countryID == 0 {
		c.cities = nil
		c.citiesLoading = false
		c.mu.Unlock()
		return
	}
	c.citiesLoading = true
	c.mu.Unlock()

	cities, err := c.loadCities(ctx, c.countryID, region)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.citiesLoading = false
	if err != nil {
		c.logger.WithError(err).WithField("region", region).Warn("Failed to fetch cities for filters")
		c.cities = nil
		return
	}
	c.cities = slices.Clone(cities)
}

// SelectCity выбирает город внутри текущего региона
func (c *Cascade) SelectCity(city string) {
	if city == "" {
		city = models.FilterAll
	}
	c.mu.Lock()
	c.city = city
	c.mu.Unlock()
}

// Filters - значения region/city для запроса списка
func (c *Cascade) Filters() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return map[string]string{"region": c.region, "city": c.city}
}

// Snapshot - состояние селекторов для отрисовки
type Snapshot struct {
	Regions       []models.Region `json:"regions"`
	Cities        []models.City   `json:"cities"`
	Region        string          `json:"region"`
	City          string          `json:"city"`
	CitiesLoading bool            `json:"cities_loading"`
	CityDisabled  bool            `json:"city_disabled"`
	// CityPlaceholder - подсказка в селекторе города
	CityPlaceholder string `json:"city_placeholder"`
}

func (c *Cascade) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Regions:       slices.Clone(c.regions),
		Cities:        slices.Clone(c.cities),
		Region:        c.region,
		City:          c.city,
		CitiesLoading: c.citiesLoading,
		CityDisabled:  c.citiesLoading || c.region == models.FilterAll,
	}
	if snap.Regions == nil {
		snap.Regions = []models.Region{}
	}
	if snap.Cities == nil {
		snap.Cities = []models.City{}
	}
	switch {
	case c.citiesLoading:
		snap.CityPlaceholder = "Loading cities..."
	case c.region == models.FilterAll:
		snap.CityPlaceholder = "Select a region first"
	default:
		snap.CityPlaceholder = "All Cities"
	}
	return snap
}
