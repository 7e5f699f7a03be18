package config

import (
	"drone-delivery-service/internal/domain"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Planner holds the flight parameters and pricing for a planning run.
type Planner struct {
	Params   domain.FlightParams
	FeePence int
}

type point struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

type bounds struct {
	MinLon float64 `yaml:"min_lon"`
	MaxLon float64 `yaml:"max_lon"`
	MinLat float64 `yaml:"min_lat"`
	MaxLat float64 `yaml:"max_lat"`
}

// plannerFile is the optional YAML overlay. Absent fields keep defaults.
type plannerFile struct {
	Home        *point   `yaml:"home"`
	Bounds      *bounds  `yaml:"bounds"`
	StepLength  *float64 `yaml:"step_length"`
	Tolerance   *float64 `yaml:"tolerance"`
	MoveBudget  *int     `yaml:"move_budget"`
	WaypointFan *int     `yaml:"waypoint_fan"`
	HomeFan     *int     `yaml:"home_fan"`
	FeePence    *int     `yaml:"delivery_fee_pence"`
}

// LoadPlanner builds the planner configuration from defaults, then the YAML
// file named by PLANNER_CONFIG, then PLANNER_MOVE_BUDGET and
// PLANNER_DELIVERY_FEE. The result is validated.
func LoadPlanner() (Planner, error) {
	cfg := Planner{
		Params:   domain.DefaultFlightParams(),
		FeePence: domain.DefaultDeliveryFee,
	}

	if path := Get("PLANNER_CONFIG", ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Planner{}, fmt.Errorf("load planner config: read %q: %w", path, err)
		}
		if err := cfg.apply(data); err != nil {
			return Planner{}, fmt.Errorf("load planner config: %q: %w", path, err)
		}
	}

	if v := Get("PLANNER_MOVE_BUDGET", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Planner{}, fmt.Errorf("load planner config: PLANNER_MOVE_BUDGET=%q: %w", v, domain.ErrInvalidInput)
		}
		cfg.Params.MoveBudget = n
	}
	if v := Get("PLANNER_DELIVERY_FEE", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Planner{}, fmt.Errorf("load planner config: PLANNER_DELIVERY_FEE=%q: %w", v, domain.ErrInvalidInput)
		}
		cfg.FeePence = n
	}

	if cfg.FeePence < 0 {
		return Planner{}, fmt.Errorf("load planner config: %w: delivery fee must not be negative", domain.ErrInvalidInput)
	}
	if err := cfg.Params.Validate(); err != nil {
		return Planner{}, fmt.Errorf("load planner config: %w", err)
	}

	return cfg, nil
}

func (c *Planner) apply(data []byte) error {
	var f plannerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if f.Home != nil {
		c.Params.Home = domain.NewPosition(f.Home.Lon, f.Home.Lat)
	}
	if f.Bounds != nil {
		c.Params.Bounds = domain.NewBounds(f.Bounds.MinLon, f.Bounds.MaxLon, f.Bounds.MinLat, f.Bounds.MaxLat)
	}
	if f.StepLength != nil {
		c.Params.StepLength = *f.StepLength
	}
	if f.Tolerance != nil {
		c.Params.Tolerance = *f.Tolerance
	}
	if f.MoveBudget != nil {
		c.Params.MoveBudget = *f.MoveBudget
	}
	if f.WaypointFan != nil {
		c.Params.WaypointFan = *f.WaypointFan
	}
	if f.HomeFan != nil {
		c.Params.HomeFan = *f.HomeFan
	}
	if f.FeePence != nil {
		c.FeePence = *f.FeePence
	}
	return nil
}
