package config

import (
	"drone-delivery-service/internal/domain"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlannerDefaults(t *testing.T) {
	t.Setenv("PLANNER_CONFIG", "")
	t.Setenv("PLANNER_MOVE_BUDGET", "")
	t.Setenv("PLANNER_DELIVERY_FEE", "")

	cfg, err := LoadPlanner()
	if err != nil {
		t.Fatalf("LoadPlanner error = %v", err)
	}
	if cfg.Params != domain.DefaultFlightParams() {
		t.Fatalf("Params = %+v, want defaults", cfg.Params)
	}
	if cfg.FeePence != domain.DefaultDeliveryFee {
		t.Fatalf("FeePence = %d, want %d", cfg.FeePence, domain.DefaultDeliveryFee)
	}
}

func TestLoadPlannerFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	body := "move_budget: 900\nhome_fan: 15\ndelivery_fee_pence: 75\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANNER_CONFIG", path)
	t.Setenv("PLANNER_MOVE_BUDGET", "1200")
	t.Setenv("PLANNER_DELIVERY_FEE", "")

	cfg, err := LoadPlanner()
	if err != nil {
		t.Fatalf("LoadPlanner error = %v", err)
	}
	if cfg.Params.MoveBudget != 1200 {
		t.Fatalf("MoveBudget = %d, want 1200", cfg.Params.MoveBudget)
	}
	if cfg.Params.HomeFan != 15 {
		t.Fatalf("HomeFan = %d, want 15", cfg.Params.HomeFan)
	}
	if cfg.Params.WaypointFan != domain.DefaultWaypointFan {
		t.Fatalf("WaypointFan = %d, want %d", cfg.Params.WaypointFan, domain.DefaultWaypointFan)
	}
	if cfg.FeePence != 75 {
		t.Fatalf("FeePence = %d, want 75", cfg.FeePence)
	}
}

func TestLoadPlannerRejectsHomeOutsideBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	body := "home:\n  lon: 0\n  lat: 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANNER_CONFIG", path)
	t.Setenv("PLANNER_MOVE_BUDGET", "")
	t.Setenv("PLANNER_DELIVERY_FEE", "")

	_, err := LoadPlanner()
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestLoadPlannerRejectsBadBudget(t *testing.T) {
	t.Setenv("PLANNER_CONFIG", "")
	t.Setenv("PLANNER_MOVE_BUDGET", "lots")

	_, err := LoadPlanner()
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetFallback(t *testing.T) {
	t.Setenv("SOME_UNSET_KEY", "")
	if got := Get("SOME_UNSET_KEY", "x"); got != "x" {
		t.Fatalf("Get = %q, want x", got)
	}
}
