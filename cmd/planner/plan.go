package main

import (
	"drone-delivery-service/internal/adapters/cache"
	"drone-delivery-service/internal/adapters/geojson"
	"drone-delivery-service/internal/adapters/repositories"
	"drone-delivery-service/internal/adapters/webserver"
	"drone-delivery-service/internal/config"
	"drone-delivery-service/internal/platform/db"
	"drone-delivery-service/internal/platform/obs"
	"drone-delivery-service/internal/services"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Plan the delivery drone's flight for a day of orders",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newPlanCmd())
	return root
}

type planOptions struct {
	date    string
	outDir  string
	noStore bool
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan one day, persist the results and write the route file",
		Example: "  planner plan --date 2023-12-27\n" +
			"  planner plan --date 2023-12-27 --out routes --no-store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "delivery date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "directory for the route GeoJSON file")
	cmd.Flags().BoolVar(&opts.noStore, "no-store", false, "skip writing deliveries and flightpath tables")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func runPlan(cmd *cobra.Command, opts *planOptions) error {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(opts.date))
	if err != nil {
		return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	planner, err := config.LoadPlanner()
	if err != nil {
		return err
	}

	ctx := obs.WithRequestID(cmd.Context(), uuid.NewString())

	db, err := db.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.InitSchema(ctx, db); err != nil {
		return err
	}

	var menuCache webserver.MenuCache
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		menuCache = cache.NewRedisMenuCache(rdb, 24*time.Hour)
	}

	client, err := webserver.NewClient(
		config.Get("WEBSERVER_URL", "http://localhost:9898"),
		cache.NewSQLLocationCache(db),
		menuCache,
	)
	if err != nil {
		return err
	}

	deps := services.PlanDayDeps{
		Orders:    repositories.NewPostgresOrderRepository(db),
		Menu:      client,
		Locations: client,
		Zones:     client,
	}
	if !opts.noStore {
		deps.Store = repositories.NewPostgresJourneyStore(db)
	}

	plan, planErr := services.PlanDay(ctx, services.PlanDayRequest{
		Date:     date,
		Params:   planner.Params,
		FeePence: planner.FeePence,
	}, deps)
	if plan == nil {
		return planErr
	}

	path, err := geojson.WriteRoute(opts.outDir, date, plan.Journey.Positions)
	if err != nil {
		return err
	}

	total := 0
	for _, d := range plan.Deliveries {
		total += d.CostInPence
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"date=%s orders=%d delivered=%d moves=%d termination=%s pence=%d route=%s\n",
		date.Format(time.DateOnly), countOrders(plan), len(plan.Deliveries),
		plan.Journey.Moves(), plan.Journey.Termination, total, path,
	)

	return planErr
}

func countOrders(plan *services.DayPlan) int {
	n := 0
	for i, it := range plan.Items {
		if i == 0 || plan.Items[i-1].OrderNo != it.OrderNo {
			n++
		}
	}
	return n
}
