package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"cpu-scheduler-simulator/api"
	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/report"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/schedulers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	configPath := flags.String("config", "", "path to config file (default ./config.yaml)")
	input := flags.String("input", "", "jobs file (.csv, .yaml, .yml, .json); when set, print results instead of serving")
	policyName := flags.String("policy", "all", "policy to run with --input, or \"all\"")
	flags.Int("port", 0, "http port")
	flags.Int("time-quantum", 0, "round robin time quantum")
	flags.IntSlice("levels-time-quantum", nil, "mlfq time quantum per round robin level")
	flags.String("log-level", "", "log level")
	_ = flags.Parse(os.Args[1:])

	schedulerConfig, err := config.Load(*configPath, flags)
	if err != nil {
		log.Fatalln(err)
	}
	logger, err := schedulerConfig.NewLogger()
	if err != nil {
		log.Fatalln(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	registry := schedulers.NewRegistry(schedulerConfig.RoundRobinTimeQuantum, schedulerConfig.MultilevelFeedbackQueueLevelsTimeQuantum)

	if *input != "" {
		if err := runFile(os.Stdout, registry, *input, *policyName); err != nil {
			logger.Fatal("schedule failed", zap.Error(err))
		}
		return
	}

	app := fiber.New()
	app.Use(recover.New())
	api.RegisterRoutes(app.Group("/api"), api.NewSchedulerHandlerImpl(registry, logger))

	logger.Info("listening", zap.Int("port", schedulerConfig.Port))
	if err := app.Listen(":" + strconv.Itoa(schedulerConfig.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func runFile(w io.Writer, registry *schedulers.Registry, path, policyName string) error {
	jobs, err := requests.LoadJobs(path)
	if err != nil {
		return err
	}
	request := &requests.ScheduleRequests{Jobs: jobs}

	policies := registry.Policies()
	if policyName != "all" {
		policy, err := registry.Lookup(policyName)
		if err != nil {
			return err
		}
		policies = []schedulers.Policy{policy}
	}

	var errs []error
	for _, policy := range policies {
		response, err := policy.Schedule(request)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", policy.Name(), err))
			continue
		}
		report.Render(w, policy.Title(), response)
	}
	return errors.Join(errs...)
}
