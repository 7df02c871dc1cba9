// Command reset runs the nightly habit rollover. By default it performs a
// single pass and exits, which suits an external cron entry. With -daemon
// it stays up and fires itself at every local midnight.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/internal/reset"
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/limbo/palseverance/pkg/config"
)

const runTimeout = 10 * time.Minute

func main() {
	daemon := flag.Bool("daemon", false, "keep running and fire at every local midnight")
	flag.Parse()

	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	tzName := cfg.GetString("RESET_TIMEZONE")
	if tzName == "" {
		tzName = "Europe/London"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatal("loading reset timezone error: " + err.Error())
	}
	boundary := progression.NewDayBoundary(loc)

	job := reset.NewJob(
		repository.NewUsersRepo(&dbCfg),
		boundary,
		cfg.GetInt("RESET_WORKERS", 0),
		slog.Default(),
	)

	runOnce(job)
	if !*daemon {
		return
	}
	for {
		next := boundary.Next(time.Now())
		slog.Info("waiting for next midnight", slog.Time("at", next))
		time.Sleep(time.Until(next))
		runOnce(job)
	}
}

func runOnce(job *reset.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	summary, err := job.Run(ctx)
	if err != nil {
		slog.Error("nightly reset run error", slog.String("error", err.Error()))
		return
	}
	slog.Info("nightly reset run done",
		slog.Int("total", summary.Total),
		slog.Int("reset", summary.Reset),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed))
}
