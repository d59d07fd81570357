package main

import (
	"bikeshare/config"
	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/domain/business/report"
	"bikeshare/pager"
	"bikeshare/publisher"
	"bikeshare/stats"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"io"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no."

// Session drives the analysis runs: filter selection, load, reports and raw data,
// until the user does not want to restart
type Session struct {
	prompter  *console.Prompter
	loader    *dataset.Loader
	pager     *pager.Pager
	publisher publisher.Publisher
	out       io.Writer
}

func NewSession(explorerConfig *config.ExplorerConfig, in io.Reader, out io.Writer, reportPublisher publisher.Publisher) *Session {
	prompter := console.NewPrompter(in, out)
	return &Session{
		prompter:  prompter,
		loader:    dataset.NewLoader(explorerConfig),
		pager:     pager.NewPager(prompter, out, explorerConfig.PageSize),
		publisher: reportPublisher,
		out:       out,
	}
}

// Run executes analysis runs until the user refuses to restart or the input ends
func (s *Session) Run(ctx context.Context) error {
	for {
		err := s.runAnalysis(ctx)
		if err != nil {
			return ignoreEndOfInput(err)
		}

		restart, err := s.prompter.Confirm(restartQuestion)
		if err != nil {
			return ignoreEndOfInput(err)
		}
		if !restart {
			log.Debug("[method: Run][status: OK] session finished by the user")
			return nil
		}
	}
}

// runAnalysis executes one analysis run. A dataset that cannot be loaded is reported to the
// user and ends the run without error, only input errors are returned
func (s *Session) runAnalysis(ctx context.Context) error {
	runID := uuid.New().String()
	logger := log.WithField("run_id", runID)

	filters, err := s.prompter.GetFilters(s.loader.Cities())
	if err != nil {
		return err
	}

	logger.Infof("[method: runAnalysis][city: %s][month: %v][weekday: %v] loading data", filters.City, filters.Month, filters.Weekday)
	ds, err := s.loader.Load(filters)
	if err != nil {
		logger.Errorf("[method: runAnalysis][city: %s][status: ERROR] error loading data: %s", filters.City, err.Error())
		fmt.Fprintf(s.out, "\nThe %s data could not be loaded: %s\n", filters.City, err.Error())
		return nil
	}

	catalog, err := s.loader.LoadStations(filters.City)
	if err != nil {
		logger.Warnf("[method: runAnalysis][city: %s] station catalogue ignored: %s", filters.City, err.Error())
		catalog = nil
	}

	summary := report.NewSummary(runID, ds.City, filters.Month, filters.Weekday, ds.Len())
	printHeader(s.out, filters, ds.Len())

	summary.Time = stats.TimeStats(ds)
	printTimeReport(s.out, summary.Time)

	summary.Stations = stats.StationStats(ds, catalog)
	printStationReport(s.out, summary.Stations)

	summary.Duration = stats.TripDurationStats(ds)
	printDurationReport(s.out, summary.Duration)

	summary.Users = stats.UserStats(ds)
	printUserReport(s.out, summary.Users)

	if err := s.publisher.Publish(ctx, summary); err != nil {
		logger.Errorf("[method: runAnalysis][status: ERROR] %s", err.Error())
	}

	pages, err := s.pager.Browse(ds)
	if err != nil {
		return err
	}

	logger.Debugf("[method: runAnalysis][status: OK] run finished, %v pages of raw data shown", len(pages))
	return nil
}

func ignoreEndOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug("[method: Run] input ended, finishing session")
		return nil
	}
	return err
}
