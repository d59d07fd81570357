package main

import (
	"bikeshare/config"
	"bikeshare/domain/business/report"
	"bytes"
	"context"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-03-01 17:45:03,2017-03-01 17:50:24,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-03-02 08:26:05,2017-03-02 08:33:48,463,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-03-08 17:49:21,2017-03-08 18:01:13,712,Clark St & Lake St,Canal St & Adams St,Customer,,
45207,2017-03-15 17:02:38,2017-03-15 17:07:59,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Female,1975.0
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

const stationsCSV = `name,latitude,longitude
Wood St & Hubbard St,41.889899,-87.671428
Damen Ave & Chicago Ave,41.895769,-87.677432
`

type recordingPublisher struct {
	summaries []*report.Summary
}

func (rp *recordingPublisher) Publish(_ context.Context, summary *report.Summary) error {
	rp.summaries = append(rp.summaries, summary)
	return nil
}

func (rp *recordingPublisher) Close() error {
	return nil
}

// writeTestData writes the datasets in a temporary directory and returns a config file that points to them
func writeTestData(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	files := map[string]string{
		"chicago.csv":          chicagoCSV,
		"washington.csv":       washingtonCSV,
		"chicago_stations.csv": stationsCSV,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0600))
	}

	configContent := "log_level: error\ndata_dir: " + dataDir + "\nstations:\n  chicago: chicago_stations.csv\n"
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0600))
	return configPath
}

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer, *recordingPublisher) {
	t.Helper()
	t.Setenv("BIKESHARE_CONFIG", writeTestData(t))
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("BIKESHARE_DATA_DIR", "")

	explorerConfig, err := config.LoadConfig()
	require.NoError(t, err)

	out := &bytes.Buffer{}
	reportPublisher := &recordingPublisher{}
	return NewSession(explorerConfig, strings.NewReader(input), out, reportPublisher), out, reportPublisher
}

func TestSession_chicagoMarchWednesday(t *testing.T) {
	// --- Arrange ---
	session, out, reportPublisher := newTestSession(t, "chicago\nmarch\n2\nyes\nno\n")

	// --- Act ---
	err := session.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	output := out.String()
	require.Contains(t, output, "Analysing Chicago trips started on Wednesdays of March: 3 trips found")
	require.Contains(t, output, "The most common month is March")
	require.Contains(t, output, "The most common day is Wednesday")
	require.Contains(t, output, "The most common hour is 17")
	require.Contains(t, output, "Most commonly used start station is Wood St & Hubbard St")
	require.Contains(t, output, "Most commonly used end station is Damen Ave & Chicago Ave")
	require.Contains(t, output, "Most frequent combination of start and end station is Wood St & Hubbard St and Damen Ave & Chicago Ave")
	require.Contains(t, output, "km apart")
	require.Contains(t, output, "Total travel time is 1354 seconds")
	require.Contains(t, output, "Mean travel time is 451.33 seconds")
	require.Contains(t, output, "  Subscriber: 2")
	require.Contains(t, output, "  Customer: 1")
	require.Contains(t, output, "  Female: 1")
	require.Contains(t, output, "The earliest birth year is 1975")
	require.Contains(t, output, "The most recent birth year is 1992")
	require.Contains(t, output, "The most common birth year is 1975")
	require.Contains(t, output, "There are 3 raw data")
	require.Contains(t, output, "That is all the raw data we have. Exiting")
	require.Equal(t, 1, strings.Count(output, "Would you like to restart?"))

	require.Len(t, reportPublisher.summaries, 1)
	summary := reportPublisher.summaries[0]
	require.Equal(t, "chicago", summary.Metadata.GetCity())
	require.NotEmpty(t, summary.Metadata.GetRunID())
	require.Equal(t, 3, summary.Records)
	require.Equal(t, int64(1354), summary.Duration.TotalDuration)
}

func TestSession_emptyDataset(t *testing.T) {
	session, out, reportPublisher := newTestSession(t, "chicago\njune\n6\nyes\nno\n")

	err := session.Run(context.Background())

	require.NoError(t, err)
	output := out.String()
	require.Contains(t, output, "0 trips found")
	require.Contains(t, output, "The most common month is not available: no data")
	require.Contains(t, output, "Total travel time is 0 seconds")
	require.Contains(t, output, "Mean travel time is not available: no data")
	require.Contains(t, output, "Trips by user type:\n  not available: no data")
	require.Contains(t, output, "There are 0 raw data")
	require.Contains(t, output, "There is no raw data to show.")
	require.Len(t, reportPublisher.summaries, 1)
	require.Nil(t, reportPublisher.summaries[0].Duration.MeanDuration)
}

func TestSession_cityWithoutDemographics(t *testing.T) {
	session, out, _ := newTestSession(t, "Washington\nMarch\n5\nno\nno\n")

	err := session.Run(context.Background())

	require.NoError(t, err)
	output := out.String()
	require.Contains(t, output, "Analysing Washington trips started on Saturdays of March: 1 trips found")
	require.Contains(t, output, "Total travel time is 403 seconds")
	require.NotContains(t, output, "Trips by gender")
	require.NotContains(t, output, "birth year")
	require.NotContains(t, output, "km apart")
}

func TestSession_loadErrorAsksToRestart(t *testing.T) {
	session, out, reportPublisher := newTestSession(t, "new york city\nmay\n0\nno\n")

	err := session.Run(context.Background())

	require.NoError(t, err)
	output := out.String()
	require.Contains(t, output, "The new york city data could not be loaded")
	require.Contains(t, output, "new_york_city.csv")
	require.NotContains(t, output, "Calculating")
	require.Contains(t, output, "Would you like to restart?")
	require.Empty(t, reportPublisher.summaries)
}

func TestSession_restart(t *testing.T) {
	input := strings.Join([]string{
		"boston", "chicago", "february", "1", "no", "YES",
		"washington", "march", "seven", "5", "no", "nope",
	}, "\n") + "\n"
	session, out, reportPublisher := newTestSession(t, input)

	err := session.Run(context.Background())

	require.NoError(t, err)
	output := out.String()
	require.Equal(t, 2, strings.Count(output, "Would you like to restart?"))
	require.Contains(t, output, "Please enter a valid city name (chicago, new york city, washington)")
	require.Contains(t, output, "Please enter the day as a whole number")
	require.Len(t, reportPublisher.summaries, 2)
	require.Equal(t, "chicago", reportPublisher.summaries[0].Metadata.GetCity())
	require.Equal(t, "washington", reportPublisher.summaries[1].Metadata.GetCity())
	require.NotEqual(t, reportPublisher.summaries[0].Metadata.GetRunID(), reportPublisher.summaries[1].Metadata.GetRunID())
}

func TestSession_inputEndsCleanly(t *testing.T) {
	session, out, reportPublisher := newTestSession(t, "chicago\n")

	err := session.Run(context.Background())

	require.NoError(t, err)
	require.Contains(t, out.String(), "Enter the month you wish to analyse")
	require.Empty(t, reportPublisher.summaries)
}
