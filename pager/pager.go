package pager

import (
	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

const (
	timeLayout   = "2006-01-02 15:04:05"
	missingValue = "-"
)

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Pager reveals the trips of a dataset pageSize at a time, asking before each page
type Pager struct {
	confirmer Confirmer
	out       io.Writer
	pageSize  int
}

func NewPager(confirmer Confirmer, out io.Writer, pageSize int) *Pager {
	return &Pager{
		confirmer: confirmer,
		out:       out,
		pageSize:  pageSize,
	}
}

// Browse shows the trips of ds in their original order until the user refuses or there are
// no more trips. Returns the pages that were shown
func (p *Pager) Browse(ds *dataset.Dataset) ([][]*trip.TripRecord, error) {
	total := ds.Len()
	question := fmt.Sprintf("Would you like to see raw data? There are %v raw data. Enter yes or no.", total)

	var pages [][]*trip.TripRecord
	offset := 0
	for {
		accepted, err := p.confirmer.Confirm(question)
		if err != nil {
			return pages, err
		}
		if !accepted {
			log.Debugf("[method: Browse][status: OK] stopped by the user after %v pages", len(pages))
			return pages, nil
		}

		page := ds.Page(offset, p.pageSize)
		p.printPage(ds, offset, page)
		pages = append(pages, page)

		offset += p.pageSize
		if offset >= total {
			fmt.Fprintln(p.out, "That is all the raw data we have. Exiting")
			return pages, nil
		}
		question = "Would you like to see more raw data? Enter yes or no."
	}
}

func (p *Pager) printPage(ds *dataset.Dataset, offset int, page []*trip.TripRecord) {
	if len(page) == 0 {
		fmt.Fprintln(p.out, "There is no raw data to show.")
		return
	}

	writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	header := []string{"#", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if ds.HasGender {
		header = append(header, "Gender")
	}
	if ds.HasBirthYear {
		header = append(header, "Birth Year")
	}
	fmt.Fprintln(writer, strings.Join(header, "\t"))

	for idx, record := range page {
		fmt.Fprintln(writer, strings.Join(getRow(ds, offset+idx, record), "\t"))
	}

	if err := writer.Flush(); err != nil {
		log.Errorf("[method: printPage] error writing raw data: %s", err.Error())
	}
}

func getRow(ds *dataset.Dataset, position int, record *trip.TripRecord) []string {
	endTime := missingValue
	if record.EndTime != nil {
		endTime = record.EndTime.Format(timeLayout)
	}

	row := []string{
		strconv.Itoa(position),
		record.StartTime.Format(timeLayout),
		endTime,
		strconv.FormatInt(record.Duration, 10),
		record.StartStation,
		record.EndStation,
		valueOrMissing(record.UserType),
	}

	if ds.HasGender {
		gender := missingValue
		if record.Gender != nil {
			gender = *record.Gender
		}
		row = append(row, gender)
	}

	if ds.HasBirthYear {
		birthYear := missingValue
		if record.BirthYear != nil {
			birthYear = strconv.Itoa(*record.BirthYear)
		}
		row = append(row, birthYear)
	}

	return row
}

func valueOrMissing(value string) string {
	if value == "" {
		return missingValue
	}
	return value
}
