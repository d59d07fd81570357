package console

import (
	"bikeshare/dataset"
	"bikeshare/utils"
	"bufio"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"strconv"
	"strings"
)

const (
	affirmativeAnswer = "yes"

	cityQuestion    = "Enter the name of the city you wish to analyse"
	monthQuestion   = "Enter the month you wish to analyse"
	weekdayQuestion = "Enter the day you wish to analyse as a number. (Monday=0, Sunday=6)"

	invalidCityMessage       = "Please enter a valid city name (%s)"
	invalidMonthMessage      = "Please enter a valid month (%s)"
	invalidWeekdayMessage    = "Please enter the day as a whole number, e.g. 2 for Wednesday"
	weekdayOutOfRangeMessage = "Please enter a valid day between 0 and 6"
	separatorLength          = 40
)

// Prompter asks questions through out and reads the answers, one per line, from in
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask writes question and returns the next line of the input without the line break.
// io.EOF is returned only when the input ended and there is nothing left to read
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)

	answer, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && answer != "" {
			return strings.TrimRight(answer, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(answer, "\r\n"), nil
}

// Confirm asks a yes/no question. Only "yes" (ignoring case, nothing around it) is an affirmative answer
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == affirmativeAnswer, nil
}

// GetFilters asks for the city, month and weekday to analyze. Each question is repeated
// until a valid answer is given
func (p *Prompter) GetFilters(cities []string) (dataset.Filters, error) {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	city, err := p.AskCity(cities)
	if err != nil {
		return dataset.Filters{}, err
	}

	month, err := p.AskMonth()
	if err != nil {
		return dataset.Filters{}, err
	}

	weekday, err := p.AskWeekday()
	if err != nil {
		return dataset.Filters{}, err
	}

	fmt.Fprintln(p.out, strings.Repeat("-", separatorLength))
	return dataset.Filters{City: city, Month: month, Weekday: weekday}, nil
}

// AskCity returns one of cities in lowercase
func (p *Prompter) AskCity(cities []string) (string, error) {
	for {
		answer, err := p.Ask(cityQuestion)
		if err != nil {
			return "", err
		}

		idx := utils.IndexOfString(answer, cities)
		if idx != -1 {
			return utils.NormalizeString(cities[idx]), nil
		}

		log.Debugf("[method: AskCity] invalid city %q", answer)
		fmt.Fprintf(p.out, invalidCityMessage+"\n\n", strings.Join(cities, ", "))
	}
}

// AskMonth returns the chosen month, 1 (January) to 6 (June)
func (p *Prompter) AskMonth() (int, error) {
	for {
		answer, err := p.Ask(monthQuestion)
		if err != nil {
			return 0, err
		}

		month, err := dataset.ParseMonth(answer)
		if err == nil {
			return month, nil
		}

		log.Debugf("[method: AskMonth] %s", err.Error())
		fmt.Fprintf(p.out, invalidMonthMessage+"\n\n", strings.Join(dataset.Months, ", "))
	}
}

// AskWeekday returns the chosen weekday, 0 (Monday) to 6 (Sunday)
func (p *Prompter) AskWeekday() (int, error) {
	for {
		answer, err := p.Ask(weekdayQuestion)
		if err != nil {
			return 0, err
		}

		weekday, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			log.Debugf("[method: AskWeekday] invalid weekday %q: %s", answer, err.Error())
			fmt.Fprintf(p.out, "%s\n\n", invalidWeekdayMessage)
			continue
		}

		if weekday < 0 || weekday >= len(dataset.Weekdays) {
			fmt.Fprintf(p.out, "%s\n\n", weekdayOutOfRangeMessage)
			continue
		}

		return weekday, nil
	}
}
