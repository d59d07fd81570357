package main

import (
	"bikeshare/config"
	"bikeshare/publisher"
	"bikeshare/utils"
	"context"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

func main() {
	if err := utils.InitLogger("info", os.Stderr); err != nil {
		log.Fatalf("%s", err)
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

// run loads the config and runs an interactive session reading from in and writing to out
func run(in io.Reader, out io.Writer) error {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := utils.InitLogger(explorerConfig.LogLevel, os.Stderr); err != nil {
		return err
	}

	reportPublisher, err := publisher.NewPublisher(explorerConfig.Publisher)
	if err != nil {
		return err
	}

	defer func() {
		if err := reportPublisher.Close(); err != nil {
			log.Errorf("error closing publisher: %s", err.Error())
		}
	}()

	session := NewSession(explorerConfig, in, out, reportPublisher)
	return session.Run(context.Background())
}
