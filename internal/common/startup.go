package common

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging is the setup for long-running work: timestamped, colored
// log lines on stdout, interleaved with the progress of the challenge.
func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

// ConfigureCommandLineLogging keeps command-line output clean: no timestamps,
// log lines on stderr so stdout carries only results.
func ConfigureCommandLineLogging() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}
