package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"handtype-server/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run writes a configuration file seeded from the defaults
func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("generate-config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Ranks, "ranks", cfg.Ranks, "the rank ordering: ace-one, standard, or a comma separated list of labels")
	fs.IntVar(&cfg.MaxBatch, "max-batch", cfg.MaxBatch, "the most hands a batch request may classify")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)

	if _, err := cfg.Ordering(); err != nil {
		log.WithError(err).Error("invalid rank ordering")
		return 2
	}

	if cfg.MaxBatch <= 0 {
		log.WithField("maxBatch", cfg.MaxBatch).Error("max batch must be positive")
		return 2
	}

	if _, err := fmt.Fprintln(stdout, "# generated by generate-config"); err != nil {
		log.WithError(err).Error("could not write config")
		return 1
	}

	if err := yaml.NewEncoder(stdout).Encode(cfg); err != nil {
		log.WithError(err).Error("could not write config")
		return 1
	}

	return 0
}
