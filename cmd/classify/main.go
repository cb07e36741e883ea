package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"handtype-server/internal/config"
	"handtype-server/pkg/deck"
	"handtype-server/pkg/handtype"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type jsonResult struct {
	*handtype.Result
	Matches []handtype.Category `json:"matches,omitempty"`
}

// run classifies every hand and returns the exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ranks := fs.String("ranks", "", "the rank ordering: ace-one, standard, or a comma separated list of labels (defaults to the configured ordering)")
	asJSON := fs.Bool("json", false, "print one JSON object per hand")
	explain := fs.Bool("explain", false, "also list every category test the hand satisfies")
	file := fs.String("f", "", "read hands from a file, one per line")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)

	name := *ranks
	if name == "" {
		if err := config.Load(); err != nil {
			log.WithError(err).Error("could not load config")
			return 2
		}

		name = config.Instance().Ranks
	}

	ordering, err := deck.OrderingByName(name)
	if err != nil {
		log.WithError(err).Error("invalid rank ordering")
		return 2
	}

	hands := fs.Args()
	if len(hands) > 0 && *file != "" {
		log.Error("hands cannot be given as arguments when -f is set")
		return 2
	}

	if len(hands) == 0 {
		in := stdin
		if *file != "" {
			f, err := os.Open(*file)
			if err != nil {
				log.WithError(err).Error("could not open hand file")
				return 2
			}
			defer f.Close()

			in = f
		}

		if hands, err = readHands(in); err != nil {
			log.WithError(err).Error("could not read hands")
			return 2
		}
	}

	classifier := handtype.NewClassifier(ordering)
	enc := json.NewEncoder(stdout)
	exitCode := 0

	for _, line := range hands {
		a, err := classifier.Analyze(deck.SplitTokens(line))
		if err != nil {
			log.WithError(err).WithField("hand", line).Error("could not classify hand")
			exitCode = 1
			continue
		}

		res := a.Result()
		if *asJSON {
			out := jsonResult{Result: res}
			if *explain {
				out.Matches = a.Matches()
			}

			if err := enc.Encode(out); err != nil {
				log.WithError(err).Error("could not write result")
				return 1
			}

			continue
		}

		fmt.Fprintf(stdout, "%s\t%s\t%s", strings.Join(res.Hand, ","), res.Category.Symbol(), res.HighCard)
		if *explain {
			matches := a.Matches()
			symbols := make([]string, len(matches))
			for i, c := range matches {
				symbols[i] = c.Symbol()
			}

			fmt.Fprintf(stdout, "\t%s", strings.Join(symbols, ","))
		}
		fmt.Fprintln(stdout)
	}

	return exitCode
}

// readHands returns every non-blank line that isn't a # comment
func readHands(r io.Reader) ([]string, error) {
	hands := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		hands = append(hands, line)
	}

	return hands, scanner.Err()
}
