package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"ionexport/internal/config"
	"ionexport/internal/credentials"
	"ionexport/internal/database"
	"ionexport/internal/getter"
	"ionexport/internal/logging"
	"ionexport/internal/meter"
	"ionexport/internal/seed"
)

var (
	root     = flag.String("root", ".", "Root directory holding creds.json, meters.csv and downloads/")
	mode     = flag.String("mode", "batch", "batch or update")
	start    = flag.String("start", "", "Window start, YYYY-MM-DDTHH:MM:SS (batch mode)")
	end      = flag.String("end", "", "Window end, YYYY-MM-DDTHH:MM:SS (batch mode)")
	index    = flag.Int("index", -1, "Only download the meter at this zero-based position (batch mode); omit to download all meters")
	interval = flag.Int("interval", 1, "Hours to look back, 1-12 (update mode)")
	seedDB   = flag.Bool("seed", false, "Create an ION-like schema with fake readings under the root, then exit")
	seedDays = flag.Int("seed-days", 7, "Days of fake readings to generate with -seed")
	seedN    = flag.Int("seed-meters", 5, "Meters to generate with -seed when no meter list exists")
)

func main() {
	flag.Parse()

	logger, err := logging.NewLogger()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if *seedDB {
		if err := runSeed(logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
		return
	}

	var idx *int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "index" {
			idx = index
		}
	})

	switch *mode {
	case "batch":
		err = getter.RunBatch(logger, *root, *start, *end, idx)
	case "update":
		err = getter.RunUpdate(logger, *root, *interval)
	default:
		logger.Fatal("unknown mode", zap.String("mode", *mode))
	}
	if err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

// runSeed prepares a dev root: downloads dir, a meter list if one is
// missing, and a populated ION-like database.
func runSeed(logger *zap.Logger) error {
	paths, err := config.Resolve(*root)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(paths.Downloads, 0o755); err != nil {
		return err
	}

	var meters []meter.Meter
	if _, statErr := os.Stat(paths.MeterList); os.IsNotExist(statErr) {
		logger.Info("generating meter list", zap.String("file", paths.MeterList), zap.Int("meters", *seedN))
		meters, err = seed.GenerateMeterList(paths.MeterList, *seedN)
	} else {
		meters, err = meter.ReadList(paths.MeterList)
	}
	if err != nil {
		return err
	}

	creds, err := credentials.Read(paths.Credentials)
	if err != nil {
		return err
	}
	dsn, err := creds.ConnString()
	if err != nil {
		return err
	}
	sess, err := database.Open(creds.Driver, dsn)
	if err != nil {
		return err
	}
	defer sess.Close()

	return seed.Populate(logger, sess, meters, *seedDays)
}
