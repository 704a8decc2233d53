// Command meccz prints the direction to Mecca from a location given as
// "lat,lon" or as an address.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"meccz.org/internal/appconf"
	"meccz.org/internal/geo"
	"meccz.org/internal/geocoding"
	"meccz.org/internal/logging"
)

const usage = `Usage: meccz [-json] [-table] <location>

Calculate the direction to Mecca (Qibla) from any location.
<location> is "lat,lon" or an address to geocode.
`

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

type options struct {
	json     bool
	table    bool
	verbose  bool
	location string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("meccz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.json, "json", false, "Output result in JSON format")
	fs.BoolVar(&opts.json, "j", false, "Shorthand for -json")
	fs.BoolVar(&opts.table, "table", false, "Display the compass table of distances to Mecca from each direction")
	fs.BoolVar(&opts.table, "t", false, "Shorthand for -table")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log geocoding activity to stderr")

	if err := fs.Parse(guardNegativeCoordinates(args)); err != nil {
		return options{}, err
	}

	opts.location = strings.TrimSpace(strings.Join(fs.Args(), " "))
	if opts.location == "" {
		fs.Usage()
		return options{}, errors.New("missing location")
	}
	return opts, nil
}

// guardNegativeCoordinates ends flag parsing before an argument such as
// "-33.87,151.21" so it is read as a location rather than an unknown flag.
func guardNegativeCoordinates(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if len(arg) > 1 && arg[0] == '-' && (arg[1] == '.' || (arg[1] >= '0' && arg[1] <= '9')) {
			guarded := append(args[:i:i], "--")
			return append(guarded, args[i:]...)
		}
	}
	return args
}

// newResolver builds the address resolver from MECCZ_* environment settings
func newResolver(ctx context.Context, getenv func(string) string, logger *slog.Logger) (*geocoding.Resolver, func(), error) {
	cleanup := func() {}

	baseURL := getenv("MECCZ_NOMINATIM_URL")
	if baseURL == "" {
		baseURL = appconf.DefaultNominatimURL
	}
	userAgent := getenv("MECCZ_USER_AGENT")
	if userAgent == "" {
		userAgent = appconf.DefaultUserAgent
	}

	var geocoder geocoding.Geocoder = geocoding.NewNominatimGeocoder(geocoding.NominatimConfig{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Timeout:   15 * time.Second,
	}, logger)

	if path := getenv("MECCZ_GEOCODE_CACHE"); path != "" {
		cache, err := geocoding.OpenSqliteCache(ctx, path, logger)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { logging.SafeCloseWithLogging(cache, logger, "geocode_cache") }
		geocoder = geocoding.NewCachedGeocoder(geocoder, cache, logger)
	}

	return geocoding.NewResolver(geocoder, logger), cleanup, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	if opts.verbose {
		logger = logging.NewStructuredLogger(stderr, slog.LevelDebug)
	}

	resolver, cleanup, err := newResolver(ctx, getenv, logger)
	if err != nil {
		writeError(errorWriter(opts, stdout, stderr), opts.json, err)
		return 1
	}
	defer cleanup()

	if err := execute(ctx, opts, resolver, geo.NewKaabaEngine(), stdout); err != nil {
		writeError(errorWriter(opts, stdout, stderr), opts.json, err)
		return 1
	}
	return 0
}

// errorWriter sends JSON errors to stdout so scripts can parse them
func errorWriter(opts options, stdout, stderr io.Writer) io.Writer {
	if opts.json {
		return stdout
	}
	return stderr
}

func execute(ctx context.Context, opts options, resolver *geocoding.Resolver, engine *geo.Engine, stdout io.Writer) error {
	origin, err := resolver.Resolve(ctx, opts.location)
	if err != nil {
		return err
	}

	if opts.table {
		table, err := engine.CompassTable(origin)
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(stdout, table)
		}
		return writeCompassTable(stdout, table)
	}

	result, err := engine.Qibla(origin)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(stdout, result)
	}
	return writeQibla(stdout, result)
}
