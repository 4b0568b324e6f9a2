package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	gpxitinerary "github.com/ridgeline-labs/gpx-to-itinerary"
	"github.com/ridgeline-labs/gpx-to-itinerary/config"
	"github.com/ridgeline-labs/gpx-to-itinerary/formatter"
	"github.com/ridgeline-labs/gpx-to-itinerary/itinerary"
	"github.com/ridgeline-labs/gpx-to-itinerary/trip"
)

var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func parseDeparture(s string) (time.Time, error) {
	for _, layout := range departureLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized departure time %q", s)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gpx-to-itinerary:", err)
	os.Exit(1)
}

func main() {
	serve := flag.Bool("serve", false, "run the web server instead of converting files")
	departure := flag.String("departure", "", "departure time (RFC 3339 or YYYY-MM-DDTHH:MM, local)")
	speed := flag.Float64("speed", 0, "average travel speed, mph or km/h (overrides config)")
	metric := flag.Bool("metric", false, "use metric units")
	imperial := flag.Bool("imperial", false, "use imperial units")
	ignoreTimes := flag.Bool("ignore-times", false, "ignore embedded timestamps and recompute uniformly")
	coordinates := flag.Bool("coordinates", false, "include a coordinates column")
	htmlOut := flag.Bool("html", false, "emit HTML instead of Markdown")
	sortMode := flag.String("sort", "", "waypoint sort: track|total|name|category")
	configPath := flag.String("config", "", "config file path (default: config.yml if present)")
	flag.Parse()

	gpxitinerary.InitLogging()
	if err := config.LoadAppConfigFrom(*configPath); err != nil {
		fatal(err)
	}

	if *serve {
		gpxitinerary.StartServer()
		gpxitinerary.HandleGracefulShutdown()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: gpx-to-itinerary [flags] file.gpx [file.gpx ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := config.Config.Trip.TripOptions()
	if *speed > 0 {
		opts.Speed = *speed
	}
	if *metric {
		opts.Imperial = false
	}
	if *imperial {
		opts.Imperial = true
	}
	if *ignoreTimes {
		opts.IgnoreTimes = true
	}
	if *coordinates {
		opts.DisplayCoordinates = true
	}
	if *departure != "" {
		dep, err := parseDeparture(*departure)
		if err != nil {
			fatal(err)
		}
		opts.DepartAt = &dep
	}
	switch itinerary.SortMode(*sortMode) {
	case "":
	case itinerary.SortByTrack, itinerary.SortByTotal, itinerary.SortByName, itinerary.SortByCategory:
		opts.WaypointSort = itinerary.SortMode(*sortMode)
	default:
		fatal(fmt.Errorf("unknown sort mode %q", *sortMode))
	}

	f := newFetcher()
	b := formatter.NewBuilder(opts.Imperial, opts.DisplayCoordinates)
	for _, arg := range flag.Args() {
		data, err := f.fetch(arg)
		if err != nil {
			fatal(err)
		}
		t, err := trip.Parse(data)
		if err != nil {
			fatal(fmt.Errorf("%s: %w", arg, err))
		}
		it, err := itinerary.Build(t, opts)
		if err != nil {
			fatal(fmt.Errorf("%s: %w", arg, err))
		}
		if *htmlOut {
			out, err := b.BuildHTML(it)
			if err != nil {
				fatal(err)
			}
			_, _ = os.Stdout.Write(out)
			continue
		}
		_, _ = os.Stdout.Write(b.BuildMarkdown(it))
	}
}
