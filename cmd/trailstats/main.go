package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trailstats/trailstats/internal/analysis"
	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/gpx"
	"github.com/trailstats/trailstats/internal/models"
	"github.com/trailstats/trailstats/pkg/units"
)

// cliFlags holds the parsed command line. The threshold flags answer to both
// a short and a long name.
type cliFlags struct {
	minGain      string
	minDist      string
	standstill   int
	joinSegments bool
	joinTracks   bool
	filterZero   bool
	filterBelow  string
	metric       bool
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{}

	gainUsage := "minimum change in elevation (meters, or e.g. '30ft') for a point to contribute to elevation gain"
	fs.StringVar(&f.minGain, "e", "10", gainUsage)
	fs.StringVar(&f.minGain, "min-elevation-gain", "10", gainUsage)

	distUsage := "minimum change in distance (meters) for a point to advance the distance anchor"
	fs.StringVar(&f.minDist, "d", "1", distUsage)
	fs.StringVar(&f.minDist, "min-distance", "1", distUsage)

	standstillUsage := "seconds without movement (per -d) before elapsed time stops counting as moving"
	fs.IntVar(&f.standstill, "t", 10, standstillUsage)
	fs.IntVar(&f.standstill, "standstill-time", 10, standstillUsage)

	fs.BoolVar(&f.joinSegments, "join-segments", false, "analyse each track as one sequence instead of per segment")
	fs.BoolVar(&f.joinTracks, "join-tracks", false, "join all tracks of all inputs into one sequence (implies -join-segments)")
	fs.BoolVar(&f.filterZero, "filter-zero-elevation", false, "discard points whose elevation is exactly 0")
	fs.StringVar(&f.filterBelow, "filter-elevation-below", "", "discard points below this elevation (meters, or e.g. '-10ft')")
	fs.BoolVar(&f.metric, "metric", false, "report in meters/kilometers instead of feet/miles")
	return f
}

func main() {
	f := registerFlags(flag.CommandLine)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: trailstats [flags] <path>...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := buildConfig(f.minGain, f.minDist, f.standstill, f.joinSegments, f.joinTracks, f.filterZero, f.filterBelow)
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	paths, err := expandInputs(flag.Args())
	if err != nil {
		log.Fatalf("failed to resolve inputs: %v", err)
	}

	var files []models.File
	for _, path := range paths {
		file, err := gpx.Parse(path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		files = append(files, file)
	}

	results := analysis.Run(files, cfg)
	printReport(paths, cfg, results, f.metric)
}

// buildConfig turns the flag values into the engine configuration.
func buildConfig(minGain, minDist string, standstill int, joinSegments, joinTracks, filterZero bool, filterBelow string) (*config.Config, error) {
	gain, err := units.ParseMeters(minGain)
	if err != nil {
		return nil, err
	}
	dist, err := units.ParseMeters(minDist)
	if err != nil {
		return nil, err
	}
	if gain < 0 || dist < 0 || standstill < 0 {
		return nil, fmt.Errorf("thresholds must not be negative")
	}

	cfg := &config.Config{
		MinElevationGain:    float64(gain),
		MinDistance:         float64(dist),
		StandstillTime:      time.Duration(standstill) * time.Second,
		JoinSegments:        joinSegments,
		JoinTracks:          joinTracks,
		FilterZeroElevation: filterZero,
	}
	if filterBelow != "" {
		below, err := units.ParseMeters(filterBelow)
		if err != nil {
			return nil, err
		}
		v := float64(below)
		cfg.FilterElevationBelow = &v
	}
	return cfg.Normalize(), nil
}

// expandInputs resolves the positional arguments: files pass through,
// directories expand to their *.gpx files in lexical order.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".gpx") {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no GPX files found")
	}
	return paths, nil
}

// printReport renders the results in group order.
func printReport(paths []string, cfg *config.Config, results []models.Stats, metric bool) {
	fmt.Println("parameters:")
	fmt.Printf("  min elevation gain: %s\n", units.Meters(cfg.MinElevationGain))
	fmt.Printf("  min distance: %s\n", units.Meters(cfg.MinDistance))
	fmt.Printf("  standstill time: %s\n", cfg.StandstillTime)

	lastFile := -1
	for _, st := range results {
		if st.Source.FileIndex >= 0 && st.Source.FileIndex != lastFile && !cfg.JoinTracks {
			fmt.Printf("input: %s\n", paths[st.Source.FileIndex])
			lastFile = st.Source.FileIndex
		}

		fmt.Printf("%s:\n", st.Source.Label)
		if st.PointCount == 0 {
			fmt.Println("    no points")
			continue
		}

		fmt.Printf("    points: %d\n", st.PointCount)
		fmt.Printf("    starting elevation: %s\n", elevation(st.StartElevation, metric))
		fmt.Printf("    ending elevation: %s\n", elevation(st.EndElevation, metric))
		fmt.Printf("    min elevation: %s\n", elevation(st.MinElevation, metric))
		fmt.Printf("    max elevation: %s\n", elevation(st.MaxElevation, metric))
		fmt.Printf("    elevation gain: %s\n", elevation(&st.ElevationGain, metric))
		fmt.Printf("    total distance: %s\n", distance(st.TotalDistance, metric))
		fmt.Printf("    total time: %s\n", duration(st.TotalTime))
		fmt.Printf("    moving time: %s\n", duration(st.MovingTime))
	}
}

func elevation(v *float64, metric bool) string {
	if v == nil {
		return "n/a"
	}
	if metric {
		return units.Meters(*v).String()
	}
	return units.Meters(*v).Feet()
}

func distance(v float64, metric bool) string {
	if metric {
		return units.Meters(v).Kilometers()
	}
	return units.Meters(v).Miles()
}

func duration(d *time.Duration) string {
	if d == nil {
		return "n/a"
	}
	return units.FormatDuration(*d)
}
