package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/gtfs-to-geojson/config"
	"github.com/theoremus-urban-solutions/gtfs-to-geojson/converter"
	"github.com/theoremus-urban-solutions/gtfs-to-geojson/formatter"
	"github.com/theoremus-urban-solutions/gtfs-to-geojson/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-to-geojson/internal"
)

func main() {
	app := &cli.App{
		Name:  "gtfs-to-geojson",
		Usage: "convert a GTFS feed into a GeoJSON feature collection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "path to the GTFS file (can be a directory or a zip file) or URL to an online GTFS file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "path to the output file; if not present, the geojson is written to stdout",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent the geojson output",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config.yml",
			},
		},
		Action: runConvert,
		Commands: []*cli.Command{
			{
				Name:  "stops",
				Usage: "print every stop contained in the feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "path to the GTFS file (can be a directory or a zip file) or URL",
						Required: true,
					},
				},
				Action: runStops,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func runConvert(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	internal.InitLogging(cfg.Log.Format, cfg.Log.Debug)

	input := c.String("input")
	if input == "" {
		input = cfg.GTFS.Source
	}
	if input == "" {
		return cli.Exit("no GTFS input given; pass --input or set gtfs.source in config.yml", 1)
	}
	output := c.String("output")
	if output == "" {
		output = cfg.Output.Path
	}
	pretty := c.Bool("pretty") || cfg.Output.Pretty

	log.Info().Str("source", input).Msg("Reading GTFS")
	feed, err := gtfs.Load(input)
	if err != nil {
		return fmt.Errorf("loading GTFS feed: %w", err)
	}

	log.Info().
		Int("stops", len(feed.Stops)).
		Int("routes", len(feed.Routes)).
		Int("trips", len(feed.Trips)).
		Msg("Extracting spatial features")
	fc, err := converter.New(feed).Convert()
	if err != nil {
		return fmt.Errorf("converting feed: %w", err)
	}

	log.Info().Int("features", len(fc.Features)).Msg("Saving GeoJSON")
	if output == "" {
		return formatter.WriteTo(os.Stdout, fc, pretty)
	}
	return formatter.WriteFile(output, fc, pretty)
}

func runStops(c *cli.Context) error {
	internal.InitLogging("console", false)

	feed, err := gtfs.Load(c.String("input"))
	if err != nil {
		return fmt.Errorf("loading GTFS feed: %w", err)
	}

	fmt.Printf("There are %d stops in the feed\n", len(feed.Stops))
	for _, stop := range feed.Stops {
		fmt.Printf("Stop %q - %q - %q\n", stop.Name, stop.ID, stop.Code)
		fmt.Printf("Description %q\n", stop.Description)
		if stop.ParentStation != "" {
			fmt.Printf("Parent station %q\n", stop.ParentStation)
		} else {
			fmt.Println("No parent station")
		}
		if stop.Longitude != nil && stop.Latitude != nil {
			fmt.Printf("Coordinates: %v;%v\n", *stop.Longitude, *stop.Latitude)
		} else {
			fmt.Println("Coordinates not set")
		}
		if stop.Timezone != "" {
			fmt.Printf("Timezone: %s\n", stop.Timezone)
		} else {
			fmt.Println("No timezone set")
		}
		fmt.Printf("Wheelchair boarding: %s\n", stop.WheelchairBoarding)
		fmt.Println("------------------------------")
	}
	return nil
}
