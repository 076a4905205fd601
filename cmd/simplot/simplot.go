package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tenantsim/simplot/pkg/archive"
	"github.com/tenantsim/simplot/pkg/charts"
	"github.com/tenantsim/simplot/pkg/config"
	log "github.com/tenantsim/simplot/pkg/logging"
	result "github.com/tenantsim/simplot/pkg/results"
	"github.com/tenantsim/simplot/pkg/sample"
)

var (
	cfgfile  string
	datafile string
	dist     string
	outDir   string
	format   string
	width    int
	height   int
	debug    bool
	json     bool
	csvout   bool
	id       string
)

var rootCmd = &cobra.Command{
	Use:   "simplot",
	Short: "A tool to render throughput reports from multi-tenant simulator samples",
	Run: func(cmd *cobra.Command, args []string) {

		uid := ""
		if len(id) > 0 {
			uid = id
		} else {
			u := uuid.New()
			uid = u.String()
		}

		if json {
			log.SetError()
		}

		if debug {
			log.SetDebug()
		}

		cfg, err := config.Load(cfgfile)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		// Flags beat the configuration file.
		if cmd.Flags().Changed("data") {
			cfg.DataFile = datafile
		}
		if cmd.Flags().Changed("dist") {
			cfg.Distribution = dist
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = outDir
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = format
		}
		if cmd.Flags().Changed("width") {
			cfg.Width = width
		}
		if cmd.Flags().Changed("height") {
			cfg.Height = height
		}
		if err := config.Validate(cfg); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		config.Show(cfg)
		log.Infof("🆔 Run UUID %s", uid)

		samples, err := sample.ReadFile(cfg.DataFile)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		log.Infof("🧮 Loaded %d samples from %s", len(samples), cfg.DataFile)

		written, err := charts.RenderAll(samples, cfg)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		log.Infof("📈 Rendered %d charts", len(written))

		sr := result.ScenarioResults{
			Samples: result.FilterDistribution(samples, cfg.Distribution),
			Metadata: result.Metadata{
				RunID:        uid,
				DataFile:     cfg.DataFile,
				Distribution: cfg.Distribution,
				Timestamp:    time.Now().UTC(),
			},
		}
		if !json {
			result.ShowSummary(sr)
		} else if len(sr.Samples) > 0 {
			err = archive.WriteJSONResult(sr)
			if err != nil {
				log.Error(err)
			}
		}
		if csvout && len(sr.Samples) > 0 {
			err = archive.WriteCSVResult(sr)
			if err != nil {
				log.Error(err)
				os.Exit(1)
			}
		}
	},
}

func main() {
	rootCmd.Flags().StringVar(&cfgfile, "config", "", "Optional simplot configuration file")
	rootCmd.Flags().StringVar(&datafile, "data", config.DefaultDataFile, "Simulator samples data file")
	rootCmd.Flags().StringVar(&dist, "dist", config.DefaultDistribution, "Distribution label filter")
	rootCmd.Flags().StringVar(&outDir, "output-dir", config.DefaultOutputDir, "Directory the charts are written to")
	rootCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "Chart image format (svg or png)")
	rootCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "Chart width in pixels")
	rootCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "Chart height in pixels")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug log")
	rootCmd.Flags().BoolVar(&json, "json", false, "Instead of human-readable output, return JSON to stdout")
	rootCmd.Flags().BoolVar(&csvout, "csv", false, "Write the throughput summary as a CSV archive")
	rootCmd.Flags().StringVar(&id, "uuid", "", "User provided UUID")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

}
