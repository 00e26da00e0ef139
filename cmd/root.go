package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disk-sim/disk-sim/sim/workload"
)

var (
	// CLI flags shared by run and compare
	logLevel      string  // Log verbosity level
	configPath    string  // Experiment YAML file
	cylinders     int     // Total cylinder count
	seekPerCyl    float64 // Time units per cylinder moved
	serviceTime   float64 // Fixed per-request service time
	startHead     int     // Initial head cylinder
	startDir      int     // Initial direction (+1 / -1)
	workloadSpec  string  // Workload YAML file
	workloadKind  string  // uniform, bursty or csv
	numRequests   int     // Number of generated requests
	rate          float64 // Arrival rate (requests per time unit)
	burstFactor   float64 // Rate multiplier during bursts
	withDeadlines bool    // Attach deadlines to generated requests
	requestsPath  string  // Request CSV (implies workload csv)
	gaWindow      int     // GA look-ahead window
	traceLevel    string  // none or decisions

	// run-only flags
	policyName string // Scheduler for a single run
	seed       int64  // Workload / GA seed for a single run

	// compare-only flags
	schedulers []string // Schedulers to sweep
	seeds      int      // Seeds per scheduler
	outPath    string   // Results CSV
	workers    int      // Parallel runs

	// generate-only flags
	generateOut string // Request CSV to write
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sim",
	Short: "Discrete-event simulator for disk-head scheduling policies",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one scheduler on one workload seed
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduler on one workload and print its metrics",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadExperiment(cmd)
		if !IsValidPolicy(policyName) {
			logrus.Fatalf("Unknown scheduler %q", policyName)
		}
		logrus.Infof("Starting simulation: scheduler=%s seed=%d disk=%+v", policyName, seed, cfg.Disk)

		startTime := time.Now()
		res, err := RunOne(cfg, policyName, seed)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		renderRun(os.Stdout, res)
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// compareCmd sweeps schedulers over seeds and writes a results table
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Sweep schedulers over workload seeds and write a results CSV",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadExperiment(cmd)
		if cmd.Flags().Changed("schedulers") {
			cfg.Schedulers = schedulers
		}
		if cmd.Flags().Changed("seeds") {
			cfg.Seeds = seeds
		}
		if cmd.Flags().Changed("out") {
			cfg.Out = outPath
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid experiment: %v", err)
		}

		results, err := RunSweep(cfg)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		if err := WriteResultsCSV(cfg.Out, results); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		renderAverages(os.Stdout, Aggregate(results))
		logrus.Infof("Wrote %s", cfg.Out)
	},
}

// generateCmd writes a generated workload to a request CSV
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a workload and write it as a request CSV",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadExperiment(cmd)
		spec := cfg.Workload
		spec.Seed = seed
		reqs, err := workload.Generate(&spec, cfg.Disk.Cylinders)
		if err != nil {
			logrus.Fatalf("Generating workload: %v", err)
		}
		if err := cfg.Disk.ValidateRequests(reqs); err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}
		if err := workload.WriteRequestsCSV(generateOut, reqs); err != nil {
			logrus.Fatalf("Writing workload: %v", err)
		}
		logrus.Infof("Wrote %d requests to %s", len(reqs), generateOut)
	},
}

// loadExperiment builds the experiment from --config (or defaults) and applies
// every flag the user set explicitly on top of it.
func loadExperiment(cmd *cobra.Command) ExperimentConfig {
	cfg := DefaultExperimentConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadExperimentConfig(configPath); err != nil {
			logrus.Fatalf("%v", err)
		}
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		logrus.Fatalf("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid experiment: %v", err)
	}
	return cfg
}

// applyFlags overrides cfg with the shared flags the user changed.
// --workload-spec replaces the whole workload section; the individual
// workload flags then apply on top of it.
func applyFlags(cmd *cobra.Command, cfg *ExperimentConfig) error {
	flags := cmd.Flags()
	if flags.Changed("cylinders") {
		cfg.Disk.Cylinders = cylinders
		if !flags.Changed("start-head") {
			cfg.Disk.StartHead = cylinders / 2
		}
	}
	if flags.Changed("seek-per-cyl") {
		cfg.Disk.SeekPerCyl = seekPerCyl
	}
	if flags.Changed("service-time") {
		cfg.Disk.ServiceTime = serviceTime
	}
	if flags.Changed("start-head") {
		cfg.Disk.StartHead = startHead
	}
	if flags.Changed("start-dir") {
		cfg.Disk.StartDir = startDir
	}
	if flags.Changed("workload-spec") {
		spec, err := workload.LoadSpec(workloadSpec)
		if err != nil {
			return err
		}
		cfg.Workload = *spec
	}
	if flags.Changed("workload") {
		cfg.Workload.Kind = strings.ToLower(workloadKind)
	}
	if flags.Changed("num") {
		cfg.Workload.Num = numRequests
	}
	if flags.Changed("rate") {
		cfg.Workload.Rate = rate
	}
	if flags.Changed("burst-factor") {
		cfg.Workload.BurstFactor = burstFactor
	}
	if flags.Changed("with-deadlines") {
		cfg.Workload.WithDeadlines = withDeadlines
	}
	if flags.Changed("requests") {
		cfg.Workload.Kind = workload.KindCSV
		cfg.Workload.Path = requestsPath
	}
	if flags.Changed("ga-window") {
		cfg.GAWindow = gaWindow
	}
	if flags.Changed("trace") {
		cfg.Trace = traceLevel
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerExperimentFlags adds the disk, workload and GA flags to c.
// Defaults mirror DefaultExperimentConfig; only explicitly set flags override the config file.
func registerExperimentFlags(c *cobra.Command) {
	def := DefaultExperimentConfig()
	c.Flags().StringVar(&configPath, "config", "", "Experiment YAML file")
	c.Flags().IntVar(&cylinders, "cylinders", def.Disk.Cylinders, "Total number of cylinders")
	c.Flags().Float64Var(&seekPerCyl, "seek-per-cyl", def.Disk.SeekPerCyl, "Seek time per cylinder moved")
	c.Flags().Float64Var(&serviceTime, "service-time", def.Disk.ServiceTime, "Fixed service time per request")
	c.Flags().IntVar(&startHead, "start-head", def.Disk.StartHead, "Initial head cylinder (default cylinders/2)")
	c.Flags().IntVar(&startDir, "start-dir", def.Disk.StartDir, "Initial direction (+1 or -1)")
	c.Flags().StringVar(&workloadSpec, "workload-spec", "", "Workload YAML file (replaces the config's workload section)")
	c.Flags().StringVar(&workloadKind, "workload", def.Workload.Kind, "Workload kind (uniform, bursty, csv)")
	c.Flags().IntVar(&numRequests, "num", def.Workload.Num, "Number of generated requests")
	c.Flags().Float64Var(&rate, "rate", def.Workload.Rate, "Request arrival rate per time unit")
	c.Flags().Float64Var(&burstFactor, "burst-factor", def.Workload.BurstFactor, "Rate multiplier during bursts")
	c.Flags().BoolVar(&withDeadlines, "with-deadlines", false, "Attach deadlines to generated requests")
	c.Flags().StringVar(&requestsPath, "requests", "", "Request CSV to replay (implies --workload csv)")
	c.Flags().IntVar(&gaWindow, "ga-window", def.GAWindow, "GA scheduler look-ahead window")
	c.Flags().StringVar(&traceLevel, "trace", def.Trace, "Decision trace level (none, decisions)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	registerExperimentFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", "SSTF", "Scheduler (FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK, EDF, GA)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for workload generation and the GA scheduler")

	registerExperimentFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&schedulers, "schedulers", DefaultExperimentConfig().Schedulers, "Comma-separated schedulers to compare")
	compareCmd.Flags().IntVar(&seeds, "seeds", 3, "Number of workload seeds per scheduler")
	compareCmd.Flags().StringVar(&outPath, "out", "experiments/results.csv", "Results CSV path")
	compareCmd.Flags().IntVar(&workers, "workers", DefaultExperimentConfig().Workers, "Parallel runs; 0 starts one goroutine per run (without this flag the config's workers value applies)")

	registerExperimentFlags(generateCmd)
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for workload generation")
	generateCmd.Flags().StringVar(&generateOut, "out", "requests.csv", "Request CSV path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(generateCmd)
}
