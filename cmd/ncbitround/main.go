// Command ncbitround analyzes and lossily bit-rounds float32 array
// variables for downstream lossless compression.
//
// Usage:
//
//	ncbitround round [options] <variable...>   analyze and round, using the synthetic demo source
//	ncbitround info <variable>                 show NSB, bit-usage histogram for a variable
//	ncbitround demo                            run the full demo source end to end
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	bitrounding "github.com/huanglangwen/bitrounding-c"
	"github.com/huanglangwen/bitrounding-c/config"
	"github.com/huanglangwen/bitrounding-c/report"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "round":
		err = runRound(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "demo":
		err = runDemo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "ncbitround: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ncbitround: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  ncbitround round [options] <variable...>   Analyze and round named variables
  ncbitround info <variable>                 Show per-variable bit usage
  ncbitround demo                            Run every demo variable end to end

Run "ncbitround <command> -h" for command-specific options.
`)
}

func loadConfig(configPath string, fs *pflag.FlagSet) (bitrounding.Config, error) {
	cfg := bitrounding.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return bitrounding.Config{}, err
		}
	}

	if fs.Changed("inflevel") {
		cfg.Inflevel, _ = fs.GetFloat64("inflevel")
	}
	if fs.Changed("policy") {
		s, _ := fs.GetString("policy")
		kind, err := config.ParsePolicyKind(s)
		if err != nil {
			return bitrounding.Config{}, err
		}
		cfg.Policy.Kind = kind
	}
	if fs.Changed("gradient-threshold") {
		cfg.Policy.Threshold, _ = fs.GetFloat64("gradient-threshold")
	}
	if fs.Changed("gradient-tolerance") {
		cfg.Policy.Tolerance, _ = fs.GetFloat64("gradient-tolerance")
	}
	if fs.Changed("confidence") {
		cfg.Confidence, _ = fs.GetFloat64("confidence")
	}

	if err := cfg.Validate(); err != nil {
		return bitrounding.Config{}, err
	}
	return cfg, nil
}

func addConfigFlags(fs *pflag.FlagSet) (configPath *string) {
	configPath = fs.String("config", "", "path to a YAML configuration file")
	fs.Float64("inflevel", 0.9999, "CDF threshold in [0, 1] for the default/monotonic policies")
	fs.String("policy", "default", "NSB selector: default, monotonic, or gradient")
	fs.Float64("gradient-threshold", 0.7, "gradient policy: fraction of total MI required to stop")
	fs.Float64("gradient-tolerance", 0.001, "gradient policy: CDF-gradient stopping tolerance")
	fs.Float64("confidence", 0.99, "binomial confidence behind the free-entropy noise floor, in (0, 1)")
	return configPath
}

// --- round ---

func runRound(args []string) error {
	fs := pflag.NewFlagSet("round", pflag.ContinueOnError)
	configPath := addConfigFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("round: missing variable name(s)\nUsage: ncbitround round [options] <variable...>")
	}

	cfg, err := loadConfig(*configPath, fs)
	if err != nil {
		return err
	}

	src := syntheticSource{}
	r := report.New(os.Stdout)
	for _, name := range fs.Args() {
		f, err := src.Load(name)
		if err != nil || f == nil {
			return fmt.Errorf("round: unknown variable %q", name)
		}
		stats, rounded := bitrounding.ProcessVariable(f, cfg)
		r.Variable(stats, rounded)
	}
	r.Summary()
	return nil
}

// --- info ---

func runInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("info: missing variable name\nUsage: ncbitround info <variable>")
	}
	name := args[0]

	src := syntheticSource{}
	f, err := src.Load(name)
	if err != nil || f == nil {
		return fmt.Errorf("info: unknown variable %q", name)
	}

	fmt.Printf("Variable:   %s\n", f.Name)
	fmt.Printf("Shape:      %v\n", f.Shape)
	fmt.Printf("Fill value: %v (present=%v)\n", f.FillValue, f.HasFillValue)

	used := report.BitUsageHistogram(f)
	fmt.Println(report.FormatBitUsage(used))
	return nil
}

// --- demo ---

func runDemo(args []string) error {
	fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	configPath := addConfigFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, fs)
	if err != nil {
		return err
	}

	src := syntheticSource{}
	r := report.New(os.Stdout)
	for _, name := range src.Variables() {
		f, err := src.Load(name)
		if err != nil {
			return err
		}
		stats, rounded := bitrounding.ProcessVariable(f, cfg)
		r.Variable(stats, rounded)
	}
	r.Summary()
	return nil
}
