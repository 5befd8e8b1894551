// Package main implements binner, a tool to create histograms from
// Parquet file data using various binning algorithms.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bool64/dev/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"binner"
	"binner/dataset"
	"binner/hist"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "binner",
		Short: "Create histograms from Parquet file data",
		Long: "Reads numeric data from a Parquet file and creates histogram bins using\n" +
			"classification algorithms (Jenks, Quantile, Equal Interval, Standard\n" +
			"Deviation, Head-Tail) or custom bin edges. Results are structured JSON.",
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			}

			return run(v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("column", "c", "", "name of the numeric column to create histogram bins for")
	flags.StringP("algorithm", "a", "",
		"algorithm for calculating bin boundaries (jenks, quantile, equal-interval, standard-deviation, head-tail)")
	flags.IntP("num-bins", "n", 5, "target number of bins to create")
	flags.Float64("std-dev-size", 1.0, "number of standard deviations for bin sizing (standard-deviation only)")
	flags.StringP("file", "f", "", "path to the input Parquet file")
	flags.Bool("list-columns", false, "show available columns in the file and exit")
	flags.StringSlice("bins", nil,
		`custom bin boundaries (comma-separated), use "null" to include a null values bin`)
	flags.StringP("output", "o", "", "file path to write JSON results (stdout if not set)")
	flags.Bool("verbose", false, "enable debug logging")

	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	v.SetEnvPrefix("BINNER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(flags))

	return cmd
}

func run(v *viper.Viper) error {
	file := v.GetString("file")

	if v.GetBool("list-columns") {
		columns, err := dataset.ListColumns(file)
		if err != nil {
			return err
		}

		fmt.Printf("Available columns in %s:\n", file)

		for i, name := range columns {
			fmt.Printf("  %d. %s\n", i+1, name)
		}

		return nil
	}

	cfg := binner.Config{
		File:       file,
		Column:     v.GetString("column"),
		NumBins:    v.GetInt("num-bins"),
		StdDevSize: v.GetFloat64("std-dev-size"),
		CustomBins: v.GetStringSlice("bins"),
	}

	if s := v.GetString("algorithm"); s != "" {
		algorithm, err := binner.ParseAlgorithm(s)
		if err != nil {
			return err
		}

		cfg.Algorithm = algorithm
	}

	result, err := binner.Run(cfg)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"rows":    result.Metadata.TotalRows,
		"numeric": result.Metadata.NumericValues,
		"nulls":   result.Metadata.NullValues,
		"bins":    len(result.Bins),
	}).Debug("histogram built")

	return writeResult(result, v.GetString("output"))
}

func writeResult(result *hist.Result, path string) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Println(string(out))

		return nil
	}

	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	log.WithField("path", path).Info("results written")

	return nil
}
