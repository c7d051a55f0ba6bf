// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/2dChan/delaunay"
	"github.com/2dChan/delaunay/points"
)

// generatorConfig describes a synthetic point set, loadable from a YAML
// file with 'delaunay-svg triangulate --config'.
type generatorConfig struct {
	// Kind selects the generator: "random", "grid", or "circle".
	Kind string `yaml:"kind"`

	// Count is the number of points to generate. Unused by "grid", which
	// uses Cols and Rows instead.
	Count int `yaml:"count"`
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	CenterX float64 `yaml:"centerX"`
	CenterY float64 `yaml:"centerY"`
	Radius  float64 `yaml:"radius"`

	Seed int64 `yaml:"seed"`
}

// defaultGeneratorConfig returns the config written by 'delaunay-svg
// config'.
func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		Kind:   "random",
		Count:  200,
		Cols:   20,
		Rows:   20,
		Width:  800,
		Height: 600,
		Radius: 300,
		Seed:   0,
	}
}

// generate produces the point set described by c. It returns an error if
// Kind names an unknown generator.
func (c generatorConfig) generate() ([]delaunay.Point, error) {
	switch c.Kind {
	case "random":
		return points.GenerateRandomPoints(c.Count, c.Width, c.Height, c.Seed), nil
	case "grid":
		return points.GenerateGridPoints(c.Cols, c.Rows, c.Width, c.Height), nil
	case "circle":
		return points.GenerateCirclePoints(c.Count, c.CenterX, c.CenterY, c.Radius), nil
	default:
		return nil, fmt.Errorf("config: unknown generator kind %q (want random, grid, or circle)", c.Kind)
	}
}

// loadGeneratorConfig reads and parses a YAML generator config from path.
func loadGeneratorConfig(path string) (generatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return generatorConfig{}, err
	}
	c := defaultGeneratorConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return generatorConfig{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return c, nil
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a generator config file prefilled with default values",
	Long: `Write a point-generator config in YAML format, prefilled with default
values, for use with 'delaunay-svg triangulate --config'.

If FILE is not provided, 'delaunay.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "delaunay.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		data, err := yaml.Marshal(defaultGeneratorConfig())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("generator config written to %s\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

// confirmIfExists returns true if path does not exist, or if the user
// confirms msg on the command line.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation prints msg and reads a y/n answer from stdin,
// defaulting to no.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return false
		}
		switch input[0] {
		case 'Y', 'y':
			return true
		case 'N', 'n', '\n':
			return false
		}
	}
}
