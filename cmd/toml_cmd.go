package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/toml"
	"github.com/dzjyyds666/toml/pkg"
	"github.com/spf13/cobra"
)

type parseParams struct {
	Input       string
	Output      string
	Format      string
	TomlVersion string
}

var pparams = &parseParams{}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a TOML document and render it as JSON or canonical TOML",
	Run:   runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&pparams.Input, "input", "i", "", "input file path (default: stdin)")
	parseCmd.Flags().StringVarP(&pparams.Output, "output", "o", "", "output file path (default: stdout)")
	parseCmd.Flags().StringVar(&pparams.Format, "format", "json", "output format: json or toml")
	parseCmd.Flags().StringVar(&pparams.TomlVersion, "toml-version", "1.0.0", "TOML revision to parse against: 0.4.0, 0.5.0, or 1.0.0")
}

func runParse(cmd *cobra.Command, args []string) {
	version, err := parseVersionFlag(pparams.TomlVersion)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	data, err := pkg.ReadFileOrStdin(pparams.Input)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	res := toml.Parse(string(data), toml.WithVersion(version))
	for _, e := range res.Errors() {
		fmt.Fprintln(os.Stderr, e.String())
	}
	if res.HasErrors() {
		os.Exit(1)
	}
	var rendered string
	switch pparams.Format {
	case "json":
		rendered = res.ToJSON()
	case "toml":
		rendered = res.ToTOML()
	default:
		fmt.Printf("unknown format %q: expected json or toml\n", pparams.Format)
		os.Exit(1)
	}
	if err := pkg.WriteFileOrStdout(pparams.Output, []byte(rendered)); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type getParams struct {
	Input       string
	Find        string
	TomlVersion string
	List        bool
}

var gparams = &getParams{}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the value at a dotted key path within a TOML document",
	Run:   runGet,
}

func init() {
	getCmd.Flags().StringVarP(&gparams.Input, "input", "i", "", "input file path (default: stdin)")
	getCmd.Flags().StringVarP(&gparams.Find, "find", "f", "", "dotted key path to look up")
	getCmd.Flags().StringVar(&gparams.TomlVersion, "toml-version", "1.0.0", "TOML revision to parse against: 0.4.0, 0.5.0, or 1.0.0")
	getCmd.Flags().BoolVar(&gparams.List, "list", false, "list every leaf key path instead of looking one up")
}

func runGet(cmd *cobra.Command, args []string) {
	if !gparams.List && gparams.Find == "" {
		fmt.Println("no key path given, use --find or --list")
		os.Exit(1)
	}
	version, err := parseVersionFlag(gparams.TomlVersion)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	data, err := pkg.ReadFileOrStdin(gparams.Input)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	res := toml.Parse(string(data), toml.WithVersion(version))
	if res.HasErrors() {
		for _, e := range res.Errors() {
			fmt.Fprintln(os.Stderr, e.String())
		}
		os.Exit(1)
	}
	if gparams.List {
		for _, path := range res.KeyPathSet() {
			fmt.Println(path)
		}
		return
	}
	segs, err := toml.ParseKey(gparams.Find)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	v, present := res.GetPath(segs)
	if !present {
		fmt.Println("key not found")
		os.Exit(1)
	}
	fmt.Print(toml.ToJSONValue(v))
}

func parseVersionFlag(s string) (toml.Version, error) {
	switch s {
	case "0.4.0":
		return toml.V0_4_0, nil
	case "0.5.0":
		return toml.V0_5_0, nil
	case "1.0.0", "":
		return toml.V1_0_0, nil
	default:
		return 0, fmt.Errorf("unknown --toml-version %q: expected 0.4.0, 0.5.0, or 1.0.0", s)
	}
}
