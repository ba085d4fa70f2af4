// hexlayout prints hex board layouts without opening a window.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/ElliotMtb/battlefield-hexagons/internal/board"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command, rest := args[0], args[1:]
	var err error
	switch command {
	case "generate", "gen":
		err = cmdGenerate(rest, stdout, stderr)
	case "stats":
		err = cmdStats(rest, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `hexlayout - hex board layout utility

Usage:
  hexlayout <command> [options]

Commands:
  generate   Lay out a board and print every tile
  stats      Print tile count and kind histogram
  help       Show this message

Options:
  -radius float   Tile circumradius (default 7)
  -rings int      Rings around the center tile (default 6)
  -seed uint      Seed for kind assignment (0 = random)
  -format string  generate output: text, json or yaml (default text)

Examples:
  hexlayout generate -rings 2 -seed 42
  hexlayout generate -format json > board.json
  hexlayout stats -rings 10`)
}

type boardFlags struct {
	radius float64
	rings  int
	seed   uint64
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *boardFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	bf := &boardFlags{}
	fs.Float64Var(&bf.radius, "radius", 7, "Tile circumradius")
	fs.IntVar(&bf.rings, "rings", 6, "Rings around the center tile")
	fs.Uint64Var(&bf.seed, "seed", 0, "Seed for kind assignment (0 = random)")
	return fs, bf
}

func (bf *boardFlags) generate() (*board.Board, error) {
	return board.Generate(bf.radius, bf.rings, board.NewSource(bf.seed))
}

// layout is the serialized form of a board.
type layout struct {
	TileRadius float64      `json:"tile_radius" yaml:"tile_radius"`
	Rings      int          `json:"rings" yaml:"rings"`
	Tiles      []board.Tile `json:"tiles" yaml:"tiles"`
}

func cmdGenerate(args []string, stdout, stderr io.Writer) error {
	fs, bf := newFlagSet("generate", stderr)
	format := fs.String("format", "text", "Output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, err := bf.generate()
	if err != nil {
		return err
	}

	switch *format {
	case "text":
		return writeText(stdout, b)
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(toLayout(b))
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(toLayout(b)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", *format)
	}
}

func toLayout(b *board.Board) layout {
	return layout{TileRadius: b.TileRadius(), Rings: b.Rings(), Tiles: b.Tiles()}
}

func writeText(w io.Writer, b *board.Board) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "q\tr\ts\tx\ty\tkind\t")
	for _, t := range b.Tiles() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.3f\t%.3f\t%s\t\n",
			t.Coord.Q, t.Coord.R, t.Coord.S(), t.Position.X, t.Position.Y, t.Kind)
	}
	return tw.Flush()
}

func cmdStats(args []string, stdout, stderr io.Writer) error {
	fs, bf := newFlagSet("stats", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, err := bf.generate()
	if err != nil {
		return err
	}

	lo, hi := b.Bounds()
	fmt.Fprintf(stdout, "Rings:   %d\n", b.Rings())
	fmt.Fprintf(stdout, "Radius:  %g\n", b.TileRadius())
	fmt.Fprintf(stdout, "Tiles:   %d\n", b.Len())
	fmt.Fprintf(stdout, "Extent:  x [%.3f, %.3f]  y [%.3f, %.3f]\n", lo.X, hi.X, lo.Y, hi.Y)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Tiles by kind:")

	hist := b.Histogram()
	for _, k := range board.Kinds() {
		fmt.Fprintf(stdout, "  %-8s %d\n", k, hist[k])
	}
	return nil
}
