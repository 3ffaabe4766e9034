package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/usecase"
)

var (
	solvePart string
	solveFile string
	solveAll  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [day]",
	Short: "Solve a day's stored input, a given file or every stored input",
	Example: `  advent-web solve 5
  advent-web solve 8 --part 2 --file my-input.txt
  advent-web solve 16 --file -
  advent-web solve --all`,
	Args: func(cmd *cobra.Command, args []string) error {
		if solveAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solvePart, "part", "p", "", "1 or 2 (default both)")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", `input file, "-" for stdin (default the stored input)`)
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "solve every day that has a stored input")
	solveCmd.MarkFlagsMutuallyExclusive("all", "file")
}

func runSolve(cmd *cobra.Command, args []string) error {
	parts := []domain.Part{domain.Part1, domain.Part2}
	if solvePart != "" {
		p, err := domain.ParsePart(solvePart)
		if err != nil {
			return err
		}
		parts = []domain.Part{p}
	}

	uc := newService()
	ctx := cmd.Context()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "DAY\tPART\tANSWER\tTIME\tINPUT")

	if solveAll {
		infos, err := uc.Days(ctx)
		if err != nil {
			return err
		}
		failed := 0
		for _, d := range infos {
			if !d.HasInput {
				continue
			}
			if err := solveDay(ctx, tw, uc, d.Number, parts, nil); err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d day(s) failed", failed)
		}
		return nil
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrUnknownDay, args[0])
	}
	var input *string
	if solveFile != "" {
		s, err := readInputFile(cmd.InOrStdin(), solveFile)
		if err != nil {
			return err
		}
		input = &s
	}
	return solveDay(ctx, tw, uc, day, parts, input)
}

// solveDay prints one row per part, failures included. A nil input means
// the stored input.
func solveDay(ctx context.Context, w io.Writer, uc *usecase.Service, day int, parts []domain.Part, input *string) error {
	in := ""
	if input != nil {
		in = *input
	} else {
		var err error
		if in, err = uc.Input(ctx, day); err != nil {
			fmt.Fprintf(w, "%d\t-\terror: %v\t\t\n", day, err)
			return err
		}
	}
	var errs []error
	for _, p := range parts {
		res, st, err := uc.Solve(ctx, day, p, in)
		if err != nil {
			fmt.Fprintf(w, "%d\t%s\terror: %v\t\t\n", day, p, err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", day, p, res.Answer,
			st.Duration.Round(time.Microsecond), humanize.Bytes(uint64(st.InputBytes)))
	}
	return errors.Join(errs...)
}

func readInputFile(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
