package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/stickr"
)

type replayOptions struct {
	*rootOptions
	bounds []float64
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	opts := &replayOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Play a gesture script headlessly and print the resulting transform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.replay(cmd, args[0])
		},
	}
	cmd.Flags().Float64SliceVar(&opts.bounds, "bounds", []float64{0, 0, 400, 300},
		"element bounds x,y,width,height used when the script sets none")
	return cmd
}

func (o *replayOptions) replay(cmd *cobra.Command, path string) error {
	if len(o.bounds) != 4 {
		return fmt.Errorf("--bounds: want 4 values, got %d", len(o.bounds))
	}
	logger := loggerFromContext(cmd.Context())
	engine, err := o.newEngine(cmd.Context())
	if err != nil {
		return err
	}
	script, err := stickr.LoadScriptFile(path)
	if err != nil {
		return err
	}

	engine.SetBounds(stickr.Rect{X: o.bounds[0], Y: o.bounds[1], Width: o.bounds[2], Height: o.bounds[3]})
	ctx := cmd.Context()
	runner := stickr.NewScriptRunner(script)
	for !runner.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		runner.Step(engine)
	}
	logger.Debug("replayed script", "path", path, "frames", script.Frames())

	engine.LogState(logger)
	m := engine.Matrix()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "matrix:\n")
	for r := 0; r < 3; r++ {
		fmt.Fprintf(out, "  % .6f % .6f % .6f\n", m[r*3], m[r*3+1], m[r*3+2])
	}
	q := engine.Quad()
	for k, p := range q {
		fmt.Fprintf(out, "%-12s %9.3f %9.3f\n", stickr.PointKind(k), p.X, p.Y)
	}
	return nil
}
