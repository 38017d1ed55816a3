package main

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/svglayer/internal/config"
)

func newBatchCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "batch [manifest]",
		Short: "Split every character of a manifest",
		Long: `Processes the items of a YAML manifest concurrently. A failing item is
logged and counted; the command only fails when every item failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.LoadManifest(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.Output.Dir
			}

			res := a.batch(m, out)
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d items, %d failed, %d documents written\n",
				len(m.Items), res.failed, res.written)
			if res.failed == len(m.Items) {
				return fmt.Errorf("all %d items failed", res.failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default: from config)")
	return cmd
}

type batchResult struct {
	failed  int
	written int
}

// batch runs the manifest items with at most Output.Concurrency in flight.
// Item failures never stop the other items.
func (a *app) batch(m *config.Manifest, out string) batchResult {
	var (
		failed  atomic.Int64
		written atomic.Int64
		g       errgroup.Group
	)
	g.SetLimit(a.cfg.Output.Concurrency)

	for _, item := range m.Items {
		item := item
		g.Go(func() error {
			j := job{
				name:    item.Name,
				paths:   item.Views,
				palette: a.cfg.ColorPalette(),
				outDir:  out,
			}
			if !item.Palette.IsZero() {
				j.palette = item.Palette.Model()
			}
			j.layers, _ = item.LayerList()

			n, err := a.run(j)
			written.Add(int64(n))
			if err != nil {
				failed.Add(1)
				a.logger.Error("item failed", zap.String("item", item.Name), zap.Error(err))
				return nil
			}
			a.logger.Debug("item done", zap.String("item", item.Name), zap.Int("documents", n))
			return nil
		})
	}
	_ = g.Wait()

	return batchResult{failed: int(failed.Load()), written: int(written.Load())}
}
