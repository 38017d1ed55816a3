package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/svglayer/model"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		front, left, right, back string
		layers                   []string
		name, out                string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split one character into layer documents",
		Long: `Reads the four view documents of one character and writes
<part>_<view>_<name>.svg files. Without --layer every layer, the body with
cheeks composite and the hand and sleeve states are written.

Example:
  svglayer split --front f.svg --left l.svg --right r.svg --back b.svg --layer body --name 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j := job{
				name:    name,
				paths:   []string{front, left, right, back},
				palette: a.cfg.ColorPalette(),
				outDir:  out,
			}
			if j.outDir == "" {
				j.outDir = a.cfg.Output.Dir
			}
			for _, s := range layers {
				l, ok := model.ParseLayer(s)
				if !ok || l == model.LayerUnclassified {
					return fmt.Errorf("unknown layer %q", s)
				}
				j.layers = append(j.layers, l)
			}

			n, err := a.run(j)
			if err != nil {
				return err
			}
			a.logger.Info("split complete", zap.String("name", name), zap.Int("documents", n))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d documents to %s\n", n, j.outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Front view document (required)")
	cmd.Flags().StringVar(&left, "left", "", "First side view document (required)")
	cmd.Flags().StringVar(&right, "right", "", "Second side view document (required)")
	cmd.Flags().StringVar(&back, "back", "", "Back view document (required)")
	cmd.Flags().StringSliceVar(&layers, "layer", nil, "Layers to extract (default: all)")
	cmd.Flags().StringVar(&name, "name", "character", "Name used in output file names")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default: from config)")
	for _, f := range []string{"front", "left", "right", "back"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
