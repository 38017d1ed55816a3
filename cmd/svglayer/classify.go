package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		summary  bool
		selector string
	)

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Print the layer of every element of one view document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}
			doc, err := svgdoc.Parse(string(data))
			if err != nil {
				return err
			}
			cc, err := a.cfg.ClassifierConfig()
			if err != nil {
				return err
			}
			res := classify.New(cc, a.logger).Classify(doc)

			els := res.Elements()
			if selector != "" {
				if els, err = doc.Query(selector); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			for _, el := range els {
				d := res.Decision(el)
				fmt.Fprintf(w, "%4d  %-8s %-16s %-12s %s\n", el.Index, el.Tag, d.Layer, d.Rule, el.Attr("class"))
			}

			if summary {
				counts := res.Counts()
				fmt.Fprintln(w)
				for _, l := range append(model.AllLayers(), model.LayerUnclassified) {
					if n := counts[l]; n > 0 {
						fmt.Fprintf(w, "%-16s %d\n", l, n)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&selector, "select", "", "Only print elements matching an XPath expression, e.g. //g")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Print primitive counts per layer")
	return cmd
}
