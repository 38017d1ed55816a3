package svglayer_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/svglayer"
	"github.com/tsawler/svglayer/model"
)

// These examples show typical calls. They are not run since they need
// real view documents.

func Example_layer() {
	var front, left, right, back string // fetched by the caller

	docs, warnings, err := svglayer.FromViews(front, left, right, back).
		WithPalette(model.Palette{Primary: "0x64438E", Secondary: "0xEDD3FD", Cheek: "0xF696C6"}).
		Layer(model.LayerBody)
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
	for view, svg := range docs {
		_ = os.WriteFile("body_"+view.String()+".svg", []byte(svg), 0o644)
	}
}

func Example_handStates() {
	var raw []string // four view documents

	hands, _, err := svglayer.FromViews(raw...).States(model.HandFamily())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hands[model.ViewFront][model.StateUp])
}

func Example_decompose() {
	var raw []string

	d, warnings, err := svglayer.FromViews(raw...).Decompose()
	if err != nil {
		log.Fatal(err)
	}
	if len(warnings) > 0 {
		log.Println("Warnings:", svglayer.FormatWarnings(warnings))
	}
	fmt.Println(d.Count(), "documents")
}
