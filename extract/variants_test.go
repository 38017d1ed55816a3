package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
)

func TestVariants_Hands(t *testing.T) {
	res := classified(t, frontSVG)
	got := Variants(res, model.HandFamily())

	want := map[model.State][]int{
		model.StateDownClosed: {12},
		model.StateDownOpen:   {14},
		model.StateUp:         {16},
	}
	if len(got) != len(want) {
		t.Fatalf("Variants() returned %d states, want %d", len(got), len(want))
	}
	for state, idx := range want {
		sels := got[state]
		if len(sels) != 1 {
			t.Errorf("state %s has %d selections, want 1", state, len(sels))
			continue
		}
		if sels[0].Mode != ModeGrouped {
			t.Errorf("state %s mode = %v", state, sels[0].Mode)
		}
		if diff := cmp.Diff(idx, indexes(sels[0].Elements)); diff != "" {
			t.Errorf("state %s mismatch (-want +got):\n%s", state, diff)
		}
	}
}

func TestVariants_ScatteredFallback(t *testing.T) {
	res := classified(t, `<svg xmlns="http://www.w3.org/2000/svg">
<path class="gotchi-handsUp" d="M1 1h1"/>
</svg>`)
	got := Variants(res, model.HandFamily())
	if len(got) != 1 {
		t.Fatalf("Variants() = %d states, want 1", len(got))
	}
	sel := got[model.StateUp][0]
	if sel.Mode != ModeScattered || sel.Class != classify.MarkerHandsUp {
		t.Errorf("fallback selection = %v/%q", sel.Mode, sel.Class)
	}
}

func TestSleeves_LooseSiblings(t *testing.T) {
	res := classified(t, frontSVG)
	got := Sleeves(res)

	up := got[model.StateUp]
	if len(up) != 1 {
		t.Fatalf("up selections = %d, want 1", len(up))
	}
	if diff := cmp.Diff([]int{20, 25}, indexes(up[0].Elements)); diff != "" {
		t.Errorf("sleeves-up mismatch (-want +got):\n%s", diff)
	}

	down := got[model.StateDown]
	if len(down) != 1 {
		t.Fatalf("down selections = %d, want 1", len(down))
	}
	if down[0].Class != "gotchi-sleeves gotchi-sleeves-left gotchi-sleeves-down" {
		t.Errorf("synthesized class = %q", down[0].Class)
	}
	if diff := cmp.Diff([]int{22, 24}, indexes(down[0].Elements)); diff != "" {
		t.Errorf("loose sleeves-down mismatch (-want +got):\n%s", diff)
	}

	viaFamily := Variants(res, model.SleeveFamily())
	if len(viaFamily[model.StateDown]) != 1 {
		t.Error("Variants(SleeveFamily) should delegate to Sleeves")
	}
}

func TestSleeves_ExplicitDownGroup(t *testing.T) {
	res := classified(t, `<svg xmlns="http://www.w3.org/2000/svg">
<g class="gotchi-sleeves gotchi-sleeves-up"><path d="M1 1h1"/></g>
<path d="M2 2h1"/>
<g class="gotchi-sleeves gotchi-sleeves-down"><path d="M3 3h1"/></g>
</svg>`)
	got := Sleeves(res)
	down := got[model.StateDown]
	if len(down) != 1 || down[0].Mode != ModeGrouped {
		t.Fatalf("down = %+v, want one grouped selection", down)
	}
	if diff := cmp.Diff([]int{3}, indexes(down[0].Elements)); diff != "" {
		t.Errorf("down mismatch (-want +got):\n%s", diff)
	}
}

func TestSleeves_None(t *testing.T) {
	res := classified(t, `<svg xmlns="http://www.w3.org/2000/svg"><path d="M1 1h1"/></svg>`)
	if got := Sleeves(res); len(got) != 0 {
		t.Errorf("Sleeves() = %v, want empty", got)
	}
}

func TestDownClass(t *testing.T) {
	tests := map[string]string{
		"gotchi-sleeves gotchi-sleeves-up":                      "gotchi-sleeves gotchi-sleeves-down",
		"gotchi-sleeves gotchi-sleeves-right gotchi-sleeves-up": "gotchi-sleeves gotchi-sleeves-right gotchi-sleeves-down",
	}
	for in, want := range tests {
		if got := downClass(in); got != want {
			t.Errorf("downClass(%q) = %q, want %q", in, got, want)
		}
	}
}
