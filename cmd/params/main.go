// Package main prints the derived visualization parameters for the
// supported baryons as a JSON report, for inspection and for seeding
// config files.
//
// Usage: go run ./cmd/params [-baryon proton|neutron|all] [-output report.json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pthm-cable/baryon/holonomy"
	"github.com/pthm-cable/baryon/physics"
)

// QuarkReport holds the derived visual parameters for one quark slot.
type QuarkReport struct {
	Flavor        string  `json:"flavor"`
	MassMeV       float64 `json:"mass_mev"`
	Charge        float64 `json:"charge"`
	MassScale     float64 `json:"mass_scale"`
	FluxArrows    int     `json:"flux_arrows"`
	FluxLength    float64 `json:"flux_length"`
	RotationSpeed float64 `json:"rotation_speed"`
	HolonomyK     int     `json:"holonomy_k"`
	ThetaBase     float64 `json:"theta_base"`
}

// BaryonReport holds the full derivation for one composite.
type BaryonReport struct {
	Name             string        `json:"name"`
	Symbol           string        `json:"symbol"`
	TotalMassMeV     float64       `json:"total_mass_mev"`
	BindingEnergyMeV float64       `json:"binding_energy_mev"`
	TotalCharge      float64       `json:"total_charge"`
	ColorNeutral     bool          `json:"color_neutral"`
	Quarks           []QuarkReport `json:"quarks"`
}

// Report is the top-level derivation output.
type Report struct {
	GridSegments int                    `json:"grid_segments"`
	TotalFrames  int                    `json:"total_frames"`
	Phases       physics.AnimationPhases `json:"phases"`
	Baryons      []BaryonReport         `json:"baryons"`
}

func buildBaryonReport(b physics.Baryon) BaryonReport {
	states := holonomy.States(b, 0, false)
	speeds := b.RotationSpeeds()

	quarks := make([]QuarkReport, len(b.Quarks))
	for i, q := range b.Quarks {
		quarks[i] = QuarkReport{
			Flavor:        q.Flavor,
			MassMeV:       q.MassMeV,
			Charge:        q.Charge,
			MassScale:     q.MassScale(),
			FluxArrows:    q.FluxArrows(),
			FluxLength:    q.FluxLength(),
			RotationSpeed: speeds[i],
			HolonomyK:     q.HolonomyK,
			ThetaBase:     states[i].Theta,
		}
	}

	return BaryonReport{
		Name:             b.Name,
		Symbol:           b.Symbol,
		TotalMassMeV:     b.TotalMassMeV,
		BindingEnergyMeV: b.BindingEnergyMeV,
		TotalCharge:      b.TotalCharge,
		ColorNeutral:     holonomy.ColorNeutral(states),
		Quarks:           quarks,
	}
}

func main() {
	baryonName := flag.String("baryon", "all", "Baryon to report on (proton, neutron, all)")
	output := flag.String("output", "", "Output file (empty = stdout)")
	flag.Parse()

	frames := physics.OptimalFrameCount()
	report := Report{
		GridSegments: physics.OptimalGridSegments(),
		TotalFrames:  frames,
		Phases:       physics.PhaseBreakdown(frames),
	}

	names := []string{"proton", "neutron"}
	if *baryonName != "all" {
		names = []string{*baryonName}
	}
	for _, name := range names {
		b, err := physics.BaryonByName(name)
		if err != nil {
			log.Fatalf("unknown baryon: %v", err)
		}
		report.Baryons = append(report.Baryons, buildBaryonReport(b))
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("marshaling report: %v", err)
	}

	if *output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		log.Fatalf("writing report: %v", err)
	}
	fmt.Printf("Report written to %s\n", *output)
}
