/*
 * report.go, part of goqmmm.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goqmmm is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package kin

import (
	"fmt"
	"strings"

	qmmm "github.com/rmera/goqmmm"
)

//Report is a structured, ordered mechanistic interpretation of an
//analyzed reaction. It is assembled from already-computed quantities
//and performs no numerical work of its own.
type Report struct {
	Composition  string           `json:"composition,omitempty"`
	Barriers     *BarrierAnalysis `json:"barriers"`
	Kinetics     *Kinetics        `json:"kinetics,omitempty"`
	Favorability string           `json:"favorability"`
	Notes        []string         `json:"notes"`
	Checklist    []string         `json:"recommended_validation"`
}

//the qualitative mechanistic reading for each barrier bucket.
var classNotes = map[string]string{
	"Very fast": "Essentially barrierless at this temperature; the process is diffusion- or encounter-limited rather than activation-limited.",
	"Fast":      "Low barrier; the reaction proceeds readily at ambient temperature without catalysis.",
	"Moderate":  "Accessible barrier; expect measurable rates at ambient temperature, with strong temperature dependence.",
	"Slow":      "High barrier; the reaction needs heating, long timescales or a catalyst to proceed.",
	"Very slow": "Prohibitive barrier at ambient conditions; an alternative mechanism or a catalyst is likely required.",
}

//the fixed follow-up recommendations attached to every report.
var checklist = []string{
	"Converge the free-energy profile with respect to total sampling time and hill parameters.",
	"Re-derive the barrier with a real QM/MM potential evaluator in place of the synthetic surface.",
	"Verify the transition state with a committor or a constrained optimization at the barrier top.",
	"Check the sensitivity of the partition to the buffer distance.",
	"Cross-validate the rate against Eyring kinetics with an explicitly computed pre-exponential factor.",
}

//Interpret assembles the mechanistic report for an analyzed reaction.
//rc and k may be nil, in which case the composition and kinetics
//sections are omitted. It never alters the values in b or k.
func Interpret(rc *qmmm.RegionConfig, b *BarrierAnalysis, k *Kinetics) *Report {
	r := new(Report)
	r.Barriers = b
	r.Kinetics = k
	if rc != nil {
		r.Composition = fmt.Sprintf("%d atoms total: %d reactive (%4.1f%%, %s) and %d bulk (%s)",
			rc.Structure.Atoms, rc.Structure.ReactiveAtoms, rc.Structure.ReactivePercent,
			rc.QM.Method, rc.Structure.BulkAtoms, rc.MM.ForceField)
	}
	if b != nil {
		switch {
		case b.Reaction < 0:
			r.Favorability = fmt.Sprintf("exergonic by %4.2f kcal/mol, thermodynamically favorable", -b.Reaction)
		case b.Reaction > 0:
			r.Favorability = fmt.Sprintf("endergonic by %4.2f kcal/mol, thermodynamically unfavorable", b.Reaction)
		default:
			r.Favorability = "thermoneutral"
		}
		if k != nil {
			r.Notes = append(r.Notes, classNotes[k.Class])
			if b.Reverse < b.Forward {
				r.Notes = append(r.Notes, "The reverse barrier is lower than the forward one; the reverse process will dominate unless the product is removed.")
			}
		}
	}
	r.Checklist = checklist
	return r
}

//String renders the report as an ordered, human-readable text block.
func (R *Report) String() string {
	var s []string
	s = append(s, "Mechanistic interpretation")
	if R.Composition != "" {
		s = append(s, fmt.Sprintf("  System: %s", R.Composition))
	}
	if R.Barriers != nil {
		b := R.Barriers
		s = append(s, fmt.Sprintf("  Reactant at %5.3f (%6.2f kcal/mol), product at %5.3f (%6.2f kcal/mol), TS at %5.3f (%6.2f kcal/mol)",
			b.Reactant.Coord, b.Reactant.Energy, b.Product.Coord, b.Product.Energy, b.TS.Coord, b.TS.Energy))
		s = append(s, fmt.Sprintf("  Forward barrier %6.2f kcal/mol, reverse barrier %6.2f kcal/mol, reaction energy %6.2f kcal/mol (from %d hills)",
			b.Forward, b.Reverse, b.Reaction, b.NHills))
	}
	if R.Kinetics != nil {
		k := R.Kinetics
		s = append(s, fmt.Sprintf("  TST at %5.1f K: k = %8.3g 1/s (t1/2 = %8.3g s), dH* = %6.2f, dS* = %8.3g, dG* = %6.2f. Classified: %s",
			k.Temperature, k.Rate, k.HalfLife, k.DeltaH, k.DeltaS, k.DeltaG, k.Class))
	}
	if R.Favorability != "" {
		s = append(s, fmt.Sprintf("  Thermodynamics: %s", R.Favorability))
	}
	for _, v := range R.Notes {
		s = append(s, fmt.Sprintf("  Note: %s", v))
	}
	s = append(s, "  Recommended validation:")
	for i, v := range R.Checklist {
		s = append(s, fmt.Sprintf("    %d. %s", i+1, v))
	}
	return strings.Join(s, "\n")
}
