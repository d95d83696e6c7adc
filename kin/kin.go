/*
 * kin.go, part of goqmmm.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package kin turns a sampled free-energy surface into transition-state
kinetics: it locates the reactant and product minima and the transition
state between them, computes the barriers and the reaction energy, and
converts the forward barrier into a rate constant and activation
thermodynamics via transition-state theory.*/
package kin

import (
	"fmt"

	"github.com/rmera/goqmmm/meta"
	"gonum.org/v1/gonum/floats"
)

//surfaces flatter than this (kcal/mol) have no extrema worth the name.
const flatTol = 1e-9

//State is one stationary point on the free-energy surface.
type State struct {
	Coord  float64 `json:"coordinate"`
	Energy float64 `json:"energy"`
}

//BarrierAnalysis holds the stationary points found on a free-energy
//surface and the energies derived from them. Both barriers are
//non-negative by construction; a surface for which that cannot hold is
//reported as indeterminate instead.
type BarrierAnalysis struct {
	Reactant State   `json:"reactant"`
	Product  State   `json:"product"`
	TS       State   `json:"transition_state"`
	Forward  float64 `json:"forward_barrier"`
	Reverse  float64 `json:"reverse_barrier"`
	Reaction float64 `json:"reaction_energy"`
	NHills   int     `json:"hills"`
}

//Barriers locates the stationary points of the surface: the reactant
//state is the minimum-energy point of the first third of the grid, the
//product state the minimum of the last third, and the transition state
//the maximum strictly between them. On a monotonic surface there is no
//interior maximum above both wells, so the transition state degenerates
//to the higher-energy well and the corresponding barrier is zero, which
//is reported as such, never as a negative barrier. A perfectly flat
//surface yields an indeterminate-analysis error.
func Barriers(s *meta.Surface) (*BarrierAnalysis, error) {
	if s == nil || s.Len() < 2 {
		return nil, Error{message: "cannot analyze a degenerate surface", deco: []string{"Barriers"}, critical: true}
	}
	e := s.Energy
	if floats.Max(e)-floats.Min(e) < flatTol {
		return nil, Error{message: "indeterminate analysis: flat surface, no distinguishable extrema", deco: []string{"Barriers"}, critical: true, indeterminate: true}
	}
	n := s.Len()
	third := n / 3
	if third < 1 {
		third = 1
	}
	ri := floats.MinIdx(e[:third])
	pi := n - third + floats.MinIdx(e[n-third:])
	var ti int
	if pi-ri < 2 {
		ti = ri
	} else {
		ti = ri + 1 + floats.MaxIdx(e[ri+1:pi])
	}
	//on a monotonic stretch the interior maximum falls below one of the
	//wells. The transition state then degenerates to the higher well,
	//leaving that barrier at zero instead of inventing a negative one.
	if e[ti] < e[ri] || e[ti] < e[pi] {
		ti = ri
		if e[pi] > e[ri] {
			ti = pi
		}
	}
	b := new(BarrierAnalysis)
	b.Reactant = State{Coord: s.X[ri], Energy: e[ri]}
	b.Product = State{Coord: s.X[pi], Energy: e[pi]}
	b.TS = State{Coord: s.X[ti], Energy: e[ti]}
	b.Forward = b.TS.Energy - b.Reactant.Energy
	b.Reverse = b.TS.Energy - b.Product.Energy
	b.Reaction = b.Product.Energy - b.Reactant.Energy
	b.NHills = s.NHills
	return b, nil
}

//Errors

//Error is the error type for the kin package. It fulfills the
//qmmm.Error interface. Indeterminate distinguishes degenerate-data
//conditions (a surface with no usable extrema) from plain bad input.
type Error struct {
	message       string
	deco          []string
	critical      bool
	indeterminate bool
}

func (err Error) Error() string { return fmt.Sprintf("kinetics error: %s", err.message) }

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//Indeterminate returns true if the error reports an indeterminate
//analysis (degenerate data) rather than invalid input.
func (err Error) Indeterminate() bool { return err.indeterminate }

//IsIndeterminate returns true if err reports an indeterminate
//analysis.
func IsIndeterminate(err error) bool {
	e, ok := err.(interface{ Indeterminate() bool })
	return ok && e.Indeterminate()
}
