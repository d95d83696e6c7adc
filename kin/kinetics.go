/*
 * kinetics.go, part of goqmmm.
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
	"math"
)

const (
	//RGas is the gas constant in kcal/(mol K).
	RGas = 0.0019872

	//PreExp is the assumed pre-exponential factor, in 1/s. A typical
	//value for a unimolecular elementary step.
	PreExp = 1e13

	//kBoverH is the Boltzmann constant over the Planck constant,
	//in 1/(s K), for the Eyring relation.
	kBoverH = 2.0836612e10
)

//Kinetics holds the transition-state-theory quantities derived from a
//forward barrier at a given temperature.
type Kinetics struct {
	Temperature float64 `json:"temperature_k"`
	Barrier     float64 `json:"barrier"`             //kcal/mol
	Rate        float64 `json:"rate_constant"`       //1/s
	HalfLife    float64 `json:"half_life_s"`         //s
	DeltaH      float64 `json:"activation_enthalpy"` //kcal/mol
	DeltaS      float64 `json:"activation_entropy"`  //kcal/(mol K)
	DeltaG      float64 `json:"activation_gibbs"`    //kcal/mol
	Class       string  `json:"classification"`
}

//barrier classification thresholds, kcal/mol, and the corresponding
//qualitative labels. A barrier classifies in the first bucket whose
//threshold it is strictly below; at or above the last threshold it is
//"Very slow".
var classThresholds = []float64{5, 10, 15, 20}

var classLabels = []string{"Very fast", "Fast", "Moderate", "Slow", "Very slow"}

//Classify buckets a forward barrier (kcal/mol) into one of five
//qualitative reaction-speed labels.
func Classify(barrier float64) string {
	for i, t := range classThresholds {
		if barrier < t {
			return classLabels[i]
		}
	}
	return classLabels[len(classLabels)-1]
}

//Rates converts the forward barrier of b into transition-state-theory
//kinetics at the temperature T (K): the rate constant as
//PreExp*exp(-Ea/(RGas*T)), the activation enthalpy (taken as the
//barrier itself), the activation entropy implied by the fixed
//pre-exponential factor through the Eyring relation, and the
//activation Gibbs energy. Increasing the barrier at fixed T always
//decreases the rate.
func Rates(b *BarrierAnalysis, T float64) (*Kinetics, error) {
	if b == nil {
		return nil, Error{message: "nil barrier analysis given", deco: []string{"Rates"}, critical: true}
	}
	if T <= 0 {
		return nil, Error{message: fmt.Sprintf("temperature must be positive, got %4.2f", T), deco: []string{"Rates"}, critical: true}
	}
	k := new(Kinetics)
	k.Temperature = T
	k.Barrier = b.Forward
	k.Rate = PreExp * math.Exp(-b.Forward/(RGas*T))
	if k.Rate > 0 {
		k.HalfLife = math.Ln2 / k.Rate
	} else {
		k.HalfLife = math.Inf(1)
	}
	k.DeltaH = b.Forward
	k.DeltaS = RGas * math.Log(PreExp/(kBoverH*T))
	k.DeltaG = k.DeltaH - T*k.DeltaS
	k.Class = Classify(b.Forward)
	return k, nil
}
