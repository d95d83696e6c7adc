/*
 * potential.go, part of goqmmm.
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

package meta

import "math"

//Evaluator provides the intrinsic energy of the system along the
//collective variable, in kcal/mol, and its gradient, in kcal/mol per
//coordinate unit. A production deployment satisfies this interface
//with a real QM/MM engine; the integration and bias accounting do not
//depend on which implementation is used.
type Evaluator interface {
	Energy(x float64) float64
	Gradient(x float64) float64
}

//DoubleWell is a synthetic energy surface along the coordinate: two
//harmonic wells, for the reactant and product states, joined smoothly
//and topped by a Gaussian barrier between them. The well term is
//0.5*WellK*w(x)^2 with w(x) = (x-a)(x-b)/(b-a), which behaves as a
//harmonic well of constant WellK near each minimum while keeping the
//surface differentiable everywhere, so the analytical gradient always
//matches the energy. It stands in for the real reactive energy
//surface when no external evaluator is available. The zero values are
//not useful, get one from NewDoubleWell and change the fields as
//needed: the default well positions and barrier shape are generic
//placeholders, not fitted to any particular reaction.
type DoubleWell struct {
	ReactantPos   float64 //coordinate of the reactant well
	ProductPos    float64 //coordinate of the product well
	WellK         float64 //harmonic constant of both wells, kcal/mol per unit^2
	BarrierPos    float64 //center of the Gaussian barrier
	BarrierHeight float64 //kcal/mol
	BarrierWidth  float64 //Gaussian sigma, coordinate units
}

//NewDoubleWell returns a DoubleWell with the default parameters:
//wells at 1.5 and 3.0, a 12 kcal/mol barrier centered between them.
func NewDoubleWell() *DoubleWell {
	dw := new(DoubleWell)
	dw.ReactantPos = 1.5
	dw.ProductPos = 3.0
	dw.WellK = 20.0
	dw.BarrierPos = (dw.ReactantPos + dw.ProductPos) / 2
	dw.BarrierHeight = 12.0
	dw.BarrierWidth = 0.3
	return dw
}

//Energy returns the double-well energy at the coordinate value x.
func (D *DoubleWell) Energy(x float64) float64 {
	w := (x - D.ReactantPos) * (x - D.ProductPos) / (D.ProductPos - D.ReactantPos)
	g := x - D.BarrierPos
	return 0.5*D.WellK*w*w + D.BarrierHeight*math.Exp(-g*g/(2*D.BarrierWidth*D.BarrierWidth))
}

//Gradient returns dE/dx at the coordinate value x.
func (D *DoubleWell) Gradient(x float64) float64 {
	w := (x - D.ReactantPos) * (x - D.ProductPos) / (D.ProductPos - D.ReactantPos)
	dw := (2*x - D.ReactantPos - D.ProductPos) / (D.ProductPos - D.ReactantPos)
	g := x - D.BarrierPos
	s2 := D.BarrierWidth * D.BarrierWidth
	return D.WellK*w*dw - D.BarrierHeight*(g/s2)*math.Exp(-g*g/(2*s2))
}
