/*
 * hills.go, part of goqmmm.
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

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//Hill is one deposited bias element: a Gaussian of the given height
//(kcal/mol) and width (coordinate units) centered at the coordinate
//value where the system was when it was added.
type Hill struct {
	Center float64 `json:"center"`
	Height float64 `json:"height"`
	Sigma  float64 `json:"sigma"`
	Step   int     `json:"step"`
}

//Hills is the ordered, append-only sequence of bias elements deposited
//during a run. At any instant it defines the current bias potential as
//the sum of the individual Gaussian contributions. It is owned by the
//running sampler; downstream consumers get a snapshot.
type Hills []Hill

//Add appends a new hill. Hills are never removed or modified.
func (H *Hills) Add(center, height, sigma float64, step int) {
	*H = append(*H, Hill{Center: center, Height: height, Sigma: sigma, Step: step})
}

//Energy returns the accumulated bias potential at the coordinate
//value x, in kcal/mol.
func (H Hills) Energy(x float64) float64 {
	var e float64
	for _, h := range H {
		d := x - h.Center
		e += h.Height * math.Exp(-d*d/(2*h.Sigma*h.Sigma))
	}
	return e
}

//Gradient returns the derivative of the accumulated bias potential at
//the coordinate value x.
func (H Hills) Gradient(x float64) float64 {
	var g float64
	for _, h := range H {
		d := x - h.Center
		g += -h.Height * (d / (h.Sigma * h.Sigma)) * math.Exp(-d*d/(2*h.Sigma*h.Sigma))
	}
	return g
}

//Snapshot returns a copy of the hill sequence, safe to hand off while
//the original keeps growing.
func (H Hills) Snapshot() Hills {
	s := make(Hills, len(H))
	copy(s, H)
	return s
}

//Surface is a sampled estimate of the free energy along the collective
//variable: a monotonically increasing grid of coordinate values and a
//parallel slice of energies, obtained as the negative of the
//accumulated bias evaluated on the grid. It is built once, from the
//full hill sequence, and never partially mutated.
type Surface struct {
	X      []float64 `json:"grid"`
	Energy []float64 `json:"energy"`
	NHills int       `json:"hills"`
}

//NewSurface reconstructs the free-energy estimate from the hills, on a
//grid of points points spanning [min,max]. Grid points far from every
//hill center simply keep the (near zero) accumulated bias there; no
//extrapolation is attempted.
func NewSurface(hills Hills, min, max float64, points int) *Surface {
	s := new(Surface)
	s.X = floats.Span(make([]float64, points), min, max)
	s.Energy = make([]float64, points)
	for i, x := range s.X {
		s.Energy[i] = -hills.Energy(x)
	}
	s.NHills = len(hills)
	return s
}

//Len returns the number of grid points in the surface.
func (S *Surface) Len() int {
	return len(S.X)
}
