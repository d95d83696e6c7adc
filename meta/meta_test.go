/*
 * meta_test.go, part of goqmmm.
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
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"golang.org/x/exp/rand"
)

func TestParseColVar(Te *testing.T) {
	cv, err := ParseColVar("distance 5 12")
	if err != nil {
		Te.Fatal(err)
	}
	if cv.Kind() != "distance" || len(cv.Atoms()) != 2 || cv.Atoms()[1] != 12 {
		Te.Errorf("wrong parse: %s %v", cv.Kind(), cv.Atoms())
	}
	if cv.String() != "distance 5 12" {
		Te.Errorf("wrong round trip: %q", cv.String())
	}
	for _, bad := range []string{"", "distance", "distance 5", "distance 5 12 13", "torsion 1 2 3 4", "angle 1 2 x", "distance 0 3"} {
		if _, err := ParseColVar(bad); err == nil {
			Te.Errorf("%q should not parse", bad)
		}
	}
	if _, err := ParseColVar("dihedral 1 2 3 4"); err != nil {
		Te.Error(err)
	}
	if _, err := ParseColVar("Angle 1 2 3"); err != nil {
		Te.Error(err) //type tags are case-insensitive
	}
}

//a run of duration/Timestep steps must deposit exactly
//floor(steps/stride) hills, and the surface must have exactly the
//requested number of grid points.
func TestSampleCounts(Te *testing.T) {
	cv, err := ParseColVar("distance 1 2")
	if err != nil {
		Te.Fatal(err)
	}
	p := Params{HillSigma: 0.05, HillHeight: 0.1, HillStride: 100, Temperature: 300, Duration: 100}
	traj, surf, err := Sample(nil, cv, p, rand.NewSource(42))
	if err != nil {
		Te.Fatal(err)
	}
	steps := int(p.Duration / Timestep)
	if steps != 50000 {
		Te.Fatalf("expected 50000 steps for 100 ps, got %d", steps)
	}
	if traj.Len() != steps+1 {
		Te.Errorf("expected %d trajectory values, got %d", steps+1, traj.Len())
	}
	if surf.NHills != steps/p.HillStride {
		Te.Errorf("expected %d hills, got %d", steps/p.HillStride, surf.NHills)
	}
	if surf.Len() != DefGridPoints {
		Te.Errorf("expected %d grid points, got %d", DefGridPoints, surf.Len())
	}
	if surf.X[0] != DefGridMin || surf.X[surf.Len()-1] != DefGridMax {
		Te.Errorf("wrong grid range: [%f,%f]", surf.X[0], surf.X[surf.Len()-1])
	}
	fmt.Println("sampled", surf.NHills, "hills over", steps, "steps")
}

func TestSampleDeterminism(Te *testing.T) {
	cv, err := ParseColVar("distance 1 2")
	if err != nil {
		Te.Fatal(err)
	}
	p := Params{HillSigma: 0.05, HillHeight: 0.1, HillStride: 50, Temperature: 300, Duration: 2}
	t1, s1, err := Sample(nil, cv, p, rand.NewSource(7))
	if err != nil {
		Te.Fatal(err)
	}
	t2, s2, err := Sample(nil, cv, p, rand.NewSource(7))
	if err != nil {
		Te.Fatal(err)
	}
	if t1.Len() != t2.Len() {
		Te.Fatal("same seed, different trajectory lengths")
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			Te.Fatalf("same seed, different trajectories at step %d: %f vs %f", i, t1[i], t2[i])
		}
	}
	for i := range s1.Energy {
		if s1.Energy[i] != s2.Energy[i] {
			Te.Fatalf("same seed, different surfaces at point %d", i)
		}
	}
	t3, _, err := Sample(nil, cv, p, rand.NewSource(8))
	if err != nil {
		Te.Fatal(err)
	}
	same := true
	for i := range t1 {
		if t1[i] != t3[i] {
			same = false
			break
		}
	}
	if same {
		Te.Error("different seeds produced identical trajectories")
	}
}

func TestParamsValidation(Te *testing.T) {
	cv, err := ParseColVar("distance 1 2")
	if err != nil {
		Te.Fatal(err)
	}
	good := Params{HillSigma: 0.05, HillHeight: 0.1, HillStride: 100, Temperature: 300, Duration: 1}
	bads := []Params{good, good, good, good, good, good}
	bads[0].HillSigma = 0
	bads[1].HillHeight = -1
	bads[2].HillStride = 0
	bads[3].Temperature = 0
	bads[4].Duration = -5
	bads[5].GridMin, bads[5].GridMax = 2, 1
	for i, p := range bads {
		if _, _, err := Sample(nil, cv, p, nil); err == nil {
			Te.Errorf("bad parameter set %d should fail", i)
		}
	}
	if _, _, err := Sample(nil, nil, good, nil); err == nil {
		Te.Error("missing collective variable should fail")
	}
}

func TestDoubleWell(Te *testing.T) {
	dw := NewDoubleWell()
	er := dw.Energy(dw.ReactantPos)
	ep := dw.Energy(dw.ProductPos)
	eb := dw.Energy(dw.BarrierPos)
	if math.Abs(er-ep) > 1e-12 {
		Te.Errorf("the default wells should be degenerate: %f vs %f", er, ep)
	}
	if eb <= er || eb <= ep {
		Te.Errorf("the barrier (%f) should sit above both wells (%f, %f)", eb, er, ep)
	}
	//a centered finite difference against the analytical gradient. The
	//sweep is densest around the barrier top, where the two well
	//branches meet: the surface must stay differentiable there too.
	h := 1e-6
	for _, x := range []float64{1.0, 1.5, 2.0, 2.2, 2.24, 2.25, 2.26, 2.3, 2.6, 3.0, 3.5} {
		num := (dw.Energy(x+h) - dw.Energy(x-h)) / (2 * h)
		if math.Abs(num-dw.Gradient(x)) > 1e-4 {
			Te.Errorf("gradient mismatch at %4.2f: %f vs %f", x, num, dw.Gradient(x))
		}
	}
	//near each minimum the well term has to look harmonic with
	//constant WellK: the Gaussian tail aside, E(a+d) ~ 0.5*K*d^2.
	d := 1e-4
	for _, a := range []float64{dw.ReactantPos, dw.ProductPos} {
		curv := (dw.Energy(a+d) - 2*dw.Energy(a) + dw.Energy(a-d)) / (d * d)
		g := a - dw.BarrierPos
		s2 := dw.BarrierWidth * dw.BarrierWidth
		gauss := dw.BarrierHeight * (g*g/s2 - 1) / s2 * math.Exp(-g*g/(2*s2))
		if math.Abs(curv-gauss-dw.WellK) > 0.1 {
			Te.Errorf("well at %4.2f is not harmonic with the configured constant: curvature %f", a, curv-gauss)
		}
	}
}

func TestHillsAndSurface(Te *testing.T) {
	var hills Hills
	hills.Add(2.0, 1.0, 0.1, 100)
	if hills.Energy(2.0) != 1.0 {
		Te.Errorf("bias at the hill center should equal the height, got %f", hills.Energy(2.0))
	}
	if hills.Energy(3.0) > 1e-6 {
		Te.Errorf("bias far from the hill should be negligible, got %f", hills.Energy(3.0))
	}
	h := 1e-6
	for _, x := range []float64{1.8, 2.0, 2.2} {
		num := (hills.Energy(x+h) - hills.Energy(x-h)) / (2 * h)
		if math.Abs(num-hills.Gradient(x)) > 1e-4 {
			Te.Errorf("bias gradient mismatch at %4.2f", x)
		}
	}
	s := NewSurface(hills, 1.0, 3.0, 201)
	if s.Len() != 201 || s.NHills != 1 {
		Te.Fatalf("wrong surface dimensions: %d points, %d hills", s.Len(), s.NHills)
	}
	//the free-energy estimate is the negative of the bias: lowest at
	//the hill center.
	mini := 0
	for i := range s.Energy {
		if s.Energy[i] < s.Energy[mini] {
			mini = i
		}
	}
	if math.Abs(s.X[mini]-2.0) > 0.02 {
		Te.Errorf("surface minimum at %f, expected the hill center", s.X[mini])
	}
	if math.Abs(s.Energy[mini]+1.0) > 1e-6 {
		Te.Errorf("surface minimum should be minus the hill height, got %f", s.Energy[mini])
	}
}

func TestResultsIO(Te *testing.T) {
	cv, err := ParseColVar("distance 1 2")
	if err != nil {
		Te.Fatal(err)
	}
	p := Params{HillSigma: 0.05, HillHeight: 0.1, HillStride: 100, Temperature: 300, Duration: 2}
	traj, surf, err := Sample(nil, cv, p, rand.NewSource(3))
	if err != nil {
		Te.Fatal(err)
	}
	res := NewResults(cv, p, traj, surf)
	name := filepath.Join(Te.TempDir(), "results.json")
	if err := res.Write(name); err != nil {
		Te.Fatal(err)
	}
	res2, err := ReadResults(name)
	if err != nil {
		Te.Fatal(err)
	}
	if res2.Meta.ColVar != "distance 1 2" || res2.Meta.Steps != res.Meta.Steps || res2.Meta.NHills != res.Meta.NHills {
		Te.Errorf("run summary didn't survive the round trip: %+v", res2.Meta)
	}
	if res2.Surface.Len() != surf.Len() {
		Te.Errorf("surface didn't survive the round trip: %d points", res2.Surface.Len())
	}
	if _, err := ReadResults(filepath.Join(Te.TempDir(), "nope.json")); err == nil {
		Te.Error("reading a missing results file should fail")
	}
}
