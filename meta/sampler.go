/*
 * sampler.go, part of goqmmm.
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

package meta

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	qmmm "github.com/rmera/goqmmm"
)

const (
	//KB is the Boltzmann constant in kcal/(mol K).
	KB = 0.0019872

	//Timestep is the integration timestep, in ps (2 fs).
	Timestep = 0.002

	//Friction is the friction coefficient of the overdamped Langevin
	//integrator, in 1/ps.
	Friction = 5.0
)

//Defaults for the free-energy grid. They cover both default wells of
//the synthetic potential and the barrier between them.
const (
	DefGridPoints = 300
	DefGridMin    = 0.8
	DefGridMax    = 3.8
)

//Trajectory is the ordered sequence of collective-variable values
//visited during a run, one per integration step, plus the initial
//value. Append-only.
type Trajectory []float64

//Len returns the number of values in the trajectory.
func (T Trajectory) Len() int {
	return len(T)
}

//StepWriter receives the per-step record of a run as it is produced.
//The traj subpackage provides a compressed-file implementation.
type StepWriter interface {
	WNext(step int, cv, bias float64) error
}

//Params gathers the parameters for one metadynamics run. HillSigma,
//HillHeight, Temperature and Duration must be positive and HillStride
//at least 1. The zero values of the remaining fields select the
//defaults: the synthetic double well as Evaluator, the default grid,
//and a starting point at the reactant well.
type Params struct {
	HillSigma   float64 //width of the deposited hills, coordinate units
	HillHeight  float64 //kcal/mol per deposition
	HillStride  int     //deposit a hill every this many steps
	Temperature float64 //K
	Duration    float64 //simulated time, ps

	GridPoints int        //number of points of the reconstructed surface
	GridMin    float64    //coordinate range of the surface
	GridMax    float64
	X0         float64    //starting coordinate value
	Pot        Evaluator  //intrinsic potential; nil selects the synthetic double well
	W          StepWriter //optional per-step trajectory sink
}

//check validates the parameters and fills in the defaults.
func (P *Params) check() error {
	if P.HillSigma <= 0 {
		return Error{fmt.Sprintf("hill width must be positive, got %4.2f", P.HillSigma), []string{"Params.check"}, true}
	}
	if P.HillHeight <= 0 {
		return Error{fmt.Sprintf("hill height must be positive, got %4.2f", P.HillHeight), []string{"Params.check"}, true}
	}
	if P.HillStride < 1 {
		return Error{fmt.Sprintf("hill stride must be at least 1, got %d", P.HillStride), []string{"Params.check"}, true}
	}
	if P.Temperature <= 0 {
		return Error{fmt.Sprintf("temperature must be positive, got %4.2f", P.Temperature), []string{"Params.check"}, true}
	}
	if P.Duration <= 0 {
		return Error{fmt.Sprintf("simulation time must be positive, got %4.2f", P.Duration), []string{"Params.check"}, true}
	}
	if P.GridPoints <= 0 {
		P.GridPoints = DefGridPoints
	}
	if P.GridMin == 0 && P.GridMax == 0 {
		P.GridMin = DefGridMin
		P.GridMax = DefGridMax
	}
	if P.GridMax <= P.GridMin {
		return Error{fmt.Sprintf("bad surface range: [%4.2f,%4.2f]", P.GridMin, P.GridMax), []string{"Params.check"}, true}
	}
	if P.Pot == nil {
		P.Pot = NewDoubleWell()
	}
	if P.X0 == 0 {
		if dw, ok := P.Pot.(*DoubleWell); ok {
			P.X0 = dw.ReactantPos
		} else {
			P.X0 = (P.GridMin + P.GridMax) / 2
		}
	}
	return nil
}

//Sample runs metadynamics along the collective variable cv for the
//system described by rc, under the parameters p, and returns the
//trajectory and the reconstructed free-energy surface. rc is used for
//reporting only: the coordinate is driven by the configured Evaluator,
//not by an electronic-structure calculation at every step.
//
//The coordinate follows overdamped Langevin dynamics at p.Temperature:
//each step displaces it by (dt/gamma)*F plus a Gaussian random kick of
//zero mean and sigma sqrt(2*gamma*KB*T*dt), where F is the negative
//gradient of the intrinsic potential plus the accumulated bias. Every
//p.HillStride steps a hill is deposited at the current value, so a run
//of n steps deposits floor(n/stride) hills.
//
//src is the source of the thermal noise. Passing nil uses an
//unspecified seed; pass rand.NewSource(seed) for reproducible runs.
func Sample(rc *qmmm.RegionConfig, cv *ColVar, p Params, src rand.Source) (Trajectory, *Surface, error) {
	if cv == nil {
		return nil, nil, Error{"missing collective variable", []string{"Sample"}, true}
	}
	if err := p.check(); err != nil {
		return nil, nil, errDecorate(err, "Sample")
	}
	steps := int(p.Duration / Timestep)
	traj := make(Trajectory, 1, steps+1)
	traj[0] = p.X0
	hills := make(Hills, 0, steps/p.HillStride)
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	amp := math.Sqrt(2 * Friction * KB * p.Temperature * Timestep)
	mob := Timestep / Friction
	x := p.X0
	for n := 1; n <= steps; n++ {
		force := -(p.Pot.Gradient(x) + hills.Gradient(x))
		x += mob*force + amp*noise.Rand()
		traj = append(traj, x)
		if n%p.HillStride == 0 {
			hills.Add(x, p.HillHeight, p.HillSigma, n)
		}
		if p.W != nil {
			if err := p.W.WNext(n, x, hills.Energy(x)); err != nil {
				return nil, nil, errDecorate(err, "Sample")
			}
		}
	}
	surf := NewSurface(hills.Snapshot(), p.GridMin, p.GridMax, p.GridPoints)
	return traj, surf, nil
}

//Errors

//Error is the error type for the meta package. It fulfills the
//qmmm.Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return fmt.Sprintf("metadynamics error: %s", err.message) }

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

//errDecorate asserts that err implements qmmm.Error, decorates it with
//the caller's name and returns it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(qmmm.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
