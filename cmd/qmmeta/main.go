/*
 * main.go, part of goqmmm.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation; either version 2 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 */

/*To the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche*/

//qmmeta runs biased sampling along a collective variable for a
//previously partitioned system, and writes the run summary and the
//reconstructed free-energy surface.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	qmmm "github.com/rmera/goqmmm"
	"github.com/rmera/goqmmm/meta"
	"github.com/rmera/goqmmm/traj"
	"golang.org/x/exp/rand"
)

var verb int

//If v is at least vref, prints the d arguments to stderr
//otherwise, does nothing.
func LogV(vref int, d ...interface{}) {
	if verb >= vref {
		fmt.Fprintln(os.Stderr, d...)
	}
}

//CErr, on a non-nil error, writes a structured error payload to stderr
//and aborts with a non-zero status.
func CErr(err error, stage string) {
	if err == nil {
		return
	}
	payload, _ := json.Marshal(struct {
		Stage string `json:"stage"`
		Error string `json:"error"`
	}{stage, err.Error()})
	fmt.Fprintln(os.Stderr, string(payload))
	os.Exit(1)
}

func main() {
	cvspec := flag.String("cv", "", "the collective variable, e.g. \"distance 5 12\"")
	sigma := flag.Float64("sigma", 0.05, "width of the deposited hills, in coordinate units")
	height := flag.Float64("height", 0.1, "height of the deposited hills, in kcal/mol")
	stride := flag.Int("stride", 100, "deposit a hill every this many steps")
	temp := flag.Float64("temp", 300.0, "temperature, in K")
	time := flag.Float64("time", 10.0, "simulated time, in ps")
	seed := flag.Uint64("seed", 0, "seed for the thermal noise. 0 means a non-reproducible run")
	grid := flag.Int("grid", meta.DefGridPoints, "points of the reconstructed free-energy surface")
	gridmin := flag.Float64("min", meta.DefGridMin, "lower end of the surface range")
	gridmax := flag.Float64("max", meta.DefGridMax, "upper end of the surface range")
	trajname := flag.String("traj", "", "if given, write the per-step trajectory to this file (.cvs recommended)")
	out := flag.String("o", "qmmeta.json", "name for the results file written")
	jsonout := flag.Bool("json", false, "print the results as JSON to stdout")
	verbose := flag.Int("verbose", 0, "level of verbosity, the higher, the more verbose")
	flag.Parse()
	verb = *verbose
	args := flag.Args()
	if len(args) < 1 {
		CErr(fmt.Errorf("use: qmmeta [FLAGS] regionconfig.json"), "sampling")
	}
	rc, err := qmmm.ReadRegionConfig(args[0])
	CErr(err, "sampling")
	if *cvspec == "" {
		CErr(fmt.Errorf("no collective variable given, use -cv"), "sampling")
	}
	cv, err := meta.ParseColVar(*cvspec)
	CErr(err, "sampling")
	//every atom the coordinate depends on has to be in the reactive region.
	reactive := make(map[int]bool, len(rc.QM.Atoms))
	for _, v := range rc.QM.Atoms {
		reactive[v] = true
	}
	for _, v := range cv.Atoms() {
		if !reactive[v] {
			CErr(fmt.Errorf("collective-variable atom %d is not in the reactive region", v), "sampling")
		}
	}
	p := meta.Params{
		HillSigma:   *sigma,
		HillHeight:  *height,
		HillStride:  *stride,
		Temperature: *temp,
		Duration:    *time,
		GridPoints:  *grid,
		GridMin:     *gridmin,
		GridMax:     *gridmax,
	}
	if *trajname != "" {
		w, err := traj.NewWriter(*trajname, map[string]string{"cv": cv.String(), "temperature": fmt.Sprintf("%4.2f", *temp)})
		CErr(err, "sampling")
		defer w.Close()
		p.W = w
	}
	var src rand.Source
	if *seed != 0 {
		src = rand.NewSource(*seed)
	}
	LogV(1, "sampling", cv.String(), "for", *time, "ps at", *temp, "K")
	t, surf, err := meta.Sample(rc, cv, p, src)
	CErr(err, "sampling")
	res := meta.NewResults(cv, p, t, surf)
	CErr(res.Write(*out), "sampling")
	if *jsonout {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		CErr(enc.Encode(res), "sampling")
	} else {
		fmt.Printf("Sampled %d steps, deposited %d hills. Free-energy surface (%d points) written to %s\n",
			res.Meta.Steps, res.Meta.NHills, surf.Len(), *out)
	}
}
