/*
 * results.go, part of goqmmm.
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
	"encoding/json"
	"fmt"
	"os"
)

//RunInfo summarizes the conditions of a finished metadynamics run.
type RunInfo struct {
	ColVar      string  `json:"collective_variable"`
	HillSigma   float64 `json:"hill_sigma"`
	HillHeight  float64 `json:"hill_height"`
	HillStride  int     `json:"hill_stride"`
	Temperature float64 `json:"temperature_k"`
	Duration    float64 `json:"duration_ps"`
	Steps       int     `json:"steps"`
	NHills      int     `json:"hills"`
}

//Results is the persisted artifact of a metadynamics run: the run
//summary and the reconstructed free-energy surface. The field names
//are stable across versions, the analysis stage depends on them.
type Results struct {
	Meta    RunInfo  `json:"metadynamics"`
	Surface *Surface `json:"free_energy"`
}

//NewResults builds the persistable artifact for a finished run.
func NewResults(cv *ColVar, p Params, traj Trajectory, surf *Surface) *Results {
	r := new(Results)
	r.Meta = RunInfo{
		ColVar:      cv.String(),
		HillSigma:   p.HillSigma,
		HillHeight:  p.HillHeight,
		HillStride:  p.HillStride,
		Temperature: p.Temperature,
		Duration:    p.Duration,
		Steps:       traj.Len() - 1,
		NHills:      surf.NHills,
	}
	r.Surface = surf
	return r
}

//Write serializes the results as JSON to the file name given.
func (R *Results) Write(name string) error {
	out, err := os.Create(name)
	if err != nil {
		return Error{fmt.Sprintf("unable to create results file %s: %s", name, err.Error()), []string{"Results.Write"}, true}
	}
	defer out.Close()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(R); err != nil {
		return Error{fmt.Sprintf("can't serialize results: %s", err.Error()), []string{"Results.Write"}, true}
	}
	return nil
}

//ReadResults recovers a Results document written by Write.
func ReadResults(name string) (*Results, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{fmt.Sprintf("unable to open results file %s: %s", name, err.Error()), []string{"ReadResults"}, true}
	}
	defer f.Close()
	r := new(Results)
	if err := json.NewDecoder(f).Decode(r); err != nil {
		return nil, Error{fmt.Sprintf("can't parse results file %s: %s", name, err.Error()), []string{"ReadResults"}, true}
	}
	if r.Surface == nil || r.Surface.Len() == 0 {
		return nil, Error{fmt.Sprintf("results file %s has no free-energy surface", name), []string{"ReadResults"}, true}
	}
	return r, nil
}
