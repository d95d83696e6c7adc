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

//qmkin analyzes the free-energy surface of a metadynamics run: it
//locates the barriers, derives transition-state kinetics at the
//requested temperature and writes a mechanistic report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	qmmm "github.com/rmera/goqmmm"
	"github.com/rmera/goqmmm/kin"
	"github.com/rmera/goqmmm/meta"
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
//and aborts with a non-zero status. Indeterminate analyses are flagged
//as such in the payload.
func CErr(err error, stage string) {
	if err == nil {
		return
	}
	payload, _ := json.Marshal(struct {
		Stage         string `json:"stage"`
		Error         string `json:"error"`
		Indeterminate bool   `json:"indeterminate,omitempty"`
	}{stage, err.Error(), kin.IsIndeterminate(err)})
	fmt.Fprintln(os.Stderr, string(payload))
	os.Exit(1)
}

func main() {
	conf := flag.String("conf", "", "region-configuration file, for the composition section of the report")
	temp := flag.Float64("temp", 300.0, "temperature for the kinetics, in K")
	out := flag.String("o", "qmkin.json", "name for the analysis file written")
	jsonout := flag.Bool("json", false, "print the analysis as JSON to stdout instead of the text report")
	verbose := flag.Int("verbose", 0, "level of verbosity, the higher, the more verbose")
	flag.Parse()
	verb = *verbose
	args := flag.Args()
	if len(args) < 1 {
		CErr(fmt.Errorf("use: qmkin [FLAGS] results.json"), "analysis")
	}
	res, err := meta.ReadResults(args[0])
	CErr(err, "analysis")
	LogV(1, "surface read:", args[0], res.Surface.Len(), "points,", res.Surface.NHills, "hills")
	var rc *qmmm.RegionConfig
	if *conf != "" {
		rc, err = qmmm.ReadRegionConfig(*conf)
		CErr(err, "analysis")
	}
	b, err := kin.Barriers(res.Surface)
	CErr(err, "analysis")
	k, err := kin.Rates(b, *temp)
	CErr(err, "analysis")
	report := kin.Interpret(rc, b, k)
	doc := struct {
		Barriers *kin.BarrierAnalysis `json:"barriers"`
		Kinetics *kin.Kinetics        `json:"kinetics"`
		Report   *kin.Report          `json:"interpretation"`
	}{b, k, report}
	f, err := os.Create(*out)
	CErr(err, "analysis")
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(doc)
	f.Close()
	CErr(err, "analysis")
	if *jsonout {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		CErr(enc.Encode(doc), "analysis")
	} else {
		fmt.Println(report.String())
		fmt.Printf("Analysis written to %s\n", *out)
	}
}
