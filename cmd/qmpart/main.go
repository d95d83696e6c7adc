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

//qmpart partitions an atomic structure into a reactive region and a
//bulk region, and writes the QM/MM region configuration consumed by
//the rest of the pipeline.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	qmmm "github.com/rmera/goqmmm"
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

//parses a comma- or space-separated list of 1-based atom indexes.
func parseAtomList(s string) ([]int, error) {
	var atoms []int
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		i, err := strconv.Atoi(tok)
		if err != nil || i < 1 {
			return nil, fmt.Errorf("bad atom index %q in reactive-atom list", tok)
		}
		atoms = append(atoms, i)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("no valid reactive atoms specified")
	}
	return atoms, nil
}

func main() {
	atoms := flag.String("atoms", "", "comma-separated list of 1-based reactive atom indexes")
	atomsfile := flag.String("atomsfile", "", "file with one reactive atom index per line. Ignored if -atoms is given")
	buffer := flag.Float64("buffer", 15.0, "buffer distance around the reactive-atom centroid, in Angstrom")
	qmmethod := flag.String("qm", "gfn2", "the QM method for the reactive region")
	mmmodel := flag.String("mm", "amber", "the force field for the bulk region")
	charge := flag.Int("charge", 0, "total charge of the reactive region")
	multi := flag.Int("multi", 1, "spin multiplicity of the reactive region")
	out := flag.String("o", "qmpart.json", "name for the region-configuration file written")
	jsonout := flag.Bool("json", false, "print the resulting configuration as JSON to stdout")
	verbose := flag.Int("verbose", 0, "level of verbosity, the higher, the more verbose")
	flag.Parse()
	verb = *verbose
	args := flag.Args()
	if len(args) < 1 {
		CErr(fmt.Errorf("use: qmpart [FLAGS] geometry.xyz"), "partition")
	}
	mol, err := qmmm.XYZRead(args[0])
	CErr(err, "partition")
	mol.SetCharge(*charge)
	mol.SetMulti(*multi)
	LogV(1, "structure read:", args[0], mol.Len(), "atoms")
	var reactive []int
	if *atoms != "" {
		reactive, err = parseAtomList(*atoms)
	} else if *atomsfile != "" {
		reactive, err = qmmm.ReactiveAtomsFromFile(*atomsfile)
	} else {
		err = fmt.Errorf("no valid reactive atoms specified: give -atoms or -atomsfile")
	}
	CErr(err, "partition")
	rc, err := qmmm.Partition(mol, reactive, *buffer, *qmmethod, *mmmodel)
	if err != nil && rc == nil {
		CErr(err, "partition")
	}
	if err != nil {
		LogV(0, err.Error()) //a non-fatal fallback, the configuration is still valid
	}
	rc.Structure.Path = args[0]
	CErr(rc.Write(*out), "partition")
	if *jsonout {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		CErr(enc.Encode(rc), "partition")
	} else {
		fmt.Printf("Partitioned %d atoms: %d reactive (%4.1f%%), %d bulk. Configuration written to %s\n",
			rc.Structure.Atoms, rc.Structure.ReactiveAtoms, rc.Structure.ReactivePercent,
			rc.Structure.BulkAtoms, *out)
	}
}
