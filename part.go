/*
 * part.go, part of goqmmm.
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

package qmmm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

//StructureInfo is a summary of the partitioned structure.
type StructureInfo struct {
	Path            string  `json:"path,omitempty"`
	Atoms           int     `json:"atoms"`
	ReactiveAtoms   int     `json:"reactive_atoms"`
	BulkAtoms       int     `json:"bulk_atoms"`
	ReactivePercent float64 `json:"reactive_percent"`
}

//QMSetup describes the treatment of the reactive region.
type QMSetup struct {
	Method string `json:"method"`
	Charge int    `json:"charge"`
	Multi  int    `json:"multiplicity"`
	Atoms  []int  `json:"atoms"` //1-based indexes into the structure
}

//MMSetup describes the treatment of the bulk region.
type MMSetup struct {
	ForceField string `json:"force_field"`
	Atoms      []int  `json:"atoms"` //1-based indexes into the structure
}

//Boundary describes the treatment of the QM/MM interface.
type Boundary struct {
	Buffer    float64 `json:"buffer_distance"`
	Capping   string  `json:"capping"`
	Embedding string  `json:"embedding"`
	Cutoff    float64 `json:"cutoff"`
}

//EquilStage is one stage of the equilibration protocol. It is
//descriptive metadata for downstream tooling, nothing in this library
//executes it.
type EquilStage struct {
	Name        string  `json:"name"`
	Duration    float64 `json:"duration_ps"`
	Ensemble    string  `json:"ensemble"`
	Temperature float64 `json:"temperature_k"`
	Pressure    float64 `json:"pressure_bar,omitempty"`
}

//RegionConfig is the declarative description of how each region of the
//partitioned system is to be treated. It is created once by Partition
//and consumed read-only by the downstream stages.
type RegionConfig struct {
	Structure StructureInfo `json:"structure"`
	QM        *QMSetup      `json:"qm_setup"`
	MM        *MMSetup      `json:"mm_setup"`
	Boundary  *Boundary     `json:"interface"`
	Equil     []*EquilStage `json:"equilibration_protocol"`
}

//The names under which we know the supported QM methods. As in the
//rest of the library, the defaults are NOT part of the API and can
//change between versions.
var qmMethods = map[string]string{
	"gfn2":     "gfn2",
	"GFN2":     "gfn2",
	"gfnff":    "gfnff",
	"gfn0":     "gfn0",
	"HF":       "hf",
	"hf":       "hf",
	"b3lyp":    "b3-lyp",
	"B3LYP":    "b3-lyp",
	"b3-lyp":   "b3-lyp",
	"BLYP":     "blyp",
	"blyp":     "blyp",
	"PBE0":     "pbe0",
	"pbe0":     "pbe0",
	"BP86":     "bp86",
	"bp86":     "bp86",
	"revpbe":   "revPBE-d",
	"revPBE":   "revPBE-d",
	"tpss":     "tpss",
	"TPSS":     "tpss",
	"r2scan3c": "r2scan-3c",
}

var mmModels = map[string]string{
	"amber":      "amber14sb",
	"amber14sb":  "amber14sb",
	"amber99sb":  "amber99sb",
	"charmm":     "charmm36",
	"charmm36":   "charmm36",
	"gaff":       "gaff2",
	"gaff2":      "gaff2",
	"uff":        "uff",
	"UFF":        "uff",
	"opls":       "opls-aa",
	"opls-aa":    "opls-aa",
	"gromos54a7": "gromos54a7",
}

const (
	defQMMethod = "gfn2"
	defMMModel  = "amber14sb"
	defCapping  = "hydrogen-link"
	defEmbed    = "electrostatic"
	defCutoff   = 12.0 //Angstrom, for the QM/MM nonbonded interactions
)

//equilProtocol returns the fixed three-stage equilibration template
//attached to every RegionConfig: the reactive region is relaxed first
//at low temperature with the bulk restrained, then the coupled system
//is heated, then the full system is equilibrated with pressure
//coupling.
func equilProtocol() []*EquilStage {
	return []*EquilStage{
		{Name: "reactive-relaxation", Duration: 10, Ensemble: "NVT", Temperature: 150},
		{Name: "coupled-heating", Duration: 50, Ensemble: "NVT", Temperature: 300},
		{Name: "full-equilibration", Duration: 100, Ensemble: "NPT", Temperature: 300, Pressure: 1.0},
	}
}

//ReactiveAtomsFromFile reads a reactive-atom specification file, with
//one 1-based atom index per line (blank lines are skipped), and
//returns the indexes. It returns an error if the file can't be read or
//if no valid index is found in it.
func ReactiveAtomsFromFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{fmt.Sprintf("unable to open reactive-atom file %s: %s", path, err.Error()), []string{"ReactiveAtomsFromFile"}}
	}
	defer f.Close()
	var atoms []int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		for _, tok := range strings.Fields(scanner.Text()) {
			i, err := strconv.Atoi(tok)
			if err != nil || i < 1 {
				continue //tokens that are not positive integers are just skipped
			}
			atoms = append(atoms, i)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{fmt.Sprintf("error reading reactive-atom file %s: %s", path, err.Error()), []string{"ReactiveAtomsFromFile"}}
	}
	if len(atoms) == 0 {
		return nil, CError{"no valid reactive atoms specified", []string{"ReactiveAtomsFromFile"}}
	}
	return atoms, nil
}

//Partition splits mol into a reactive region and a bulk region. The
//reactive region contains every atom within buffer (Angstrom) of the
//centroid of the atoms in reactive (1-based indexes), plus the atoms
//in reactive themselves, wherever they are: naming an atom reactive is
//an override, not a suggestion. The bulk region is the complement.
//qmMethod and mmModel are normalized against the internal tables;
//unknown names fall back to the defaults, which is reported in the
//(non-fatal) error returned together with a valid RegionConfig.
func Partition(mol *Molecule, reactive []int, buffer float64, qmMethod, mmModel string) (*RegionConfig, error) {
	var nonfatal error
	if mol == nil || mol.Len() == 0 {
		return nil, CError{"nil or empty structure given", []string{"Partition"}}
	}
	if buffer <= 0 {
		return nil, CError{fmt.Sprintf("buffer distance must be positive, got %4.2f", buffer), []string{"Partition"}}
	}
	if len(reactive) == 0 {
		return nil, CError{"no valid reactive atoms specified", []string{"Partition"}}
	}
	explicit := make(map[int]bool, len(reactive))
	for _, v := range reactive {
		if v < 1 || v > mol.Len() {
			return nil, CError{fmt.Sprintf("reactive atom %d out of range (structure has %d atoms)", v, mol.Len()), []string{"Partition"}}
		}
		explicit[v-1] = true
	}
	//the centroid of the explicitly given atoms. Not mass-weighted.
	var cx, cy, cz float64
	for i := range explicit {
		c := mol.Coord(i)
		cx += c[0]
		cy += c[1]
		cz += c[2]
	}
	n := float64(len(explicit))
	cx, cy, cz = cx/n, cy/n, cz/n
	qmatoms := make([]int, 0, len(explicit))
	mmatoms := make([]int, 0, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		c := mol.Coord(i)
		d := math.Sqrt((c[0]-cx)*(c[0]-cx) + (c[1]-cy)*(c[1]-cy) + (c[2]-cz)*(c[2]-cz))
		if d <= buffer || explicit[i] {
			qmatoms = append(qmatoms, i+1)
		} else {
			mmatoms = append(mmatoms, i+1)
		}
	}
	sort.Ints(qmatoms)
	if len(qmatoms) == 0 {
		//can't happen, as the explicit atoms are always included, but the guarantee is cheap to keep.
		return nil, CError{"empty reactive region", []string{"Partition"}}
	}
	var fallbacks []string
	method, ok := qmMethods[qmMethod]
	if !ok {
		fallbacks = append(fallbacks, fmt.Sprintf("unavailable QM method requested: %s, using default: %s", qmMethod, defQMMethod))
		method = defQMMethod
	}
	model, ok := mmModels[mmModel]
	if !ok {
		fallbacks = append(fallbacks, fmt.Sprintf("unavailable MM model requested: %s, using default: %s", mmModel, defMMModel))
		model = defMMModel
	}
	if fallbacks != nil {
		nonfatal = CError{"NonFatal: " + strings.Join(fallbacks, "; "), []string{"Partition"}}
	}
	rc := new(RegionConfig)
	rc.Structure = StructureInfo{
		Atoms:           mol.Len(),
		ReactiveAtoms:   len(qmatoms),
		BulkAtoms:       len(mmatoms),
		ReactivePercent: 100 * float64(len(qmatoms)) / float64(mol.Len()),
	}
	rc.QM = &QMSetup{Method: method, Charge: mol.Charge(), Multi: mol.Multi(), Atoms: qmatoms}
	rc.MM = &MMSetup{ForceField: model, Atoms: mmatoms}
	rc.Boundary = &Boundary{Buffer: buffer, Capping: defCapping, Embedding: defEmbed, Cutoff: defCutoff}
	rc.Equil = equilProtocol()
	return rc, nonfatal
}

//Write serializes the RegionConfig as JSON to the file name given.
func (R *RegionConfig) Write(name string) error {
	out, err := os.Create(name)
	if err != nil {
		return CError{fmt.Sprintf("unable to create configuration file %s: %s", name, err.Error()), []string{"RegionConfig.Write"}}
	}
	defer out.Close()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(R); err != nil {
		return CError{fmt.Sprintf("can't serialize configuration: %s", err.Error()), []string{"RegionConfig.Write"}}
	}
	return nil
}

//ReadRegionConfig recovers a RegionConfig serialized with Write.
func ReadRegionConfig(name string) (*RegionConfig, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{fmt.Sprintf("unable to open configuration file %s: %s", name, err.Error()), []string{"ReadRegionConfig"}}
	}
	defer f.Close()
	rc := new(RegionConfig)
	if err := json.NewDecoder(f).Decode(rc); err != nil {
		return nil, CError{fmt.Sprintf("can't parse configuration file %s: %s", name, err.Error()), []string{"ReadRegionConfig"}}
	}
	if rc.QM == nil || rc.MM == nil || len(rc.QM.Atoms) == 0 {
		return nil, CError{fmt.Sprintf("configuration file %s lacks a reactive region", name), []string{"ReadRegionConfig"}}
	}
	return rc, nil
}
