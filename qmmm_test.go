/*
 * qmmm_test.go, part of goqmmm.
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

package qmmm

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//a linear chain of n carbons, one Angstrom apart along x.
func chain(n int) *Molecule {
	atoms := make([]*Atom, n)
	coords := make([]float64, n*3)
	for i := 0; i < n; i++ {
		atoms[i] = &Atom{Name: "C", ID: i + 1, Symbol: "C", Mass: 12.01}
		coords[i*3] = float64(i)
	}
	mol, err := NewMoleculeFromSlice(atoms, coords)
	if err != nil {
		panic(err.Error())
	}
	return mol
}

func TestPartition(Te *testing.T) {
	mol := chain(500)
	rc, err := Partition(mol, []int{10, 11, 12}, 15, "gfn2", "amber")
	if err != nil {
		Te.Fatal(err)
	}
	if rc.Structure.Atoms != 500 {
		Te.Errorf("wrong total: %d", rc.Structure.Atoms)
	}
	if rc.Structure.ReactiveAtoms+rc.Structure.BulkAtoms != 500 {
		Te.Errorf("regions don't partition the structure: %d + %d", rc.Structure.ReactiveAtoms, rc.Structure.BulkAtoms)
	}
	if rc.Structure.ReactiveAtoms <= 3 || rc.Structure.ReactiveAtoms >= 500 {
		Te.Errorf("reactive region should be bigger than the seed and smaller than the structure, got %d atoms", rc.Structure.ReactiveAtoms)
	}
	seen := make(map[int]bool, 500)
	for _, v := range rc.QM.Atoms {
		seen[v] = true
	}
	for _, v := range rc.MM.Atoms {
		if seen[v] {
			Te.Errorf("atom %d is in both regions", v)
		}
		seen[v] = true
	}
	for i := 1; i <= 500; i++ {
		if !seen[i] {
			Te.Errorf("atom %d is in neither region", i)
		}
	}
	if len(rc.Equil) != 3 {
		Te.Errorf("expected 3 equilibration stages, got %d", len(rc.Equil))
	}
	fmt.Println("partition:", rc.Structure.ReactiveAtoms, "reactive,", rc.Structure.BulkAtoms, "bulk")
}

//naming an atom reactive puts it in the reactive region no matter
//where it sits.
func TestPartitionExplicitOverride(Te *testing.T) {
	mol := chain(500)
	rc, err := Partition(mol, []int{10, 11, 12, 400}, 15, "gfn2", "amber")
	if err != nil {
		Te.Fatal(err)
	}
	found := false
	for _, v := range rc.QM.Atoms {
		if v == 400 {
			found = true
			break
		}
	}
	if !found {
		Te.Error("explicitly reactive atom 400 missing from the reactive region")
	}
}

func TestPartitionBadInput(Te *testing.T) {
	mol := chain(20)
	if _, err := Partition(nil, []int{1}, 10, "gfn2", "amber"); err == nil {
		Te.Error("nil structure should fail")
	}
	if _, err := Partition(mol, []int{1}, -1, "gfn2", "amber"); err == nil {
		Te.Error("negative buffer should fail")
	}
	if _, err := Partition(mol, nil, 10, "gfn2", "amber"); err == nil {
		Te.Error("empty reactive set should fail")
	}
	if _, err := Partition(mol, []int{21}, 10, "gfn2", "amber"); err == nil {
		Te.Error("out-of-range reactive atom should fail")
	}
}

//unknown method and model names are replaced by the defaults, with a
//non-fatal error, but the configuration is still usable.
func TestPartitionFallback(Te *testing.T) {
	mol := chain(20)
	rc, err := Partition(mol, []int{10}, 5, "notamethod", "amber")
	if err == nil {
		Te.Error("expected a non-fatal error for the unknown method")
	}
	if rc == nil {
		Te.Fatal("the fallback should still produce a configuration")
	}
	if rc.QM.Method != "gfn2" {
		Te.Errorf("expected the default method, got %s", rc.QM.Method)
	}
	rc, err = Partition(mol, []int{10}, 5, "gfn2", "notamodel")
	if err == nil || rc == nil {
		Te.Fatal("expected a non-fatal error and a valid configuration for the unknown model")
	}
	if rc.MM.ForceField != "amber14sb" {
		Te.Errorf("expected the default force field, got %s", rc.MM.ForceField)
	}
	//when both names are unknown the warning has to mention both, not
	//just the last one checked.
	rc, err = Partition(mol, []int{10}, 5, "notamethod", "notamodel")
	if err == nil || rc == nil {
		Te.Fatal("expected a non-fatal error and a valid configuration when both names are unknown")
	}
	if !strings.Contains(err.Error(), "notamethod") || !strings.Contains(err.Error(), "notamodel") {
		Te.Errorf("the fallback warning should report both unknown names, got %q", err.Error())
	}
	if rc.QM.Method != "gfn2" || rc.MM.ForceField != "amber14sb" {
		Te.Errorf("expected both defaults, got %s and %s", rc.QM.Method, rc.MM.ForceField)
	}
}

func TestRegionConfigIO(Te *testing.T) {
	mol := chain(100)
	rc, err := Partition(mol, []int{50}, 10, "b3lyp", "charmm")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "conf.json")
	if err := rc.Write(name); err != nil {
		Te.Fatal(err)
	}
	rc2, err := ReadRegionConfig(name)
	if err != nil {
		Te.Fatal(err)
	}
	if rc2.QM.Method != "b3-lyp" || rc2.MM.ForceField != "charmm36" {
		Te.Errorf("method/model didn't survive the round trip: %s %s", rc2.QM.Method, rc2.MM.ForceField)
	}
	if len(rc2.QM.Atoms) != len(rc.QM.Atoms) || rc2.Structure.Atoms != 100 {
		Te.Error("regions didn't survive the round trip")
	}
}

func TestXYZReadWrite(Te *testing.T) {
	mol := chain(5)
	mol.Atom(0).Symbol = "O"
	mol.Atom(0).Name = "O"
	name := filepath.Join(Te.TempDir(), "chain.xyz")
	if err := XYZWrite(name, mol); err != nil {
		Te.Fatal(err)
	}
	mol2, err := XYZRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() {
		Te.Fatalf("expected %d atoms, got %d", mol.Len(), mol2.Len())
	}
	for i := 0; i < mol.Len(); i++ {
		if mol2.Atom(i).Symbol != mol.Atom(i).Symbol {
			Te.Errorf("atom %d changed element: %s", i, mol2.Atom(i).Symbol)
		}
		c1 := mol.Coord(i)
		c2 := mol2.Coord(i)
		for j := 0; j < 3; j++ {
			if math.Abs(c1[j]-c2[j]) > 1e-6 {
				Te.Errorf("atom %d coordinate %d changed: %f vs %f", i, j, c1[j], c2[j])
			}
		}
	}
	m, ok := SymbolMass("O")
	if !ok {
		Te.Fatal("oxygen missing from the mass table")
	}
	if mol2.Atom(0).Mass != m {
		Te.Errorf("oxygen mass not assigned on read: %f", mol2.Atom(0).Mass)
	}
	masses, err := mol2.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	if len(masses) != mol2.Len() || masses[0] != m {
		Te.Errorf("wrong masses: %v", masses)
	}
	//an element outside the table reads with zero mass, and Masses
	//refuses to hand out the incomplete slice.
	mol2.Atom(1).Symbol = "Xx"
	mol2.Atom(1).Mass = 0
	if _, err := mol2.Masses(); err == nil {
		Te.Error("Masses should fail on an unassigned mass")
	}
	if _, ok := SymbolMass("Xx"); ok {
		Te.Error("Xx should not be in the mass table")
	}
}

func TestReactiveAtomsFromFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "atoms.txt")
	if err := os.WriteFile(name, []byte("10\n11\n\n12 13\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	atoms, err := ReactiveAtomsFromFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(atoms) != 4 || atoms[0] != 10 || atoms[3] != 13 {
		Te.Errorf("wrong atoms read: %v", atoms)
	}
	empty := filepath.Join(Te.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("\n  \n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReactiveAtomsFromFile(empty); err == nil {
		Te.Error("a file with no indexes should fail")
	}
}
