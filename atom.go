/*
 * atom.go, part of goqmmm.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Atom contains the per-atom information that is not expected to change
//during a run. Coordinates are kept separately, in a matrix.
type Atom struct {
	Name   string
	ID     int
	Symbol string
	Mass   float64
	Charge float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("goqmmm: attempted to copy a nil atom")
	}
	newat := new(Atom)
	*newat = *A
	return newat
}

//Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice. Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//AtomMultiCharger is an Atomer that also gives a total
//charge and spin multiplicity.
type AtomMultiCharger interface {
	Atomer

	//Charge gets the total charge of the system
	Charge() int

	//Multi returns the spin multiplicity of the system
	Multi() int
}

//Molecule is one atomic structure: a set of atoms plus one frame of
//Cartesian coordinates (a mat.Dense with N rows and 3 columns),
//together with the total charge and spin multiplicity.
type Molecule struct {
	Atoms  []*Atom
	Coords *mat.Dense
	charge int
	multi  int
}

//NewMolecule builds a Molecule from atoms and coordinates. It returns
//an error if either is nil, or if the number of coordinate rows does
//not match the number of atoms.
func NewMolecule(atoms []*Atom, coords *mat.Dense) (*Molecule, error) {
	if atoms == nil {
		return nil, CError{"goqmmm.NewMolecule: nil atoms given", []string{"NewMolecule"}}
	}
	if coords == nil {
		return nil, CError{"goqmmm.NewMolecule: nil coordinates given", []string{"NewMolecule"}}
	}
	r, c := coords.Dims()
	if r != len(atoms) || c != 3 {
		return nil, CError{fmt.Sprintf("goqmmm.NewMolecule: %d atoms but %dx%d coordinates", len(atoms), r, c), []string{"NewMolecule"}}
	}
	mol := new(Molecule)
	mol.Atoms = atoms
	mol.Coords = coords
	mol.multi = 1
	return mol, nil
}

//NewMoleculeFromSlice builds a Molecule from atoms and a flat slice
//of coordinates, in x1,y1,z1,x2... order.
func NewMoleculeFromSlice(atoms []*Atom, coords []float64) (*Molecule, error) {
	if len(coords)%3 != 0 {
		return nil, CError{fmt.Sprintf("goqmmm.NewMoleculeFromSlice: coordinate slice length %d not divisible by 3", len(coords)), []string{"NewMoleculeFromSlice"}}
	}
	return NewMolecule(atoms, mat.NewDense(len(coords)/3, 3, coords))
}

//Atom returns the Atom corresponding to the index i.
//Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("goqmmm.Molecule: requested atom out of bounds")
	}
	return M.Atoms[i]
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Charge gets the total charge of the molecule.
func (M *Molecule) Charge() int {
	return M.charge
}

//Multi gets the spin multiplicity of the molecule.
func (M *Molecule) Multi() int {
	return M.multi
}

//SetCharge sets the total charge of the molecule to i.
func (M *Molecule) SetCharge(i int) {
	M.charge = i
}

//SetMulti sets the spin multiplicity of the molecule to i.
func (M *Molecule) SetMulti(i int) {
	M.multi = i
}

//Coord returns the x, y and z coordinates of the atom i.
//Panics if out of range. The returned slice is a view, not a copy.
func (M *Molecule) Coord(i int) []float64 {
	if i >= M.Len() {
		panic("goqmmm.Molecule: requested coordinate out of bounds")
	}
	return M.Coords.RawRowView(i)
}

//Copy returns a deep copy of the molecule, including coordinates.
func (M *Molecule) Copy() *Molecule {
	mol := new(Molecule)
	mol.Atoms = make([]*Atom, M.Len())
	for key, val := range M.Atoms {
		mol.Atoms[key] = val.Copy()
	}
	mol.Coords = mat.DenseCopyOf(M.Coords)
	mol.charge = M.charge
	mol.multi = M.multi
	return mol
}

//Masses returns a slice with the masses of all atoms, or an error if
//any mass has not been assigned.
func (M *Molecule) Masses() ([]float64, error) {
	masses := make([]float64, M.Len())
	for i := 0; i < M.Len(); i++ {
		at := M.Atom(i)
		if at.Mass <= 0 {
			return nil, CError{fmt.Sprintf("goqmmm: mass not obtained for atom %d (%s)", i, at.Symbol), []string{"Masses"}}
		}
		masses[i] = at.Mass
	}
	return masses, nil
}
