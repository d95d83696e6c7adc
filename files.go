/*
 * files.go, part of goqmmm.
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
	"fmt"
	"os"
	"strconv"
	"strings"
)

//XYZRead reads an XYZ file, returning a Molecule with the elements,
//masses (when the element is in the internal table) and coordinates
//read, or an error.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, CError{fmt.Sprintf("unable to open structure file %s: %s", xyzname, err.Error()), []string{"XYZRead"}}
	}
	defer xyzfile.Close()
	xyz := bufio.NewReader(xyzfile)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, CError{fmt.Sprintf("ill-formatted XYZ file %s: %s", xyzname, err.Error()), []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, CError{fmt.Sprintf("ill-formatted XYZ file %s: bad atom count", xyzname), []string{"XYZRead"}}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	_, err = xyz.ReadString('\n') //the comment line, we don't care about it
	if err != nil {
		return nil, CError{fmt.Sprintf("ill-formatted XYZ file %s: truncated", xyzname), []string{"XYZRead"}}
	}
	errs := make([]error, 3)
	for i := 0; i < natoms; i++ {
		line, errs[0] = xyz.ReadString('\n')
		if errs[0] != nil && !(errs[0].Error() == "EOF" && i == natoms-1) {
			return nil, CError{fmt.Sprintf("line %d in file %s missing", i, xyzname), []string{"XYZRead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, CError{fmt.Sprintf("line %d in file %s ill-formed", i, xyzname), []string{"XYZRead"}}
		}
		atoms[i] = new(Atom)
		atoms[i].Symbol = fields[0]
		atoms[i].Name = fields[0]
		atoms[i].ID = i + 1
		atoms[i].Mass = symbolMass[atoms[i].Symbol]
		coords[i*3], errs[0] = strconv.ParseFloat(fields[1], 64)
		coords[i*3+1], errs[1] = strconv.ParseFloat(fields[2], 64)
		coords[i*3+2], errs[2] = strconv.ParseFloat(fields[3], 64)
		for _, v := range errs {
			if v != nil {
				return nil, CError{fmt.Sprintf("bad coordinates in line %d of file %s: %s", i, xyzname, v.Error()), []string{"XYZRead"}}
			}
		}
	}
	mol, err := NewMoleculeFromSlice(atoms, coords)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

//XYZWrite writes the molecule mol to an XYZ file with name xyzname,
//which will be created. If the file exists it will be overwritten.
func XYZWrite(xyzname string, mol *Molecule) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{fmt.Sprintf("unable to create file %s: %s", xyzname, err.Error()), []string{"XYZWrite"}}
	}
	defer out.Close()
	fmt.Fprintf(out, "%-4d\n", mol.Len())
	fmt.Fprintf(out, "\n")
	for i := 0; i < mol.Len(); i++ {
		c := mol.Coord(i)
		_, err = fmt.Fprintf(out, "%-2s  %12.6f %12.6f %12.6f\n", mol.Atom(i).Symbol, c[0], c[1], c[2])
		if err != nil {
			return CError{fmt.Sprintf("can't write line %d of file %s: %s", i, xyzname, err.Error()), []string{"XYZWrite"}}
		}
	}
	return nil
}
