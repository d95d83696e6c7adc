/*
 * doc.go, part of goqmmm.
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

/*Package qmmm implements the setup stage of a hybrid reactive-region
simulation: it reads an atomic structure, partitions it into a reactive
subregion, to be treated with a high-level (QM) method, and a bulk
region, to be treated with a classical force field, and produces a
declarative configuration for the whole system, including a staged
equilibration protocol.


	**goqmmm Capabilities**

    Reads/writes XYZ files.

    Partitions a structure into reactive and bulk regions from a list
	of reactive atoms and a buffer distance around their centroid.
	Atoms named explicitly as reactive are always kept in the reactive
	region, even if they lie outside the buffer.

    Produces, serializes and recovers QM/MM region configurations,
	including boundary treatment and an equilibration protocol.

    The subpackage meta runs metadynamics along a collective variable,
	on a synthetic or injected potential, and reconstructs the
	free-energy surface from the deposited bias.

    The subpackage traj writes and reads the collective-variable
	trajectory produced during sampling, as a compressed text file.

    The subpackage kin locates minima and the transition state on a
	free-energy surface, and obtains transition-state-theory kinetics
	and a qualitative mechanistic interpretation from the barriers.

Coordinates are kept in gonum mat.Dense matrices of N rows and 3
columns, where each row is one point in space.*/
package qmmm
