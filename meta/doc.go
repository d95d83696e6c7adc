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

/*Package meta explores the free-energy landscape of a reaction
coordinate with metadynamics: an overdamped Langevin trajectory is
propagated along a collective variable while Gaussian bias "hills" are
deposited at the visited values, and the free-energy surface is
recovered at the end as the negative of the accumulated bias.

The energy along the coordinate comes from an Evaluator, a one-method
capability that a production deployment satisfies with a real QM/MM
engine. The package ships a synthetic double-well Evaluator which is
used by default, so the sampling machinery can be exercised, and
tested, without any external program.

The integration is inherently sequential: the force at step n depends
on every hill deposited before n, so there is no concurrency in this
package.*/
package meta
