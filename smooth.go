/* Copyright (C) 2022 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package rnamaps

/* -------------------------------------------------------------------------- */

//import "fmt"

/* -------------------------------------------------------------------------- */

// Box average smoothing with the given half window. At the boundaries the
// average is taken over the available positions only.
func Smooth(values []float64, halfWindow int) []float64 {
  result := make([]float64, len(values))

  for i := 0; i < len(values); i++ {
    sum := 0.0
    n   := 0
    for j := iMax(0, i-halfWindow); j <= iMin(len(values)-1, i+halfWindow); j++ {
      sum += values[j]
      n   += 1
    }
    result[i] = sum/float64(n)
  }
  return result
}
