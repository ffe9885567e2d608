// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package threaddata

import "strconv"

// SignificantDigits is the precision of every diameter in the document.
const SignificantDigits = 4

// FormatSignificant renders v with SignificantDigits significant digits,
// trimming trailing zeros and switching to exponent form for very small or
// large magnitudes: 2.99997 → "3", 0.72668 → "0.7267", 123456 → "1.235e+05".
func FormatSignificant(v float64) string {
	return strconv.FormatFloat(v, 'g', SignificantDigits, 64)
}
