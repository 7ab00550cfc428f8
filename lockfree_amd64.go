// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package acell

import "github.com/klauspost/cpuid/v2"

// CMPXCHG16B is not part of the amd64 baseline; probe for it once.
// Absent the feature (some early 64-bit CPUs), every type takes the
// fallback path.
var hasNativeDWCAS = cpuid.CPU.Supports(cpuid.CX16)
