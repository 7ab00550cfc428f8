// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package acell

// LDXP/STLXP pair loads and stores are in the base ARMv8 ISA, so
// double-width atomics need no runtime probe here.
const hasNativeDWCAS = true
