// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package acell

// No native double-width compare-and-swap on this architecture; every
// type takes the fallback path and IsLockFree reports false.
const hasNativeDWCAS = false
