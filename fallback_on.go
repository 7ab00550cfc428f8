// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !acell_nofallback

package acell

// FallbackEnabled is true when the spinlock fallback path is compiled
// in. Types the classifier rejects are then served by the fallback
// automatically. Build with the acell_nofallback tag to disable it.
const FallbackEnabled = true
