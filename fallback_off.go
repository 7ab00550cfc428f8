// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build acell_nofallback

package acell

// FallbackEnabled is false when built with the acell_nofallback tag.
// New panics for any type the classifier rejects instead of degrading
// to the spinlock fallback.
const FallbackEnabled = false
