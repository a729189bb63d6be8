// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

// Package fallback provides two-tier content resolution for public pages.
//
// # Policy
//
// Several public site sections (vision/mission blocks, SEO metadata) must
// render useful defaults before an admin has entered any content. Absence of
// a row is a presentation concern for visitors, never an error, so public
// handlers resolve fetched-or-nil against a statically defined default.
package fallback

// Resolve returns the fetched value when present, otherwise the fallback.
func Resolve[T any](fetched *T, fallback T) T {
	if fetched == nil {
		return fallback
	}
	return *fetched
}
