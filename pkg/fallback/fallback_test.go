// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/fallback"
)

type block struct {
	Title string
	Body  string
}

func TestResolve_PrefersFetched(t *testing.T) {
	fetched := &block{Title: "Our Vision", Body: "Admin-entered copy"}
	def := block{Title: "Vision", Body: "Default copy"}

	resolved := fallback.Resolve(fetched, def)
	assert.Equal(t, "Our Vision", resolved.Title)
	assert.Equal(t, "Admin-entered copy", resolved.Body)
}

func TestResolve_SubstitutesDefault(t *testing.T) {
	def := block{Title: "Vision", Body: "Default copy"}

	resolved := fallback.Resolve(nil, def)
	assert.Equal(t, def, resolved)
}

func TestResolve_ZeroValueFetchedIsStillFetched(t *testing.T) {
	// An admin may intentionally publish an empty block. Empty is not absent.
	resolved := fallback.Resolve(&block{}, block{Title: "Vision"})
	assert.Equal(t, block{}, resolved)
}
