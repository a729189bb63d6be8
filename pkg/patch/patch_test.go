// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package patch_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/pointer"
)

type articlePatch struct {
	Title      patch.Field[string] `json:"title"`
	Excerpt    patch.Field[string] `json:"excerpt"`
	CoverImage patch.Field[string] `json:"cover_image"`
	Published  patch.Field[bool]   `json:"published"`
}

/*
TestField_PresenceTracking verifies the three decode states: absent,
explicit null, and value.
*/
func TestField_PresenceTracking(t *testing.T) {
	var p articlePatch
	body := `{"title": "Hello", "cover_image": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	// Carried with a value
	assert.True(t, p.Title.Present())
	assert.False(t, p.Title.Null())
	v, ok := p.Title.Value()
	assert.True(t, ok)
	assert.Equal(t, "Hello", v)

	// Carried as explicit null
	assert.True(t, p.CoverImage.Present())
	assert.True(t, p.CoverImage.Null())
	_, ok = p.CoverImage.Value()
	assert.False(t, ok)

	// Omitted entirely
	assert.False(t, p.Excerpt.Present())
	assert.False(t, p.Published.Present())
}

/*
TestField_Or applies the "omitted means unchanged" rule for scalar columns.
*/
func TestField_Or(t *testing.T) {
	var p articlePatch
	require.NoError(t, json.Unmarshal([]byte(`{"published": false}`), &p))

	// Present false must win over current true — zero values are real values.
	assert.False(t, p.Published.Or(true))

	// Absent title keeps the current one.
	assert.Equal(t, "Old title", p.Title.Or("Old title"))
}

/*
TestField_Apply resolves pointer-typed (nullable) columns.
*/
func TestField_Apply(t *testing.T) {
	current := pointer.To("https://cdn.aticomgroup.com/old.jpg")

	// Absent keeps the current pointer.
	assert.Equal(t, current, patch.Field[string]{}.Apply(current))

	// Explicit null clears.
	assert.Nil(t, patch.Null[string]().Apply(current))

	// A value replaces.
	replaced := patch.Set("https://cdn.aticomgroup.com/new.jpg").Apply(current)
	require.NotNil(t, replaced)
	assert.Equal(t, "https://cdn.aticomgroup.com/new.jpg", *replaced)
}

/*
TestClauses_Build verifies SET fragment rendering and argument numbering.
*/
func TestClauses_Build(t *testing.T) {
	var p articlePatch
	body := `{"title": "Hello", "cover_image": null, "published": true}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	c := patch.NewClauses("row-id")
	patch.Add(c, "title", p.Title)
	patch.Add(c, "excerpt", p.Excerpt) // absent → no clause
	patch.Add(c, "coverimage", p.CoverImage)
	patch.Add(c, "published", p.Published)
	c.AddRaw("updatedat = NOW()")

	assert.False(t, c.Empty())
	assert.Equal(t, "title = $2, coverimage = NULL, published = $3, updatedat = NOW()", c.Set())
	assert.Equal(t, []any{"row-id", "Hello", true}, c.Args())
}

/*
TestClauses_Empty covers the no-op patch: nothing present, nothing rendered.
*/
func TestClauses_Empty(t *testing.T) {
	var p articlePatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	c := patch.NewClauses("row-id")
	patch.Add(c, "title", p.Title)
	patch.Add(c, "excerpt", p.Excerpt)

	assert.True(t, c.Empty())
	assert.Equal(t, []any{"row-id"}, c.Args())
}
