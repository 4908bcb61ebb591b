package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryComplete(t *testing.T) {
	want := []Key{
		KeyAmbrose, KeyProfileBuild, KeyCampbell, KeyRizon,
		KeyAustralianRestoration, KeyTownsend, KeyOneSolutions,
		KeyJohnsLyng, KeyGeneric,
	}

	assert.Len(t, Keys(), len(want))
	for _, key := range want {
		tpl := Lookup(key)
		require.NotNil(t, tpl, "template %s missing", key)
		assert.Equal(t, key, tpl.Key)
		assert.NotEmpty(t, tpl.PO, "template %s has no PO patterns", key)
		assert.NotEmpty(t, tpl.Customer, "template %s has no customer patterns", key)
		assert.NotEmpty(t, tpl.Dollar, "template %s has no dollar patterns", key)
	}
}

func TestAllFieldPatternsCapture(t *testing.T) {
	for _, key := range Keys() {
		tpl := Lookup(key)
		for _, re := range tpl.PO {
			assert.GreaterOrEqual(t, re.NumSubexp(), 1, "%s PO pattern %q", key, re)
		}
		for _, re := range tpl.Customer {
			assert.GreaterOrEqual(t, re.NumSubexp(), 1, "%s customer pattern %q", key, re)
		}
		for _, re := range tpl.Dollar {
			assert.GreaterOrEqual(t, re.NumSubexp(), 1, "%s dollar pattern %q", key, re)
		}
	}
}

func TestAmbrosePOPattern(t *testing.T) {
	tpl := Lookup(KeyAmbrose)

	m := tpl.PO[0].FindStringSubmatch("P.O. No: 20250342-01")
	require.NotNil(t, m)
	assert.Equal(t, "20250342-01", m[1])

	// Wrong shape must not match the strict Ambrose format.
	assert.Nil(t, tpl.PO[0].FindStringSubmatch("P.O. No: AB-123"))
}

func TestGenericIsFallbackOnly(t *testing.T) {
	assert.Empty(t, Generic().Signatures)
	assert.Empty(t, Generic().Aliases)
}
