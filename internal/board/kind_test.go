package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "grass", KindGrass.String())
	assert.Equal(t, "stone", KindStone.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("  Wheat ")
	require.NoError(t, err)
	assert.Equal(t, KindWheat, got)

	_, err = ParseKind("lava")
	assert.Error(t, err)
}

func TestKind_MarshalInvalid(t *testing.T) {
	_, err := Kind(KindCount).MarshalText()
	assert.Error(t, err)
}

func TestTile_JSONUsesKindNames(t *testing.T) {
	tile := Tile{Coord: Axial{Q: 1, R: -1}, Kind: KindForest}
	data, err := json.Marshal(tile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"forest"`)

	var back Tile
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tile, back)
}

func TestTile_YAMLUsesKindNames(t *testing.T) {
	tile := Tile{Coord: Axial{Q: 0, R: 2}, Kind: KindBrick}
	data, err := yaml.Marshal(tile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: brick")
}
