package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemListRoundTrip(t *testing.T) {
	raw := `[{"sku":"velvet-001","qty":2},"gift-wrap"]`

	var list ItemList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestItemListValueAndScan(t *testing.T) {
	list := ItemList(`[1,2,3]`)

	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, v)

	var scanned ItemList
	require.NoError(t, scanned.Scan([]byte(`[1,2,3]`)))
	assert.Equal(t, list, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestItemListEmpty(t *testing.T) {
	var list ItemList

	v, err := list.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
