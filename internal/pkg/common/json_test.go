package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecodeJSON(t *testing.T) {
	var v decodeTarget
	err := DecodeJSON(strings.NewReader(`{"name":"milk","count":2}`), &v)
	require.NoError(t, err)
	assert.Equal(t, "milk", v.Name)
	assert.Equal(t, 2, v.Count)
}

func TestDecodeJSONIgnoresUnknownFields(t *testing.T) {
	var v decodeTarget
	err := DecodeJSON(strings.NewReader(`{"name":"milk","bogus":true}`), &v)
	assert.NoError(t, err)
}

func TestDecodeJSONStrictRejectsUnknownFields(t *testing.T) {
	var v decodeTarget
	err := DecodeJSONStrict(strings.NewReader(`{"name":"milk","bogus":true}`), &v)
	assert.Error(t, err)
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var v decodeTarget
	err := DecodeJSON(strings.NewReader(`{"name":"milk"} {"name":"sugar"}`), &v)
	assert.Error(t, err)
}

func TestToJSONRoundTrip(t *testing.T) {
	out, err := ToJSON(decodeTarget{Name: "butter", Count: 3})
	require.NoError(t, err)

	var v decodeTarget
	require.NoError(t, ParseJSONBytes([]byte(out), &v))
	assert.Equal(t, "butter", v.Name)
	assert.Equal(t, 3, v.Count)
}
