package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"sans fence", `{"name":"x"}`, `{"name":"x"}`},
		{"fence json", "```json\n{\"name\":\"x\"}\n```", `{"name":"x"}`},
		{"fence nue", "```\n{\"name\":\"x\"}\n```", `{"name":"x"}`},
		{"espaces autour", "  \n```json\n{\"a\":1}\n```  \n", `{"a":1}`},
		{"vide", "", ""},
		{"fence seule", "```json```", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFences(tc.in))
		})
	}
}

func TestDecodeModelJSON(t *testing.T) {
	var dest struct {
		Name string `json:"name"`
	}

	err := decodeModelJSON("test", "```json\n{\"name\":\"Chaise\"}\n```", &dest)
	require.NoError(t, err)
	assert.Equal(t, "Chaise", dest.Name)
}

func TestDecodeModelJSON_EmptyContent(t *testing.T) {
	var dest map[string]interface{}

	err := decodeModelJSON("test", "   ", &dest)
	require.Error(t, err)

	var ue *UpstreamError
	assert.True(t, errors.As(err, &ue))
}

func TestDecodeModelJSON_Garbage(t *testing.T) {
	var dest map[string]interface{}

	err := decodeModelJSON("test", "désolé, je ne peux pas répondre en JSON", &dest)
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "test", ue.Op)
}
