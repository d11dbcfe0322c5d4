package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaders_AddKeepsOrderAndDuplicates(t *testing.T) {
	var h Headers
	h.Add("Set-Cookie", "a=1")
	h.Add("Content-Type", "application/json")
	h.Add("Set-Cookie", "b=2")

	assert.Equal(t, Headers{
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Content-Type", Value: "application/json"},
		{Name: "Set-Cookie", Value: "b=2"},
	}, h)
}

func TestHeaders_Get(t *testing.T) {
	var h Headers
	h.Add("Content-Type", "application/json")
	h.Add("content-type", "text/plain")

	assert.Equal(t, "application/json", h.Get("content-TYPE"))
	assert.Equal(t, "", h.Get("Authorization"))
}

func TestHeaders_Values(t *testing.T) {
	var h Headers
	h.Add("Set-Cookie", "a=1")
	h.Add("X-Other", "x")
	h.Add("Set-Cookie", "b=2")

	assert.Equal(t, []string{"a=1", "b=2"}, h.Values("set-cookie"))
	assert.Nil(t, h.Values("missing"))
}

func TestHeaders_SetReplacesAllMatches(t *testing.T) {
	var h Headers
	h.Add("Accept", "text/html")
	h.Add("X-Other", "x")
	h.Add("accept", "application/xml")

	h.Set("Accept", "application/json")

	assert.Equal(t, Headers{
		{Name: "Accept", Value: "application/json"},
		{Name: "X-Other", Value: "x"},
	}, h)
}

func TestHeaders_SetAppendsWhenMissing(t *testing.T) {
	var h Headers
	h.Set("Accept", "application/json")

	assert.Equal(t, Headers{{Name: "Accept", Value: "application/json"}}, h)
}

func TestHeaders_CloneIsIndependent(t *testing.T) {
	var h Headers
	h.Add("A", "1")

	clone := h.Clone()
	clone.Set("A", "2")

	assert.Equal(t, "1", h.Get("A"))
	assert.Equal(t, "2", clone.Get("A"))
}
