package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", ":7070", "-s", "flag-secret", "-b", "10", "-p", "p1,p2,p3", "-t", "30")

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddrHTTP, ":7070")
	assert.Equal(t, c.TokenSecret, "flag-secret")
	assert.Equal(t, c.BcryptCost, 10)
	assert.Equal(t, c.Peppers, []string{"p1", "p2", "p3"})
	assert.Equal(t, c.TokenValidityDuration, 30*time.Minute)
}

func TestParseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddrHTTP, ":8081")
	assert.Equal(t, c.Peppers, []string{"dev-pepper"})
	assert.Equal(t, c.TokenValidityDuration, 60*time.Minute)
}
