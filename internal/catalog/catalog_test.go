package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	services := c.List()
	require.Len(t, services, 5)
	assert.Equal(t, "brow-design", services[0].ID)

	svc, ok := c.Get("lash-lifting")
	require.True(t, ok)
	assert.Equal(t, "Lash Lifting", svc.Name)
	assert.Equal(t, 60, svc.DurationMin)
	assert.Equal(t, 150.0, svc.Price)

	_, ok = c.Get("nail-art")
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	c := Default()

	list := c.List()
	list[0].Name = "mutated"

	again := c.List()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestDuplicateIDLastWins(t *testing.T) {
	c := New([]Service{
		{ID: "cut", Name: "Old", DurationMin: 30, Price: 10},
		{ID: "cut", Name: "New", DurationMin: 45, Price: 20},
	})

	svc, ok := c.Get("cut")
	require.True(t, ok)
	assert.Equal(t, "New", svc.Name)
}
