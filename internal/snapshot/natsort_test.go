package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ihorchekh/sonic-utilities/internal/snapshot"
)

func TestNaturalLess(t *testing.T) {
	t.Parallel()

	assert.True(t, snapshot.NaturalLess("Tun2", "Tun10"))
	assert.False(t, snapshot.NaturalLess("Tun10", "Tun2"))
	assert.True(t, snapshot.NaturalLess("Tun2", "Tun2a"))
	assert.True(t, snapshot.NaturalLess("Tun02", "Tun10"))
	assert.False(t, snapshot.NaturalLess("Tun2", "Tun2"))
	assert.True(t, snapshot.NaturalLess("Mux1", "Tun1"))
}

func TestSortNatural(t *testing.T) {
	t.Parallel()

	names := []string{"Tun10", "Tun1", "Tun2", "vxlan_100", "vxlan_20"}
	snapshot.SortNatural(names)
	assert.Equal(t, []string{"Tun1", "Tun2", "Tun10", "vxlan_20", "vxlan_100"}, names)
}
