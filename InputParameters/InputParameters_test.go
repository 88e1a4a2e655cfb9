package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillParameters_Parse(t *testing.T) {
	data := `
Title: "Sphere case"
MinClusterSize: 64
Eta: 2.0
Rank: 8
Procs: 4
Threads: 2
`
	fp := DefaultFillParameters()
	require.NoError(t, fp.Parse([]byte(data)))
	assert.Equal(t, "Sphere case", fp.Title)
	assert.Equal(t, 64, fp.MinClusterSize)
	assert.Equal(t, 2.0, fp.Eta)
	assert.Equal(t, 8, fp.Rank)
	assert.Equal(t, 4, fp.Procs)
	assert.Equal(t, 2, fp.Threads)

	cfg, err := fp.Config()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MinClusterSize)
	assert.Equal(t, 8, cfg.Model.Rank)
}

func TestFillParameters_PartialFileKeepsDefaults(t *testing.T) {
	fp := DefaultFillParameters()
	require.NoError(t, fp.Parse([]byte("Eta: 0.5\n")))
	assert.Equal(t, 0.5, fp.Eta)
	assert.Equal(t, 32, fp.MinClusterSize)
	assert.Equal(t, 1, fp.Procs)
}

func TestFillParameters_FatalValues(t *testing.T) {
	cases := []string{
		"Threads: 0\n",
		"Procs: -1\n",
		"Eta: 0\n",
		"Eta: -3\n",
		"MinClusterSize: 0\n",
	}
	for _, data := range cases {
		fp := DefaultFillParameters()
		require.NoError(t, fp.Parse([]byte(data)))
		_, err := fp.Config()
		assert.Error(t, err, data)
	}
}
