// SPDX-License-Identifier: MIT

package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmigest/dataset"
)

const sample = `zone,state,sex,in_mig,out_mig,net_mig
North,Acre,male,1200,1500,-300
North,Acre,female,1100,900,200
South,Parana,male,5000,4000,1000
South,Parana,female,4800,4900,-100
`

func TestRead_Sample(t *testing.T) {
	t.Parallel()

	rows, err := dataset.Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, dataset.Row{Zone: "North", State: "Acre", Sex: dataset.Male, In: 1200, Out: 1500, Net: -300}, rows[0])

	zones := dataset.ByZone(rows)
	assert.Equal(t, []dataset.Summary{
		{Key: "North", In: 2300, Out: 2400, Net: -100},
		{Key: "South", In: 9800, Out: 8900, Net: 900},
	}, zones)

	sexes := dataset.BySex(rows)
	require.Len(t, sexes, 2)
	assert.Equal(t, "female", sexes[1].Key)
	assert.Equal(t, 100.0, sexes[1].Net)
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		want error
	}{
		"empty":       {"", dataset.ErrMalformed},
		"bad header":  {"zone,state,gender,in_mig,out_mig,net_mig\n", dataset.ErrMalformed},
		"short row":   {"zone,state,sex,in_mig,out_mig,net_mig\nN,A,male,1,2\n", dataset.ErrMalformed},
		"bad number":  {"zone,state,sex,in_mig,out_mig,net_mig\nN,A,male,x,2,3\n", dataset.ErrMalformed},
		"bad net":     {"zone,state,sex,in_mig,out_mig,net_mig\nN,A,male,5,2,1\n", dataset.ErrInconsistent},
		"bad sex":     {"zone,state,sex,in_mig,out_mig,net_mig\nN,A,both,5,2,3\n", dataset.ErrInconsistent},
		"negative in": {"zone,state,sex,in_mig,out_mig,net_mig\nN,A,male,-5,2,-7\n", dataset.ErrInconsistent},
		"empty state": {"zone,state,sex,in_mig,out_mig,net_mig\nN,,male,5,2,3\n", dataset.ErrInconsistent},
	}
	for name, tc := range cases {
		_, err := dataset.Read(strings.NewReader(tc.in))
		assert.ErrorIs(t, err, tc.want, name)
	}
}
