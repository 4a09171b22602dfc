package dataset_test

import (
	"testing"

	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/stretchr/testify/assert"
)

func TestIdentityFromTestName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected dataset.Identity
	}{
		{
			name:     "top level test",
			input:    "TestPerson",
			expected: dataset.Identity{Package: "people", Type: "TestPerson"},
		},
		{
			name:  "subtest",
			input: "TestPerson/insert",
			expected: dataset.Identity{
				Package: "people", Type: "TestPerson", Method: "insert",
			},
		},
		{
			name:  "nested subtest",
			input: "TestPerson/insert/one",
			expected: dataset.Identity{
				Package: "people", Type: "TestPerson", Method: "insert.one",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := dataset.IdentityFromTestName("people", tt.input)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestIdentityFileNames(t *testing.T) {
	id := dataset.Identity{Type: "DataSetLoaderTest", Method: "aMethod"}
	assert.Equal(t, "DataSetLoaderTest.aMethodsuffix.xml",
		id.MethodFileName("suffix"))
	assert.Equal(t, "DataSetLoaderTestsuffix.xml", id.ClassFileName("suffix"))
	assert.Equal(t, "DataSetLoaderTest.aMethod", id.String())

	id.Method = ""
	assert.Equal(t, "", id.MethodFileName("suffix"))
	assert.Equal(t, "DataSetLoaderTest.xml", id.ClassFileName(""))
	assert.Equal(t, "DataSetLoaderTest", id.String())
}

func TestDataSetHelpers(t *testing.T) {
	ds := &dataset.DataSet{
		Tables: []*dataset.Table{
			{
				Name: "person",
				Rows: []dataset.Row{
					{Columns: []dataset.Column{{Name: "id", Value: "1"}}},
					{Columns: []dataset.Column{{Name: "id", Value: "2"}}},
				},
			},
			{Name: "address", Rows: []dataset.Row{{}}},
		},
	}

	assert.Equal(t, 3, ds.RowsNum())
	assert.Nil(t, ds.Table("missing"))
	person := ds.Table("person")
	v, ok := person.Rows[1].Value("id")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	_, ok = person.Rows[1].Value("name")
	assert.False(t, ok)
}
