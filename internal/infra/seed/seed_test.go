package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"advisor/internal/infra/persistence/model"
	"advisor/internal/infra/persistence/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_ShippedSeedFile(t *testing.T) {
	catalog, err := Load(filepath.Join("..", "..", "..", "config", "seed.yaml"))
	require.NoError(t, err)

	require.NotEmpty(t, catalog.Sections)
	assert.Equal(t, int64(1), catalog.Sections[0].ID)
	assert.NotEmpty(t, catalog.Sections[0].Questions[0].Options)
	assert.NotEmpty(t, catalog.FundCategories)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "duplicate option id across questions",
			content: `
sections:
  - id: 1
    name: Risk
    questions:
      - id: 10
        prompt: A?
        options: [{id: 100, text: x}]
      - id: 11
        prompt: B?
        options: [{id: 100, text: y}]
`,
		},
		{
			name: "non-positive question id",
			content: `
sections:
  - id: 1
    name: Risk
    questions:
      - id: 0
        prompt: A?
`,
		},
		{
			name: "section without name",
			content: `
sections:
  - id: 1
`,
		},
		{
			name: "duplicate fund category",
			content: `
fundCategories:
  - {id: 1, name: Equity}
  - {id: 1, name: Debt}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSeedFile(t, tt.content))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestApply_IsIdempotent(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	catalog, err := Load(writeSeedFile(t, `
sections:
  - id: 2
    name: Goals
    questions:
      - id: 20
        prompt: Target?
        options:
          - {id: 200, text: Retire}
          - {id: 201, text: Wealth}
  - id: 1
    name: Risk
    questions:
      - id: 10
        prompt: Comfort with loss?
        options:
          - {id: 100, text: Low}
fundCategories:
  - id: 1
    name: Equity
    funds:
      - {id: 1001, schemeCode: "120503", schemeName: Large Cap, nav: 84.21}
`))
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, db, catalog))

	// A second run, even with edited text, leaves existing rows alone.
	catalog.Sections[0].Name = "Renamed"
	require.NoError(t, Apply(ctx, db, catalog))

	var sections []model.SectionModel
	require.NoError(t, db.Order("id").Find(&sections).Error)
	require.Len(t, sections, 2)
	assert.Equal(t, "Goals", sections[1].Name)

	var optionCount, fundCount int64
	require.NoError(t, db.Model(&model.OptionModel{}).Count(&optionCount).Error)
	require.NoError(t, db.Model(&model.FundModel{}).Count(&fundCount).Error)
	assert.Equal(t, int64(3), optionCount)
	assert.Equal(t, int64(1), fundCount)

	var fund model.FundModel
	require.NoError(t, db.First(&fund, 1001).Error)
	assert.InDelta(t, 84.21, fund.NAV, 1e-9)
	assert.Equal(t, int64(1), fund.CategoryID)
}
