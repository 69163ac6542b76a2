package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
	"github.com/stalwar-deckers/catalog/pkg/config"
	"github.com/stalwar-deckers/catalog/pkg/core"
	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleController(t *testing.T) *core.Controller {
	t.Helper()
	store, err := catalog.LoadSample()
	require.NoError(t, err)
	cfg := config.Default()
	ctrl, err := newController(store, &cfg, nil)
	require.NoError(t, err)
	return ctrl
}

func TestListText(t *testing.T) {
	ctrl := newSampleController(t)
	require.NoError(t, applyQuery(ctrl, "order", ""))

	var buf bytes.Buffer
	writeListText(&buf, ctrl)
	out := buf.String()
	assert.Contains(t, out, "1 of 6 APIs")
	assert.Contains(t, out, "sales-order-api")
	assert.NotContains(t, out, "product-api")
}

func TestListText_Empty(t *testing.T) {
	ctrl := newSampleController(t)
	require.NoError(t, applyQuery(ctrl, "no such api", ""))

	var buf bytes.Buffer
	writeListText(&buf, ctrl)
	assert.Contains(t, buf.String(), "0 of 6 APIs")
	assert.Contains(t, buf.String(), "No APIs Found")
}

func TestListJSON(t *testing.T) {
	ctrl := newSampleController(t)
	require.NoError(t, applyQuery(ctrl, "", "product"))

	var buf bytes.Buffer
	require.NoError(t, writeListJSON(&buf, ctrl))

	var out listOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "product", out.Filter)
	assert.Equal(t, 6, out.Total)
	require.Len(t, out.Sections, 1)
	assert.Equal(t, out.Count, len(out.Sections[0].Cards))
	assert.Empty(t, out.Empty)
}

func TestApplyQuery_UnknownFilter(t *testing.T) {
	ctrl := newSampleController(t)
	err := applyQuery(ctrl, "", "nope")
	assert.ErrorIs(t, err, core.ErrUnknownFilter)
}

func TestListText_ProdAlias(t *testing.T) {
	ctrl := newSampleController(t)
	require.NoError(t, applyQuery(ctrl, "", "prod"))

	var buf bytes.Buffer
	writeListText(&buf, ctrl)
	assert.Contains(t, buf.String(), "0 of 6 APIs")
	assert.Contains(t, buf.String(), "No APIs Found")
}

func TestNewController_ConfigFilters(t *testing.T) {
	store, err := catalog.LoadSample()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Filters = []string{"shipping", "deprecated"}
	cfg.DefaultFilter = "shipping"
	ctrl, err := newController(store, &cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "shipping", "deprecated"}, ctrl.Filters())
	assert.Equal(t, "shipping", ctrl.State().Filter)

	cfg.DefaultFilter = "pricing"
	_, err = newController(store, &cfg, nil)
	assert.ErrorIs(t, err, core.ErrUnknownFilter)
}

func TestExportSite(t *testing.T) {
	ctrl := newSampleController(t)
	require.NoError(t, applyQuery(ctrl, "order", ""))

	dir := filepath.Join(t.TempDir(), "site")
	path, err := exportSite(ctrl, dir, "Team APIs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>Team APIs</title>")
	assert.Contains(t, html, `id="api-sales-order-api"`)
	assert.NotContains(t, html, `id="api-product-api"`)
}

func TestParseTabs(t *testing.T) {
	tabs, err := parseTabs([]string{"errors", "Overview"})
	require.NoError(t, err)
	assert.Equal(t, []detail.Tab{detail.TabErrors, detail.TabOverview}, tabs)

	tabs, err = parseTabs(nil)
	require.NoError(t, err)
	assert.Empty(t, tabs)

	_, err = parseTabs([]string{"changelog"})
	assert.Error(t, err)
}

func TestPrintMarkdown_Fallback(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printMarkdown(&buf, "# Title\n", "no-such-theme"))
	assert.Equal(t, "# Title\n", buf.String())
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "dev", want: "apicat dev (development build)"},
		{raw: "1.4.0", want: "apicat v1.4.0"},
		{raw: "v2.0.1", want: "apicat v2.0.1"},
		{raw: "1.5.0-rc.1", want: "apicat v1.5.0-rc.1 (pre-release)"},
		{raw: "banana", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := versionString(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
