package gate_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolforge/pkg/gate"
)

func TestNewDocumentEmitsEmptySlicesNotNull(t *testing.T) {
	doc := gate.NewDocument(&gate.Report{})

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true,"errors":[],"warnings":[],"info":[]}`, string(data))
}

func TestNewDocumentCarriesBuckets(t *testing.T) {
	r := &gate.Report{}
	r.Errorf("Missing required file: %s", "package.json")
	r.Warnf("README.md seems too short")
	r.Infof("✓ .gitignore exists")

	doc := gate.NewDocument(r)
	assert.False(t, doc.Valid)
	assert.Equal(t, []string{"Missing required file: package.json"}, doc.Errors)
	assert.Equal(t, []string{"README.md seems too short"}, doc.Warnings)
	assert.Equal(t, []string{"✓ .gitignore exists"}, doc.Info)
}

func TestRenderTextVerdictLine(t *testing.T) {
	passing := &gate.Report{}
	passing.Infof("✓ Found: package.json")
	out := gate.RenderText("resume-optimizer", passing)

	assert.Contains(t, out, "Quality Check Report")
	assert.Contains(t, out, "Project: resume-optimizer")
	assert.Contains(t, out, "Status: PASSED")
	assert.NotContains(t, out, "Errors (")

	failing := &gate.Report{}
	failing.Errorf("Missing required file: index.html")
	out = gate.RenderText("resume-optimizer", failing)

	assert.Contains(t, out, "Status: FAILED")
	assert.Contains(t, out, "Errors (1):")
	assert.Contains(t, out, "   • Missing required file: index.html")
}

func TestRenderTextOmitsEmptyBuckets(t *testing.T) {
	r := &gate.Report{}
	r.Warnf("only a warning")
	out := gate.RenderText("p", r)

	assert.Contains(t, out, "Warnings (1):")
	assert.NotContains(t, out, "Errors (")
	assert.NotContains(t, out, "Info (")
	assert.True(t, strings.HasPrefix(out, strings.Repeat("=", 60)+"\n"))
}
