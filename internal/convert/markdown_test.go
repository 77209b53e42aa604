package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverter_ToHTML(t *testing.T) {
	conv := New()

	t.Run("renders headings lists and tables", func(t *testing.T) {
		md := "# Employment Contract\n\n- Salary: RM 5000\n- Team: Mereka\n\n| KPI | Weight |\n| --- | --- |\n| Delivery | 40 |\n"

		page, err := conv.ToHTML("contract", md)
		assert.NoError(t, err)

		assert.Contains(t, page, "<!DOCTYPE html>")
		assert.Contains(t, page, "<title>contract</title>")
		assert.Contains(t, page, "<h1>Employment Contract</h1>")
		assert.Contains(t, page, "<li>Salary: RM 5000</li>")
		assert.Contains(t, page, "<table>")
		assert.Contains(t, page, "@page")
	})

	t.Run("escapes the title", func(t *testing.T) {
		page, err := conv.ToHTML(`<script>`, "body")
		assert.NoError(t, err)
		assert.Contains(t, page, "<title>&lt;script&gt;</title>")
		assert.NotContains(t, page, "<title><script></title>")
	})
}

func TestConverter_ConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Alan_Roy_Antony_contract_20250320_143005.md")
	output := filepath.Join(dir, "contract.html")
	assert.NoError(t, os.WriteFile(input, []byte("# Contract"), 0o644))

	conv := New()
	assert.NoError(t, conv.ConvertFile(input, output))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "<title>Alan_Roy_Antony_contract_20250320_143005</title>")
	assert.Contains(t, string(data), "<h1>Contract</h1>")
}

func TestConverter_ConvertDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "html")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("# B"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	conv := New()
	outputs, err := conv.ConvertDir(dir, outDir)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(outDir, "a.html"),
		filepath.Join(outDir, "b.html"),
	}, outputs)

	for _, path := range outputs {
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "<!DOCTYPE html>")
	}
}
