// Package convert turns finished markdown documents into standalone,
// print-ready HTML pages. Rasterizing the pages to PDF is left to the
// browser or an external print pipeline.
package convert

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

type Converter struct {
	md goldmark.Markdown
}

func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		),
	}
}

// ToHTML renders markdown into a complete HTML page with the document
// stylesheet embedded.
func (c *Converter) ToHTML(title, markdownSource string) (string, error) {
	var body bytes.Buffer
	if err := c.md.Convert([]byte(markdownSource), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	page.WriteString("<style>\n" + documentCSS + "\n</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// ConvertFile writes the HTML rendition of a markdown file next to the
// given output path.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	page, err := c.ToHTML(title, string(data))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

// ConvertDir converts every .md file in dir, writing .html siblings into
// outDir. Returns the converted output paths in directory order.
func (c *Converter) ConvertDir(dir, outDir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir %s: %w", outDir, err)
	}

	var outputs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		outName := strings.TrimSuffix(entry.Name(), ".md") + ".html"
		outPath := filepath.Join(outDir, outName)
		if err := c.ConvertFile(filepath.Join(dir, entry.Name()), outPath); err != nil {
			return nil, err
		}
		outputs = append(outputs, outPath)
	}
	return outputs, nil
}
