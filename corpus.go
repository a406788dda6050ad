package lexcloud

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// ReadCorpus reads every regular file in dir and returns one document text
// per file, in directory order (os.ReadDir sorts by name, so the result is
// deterministic). Plain files are taken as-is; .html/.htm files go through
// readability extraction so markup and boilerplate never reach the
// annotation service.
func ReadCorpus(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	var docs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".html", ".htm":
			article, err := readability.FromReader(bytes.NewReader(data), nil)
			if err != nil {
				return nil, fmt.Errorf("extracting text from %s: %w", path, err)
			}
			docs = append(docs, article.TextContent)
		default:
			docs = append(docs, string(data))
		}
	}
	return docs, nil
}
