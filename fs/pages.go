package fs

import (
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/ramendex"
)

// PathToURL converts a saved page's path, relative to the directory the
// site was saved into, back to the URL it was fetched from.
// Example: menu/index.html under https://afuri.com → https://afuri.com/menu/
func PathToURL(baseURL string, relPath string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return "", ramendex.Errorf(ramendex.EINVALID, "invalid base URL %q", baseURL)
	}

	p := filepath.ToSlash(relPath)
	p = strings.TrimPrefix(p, "./")

	switch {
	case p == "index.html" || p == "index.htm":
		p = ""
	case strings.HasSuffix(p, "/index.html"):
		p = strings.TrimSuffix(p, "index.html")
	case strings.HasSuffix(p, "/index.htm"):
		p = strings.TrimSuffix(p, "index.htm")
	default:
		p = strings.TrimSuffix(strings.TrimSuffix(p, ".html"), ".htm")
	}

	u := *base
	u.Path = path.Join("/", strings.TrimSuffix(base.Path, "/"), p)
	if strings.HasSuffix(p, "/") || p == "" {
		u.Path = strings.TrimSuffix(u.Path, "/") + "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// ReadPages loads every .html and .htm file below dir in lexical path
// order. Page URLs are rebuilt from baseURL with PathToURL. HTML is
// returned as stored on disk; callers decode the charset.
func ReadPages(dir string, baseURL string) ([]*ramendex.Page, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, ramendex.Errorf(ramendex.ENOTFOUND, "page directory %q not found", dir)
	}
	if !info.IsDir() {
		return nil, ramendex.Errorf(ramendex.EINVALID, "%q is not a directory", dir)
	}

	var pages []*ramendex.Page
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".html" && ext != ".htm" {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		pageURL, err := PathToURL(baseURL, rel)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		pages = append(pages, &ramendex.Page{URL: pageURL, HTML: string(data)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}
