package appupdate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/goccy/go-json"
)

var ErrVersionNotFound = errors.New("version not found")

// versionLabel matches the "Version" label as rendered in English, Japanese and Chinese listings.
var versionLabel = regexp.MustCompile(`バージョン|Version|版本`)

// MacVersionPattern finds the first "Version x.y.z" in a product page.
var MacVersionPattern = regexp.MustCompile(`Version (\d+)\.(\d+)\.(\d+)`)

// Extractor turns raw fetched content into a version string.
type Extractor interface {
	Extract(content string) (string, error)
}

// LocatorExtractor reads the version from the node an XPath expression points at.
type LocatorExtractor struct {
	XPath string
}

func (e LocatorExtractor) Extract(content string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("locator %s: %w", e.XPath, ErrEmptyResponse)
	}
	doc, err := htmlquery.Parse(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	node, err := htmlquery.Query(doc, e.XPath)
	if err != nil {
		return "", fmt.Errorf("evaluating locator %s: %w", e.XPath, err)
	}
	if node == nil {
		return "", fmt.Errorf("locator %s matched no node: %w", e.XPath, ErrVersionNotFound)
	}

	version := strings.TrimSpace(versionLabel.ReplaceAllString(htmlquery.InnerText(node), ""))
	if _, err := ParseVersion(version); err != nil {
		return "", fmt.Errorf("locator %s: %w (%w)", e.XPath, ErrVersionNotFound, err)
	}
	return version, nil
}

// RegexExtractor joins the capture groups of the first match with dots.
type RegexExtractor struct {
	Pattern *regexp.Regexp
}

func (e RegexExtractor) Extract(content string) (string, error) {
	m := e.Pattern.FindStringSubmatch(content)
	if m == nil {
		return "", fmt.Errorf("pattern %s: %w", e.Pattern, ErrVersionNotFound)
	}
	return strings.Join(m[1:], "."), nil
}

// LookupResult is the part of an App Store lookup response the resolver needs.
type LookupResult struct {
	Version      string `json:"version"`
	TrackViewURL string `json:"trackViewUrl"`
}

// LookupResponse is the body of an App Store lookup API call.
type LookupResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []LookupResult `json:"results"`
}

// LookupExtractor reads results[0] of an App Store lookup API response.
type LookupExtractor struct{}

// Lookup decodes a raw lookup body and returns its first result.
func (e LookupExtractor) Lookup(content string) (LookupResult, error) {
	var resp LookupResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return LookupResult{}, fmt.Errorf("decoding lookup response: %w", err)
	}
	return e.First(resp)
}

// First returns results[0]; no results or an empty version is ErrVersionNotFound.
func (LookupExtractor) First(resp LookupResponse) (LookupResult, error) {
	if len(resp.Results) == 0 {
		return LookupResult{}, fmt.Errorf("lookup returned no results: %w", ErrVersionNotFound)
	}
	result := resp.Results[0]
	if result.Version == "" {
		return LookupResult{}, fmt.Errorf("lookup result has no version: %w", ErrVersionNotFound)
	}
	return result, nil
}
