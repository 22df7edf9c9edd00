package appupdate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocatorExtractor(t *testing.T) {
	html := `<html><body><div><span>Version 7.1.0</span></div></body></html>`

	version, err := LocatorExtractor{XPath: "//span"}.Extract(html)
	require.NoError(t, err)
	require.Equal(t, "7.1.0", version)
}

func TestLocatorExtractorLocalizedLabels(t *testing.T) {
	for _, label := range []string{"バージョン", "版本", "Version"} {
		html := `<p class="ver">  ` + label + ` 2.10.4 </p>`
		version, err := LocatorExtractor{XPath: `//p[@class="ver"]`}.Extract(html)
		require.NoError(t, err, label)
		require.Equal(t, "2.10.4", version, label)
	}
}

func TestLocatorExtractorFailures(t *testing.T) {
	_, err := LocatorExtractor{XPath: "//span"}.Extract(`<div>Version 7.1.0</div>`)
	require.ErrorIs(t, err, ErrVersionNotFound)

	_, err = LocatorExtractor{XPath: "//span"}.Extract(`<span>Varies with device</span>`)
	require.ErrorIs(t, err, ErrVersionNotFound)

	_, err = LocatorExtractor{XPath: "//span"}.Extract("")
	require.ErrorIs(t, err, ErrEmptyResponse)

	_, err = LocatorExtractor{XPath: "//span[["}.Extract(`<span>1.0.1</span>`)
	require.Error(t, err)
}

func TestRegexExtractor(t *testing.T) {
	e := RegexExtractor{Pattern: MacVersionPattern}

	version, err := e.Extract(`<p>What's new</p> ... Version 3.4.5 ... Version 3.4.4`)
	require.NoError(t, err)
	require.Equal(t, "3.4.5", version)

	_, err = e.Extract(`<p>Version history unavailable</p>`)
	require.ErrorIs(t, err, ErrVersionNotFound)
}

func TestRegexExtractorCustomPattern(t *testing.T) {
	e := RegexExtractor{Pattern: regexp.MustCompile(`v(\d+)-(\d+)`)}
	version, err := e.Extract("build v12-3")
	require.NoError(t, err)
	require.Equal(t, "12.3", version)
}

func TestLookupExtractor(t *testing.T) {
	body := `{"resultCount":1,"results":[{"version":"2.2.0","trackViewUrl":"https://apps.apple.com/us/app/chaldea/id1548713491?uo=4"}]}`

	result, err := LookupExtractor{}.Lookup(body)
	require.NoError(t, err)
	require.Equal(t, "2.2.0", result.Version)
	require.Equal(t, "https://apps.apple.com/us/app/chaldea/id1548713491?uo=4", result.TrackViewURL)

	result, err = LookupExtractor{}.First(LookupResponse{ResultCount: 1, Results: []LookupResult{{Version: "2.3.0"}}})
	require.NoError(t, err)
	require.Equal(t, "2.3.0", result.Version)
}

func TestLookupExtractorFailures(t *testing.T) {
	_, err := LookupExtractor{}.Lookup(`{"resultCount":0,"results":[]}`)
	require.ErrorIs(t, err, ErrVersionNotFound)

	_, err = LookupExtractor{}.Lookup(`{"results":[{"trackViewUrl":"https://example.com"}]}`)
	require.ErrorIs(t, err, ErrVersionNotFound)

	_, err = LookupExtractor{}.Lookup(`<html>not json</html>`)
	require.Error(t, err)
}
