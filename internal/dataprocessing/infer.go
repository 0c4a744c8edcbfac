package dataprocessing

import (
	"fmt"
	"path/filepath"
	"strings"

	"smmerge/pkg/contracts/domain"
)

// IsOverseasFile reports whether a file name carries the overseas marker,
// which switches platform and region inference to the overseas branch.
func IsOverseasFile(filename string) bool {
	return strings.Contains(filename, overseasFileMarker)
}

// PlatformFromFilename derives the network for a domestic file by scanning
// the file name for a known platform name. First match in table order wins.
func PlatformFromFilename(filename string) string {
	for _, name := range platformNames {
		if strings.Contains(filename, name) {
			return name
		}
	}
	return unknownNetwork
}

// ProfileFromFilename recovers the account name from a file name when the
// source has no profile column. Exports are conventionally named
// "<platform>-<profile>.<ext>"; the segment after the platform keyword wins,
// falling back to the last dash-separated segment.
func ProfileFromFilename(filename string) (string, bool) {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	for _, platform := range platformNames {
		idx := strings.Index(name, platform)
		if idx < 0 {
			continue
		}
		remaining := name[idx+len(platform):]
		if strings.HasPrefix(remaining, "-") {
			return strings.TrimSpace(remaining[1:]), true
		}
	}
	if strings.Contains(name, "-") {
		parts := strings.Split(name, "-")
		return strings.TrimSpace(parts[len(parts)-1]), true
	}
	return "", false
}

// RegionFromProfile classifies a profile as domestic or overseas by keyword.
// A null profile stays unknown.
func RegionFromProfile(profile string) string {
	if profile == "" {
		return domain.RegionUnknown
	}
	for _, kw := range profileOverseasKeywords {
		if strings.Contains(profile, kw) {
			return domain.RegionOverseas
		}
	}
	return domain.RegionDomestic
}

// CategoryLabel tags the post text with a game label. Rules are evaluated in
// declared order against the lowercased text; no match means others.
func CategoryLabel(post string) string {
	text := strings.ToLower(post)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Label
			}
		}
	}
	return defaultCategory
}

// dateToken converts a normalized published date to the token embedded in
// synthesized post ids.
func dateToken(published string) string {
	if published == "" {
		return "unknown_date"
	}
	token := strings.ReplaceAll(published, "/", "-")
	return strings.ReplaceAll(token, " ", "_")
}

// SynthesizePostID builds a stable post id for rows without one, from the
// cleaned post text, network, profile and published date.
func SynthesizePostID(post, network, profile, published string) string {
	if post == "" {
		post = "unknown_post"
	}
	if network == "" {
		network = "unknown_network"
	}
	if profile == "" {
		profile = "unknown_profile"
	}
	return fmt.Sprintf("%s_%s_%s_%s", post, network, profile, dateToken(published))
}
