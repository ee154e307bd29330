package fetch

import (
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
)

// Type is the body format of a source.
type Type string

const (
	TypeText Type = "text"
	TypeJSON Type = "json"
)

// Source is one downloadable wordlist.
type Source struct {
	Name          string `json:"name" mapstructure:"name"`
	URL           string `json:"url" mapstructure:"url"`
	Type          Type   `json:"type" mapstructure:"type"`
	Enabled       bool   `json:"enabled" mapstructure:"enabled"`
	Description   string `json:"description" mapstructure:"description"`
	EstimatedSize int    `json:"estimated_size" mapstructure:"estimated_size"`
}

// Slug is the cache file stem for the source.
func (s Source) Slug() string {
	return strutil.KebabCase(s.Name)
}

// catalogue lists the built-in sources. The million-entry lists are off by
// default.
var catalogue = []Source{
	{
		Name:          "SecLists 10M Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-1000000.txt",
		Type:          TypeText,
		Enabled:       false,
		Description:   "1M most common passwords from 10M database",
		EstimatedSize: 1_000_000,
	},
	{
		Name:          "RockYou Top 1M",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/xato-net-10-million-passwords-1000000.txt",
		Type:          TypeText,
		Enabled:       false,
		Description:   "RockYou leak top 1M passwords",
		EstimatedSize: 1_000_000,
	},
	{
		Name:          "RockYou Top 100k",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/xato-net-10-million-passwords-100000.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "RockYou top 100k",
		EstimatedSize: 100_000,
	},
	{
		Name:          "RockYou Top 10k",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/xato-net-10-million-passwords-10000.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "RockYou top 10k",
		EstimatedSize: 10_000,
	},
	{
		Name:          "SecLists Top 10k",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10k-most-common.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "10k most common passwords",
		EstimatedSize: 10_000,
	},
	{
		Name:          "Probable Passwords Top 1k",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/best1050.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Best 1050 probable passwords",
		EstimatedSize: 1050,
	},
	{
		Name:          "Dutch Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/dutch_passwordlist.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Dutch language passwords",
		EstimatedSize: 1000,
	},
	{
		Name:          "Swedish Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/swedish_password.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Swedish language passwords",
		EstimatedSize: 1000,
	},
	{
		Name:          "German Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/german_misc.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "German language passwords",
		EstimatedSize: 2000,
	},
	{
		Name:          "Spanish Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/spanish.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Spanish language passwords",
		EstimatedSize: 1500,
	},
	{
		Name:          "Italian Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/italian.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Italian language passwords",
		EstimatedSize: 1200,
	},
	{
		Name:          "French Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/french_passwordlist.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "French language passwords",
		EstimatedSize: 1800,
	},
	{
		Name:          "Turkish Passwords",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/turkish_password.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Turkish language passwords",
		EstimatedSize: 1000,
	},
	{
		Name:          "Default Credentials",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Default-Credentials/default-passwords.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Default system passwords",
		EstimatedSize: 1000,
	},
	{
		Name:          "Keyboard Patterns",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Keyboard-Combinations.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Keyboard pattern passwords",
		EstimatedSize: 500,
	},
	{
		Name:          "WiFi WPA Top 4800",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/WiFi-WPA/probable-v2-wpa-top4800.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "WiFi WPA passwords",
		EstimatedSize: 4800,
	},
	{
		Name:          "WiFi WPA Top 1k",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/WiFi-WPA/probable-v2-wpa-top1000.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "WiFi WPA top 1000",
		EstimatedSize: 1000,
	},
	{
		Name:          "Honeypot Captured",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/honeypot-credentials.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Honeypot attack passwords",
		EstimatedSize: 500,
	},
	{
		Name:          "Leaked 2023-2024",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/2023-200_most_used_passwords.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Most used 2023-2024",
		EstimatedSize: 200,
	},
	{
		Name:          "Leaked 2020",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/2020-200_most_used_passwords.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Most used 2020",
		EstimatedSize: 200,
	},
	{
		Name:          "Leaked 2019",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/2019-200_most_used_passwords.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Most used 2019",
		EstimatedSize: 200,
	},
	{
		Name:          "Leaked 2018",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/2018-200_most_used_passwords.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Most used 2018",
		EstimatedSize: 200,
	},
	{
		Name:          "Seasons + Years",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/seasons.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Season-based passwords",
		EstimatedSize: 500,
	},
	{
		Name:          "Months",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/months.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Month-based passwords",
		EstimatedSize: 300,
	},
	{
		Name:          "Common Names",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/common-names.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Common people names",
		EstimatedSize: 5000,
	},
	{
		Name:          "Oracle Defaults",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/oracle-default-passwords.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Oracle database defaults",
		EstimatedSize: 400,
	},
	{
		Name:          "Cisco Defaults",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/cisco-default-passwords.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Cisco device defaults",
		EstimatedSize: 300,
	},
	{
		Name:          "Mirai Botnet",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Mirai-botnet.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Mirai botnet passwords",
		EstimatedSize: 500,
	},
	{
		Name:          "Darkweb Top 10k",
		URL:           "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/darkweb2017-top10000.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Darkweb 2017 leak",
		EstimatedSize: 10_000,
	},
	{
		Name:          "Probable v2 Top 12k",
		URL:           "https://raw.githubusercontent.com/berzerk0/Probable-Wordlists/master/Real-Passwords/Top12Thousand-probable-v2.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Probable passwords top 12k",
		EstimatedSize: 12_000,
	},
	{
		Name:          "Probable v2 Top 1575",
		URL:           "https://raw.githubusercontent.com/berzerk0/Probable-Wordlists/master/Real-Passwords/Top1575-probable-v2.txt",
		Type:          TypeText,
		Enabled:       true,
		Description:   "Probable passwords top 1575",
		EstimatedSize: 1575,
	},
}

// Catalogue returns a copy of the built-in sources.
func Catalogue() []Source {
	return append([]Source(nil), catalogue...)
}

// Enabled filters sources down to the enabled ones.
func Enabled(sources []Source) []Source {
	var out []Source
	for _, s := range sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// Select resolves names against sources, case-insensitively. An empty name
// list selects every enabled source. Named sources are used even when
// disabled.
func Select(sources []Source, names []string) ([]Source, error) {
	if len(names) == 0 {
		return Enabled(sources), nil
	}

	byName := make(map[string]Source, len(sources))
	for _, s := range sources {
		byName[strings.ToLower(s.Name)] = s
		byName[s.Slug()] = s
	}

	out := make([]Source, 0, len(names))
	for _, name := range names {
		s, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
		out = append(out, s)
	}
	return out, nil
}

// EstimatedTotal sums EstimatedSize over sources.
func EstimatedTotal(sources []Source) int {
	total := 0
	for _, s := range sources {
		total += s.EstimatedSize
	}
	return total
}
