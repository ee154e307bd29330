package wordlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// MaxEntryLength is the longest external entry kept.
const MaxEntryLength = 100

// ParseExternal extracts candidates from a raw downloaded list. Blank lines
// and lines starting with "#" or "//" are skipped. For "identifier:secret"
// lines only the text after the first colon is kept. Empty entries and
// entries longer than MaxEntryLength are dropped, as are repeats.
func ParseExternal(text string) []string {
	set := NewSet(0)
	for line := range strings.Lines(text) {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") || strings.HasPrefix(entry, "//") {
			continue
		}
		if _, secret, ok := strings.Cut(entry, ":"); ok {
			entry = strings.TrimSpace(secret)
		}
		if entry == "" || len([]rune(entry)) > MaxEntryLength {
			continue
		}
		set.Add(entry)
	}
	return set.Items()
}

// ParseExternalJSON reads a JSON array whose elements are strings or objects
// with a "password" field. Length limits match ParseExternal.
func ParseExternalJSON(data []byte) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json wordlist: %w", err)
	}

	set := NewSet(len(raw))
	for _, item := range raw {
		var entry string
		if err := json.Unmarshal(item, &entry); err != nil {
			var obj struct {
				Password string `json:"password"`
			}
			if json.Unmarshal(item, &obj) != nil {
				continue
			}
			entry = obj.Password
		}
		entry = strings.TrimSpace(entry)
		if entry == "" || len([]rune(entry)) > MaxEntryLength {
			continue
		}
		set.Add(entry)
	}
	return set.Items(), nil
}

// ReadFile loads a plain wordlist, one candidate per line. Lines are trimmed
// and blank lines skipped; no other filtering is applied.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := NewSet(1024)
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			set.Add(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return set.Items(), nil
}
