// Package walk resolves the CLI's positional arguments (file paths,
// directory paths, glob patterns) into a concrete list of formattable
// files, and reads/writes them through a configurable single-byte
// encoding.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// formattableExtensions are the only extensions auto-included when a
// directory is walked; an explicit file path is always processed
// regardless of its extension.
var formattableExtensions = map[string]bool{
	".pas": true,
	".dpr": true,
	".dpk": true,
}

// IsFormattable reports whether path has one of the auto-included
// extensions, case-insensitively.
func IsFormattable(path string) bool {
	return formattableExtensions[strings.ToLower(filepath.Ext(path))]
}

// Resolve expands paths (a mix of file paths, directory paths, and glob
// patterns) into a deduplicated, order-preserving list of files. A
// directory is walked recursively and filtered to IsFormattable; a glob
// pattern is expanded as-is (every match is processed, regardless of
// extension, since the user spelled it out); a plain file path is always
// included. Entries matching nothing are returned in invalid, not
// silently dropped.
func Resolve(paths []string) (files []string, invalid []string) {
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case err == nil && info.IsDir():
			_ = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return nil
				}
				if IsFormattable(path) {
					add(path)
				}
				return nil
			})
		case err == nil:
			add(p)
		default:
			matches, globErr := doublestar.FilepathGlob(p)
			if globErr != nil || len(matches) == 0 {
				invalid = append(invalid, p)
				continue
			}
			for _, m := range matches {
				add(m)
			}
		}
	}
	return files, invalid
}

// Codec resolves a configured encoding name to its golang.org/x/text
// encoding.Encoding, defaulting to windows-1252 (the spec's default
// 8-bit codec) for an empty or unrecognised name.
func Codec(name string) encoding.Encoding {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "utf-16", "utf16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "windows-1252", "cp1252", "":
		return charmap.Windows1252
	default:
		return charmap.Windows1252
	}
}

// Read decodes the file at path using codec.
func Read(path string, codec encoding.Encoding) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	decoded, err := codec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Write encodes text using codec and overwrites the file at path,
// preserving its existing permissions.
func Write(path string, text string, codec encoding.Encoding) error {
	encoded, err := codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	mode := fs.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, encoded, mode)
}
