package utilcss

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/edsrzf/mmap-go"
)

// FileLocation tracks where a class was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the first character of the class
	Text   string // Full line content for source display
}

// ClassSet is the deduplicated set of candidate classes across all content files.
// Every location is kept for reporting, in extraction order.
type ClassSet struct {
	locations map[string][]FileLocation
}

// NewClassSet returns an empty set
func NewClassSet() *ClassSet {
	return &ClassSet{locations: make(map[string][]FileLocation)}
}

// Add records an occurrence of class
func (s *ClassSet) Add(class string, loc FileLocation) {
	s.locations[class] = append(s.locations[class], loc)
}

// Remove drops class from the set
func (s *ClassSet) Remove(class string) {
	delete(s.locations, class)
}

// Has reports whether class was extracted
func (s *ClassSet) Has(class string) bool {
	_, ok := s.locations[class]
	return ok
}

// Location returns the first place class was seen
func (s *ClassSet) Location(class string) (FileLocation, bool) {
	locs := s.locations[class]
	if len(locs) == 0 {
		return FileLocation{}, false
	}
	return locs[0], true
}

// Occurrences returns every place class was seen
func (s *ClassSet) Occurrences(class string) []FileLocation {
	return s.locations[class]
}

// Len returns the number of distinct classes
func (s *ClassSet) Len() int {
	return len(s.locations)
}

// Sorted returns the classes in lexicographic order
func (s *ClassSet) Sorted() []string {
	classes := make([]string, 0, len(s.locations))
	for class := range s.locations {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

const noiseChars = "{}%\"'"

var (
	classAttrPattern = regexp.MustCompile(`class="([^"]+)"`)

	// Starts with an optional hyphen and an alphanumeric, ends with an alphanumeric or
	// the closing bracket of an arbitrary value.
	classShapePattern = regexp.MustCompile(`^-?[A-Za-z0-9].*[A-Za-z0-9\]]$`)

	templateKeywords = []string{"if", "elif", "endif", "for", "endfor"}
)

// CleanToken strips delimiter noise from a raw attribute token and reports whether the
// result looks like a real class name.
func CleanToken(raw string) (string, bool) {
	cleaned := strings.Trim(raw, noiseChars)
	if cleaned == "" {
		return "", false
	}
	if strings.ContainsAny(cleaned, "{}%") {
		return "", false
	}
	for _, kw := range templateKeywords {
		if strings.HasPrefix(cleaned, kw) {
			return "", false
		}
	}
	if !classShapePattern.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}

// ExtractClasses scans text for class="..." attributes and adds every accepted token to set.
// It returns the number of accepted tokens (including repeats).
func ExtractClasses(text, file string, set *ClassSet) int {
	accepted := 0
	lineStarts := lineOffsets(text)

	for _, match := range classAttrPattern.FindAllStringSubmatchIndex(text, -1) {
		if len(match) < 4 {
			continue
		}
		start, end := match[2], match[3]
		value := text[start:end]

		for _, field := range splitFields(value) {
			class, ok := CleanToken(field.text)
			if !ok {
				continue
			}
			offset := start + field.offset + strings.Index(field.text, class)
			set.Add(class, locate(text, lineStarts, offset, file))
			accepted++
		}
	}

	return accepted
}

// ExtractFromFiles reads every file and accumulates classes into one set.
// Unreadable files are logged and skipped.
func ExtractFromFiles(files []string, logger *slog.Logger) (*ClassSet, int) {
	if logger == nil {
		logger = slog.Default()
	}

	set := NewClassSet()
	scanned := 0
	for _, file := range files {
		text, err := readContent(file)
		if err != nil {
			logger.Warn("skipping unreadable content file", "file", file, "error", err)
			continue
		}
		scanned++
		n := ExtractClasses(text, file, set)
		logger.Debug("extracted classes", "file", file, "tokens", n)
	}
	return set, scanned
}

// readContent maps the file into memory and copies it out, falling back to
// os.ReadFile when mmap is unavailable.
func readContent(path string) (string, error) {
	// #nosec G304 - path comes from the configured content patterns
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return "", fmt.Errorf("read %s: %w", path, readErr)
		}
		return string(data), nil
	}
	text := string(m)
	if err := m.Unmap(); err != nil {
		return "", fmt.Errorf("unmap %s: %w", path, err)
	}
	return text, nil
}

type field struct {
	text   string
	offset int
}

// splitFields is strings.Fields that keeps byte offsets
func splitFields(s string) []field {
	var fields []field
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				fields = append(fields, field{text: s[start:i], offset: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, field{text: s[start:], offset: start})
	}
	return fields
}

func lineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func locate(text string, lineStarts []int, offset int, file string) FileLocation {
	line := sort.Search(len(lineStarts), func(i int) bool { return lineStarts[i] > offset })
	lineStart := lineStarts[line-1]
	lineEnd := strings.IndexByte(text[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += lineStart
	}
	return FileLocation{
		File:   file,
		Line:   line,
		Column: offset - lineStart + 1,
		Text:   strings.TrimRight(text[lineStart:lineEnd], "\r"),
	}
}
