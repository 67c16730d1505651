package parser

import (
	"regexp"
	"strings"
)

// ParsedEntry represents a timer description parsed from natural language
type ParsedEntry struct {
	Description string
	Project     string
	Tags        []string
	Errors      []string
}

// ParseTitle extracts metadata from a timer description using natural syntax
// Syntax: "Write report #deep,writing @acme"
func ParseTitle(input string) ParsedEntry {
	result := ParsedEntry{
		Description: input,
		Tags:        []string{},
		Errors:      []string{},
	}

	// Extract tags (#tag1,tag2 or #tag1 #tag2)
	tagRegex := regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	tagMatches := tagRegex.FindAllStringSubmatch(input, -1)
	for _, match := range tagMatches {
		if len(match) > 1 {
			// Split by comma in case of #tag1,tag2
			tagGroup := strings.Split(match[1], ",")
			for _, tag := range tagGroup {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					result.Tags = append(result.Tags, tag)
				}
			}
		}
	}
	// Remove from description
	input = tagRegex.ReplaceAllString(input, "")

	// Extract project (@project-name)
	projectRegex := regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	projectMatches := projectRegex.FindStringSubmatch(input)
	if len(projectMatches) > 1 {
		result.Project = projectMatches[1]
		// Remove from description
		input = projectRegex.ReplaceAllString(input, "")
	}

	// Clean up the description (remove extra spaces)
	result.Description = strings.Join(strings.Fields(input), " ")
	result.Description = strings.TrimSpace(result.Description)

	if result.Description == "" {
		result.Errors = append(result.Errors, "Timer description cannot be empty")
	}

	return result
}
