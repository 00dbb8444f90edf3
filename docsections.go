//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import "strings"

// SplitDocSections implements the doc-comment section rules of spec
// §4.9: successive non-empty lines concatenate (with newlines) until a
// blank line; a single blank line joins two runs of lines within the
// same section (the blank line itself is preserved as a paragraph
// break); two consecutive blank lines terminate the current section.
// Sections map, in declaration order, to description, header, footer.
//
// This is the one piece of spec §4.9 that belongs to the core even
// though the derive-style code generator that would normally feed it
// raw doc-comment text is out of scope: the section-splitting algorithm
// itself is specified behavior, not syntax transformation.
func SplitDocSections(raw string) (description, header, footer string) {
	lines := strings.Split(raw, "\n")

	var sections []string
	var current []string
	blankRun := 0

	flush := func() {
		if len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blankRun++
			continue
		}
		switch {
		case blankRun >= 2:
			flush()
		case blankRun == 1:
			current = append(current, "")
		}
		blankRun = 0
		current = append(current, line)
	}
	flush()

	if len(sections) > 0 {
		description = sections[0]
	}
	if len(sections) > 1 {
		header = sections[1]
	}
	if len(sections) > 2 {
		footer = sections[2]
	}
	return description, header, footer
}
