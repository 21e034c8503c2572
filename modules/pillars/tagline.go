package pillars

import "github.com/wizardwayz/portal/pkg/pillar"

// Segment is one run of the tagline. Letter segments carry the pillar bound
// to them; plain segments only carry Text.
type Segment struct {
	Text     string
	Category pillar.Category
	Pillar   string
	Href     string
	// Index is unique across the tagline and keys the hover signal.
	Index int
}

// Interactive reports whether the segment is a bound letter.
func (s Segment) Interactive() bool {
	return s.Pillar != ""
}

// TaglineParams is the two-line homepage tagline.
type TaglineParams struct {
	Lines [][]Segment
}

// taglineLayout spells "The MEME is the Magic / The Magic is the MEME". Each
// "M"/"E" entry consumes the next pillar of that category in order.
var taglineLayout = [][]string{
	{"The ", "M", "E", "M", "E", " is the Magic"},
	{"The Magic is the ", "M", "E", "M", "E"},
}

// BuildTagline binds a's pillars to the tagline letters. Letters left over
// when a category has fewer than pillar.TaglineSlots names render as plain
// text.
func BuildTagline(a pillar.Assignment) TaglineParams {
	next := map[pillar.Category][]string{
		pillar.CategoryM: a.M,
		pillar.CategoryE: a.E,
	}

	var (
		lines = make([][]Segment, 0, len(taglineLayout))
		index int
	)
	for _, layout := range taglineLayout {
		line := make([]Segment, 0, len(layout))
		for _, part := range layout {
			cat := pillar.Category(part)
			if !cat.Valid() {
				line = append(line, Segment{Text: part})
				continue
			}

			seg := Segment{Text: part, Category: cat}
			if names := next[cat]; len(names) > 0 {
				seg.Pillar = names[0]
				seg.Href = PillarPath(pillar.Slugify(names[0]))
				seg.Index = index
				index++
				next[cat] = names[1:]
			}
			line = append(line, seg)
		}
		lines = append(lines, line)
	}
	return TaglineParams{Lines: lines}
}

// PillarPath is the site path of the pillar page for slug.
func PillarPath(slug string) string {
	return "/pillars/" + slug
}
