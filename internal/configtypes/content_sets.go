package configtypes

// Content set categories
const (
	CategoryRPM       = "rpm"
	CategorySRPM      = "srpm"
	CategoryDebuginfo = "debuginfo"
)

// Categories lists the content set categories every mapping carries
var Categories = []string{CategoryRPM, CategorySRPM, CategoryDebuginfo}

// ContentSet pairs the repository packages are read from with the one they
// are published to.
type ContentSet struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

// ContentSetMapping holds the content sets of the three RPM categories
type ContentSetMapping struct {
	RPM       ContentSet `mapstructure:"rpm"`
	SRPM      ContentSet `mapstructure:"srpm"`
	Debuginfo ContentSet `mapstructure:"debuginfo"`
}

// LoadContentSetMapping reads the rpm, srpm and debuginfo entries of data.
// Each must provide input and output. Unknown keys are ignored.
func LoadContentSetMapping(data map[string]any) (*ContentSetMapping, error) {
	var m ContentSetMapping
	required := make([]string, 0, len(Categories)*3)
	for _, category := range Categories {
		required = append(required, category, category+".input", category+".output")
	}

	if err := decodeFields(data, &m, "content_sets", required...); err != nil {
		return nil, err
	}
	return &m, nil
}

// Get returns the content set of a category
func (m *ContentSetMapping) Get(category string) (ContentSet, bool) {
	switch category {
	case CategoryRPM:
		return m.RPM, true
	case CategorySRPM:
		return m.SRPM, true
	case CategoryDebuginfo:
		return m.Debuginfo, true
	default:
		return ContentSet{}, false
	}
}

// ExportMap returns {category: [input, output]} for every category
func (m *ContentSetMapping) ExportMap() map[string][2]string {
	out := make(map[string][2]string, len(Categories))
	for _, category := range Categories {
		cs, _ := m.Get(category)
		out[category] = [2]string{cs.Input, cs.Output}
	}
	return out
}

// documentMap returns the mapping in the shape LoadContentSetMapping reads
func (m *ContentSetMapping) documentMap() map[string]any {
	out := make(map[string]any, len(Categories))
	for _, category := range Categories {
		cs, _ := m.Get(category)
		out[category] = map[string]any{"input": cs.Input, "output": cs.Output}
	}
	return out
}
