package content

// DefaultBackgroundPrefix is prepended to a tournament's year to derive its card background class.
const DefaultBackgroundPrefix = "tournament_bg_"

// Normalizer fills the ID and derived fields of decoded records.
// The file name is authoritative: any id key in the record is overwritten.
type Normalizer struct {
	BackgroundPrefix string
}

// NewNormalizer returns a Normalizer using DefaultBackgroundPrefix.
func NewNormalizer() Normalizer {
	return Normalizer{BackgroundPrefix: DefaultBackgroundPrefix}
}

// Tournament sets the ID and derives BgImageClass from Year when the record did not set one.
func (n Normalizer) Tournament(t *Tournament, stem string) {
	t.ID = stem
	if t.BgImageClass == nil {
		bg := Text("")
		if !t.Year.IsZero() {
			bg = Text(n.BackgroundPrefix + t.Year.String())
		}
		t.BgImageClass = &bg
	}
	t.Extra = extraFields(t.Extra)
}

// Player sets the ID.
func (n Normalizer) Player(p *Player, stem string) {
	p.ID = stem
	p.Extra = extraFields(p.Extra)
}

// Level sets the ID.
func (n Normalizer) Level(l *Level, stem string) {
	l.ID = stem
	l.Extra = extraFields(l.Extra)
}

// News sets the ID.
func (n Normalizer) News(item *NewsItem, stem string) {
	item.ID = stem
	item.Extra = extraFields(item.Extra)
}

// extraFields drops keys that are derived from the file and converts the rest to plain values.
func extraFields(m map[string]interface{}) map[string]interface{} {
	delete(m, "id")
	return plainMap(m)
}
