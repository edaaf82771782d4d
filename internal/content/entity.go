package content

// Entity is implemented by every record kind.
type Entity interface {
	// EntityID returns the record ID, derived from the file name.
	EntityID() string
	// EntityKind returns the kind the record was loaded as.
	EntityKind() Kind
	// DisplayTitle returns the name shown in lists and headings.
	DisplayTitle() string
}

// VODLink is a recorded video of a tournament.
type VODLink struct {
	Title Text `yaml:"title" json:"title"`
	URL   Text `yaml:"url" json:"url"`
}

// Tournament is a record from tournaments/<id>.yaml.
type Tournament struct {
	ID           string    `yaml:"-" json:"id"`
	Title        Text      `yaml:"title" json:"title"`
	Date         Text      `yaml:"date" json:"date,omitempty"`
	Year         Text      `yaml:"year" json:"year,omitempty"`
	Organizer    Text      `yaml:"organizer" json:"organizer,omitempty"`
	Prize        Text      `yaml:"prize" json:"prize,omitempty"`
	Winner       Text      `yaml:"winner" json:"winner,omitempty"`
	Status       Text      `yaml:"status" json:"status,omitempty"`
	Description  Text      `yaml:"description" json:"description,omitempty"`
	BracketImage Text      `yaml:"bracket_image" json:"bracket_image,omitempty"`
	VODLinks     []VODLink `yaml:"vod_links" json:"vod_links,omitempty"`

	// BgImageClass is nil only until the record is normalized.
	BgImageClass *Text `yaml:"bg_image_class" json:"bg_image_class"`

	Extra map[string]interface{} `yaml:",inline" json:"extra,omitempty"`
}

func (t Tournament) EntityID() string { return t.ID }
func (t Tournament) EntityKind() Kind { return KindTournament }
func (t Tournament) DisplayTitle() string { return t.Title.Or(t.ID) }

// Background returns the CSS class used for the tournament's card.
func (t Tournament) Background() string {
	if t.BgImageClass == nil {
		return ""
	}
	return string(*t.BgImageClass)
}

// Player is a record from players/<id>.md.
type Player struct {
	ID           string `yaml:"-" json:"id"`
	Nickname     Text   `yaml:"nickname" json:"nickname"`
	RealName     Text   `yaml:"real_name" json:"real_name,omitempty"`
	Country      Text   `yaml:"country" json:"country,omitempty"`
	Team         Text   `yaml:"team" json:"team,omitempty"`
	ProfileImage Text   `yaml:"profile_image" json:"profile_image,omitempty"`
	Twitter      Text   `yaml:"twitter" json:"twitter,omitempty"`
	Twitch       Text   `yaml:"twitch" json:"twitch,omitempty"`
	YouTube      Text   `yaml:"youtube" json:"youtube,omitempty"`

	// ContentHTML is the rendered markdown body.
	ContentHTML string `yaml:"-" json:"content_html"`
	// Body is the markdown that produced ContentHTML.
	Body string `yaml:"-" json:"-"`

	Extra map[string]interface{} `yaml:",inline" json:"extra,omitempty"`
}

func (p Player) EntityID() string { return p.ID }
func (p Player) EntityKind() Kind { return KindPlayer }
func (p Player) DisplayTitle() string { return p.Nickname.Or(p.ID) }

// SocialLink is a link to a player's profile on another site.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SocialLinks returns links for the handles the player has set.
func (p Player) SocialLinks() []SocialLink {
	var links []SocialLink
	if !p.Twitter.IsZero() {
		links = append(links, SocialLink{Name: "Twitter", URL: "https://twitter.com/" + p.Twitter.String()})
	}
	if !p.Twitch.IsZero() {
		links = append(links, SocialLink{Name: "Twitch", URL: "https://twitch.tv/" + p.Twitch.String()})
	}
	if !p.YouTube.IsZero() {
		links = append(links, SocialLink{Name: "YouTube", URL: "https://youtube.com/@" + p.YouTube.String()})
	}
	return links
}

// Level is a record from levels/<id>.yaml.
type Level struct {
	ID               string `yaml:"-" json:"id"`
	Title            Text   `yaml:"title" json:"title"`
	Artist           Text   `yaml:"artist" json:"artist,omitempty"`
	DetailArtist     Text   `yaml:"detail_artist" json:"detail_artist,omitempty"`
	Creator          Text   `yaml:"creator" json:"creator,omitempty"`
	DetailCreator    Text   `yaml:"detail_creator" json:"detail_creator,omitempty"`
	DifficultyRating Text   `yaml:"difficulty_rating" json:"difficulty_rating,omitempty"`
	BPM              Text   `yaml:"bpm" json:"bpm,omitempty"`
	Tiles            Text   `yaml:"tiles" json:"tiles,omitempty"`
	DownloadURL      Text   `yaml:"download_url" json:"download_url,omitempty"`
	YouTubeVideoID   Text   `yaml:"youtube_video_id" json:"youtube_video_id,omitempty"`
	MiniTitle        Text   `yaml:"minititle" json:"minititle,omitempty"`

	// TournamentID refers to a tournament by ID. It is a lookup key only.
	TournamentID Text `yaml:"tournament_id" json:"tournament_id,omitempty"`

	Extra map[string]interface{} `yaml:",inline" json:"extra,omitempty"`
}

func (l Level) EntityID() string { return l.ID }
func (l Level) EntityKind() Kind { return KindLevel }
func (l Level) DisplayTitle() string { return l.Title.Or(l.ID) }

// NewsItem is a record from news/<id>.md.
type NewsItem struct {
	ID     string `yaml:"-" json:"id"`
	Title  Text   `yaml:"title" json:"title"`
	Date   Text   `yaml:"date" json:"date,omitempty"`
	Author Text   `yaml:"author" json:"author,omitempty"`
	Tags   List   `yaml:"tags" json:"tags,omitempty"`

	// ContentHTML is the rendered markdown body.
	ContentHTML string `yaml:"-" json:"content_html"`
	// Body is the markdown that produced ContentHTML.
	Body string `yaml:"-" json:"-"`

	Extra map[string]interface{} `yaml:",inline" json:"extra,omitempty"`
}

func (n NewsItem) EntityID() string { return n.ID }
func (n NewsItem) EntityKind() Kind { return KindNews }
func (n NewsItem) DisplayTitle() string { return n.Title.Or(n.ID) }

// Collect returns the items of entities that are of type T, in order.
func Collect[T Entity](entities []Entity) []T {
	out := make([]T, 0, len(entities))
	for _, e := range entities {
		if item, ok := e.(T); ok {
			out = append(out, item)
		}
	}
	return out
}

// Entities converts a typed slice to a slice of Entity.
func Entities[T Entity](items []T) []Entity {
	out := make([]Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Find returns the first item whose ID equals id.
func Find[T Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
