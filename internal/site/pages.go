package site

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/awc-hub/awchub/internal/content"
	"github.com/awc-hub/awchub/internal/parser"
	"github.com/awc-hub/awchub/internal/route"
	"github.com/awc-hub/awchub/internal/search"
)

// section is one kind's list/detail page.
type section struct {
	Kind     content.Kind
	Path     string
	Nav      string
	Heading  string
	NotFound string
	Back     string
	Empty    string
}

// NoResults is shown when a search matches nothing in a non-empty collection.
const NoResults = "검색 결과가 없습니다."

var (
	tournamentSection = section{
		Kind:     content.KindTournament,
		Path:     "/tournaments",
		Nav:      "대회 정보",
		Heading:  "🏆 대회 정보",
		NotFound: "선택한 ID의 대회 정보를 찾을 수 없습니다.",
		Back:     "◀ 대회 목록으로 돌아가기",
		Empty:    "등록된 대회가 없습니다.",
	}
	playerSection = section{
		Kind:     content.KindPlayer,
		Path:     "/players",
		Nav:      "선수 정보",
		Heading:  "🧑‍💻 선수 정보",
		NotFound: "선택한 ID의 선수 정보를 찾을 수 없습니다.",
		Back:     "◀ 선수 목록으로 돌아가기",
		Empty:    "등록된 선수가 없습니다.",
	}
	levelSection = section{
		Kind:     content.KindLevel,
		Path:     "/levels",
		Nav:      "레벨 목록",
		Heading:  "🎶 레벨 목록",
		NotFound: "요청한 레벨을 찾을 수 없습니다.",
		Back:     "◀ 레벨 목록으로 돌아가기",
		Empty:    "등록된 레벨이 없습니다.",
	}
	newsSection = section{
		Kind:     content.KindNews,
		Path:     "/news",
		Nav:      "최신 뉴스",
		Heading:  "📰 최신 뉴스",
		NotFound: "선택한 ID의 뉴스 정보를 찾을 수 없습니다.",
		Back:     "◀ 뉴스 목록으로 돌아가기",
		Empty:    "등록된 뉴스가 없습니다.",
	}

	sections = []section{tournamentSection, playerSection, levelSection, newsSection}
)

// listView is the data of a list page.
type listView[T any] struct {
	Section section
	Items   []T
	Query   string
	// Empty is set when nothing is registered at all, as opposed to a
	// search that matched nothing.
	Empty bool
}

func (v listView[T]) NoResults() string { return NoResults }

// detailView is the data of a detail page.
type detailView[T any] struct {
	Section section
	Item    T
	BackURL string
}

type tournamentDetail struct {
	detailView[content.Tournament]
	Description template.HTML
}

type playerView struct {
	content.Player
	Image string
	Body  template.HTML
}

type newsView struct {
	content.NewsItem
	Preview string
	Body    template.HTML
}

type levelListView struct {
	listView[content.Level]
	Tournaments  []tournamentOption
	TournamentID string
}

type tournamentOption struct {
	ID       string
	Title    string
	Selected bool
}

// load returns a typed collection, or writes a 500 and returns false.
func load[T content.Entity](s *Server, w http.ResponseWriter, r *http.Request, kind content.Kind) ([]T, bool) {
	res, err := s.source.GetOrLoad(kind)
	if err != nil {
		s.logger.Error("failed to load content", "kind", kind, "error", err)
		s.renderError(w, r, http.StatusInternalServerError, "데이터 로딩 중 오류가 발생했습니다.", "/", "◀ 메인으로 돌아가기")
		return nil, false
	}
	return content.Collect[T](res.Items), true
}

func searchTerm(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(route.ParamSearch))
}

func (s *Server) sectionHandler(sec section) http.HandlerFunc {
	switch sec.Kind {
	case content.KindTournament:
		return s.handleTournaments
	case content.KindPlayer:
		return s.handlePlayers
	case content.KindLevel:
		return s.handleLevels
	default:
		return s.handleNews
	}
}

// notFound renders the stale-link page for an unknown id.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request, sec section) {
	backURL := route.ListURL(sec.Path, r.URL.Query())
	s.logger.Debug("record not found", "kind", sec.Kind, "id", r.URL.Query().Get(route.ParamID))
	s.render(w, r, http.StatusNotFound, "error", page{
		Title: sec.Nav,
		Nav:   s.nav(sec.Path),
		Data:  errorView{Message: sec.NotFound, BackURL: backURL, BackLabel: sec.Back},
	})
}

type homeView struct {
	Featured *content.Tournament
	Rest     []content.Tournament
	Empty    string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	items, ok := load[content.Tournament](s, w, r, content.KindTournament)
	if !ok {
		return
	}
	view := homeView{Empty: tournamentSection.Empty}
	if len(items) > 0 {
		view.Featured = &items[0]
		view.Rest = items[1:]
	}
	s.render(w, r, http.StatusOK, "home", page{Nav: s.nav("/"), Data: view})
}

func (s *Server) handleTournaments(w http.ResponseWriter, r *http.Request) {
	sec := tournamentSection
	items, ok := load[content.Tournament](s, w, r, sec.Kind)
	if !ok {
		return
	}

	rt := route.Resolve(items, r.URL.Query())
	switch {
	case rt.IsDetail():
		view := tournamentDetail{
			detailView: detailView[content.Tournament]{
				Section: sec,
				Item:    rt.Item,
				BackURL: route.ListURL(sec.Path, r.URL.Query()),
			},
		}
		if !rt.Item.Description.IsZero() {
			view.Description = template.HTML(s.renderer.MustRender(rt.Item.Description.String()))
		}
		s.render(w, r, http.StatusOK, "tournament", page{Title: rt.Item.DisplayTitle(), Nav: s.nav(sec.Path), Data: view})
	case rt.NotFound:
		s.notFound(w, r, sec)
	default:
		term := searchTerm(r)
		s.render(w, r, http.StatusOK, "tournaments", page{Title: sec.Nav, Nav: s.nav(sec.Path), Data: listView[content.Tournament]{
			Section: sec,
			Items:   search.Tournaments(items, term),
			Query:   term,
			Empty:   len(items) == 0,
		}})
	}
}

func (s *Server) playerView(p content.Player) playerView {
	v := playerView{Player: p, Image: s.assets.ImageURL(p.ProfileImage.String())}
	if strings.TrimSpace(p.Body) != "" {
		v.Body = template.HTML(p.ContentHTML)
	}
	return v
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	sec := playerSection
	items, ok := load[content.Player](s, w, r, sec.Kind)
	if !ok {
		return
	}

	rt := route.Resolve(items, r.URL.Query())
	switch {
	case rt.IsDetail():
		s.render(w, r, http.StatusOK, "player", page{Title: rt.Item.DisplayTitle(), Nav: s.nav(sec.Path), Data: detailView[playerView]{
			Section: sec,
			Item:    s.playerView(rt.Item),
			BackURL: route.ListURL(sec.Path, r.URL.Query()),
		}})
	case rt.NotFound:
		s.notFound(w, r, sec)
	default:
		term := searchTerm(r)
		filtered := search.Players(items, term)
		views := make([]playerView, 0, len(filtered))
		for _, p := range filtered {
			views = append(views, s.playerView(p))
		}
		s.render(w, r, http.StatusOK, "players", page{Title: sec.Nav, Nav: s.nav(sec.Path), Data: listView[playerView]{
			Section: sec,
			Items:   views,
			Query:   term,
			Empty:   len(items) == 0,
		}})
	}
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	sec := levelSection
	items, ok := load[content.Level](s, w, r, sec.Kind)
	if !ok {
		return
	}

	rt := route.Resolve(items, r.URL.Query())
	switch {
	case rt.IsDetail():
		s.render(w, r, http.StatusOK, "level", page{Title: rt.Item.DisplayTitle(), Nav: s.nav(sec.Path), Data: detailView[content.Level]{
			Section: sec,
			Item:    rt.Item,
			BackURL: route.ListURL(sec.Path, r.URL.Query()),
		}})
		return
	case rt.NotFound:
		s.notFound(w, r, sec)
		return
	}

	tournaments, ok := load[content.Tournament](s, w, r, content.KindTournament)
	if !ok {
		return
	}

	// An unknown tournament_id falls back to showing every tournament.
	selected := strings.TrimSpace(r.URL.Query().Get(route.ParamTournamentID))
	if _, known := content.Find(tournaments, selected); !known {
		selected = ""
	}
	options := make([]tournamentOption, 0, len(tournaments))
	for _, t := range tournaments {
		options = append(options, tournamentOption{ID: t.ID, Title: t.DisplayTitle(), Selected: t.ID == selected})
	}

	term := searchTerm(r)
	shown := search.Levels(search.LevelsInTournament(items, selected), term)
	s.render(w, r, http.StatusOK, "levels", page{Title: sec.Nav, Nav: s.nav(sec.Path), Data: levelListView{
		listView: listView[content.Level]{
			Section: sec,
			Items:   shown,
			Query:   term,
			Empty:   len(items) == 0,
		},
		Tournaments:  options,
		TournamentID: selected,
	}})
}

func (s *Server) newsView(n content.NewsItem) newsView {
	v := newsView{NewsItem: n, Preview: parser.Preview(n.ContentHTML, parser.PreviewLength)}
	if strings.TrimSpace(n.Body) != "" {
		v.Body = template.HTML(n.ContentHTML)
	}
	return v
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	sec := newsSection
	items, ok := load[content.NewsItem](s, w, r, sec.Kind)
	if !ok {
		return
	}

	rt := route.Resolve(items, r.URL.Query())
	switch {
	case rt.IsDetail():
		s.render(w, r, http.StatusOK, "article", page{Title: rt.Item.DisplayTitle(), Nav: s.nav(sec.Path), Data: detailView[newsView]{
			Section: sec,
			Item:    s.newsView(rt.Item),
			BackURL: route.ListURL(sec.Path, r.URL.Query()),
		}})
	case rt.NotFound:
		s.notFound(w, r, sec)
	default:
		term := searchTerm(r)
		filtered := search.News(items, term)
		views := make([]newsView, 0, len(filtered))
		for _, n := range filtered {
			views = append(views, s.newsView(n))
		}
		s.render(w, r, http.StatusOK, "news", page{Title: sec.Nav, Nav: s.nav(sec.Path), Data: listView[newsView]{
			Section: sec,
			Items:   views,
			Query:   term,
			Empty:   len(items) == 0,
		}})
	}
}
