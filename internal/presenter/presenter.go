package presenter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
)

// Documentation anchors, relative to the docs base URL.
const (
	DocsListMaps     = "maps.md#get-all-maps"
	DocsCreateGame   = "games.md#create-game"
	DocsGameState    = "games.md#get-game-state"
	DocsStartGame    = "games.md#start-game"
	DocsJoinGame     = "games.md#join-game"
	DocsGetPlayers   = "games.md#get-players-in-current-game"
	DocsMakeMove     = "players.md#make-move"
	DocsGetPosition  = "players.md#get-position"
	publicGameNotice = "‼ This command creates a new PUBLIC game on the PUBLIC API, do not abuse this!"
	saveTokenNotice  = "❗ fwcli can save this token and use it with commands that require tokens later."
)

// Presenter prints command results for humans.
type Presenter struct {
	out           io.Writer
	docsURL       string
	highlightTeam string
}

func New(out io.Writer, docsURL, highlightTeam string) *Presenter {
	return &Presenter{
		out:           out,
		docsURL:       docsURL,
		highlightTeam: highlightTeam,
	}
}

func (that *Presenter) Welcome() {
	that.println("👋 Welcome to FourWeekCLI - provided by Team NaN.")
}

func (that *Presenter) Docs(anchor string) {
	that.printf("📕 Documentation: %s/%s\n", that.docsURL, anchor)
}

// Fetched - shows which URL was called and how long the service took to answer.
func (that *Presenter) Fetched(url string, elapsed time.Duration) {
	that.printf("📞 Calling: %s\n", url)
	that.printf("⏰ Response time: %s\n", elapsed)
}

func (that *Presenter) TokenFromStore() {
	that.println("🔑 Read session token from disk.")
}

func (that *Presenter) Maps(maps []entity.Map) {
	for _, m := range maps {
		that.printf("\n---\n🗺 Map Name: %s\n🎲 Available Rounds: \n", m.Name)

		for _, rounds := range m.Rounds {
			that.printf(" - %s\n", rounds)
		}
	}
}

func (that *Presenter) PublicGameNotice() {
	that.println(publicGameNotice)
}

func (that *Presenter) GameCreated(session *entity.GameSession) {
	that.println("🎉 Created new game!")
	that.printf("🔑 User session token: %s\n", session.Token)
	that.printf("🏓 Game join code: %s\n", session.JoinCode)
	that.println(saveTokenNotice)
}

func (that *Presenter) Joined(playerName, sessionID string) {
	that.printf("\n🎉 %s has joined the game!\n", playerName)
	that.printf("🔑 Session token: %s\n", sessionID)
	that.println(saveTokenNotice)
}

// TokenSaved - reports the outcome of the save question.
func (that *Presenter) TokenSaved(saved bool) {
	if saved {
		that.println("✅ Session token saved.")
		return
	}

	that.println("✅ All done.")
}

func (that *Presenter) GameState(state *entity.GameState) {
	that.printf("\n🕹 Game State: %s\n🎲 Round number: %s\n💬 Message: %s\n", state.State, state.Round, state.Message)
}

func (that *Presenter) GameStarted() {
	that.println("\n👍 Lobby closed & Game started! 🎉🎉🎉")
}

func (that *Presenter) Players(players []entity.Player) {
	if len(players) == 0 {
		that.println("\n❌ Invalid game or no players in session.")
		return
	}

	for _, player := range players {
		that.printf("\n---\n🤺 Player Name: %s\n🔴 Player Colour: %s\n", player.Name, player.Colour)
	}
}

func (that *Presenter) Moved() {
	that.println("✅ Moved.")
}

func (that *Presenter) Position(location string) {
	that.printf("\n📍 Location: %s\n", location)
}

// Leaderboard - prints teams in ranked order with aligned scores, flagging the highlighted team.
func (that *Presenter) Leaderboard(board *entity.Leaderboard) {
	width := 0
	for _, team := range board.Teams {
		width = max(width, runewidth.StringWidth(team.Name))
	}

	highlighted := false

	for _, team := range board.Teams {
		marker := "🤼"
		if team.Name == that.highlightTeam {
			marker = "🤼 ❗"
			highlighted = true
		}

		that.printf("%s %s - %s\n", marker, runewidth.FillRight(team.Name, width), formatScore(team.Score))
	}

	if highlighted {
		that.printf("\n❗* - %s - Developers of api-tool.\n", that.highlightTeam)
	}

	that.printf("\n--------\n🎉Top Scoring Team 🎉\n%s\nScore: %s points.\n", board.Top.Name, formatScore(board.Top.Score))
}

func (that *Presenter) Aborted() {
	that.println("❌ Aborted.")
}

// Failure - prints why a command stopped. Remote failures show the service's code and description.
func (that *Presenter) Failure(err error) {
	var remoteErr *apperror.RemoteError

	switch {
	case errors.As(err, &remoteErr):
		that.printf("\n\n😭 Failed to get data:\nError: %s\nMessage: %s\n", remoteErr.Code, remoteErr.Description)
	case errors.Is(err, apperror.ErrInvalidTicket):
		that.println("❗ Ticket must be yellow/red/green!")
	case errors.Is(err, apperror.ErrAborted):
		that.Aborted()
	default:
		that.printf("\n😭 %s\n", err)
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func (that *Presenter) println(text string) {
	_, _ = fmt.Fprintln(that.out, text)
}

func (that *Presenter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
