package slack

import (
	"fmt"
	"strings"

	"github.com/mauv0809/pong-tracker/internal/league"
	"github.com/slack-go/slack"
)

func (s *Notifier) formatResultNotification(session *league.GameSession) slack.Message {
	var opponent string
	if session.Mode == league.ModeSinglePlayer {
		difficulty := "unknown"
		if session.BotDifficulty != nil {
			difficulty = string(*session.BotDifficulty)
		}
		opponent = fmt.Sprintf("the bot (%s)", difficulty)
	} else if session.Player2Name != nil {
		opponent = *session.Player2Name
	}

	headline := fmt.Sprintf(":table_tennis_paddle_and_ball: *%s* vs *%s*", session.Player1Name, opponent)
	score := fmt.Sprintf("%d - %d", session.Player1Score, session.Player2Score)
	body := fmt.Sprintf("Winner: *%s* (%s, %ds)", session.Winner, score, session.GameDuration)

	msg := slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, headline, false, false), nil, nil),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, body, false, false), nil, nil),
	)
	return msg
}

func (s *Notifier) formatLeaderboard(entries []league.LeaderboardEntry) slack.Message {
	var sb strings.Builder
	sb.WriteString("*Current streak leaderboard*\n")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. *%s* - streak %d (best %d, %d/%d wins)\n",
			i+1, e.Name, e.ConsecutiveWins, e.BestStreak, e.TotalWins, e.TotalGames))
	}
	if len(entries) == 0 {
		sb.WriteString("_No games recorded yet._")
	}

	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, sb.String(), false, false), nil, nil),
	)
}
