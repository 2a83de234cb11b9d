package chat

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Gk2403-techi/greenscape/internal/catalog"
	"github.com/Gk2403-techi/greenscape/internal/core"
	"github.com/Gk2403-techi/greenscape/internal/llm"
	"github.com/Gk2403-techi/greenscape/internal/logging"
	"github.com/Gk2403-techi/greenscape/internal/plan"
)

// MenuReply is sent when no rule matched and no text provider answered.
const MenuReply = "I can modify the **Budget**, **Size**, **Materials**, or explain the **Soil**. What do you need?"

var digitRun = regexp.MustCompile(`\d+`)

// Parser maps a chat message to state changes and a reply.
type Parser struct {
	ref    *catalog.Reference
	text   core.TextProvider
	logger *zap.Logger
}

func NewParser(ref *catalog.Reference, text core.TextProvider, logger *zap.Logger) *Parser {
	return &Parser{ref: ref, text: text, logger: logging.OrNop(logger)}
}

// Parse applies the first matching keyword rule. A size or budget message
// without a number matches its rule but produces no reply, so it is passed
// on to the text provider like any unmatched message.
func (p *Parser) Parse(ctx context.Context, message string, state plan.ProjectState) (plan.Changes, string) {
	msg := strings.ToLower(message)
	num, hasNum := firstNumber(msg)

	var (
		changes plan.Changes
		reply   string
	)

	switch {
	case strings.Contains(msg, "size") || strings.Contains(msg, "sqft"):
		if hasNum {
			changes.Dimensions = &num
			reply = fmt.Sprintf("Recalculating for **%d sqft**.", num)
		}
	case strings.Contains(msg, "budget"):
		if hasNum {
			changes.UserBudget = &num
			reply = fmt.Sprintf("Budget limit set to **%d**.", num)
		}
	case strings.Contains(msg, "pool"):
		changes.WaterFeature = ptr("Swimming Pool")
		reply = "Added a **Swimming Pool** to the layout."
	case strings.Contains(msg, "cheap"):
		changes.QualityTier = ptr("Economy")
		reply = "Switched to **Economy** materials."
	case strings.Contains(msg, "premium"):
		changes.QualityTier = ptr("Premium")
		reply = "Upgraded to **Premium** materials."
	case strings.Contains(msg, "soil") || strings.Contains(msg, "advice"):
		info := p.ref.Soil(state.SoilOrDefault())
		reply = fmt.Sprintf("**Soil Analysis:** %s Recommended amendment: %s.", info.Advice, info.Amendment)
	}

	if reply == "" {
		reply = p.fallback(ctx, message)
	}

	return changes, reply
}

func (p *Parser) fallback(ctx context.Context, message string) string {
	if p.text == nil {
		return MenuReply
	}
	out, err := p.text.Complete(ctx, llm.BuildChatPrompt(message))
	if err != nil || strings.TrimSpace(out) == "" {
		p.logger.Warn("chat fallback failed", zap.Error(err))
		return MenuReply
	}
	return out
}

// firstNumber returns the first digit run once thousands commas are removed.
// Runs too large for an int32 are ignored.
func firstNumber(msg string) (int, bool) {
	run := digitRun.FindString(strings.ReplaceAll(msg, ",", ""))
	if run == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(run, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func ptr[T any](v T) *T { return &v }
