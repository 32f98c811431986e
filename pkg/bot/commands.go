package bot

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// commandKind classifies an admin message
type commandKind int

const (
	cmdNone commandKind = iota
	cmdPause
	cmdPauseInvalid
	cmdResume
	cmdStatus
	cmdHelp
)

type adminCommand struct {
	kind     commandKind
	duration time.Duration
}

// pause duration forms, checked in order, longer unit spellings before the
// bare m/h. Prefix matches, trailing text is ignored.
var pausePatterns = []struct {
	re         *regexp.Regexp
	multiplier time.Duration
}{
	{regexp.MustCompile(`^暫停\s*(\d+)\s*分鐘?`), time.Minute},
	{regexp.MustCompile(`^暫停\s*(\d+)\s*mins?`), time.Minute},
	{regexp.MustCompile(`^暫停\s*(\d+)\s*m`), time.Minute},
	{regexp.MustCompile(`^暫停\s*(\d+)\s*小時?`), time.Hour},
	{regexp.MustCompile(`^暫停\s*(\d+)\s*hours?`), time.Hour},
	{regexp.MustCompile(`^暫停\s*(\d+)\s*hrs?`), time.Hour},
	{regexp.MustCompile(`^暫停\s*(\d+)\s*h`), time.Hour},
}

var resumeKeywords = []string{"恢復", "繼續", "啟動", "resume", "start"}

// parseAdminCommand classifies an admin's message. A bare pause command gets
// the configured default duration; a pause command whose duration does not
// parse comes back as cmdPauseInvalid so the sender gets a usage hint instead
// of a silent one-hour pause.
func parseAdminCommand(text string, defaultPause time.Duration) adminCommand {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if strings.HasPrefix(normalized, "暫停") {
		if normalized == "暫停" {
			return adminCommand{kind: cmdPause, duration: defaultPause}
		}
		for _, p := range pausePatterns {
			m := p.re.FindStringSubmatch(normalized)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				break
			}
			return adminCommand{kind: cmdPause, duration: time.Duration(n) * p.multiplier}
		}
		return adminCommand{kind: cmdPauseInvalid}
	}

	if containsAny(normalized, resumeKeywords) {
		return adminCommand{kind: cmdResume}
	}

	switch normalized {
	case "狀態", "status":
		return adminCommand{kind: cmdStatus}
	case "指令", "commands", "admin":
		return adminCommand{kind: cmdHelp}
	}

	return adminCommand{kind: cmdNone}
}

// adminHelpText lists the commands admins may use
const adminHelpText = `👤 管理員指令說明

⏸️ 暫停 Bot
• 暫停 → 暫停 1 小時
• 暫停15分鐘 / 暫停15m / 暫停15min
• 暫停2小時 / 暫停2h / 暫停2hr

▶️ 恢復運作
• 恢復 / 繼續 / resume

📊 查看狀態
• 狀態 / status

💡 顯示說明
• 指令 / commands / admin`

// pauseUsageText answers a pause command with an unparsable duration
const pauseUsageText = `⚠️ 無法解析暫停時間

請使用下列格式：
• 暫停 → 暫停 1 小時
• 暫停15分鐘 / 暫停15m / 暫停15min
• 暫停2小時 / 暫停2h / 暫停2hr`

const resumedText = "✅ Bot 已恢復運作"

const statusActiveText = "✅ Bot 目前正常運作"
